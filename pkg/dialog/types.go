package dialog

import "time"

// Source is a closed enumeration of backend data sources the router may
// target. Unknown names are a configuration error caught at startup, not
// per turn.
type Source string

const (
	SourceProducts    Source = "products"
	SourceTechnicians Source = "technicians"
	SourceSalesmen    Source = "salesmen"
	SourceEmployees   Source = "employees"
	SourceHistory     Source = "history"
)

// KnownSources lists every valid source in the fixed surfacing priority
// order (products first, employees last).
var KnownSources = []Source{
	SourceProducts,
	SourceTechnicians,
	SourceSalesmen,
	SourceEmployees,
	SourceHistory,
}

// Params carries the bounded parameters of a single lookup. Only the fields
// relevant to the call's source are set.
type Params struct {
	Query      string
	Category   string
	Specialty  string
	Department string
	Position   string
	Email      string
	MaxResults int
}

// ToolCall is an intent to query one external collaborator.
type ToolCall struct {
	Source Source
	Params Params
}

// Record is one result row: a flat mapping of display fields.
type Record map[string]string

// FetchedResult maps a source to its ordered result records. An empty slice
// means "queried, no match" which is distinct from the key being absent
// ("not queried").
type FetchedResult map[Source][]Record

// Recommendations is the per-source capped portion of a turn response.
type Recommendations struct {
	Products    []Record `json:"products"`
	Technicians []Record `json:"technicians"`
	Salesmen    []Record `json:"salesman"`
	Employees   []Record `json:"employees"`
	ExtraInfo   string   `json:"extra_info"`
}

// HistoryTurn is one exchange of the running conversation.
type HistoryTurn struct {
	User string    `json:"user"`
	Bot  string    `json:"bot"`
	Time time.Time `json:"time"`
}

// TurnResponse is the engine's output contract for a single turn.
type TurnResponse struct {
	Message    string
	Recommends Recommendations
	NextSteps  []string
	Session    *Session
}
