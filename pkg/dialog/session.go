package dialog

// State identifies the current position in the dialogue graph.
type State string

const (
	StateStart               State = "start"
	StateWaitingOption       State = "waiting_option"
	StateAskQuestions        State = "ask_questions"
	StateCreateAccountEmail  State = "create_account_email"
	StateCreateAccountName   State = "create_account_name"
	StateCreateAccountMobile State = "create_account_mobile"
	StateLoginEmail          State = "login_email"
	StateActiveChat          State = "active_chat"
)

// Identity is the caller's registered profile once known.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the unit of conversational memory. It is owned by the caller:
// passed in on every turn, mutated by the engine, and returned. The engine
// never retains it between turns.
type Session struct {
	State    State             `json:"state"`
	TempData map[string]string `json:"temp_data"`
	Identity *Identity         `json:"identity,omitempty"`
}

// NewSession returns an empty session positioned at the initial state.
func NewSession() *Session {
	return &Session{
		State:    StateStart,
		TempData: map[string]string{},
	}
}

// Authenticated reports whether the session carries a recognized identity.
// Identity is set if and only if the session is in the post-authentication
// region of the graph (ACTIVE_CHAT).
func (s *Session) Authenticated() bool {
	return s.Identity != nil && s.Identity.Email != ""
}

// Normalize repairs a session that arrived over the wire with missing fields.
func (s *Session) Normalize() {
	if s.State == "" {
		s.State = StateStart
	}
	if s.TempData == nil {
		s.TempData = map[string]string{}
	}
}
