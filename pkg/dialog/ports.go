package dialog

import "context"

// IdentityStore is the persistence collaborator the engine needs for
// account creation, login and conversation history. Implementations live
// outside the core; swapping providers must not change these contracts.
type IdentityStore interface {
	// FindIdentity returns nil, nil when no identity exists for the email.
	FindIdentity(ctx context.Context, email string) (*Identity, error)
	CreateIdentity(ctx context.Context, email, name, phone string) (*Identity, error)
	// AppendHistory persists a finished conversation snapshot. Best-effort:
	// the engine logs failures and never surfaces them to the caller.
	AppendHistory(ctx context.Context, email string, turns []HistoryTurn) error
}

// Directory is the catalog/directory collaborator the assembler dispatches
// tool calls against. Empty filter strings mean "no filter".
type Directory interface {
	LookupProducts(ctx context.Context, query, category string, maxResults int) ([]Record, error)
	LookupTechnicians(ctx context.Context, specialty string, maxResults int) ([]Record, error)
	LookupSalesmen(ctx context.Context, specialty string, maxResults int) ([]Record, error)
	LookupEmployees(ctx context.Context, department, position string, maxResults int) ([]Record, error)
	LookupHistory(ctx context.Context, email string, limit int) ([]Record, error)
}

// AnswerGenerator produces the natural-language reply for a free-form turn,
// grounded on the capped fetched data. The core is agnostic to how the text
// is produced.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, message string, fetched FetchedResult, profile *Identity, history []HistoryTurn) (string, error)
}
