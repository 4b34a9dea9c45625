package engine

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/dialog/assemble"
	"metro-chatbot-be/pkg/dialog/classify"
	"metro-chatbot-be/pkg/dialog/route"
)

type fakeIdentityStore struct {
	identities map[string]*dialog.Identity
	created    int
	findErr    error
	historyErr error
	saved      map[string][]dialog.HistoryTurn
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{
		identities: map[string]*dialog.Identity{},
		saved:      map[string][]dialog.HistoryTurn{},
	}
}

func (s *fakeIdentityStore) FindIdentity(ctx context.Context, email string) (*dialog.Identity, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.identities[email], nil
}

func (s *fakeIdentityStore) CreateIdentity(ctx context.Context, email, name, phone string) (*dialog.Identity, error) {
	s.created++
	id := &dialog.Identity{Email: email, Name: name}
	s.identities[email] = id
	return id, nil
}

func (s *fakeIdentityStore) AppendHistory(ctx context.Context, email string, turns []dialog.HistoryTurn) error {
	if s.historyErr != nil {
		return s.historyErr
	}
	s.saved[email] = turns
	return nil
}

type fakeDirectory struct {
	productsErr error
}

func (d *fakeDirectory) LookupProducts(ctx context.Context, query, category string, maxResults int) ([]dialog.Record, error) {
	if d.productsErr != nil {
		return nil, d.productsErr
	}
	return []dialog.Record{{"name": "SolarMax 10kW", "price": "4999"}}, nil
}

func (d *fakeDirectory) LookupTechnicians(ctx context.Context, specialty string, maxResults int) ([]dialog.Record, error) {
	return []dialog.Record{{"name": "Ravi", "specialty": specialty}}, nil
}

func (d *fakeDirectory) LookupSalesmen(ctx context.Context, specialty string, maxResults int) ([]dialog.Record, error) {
	return []dialog.Record{{"name": "Dana"}}, nil
}

func (d *fakeDirectory) LookupEmployees(ctx context.Context, department, position string, maxResults int) ([]dialog.Record, error) {
	return nil, nil
}

func (d *fakeDirectory) LookupHistory(ctx context.Context, email string, limit int) ([]dialog.Record, error) {
	return nil, nil
}

type fakeAnswers struct {
	err error
}

func (a *fakeAnswers) GenerateAnswer(ctx context.Context, message string, fetched dialog.FetchedResult, profile *dialog.Identity, history []dialog.HistoryTurn) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	return "Here is what I found.", nil
}

func newTestEngine(store *fakeIdentityStore, dir dialog.Directory, answers dialog.AnswerGenerator) *Engine {
	logger := log.New(io.Discard, "", 0)
	return NewEngine(
		classify.NewKeywordClassifier(),
		route.NewRouter(route.ModeHeuristic),
		assemble.NewAssembler(dir, logger),
		store,
		answers,
		logger,
	)
}

func TestTurnRegistrationScenario(t *testing.T) {
	store := newFakeIdentityStore()
	e := newTestEngine(store, &fakeDirectory{}, &fakeAnswers{})
	ctx := context.Background()
	sess := dialog.NewSession()

	resp := e.Turn(ctx, "hello", sess, nil)
	if sess.State != dialog.StateWaitingOption {
		t.Fatalf("turn 1 state = %s, want %s", sess.State, dialog.StateWaitingOption)
	}
	if !strings.Contains(resp.Message, "1) Ask some questions") {
		t.Errorf("turn 1 did not show menu: %q", resp.Message)
	}

	e.Turn(ctx, "2", sess, nil)
	if sess.State != dialog.StateCreateAccountEmail {
		t.Fatalf("turn 2 state = %s, want %s", sess.State, dialog.StateCreateAccountEmail)
	}

	e.Turn(ctx, "new@x.com", sess, nil)
	if sess.State != dialog.StateCreateAccountName {
		t.Fatalf("turn 3 state = %s, want %s", sess.State, dialog.StateCreateAccountName)
	}

	e.Turn(ctx, "Jane Doe", sess, nil)
	if sess.State != dialog.StateCreateAccountMobile {
		t.Fatalf("turn 4 state = %s, want %s", sess.State, dialog.StateCreateAccountMobile)
	}

	e.Turn(ctx, "5551234567", sess, nil)
	if sess.State != dialog.StateActiveChat {
		t.Fatalf("turn 5 state = %s, want %s", sess.State, dialog.StateActiveChat)
	}
	if sess.Identity == nil || sess.Identity.Name != "Jane Doe" {
		t.Fatalf("identity = %+v, want Jane Doe", sess.Identity)
	}
	if len(sess.TempData) != 0 {
		t.Errorf("temp data not cleared: %v", sess.TempData)
	}
	if store.created != 1 {
		t.Errorf("created %d identities, want 1", store.created)
	}
}

func TestTurnMenuSynonyms(t *testing.T) {
	tests := []struct {
		input string
		want  dialog.State
	}{
		{"1", dialog.StateAskQuestions},
		{"1)", dialog.StateAskQuestions},
		{"option 1", dialog.StateAskQuestions},
		{"ask questions", dialog.StateAskQuestions},
		{"2", dialog.StateCreateAccountEmail},
		{"create an account", dialog.StateCreateAccountEmail},
		{"3", dialog.StateLoginEmail},
		{"log in", dialog.StateLoginEmail},
		{"LOGIN", dialog.StateLoginEmail},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := newTestEngine(newFakeIdentityStore(), &fakeDirectory{}, &fakeAnswers{})
			sess := &dialog.Session{State: dialog.StateWaitingOption, TempData: map[string]string{}}
			e.Turn(context.Background(), tt.input, sess, nil)
			if sess.State != tt.want {
				t.Errorf("state = %s, want %s", sess.State, tt.want)
			}
		})
	}
}

func TestTurnMenuRepromptOnUnknownInput(t *testing.T) {
	e := newTestEngine(newFakeIdentityStore(), &fakeDirectory{}, &fakeAnswers{})
	sess := &dialog.Session{State: dialog.StateWaitingOption, TempData: map[string]string{}}

	resp := e.Turn(context.Background(), "banana", sess, nil)
	if sess.State != dialog.StateWaitingOption {
		t.Errorf("state = %s, want unchanged %s", sess.State, dialog.StateWaitingOption)
	}
	if !strings.Contains(resp.Message, "valid option") {
		t.Errorf("expected reprompt, got %q", resp.Message)
	}
}

func TestTurnRegistrationIdempotentOnEmail(t *testing.T) {
	store := newFakeIdentityStore()
	store.identities["jane@x.com"] = &dialog.Identity{Email: "jane@x.com", Name: "Jane"}
	e := newTestEngine(store, &fakeDirectory{}, &fakeAnswers{})
	sess := &dialog.Session{State: dialog.StateCreateAccountEmail, TempData: map[string]string{}}

	resp := e.Turn(context.Background(), "jane@x.com", sess, nil)
	if sess.State != dialog.StateActiveChat {
		t.Fatalf("state = %s, want %s", sess.State, dialog.StateActiveChat)
	}
	if sess.Identity == nil || sess.Identity.Name != "Jane" {
		t.Fatalf("identity = %+v, want stored Jane", sess.Identity)
	}
	if store.created != 0 {
		t.Errorf("created %d identities, want 0", store.created)
	}
	if !strings.Contains(resp.Message, "Welcome back, Jane") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestTurnEmailRepromptKeepsState(t *testing.T) {
	e := newTestEngine(newFakeIdentityStore(), &fakeDirectory{}, &fakeAnswers{})
	sess := &dialog.Session{State: dialog.StateCreateAccountEmail, TempData: map[string]string{}}

	e.Turn(context.Background(), "not an email", sess, nil)
	if sess.State != dialog.StateCreateAccountEmail {
		t.Errorf("state = %s, want unchanged", sess.State)
	}
}

func TestTurnLoginUnknownEmailReturnsToMenu(t *testing.T) {
	e := newTestEngine(newFakeIdentityStore(), &fakeDirectory{}, &fakeAnswers{})
	sess := &dialog.Session{State: dialog.StateLoginEmail, TempData: map[string]string{}}

	resp := e.Turn(context.Background(), "ghost@x.com", sess, nil)
	if sess.State != dialog.StateWaitingOption {
		t.Errorf("state = %s, want %s", sess.State, dialog.StateWaitingOption)
	}
	if !strings.Contains(resp.Message, "No account found") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestTurnActiveChatFetchesAndSavesHistory(t *testing.T) {
	store := newFakeIdentityStore()
	e := newTestEngine(store, &fakeDirectory{}, &fakeAnswers{})
	sess := &dialog.Session{
		State:    dialog.StateActiveChat,
		TempData: map[string]string{},
		Identity: &dialog.Identity{Email: "jane@x.com", Name: "Jane"},
	}

	resp := e.Turn(context.Background(), "I want to buy a solar panel", sess, nil)
	if resp.Message != "Here is what I found." {
		t.Errorf("message = %q", resp.Message)
	}
	if len(resp.Recommends.Products) == 0 {
		t.Error("expected product recommendations for a purchase message")
	}
	if len(store.saved["jane@x.com"]) != 1 {
		t.Errorf("saved %d history turns, want 1", len(store.saved["jane@x.com"]))
	}
}

func TestTurnHistoryFailureDoesNotSurfaceError(t *testing.T) {
	store := newFakeIdentityStore()
	store.historyErr = errors.New("db down")
	e := newTestEngine(store, &fakeDirectory{}, &fakeAnswers{})
	sess := &dialog.Session{
		State:    dialog.StateActiveChat,
		TempData: map[string]string{},
		Identity: &dialog.Identity{Email: "jane@x.com", Name: "Jane"},
	}

	resp := e.Turn(context.Background(), "I want to buy a solar panel", sess, nil)
	if resp.Message != "Here is what I found." {
		t.Errorf("history failure leaked into the turn: %q", resp.Message)
	}
}

func TestTurnAnswerFailureDegradesToApology(t *testing.T) {
	e := newTestEngine(newFakeIdentityStore(), &fakeDirectory{}, &fakeAnswers{err: errors.New("provider timeout")})
	sess := &dialog.Session{State: dialog.StateAskQuestions, TempData: map[string]string{}}

	resp := e.Turn(context.Background(), "I want to buy a solar panel", sess, nil)
	if !strings.Contains(resp.Message, "I apologize") {
		t.Errorf("message = %q, want apology", resp.Message)
	}
	if len(resp.NextSteps) != 2 || resp.NextSteps[0] != "Try again" || resp.NextSteps[1] != "Start over" {
		t.Errorf("next steps = %v, want [Try again Start over]", resp.NextSteps)
	}
	if sess.State != dialog.StateAskQuestions {
		t.Errorf("state = %s, want unchanged", sess.State)
	}
}

func TestTurnOneSourceFailureStillPopulatesOthers(t *testing.T) {
	dir := &fakeDirectory{productsErr: errors.New("connection refused")}
	e := newTestEngine(newFakeIdentityStore(), dir, &fakeAnswers{})
	sess := &dialog.Session{State: dialog.StateAskQuestions, TempData: map[string]string{}}

	resp := e.Turn(context.Background(), "I want to buy a solar panel", sess, nil)
	if resp.Message != "Here is what I found." {
		t.Fatalf("turn failed on a single source error: %q", resp.Message)
	}
	if len(resp.Recommends.Products) != 0 {
		t.Errorf("failed source produced %d records", len(resp.Recommends.Products))
	}
	if len(resp.Recommends.Salesmen) == 0 {
		t.Error("surviving source produced no records")
	}
}

func TestTurnNilSessionStartsConversation(t *testing.T) {
	e := newTestEngine(newFakeIdentityStore(), &fakeDirectory{}, &fakeAnswers{})

	resp := e.Turn(context.Background(), "hello", nil, nil)
	if resp.Session == nil || resp.Session.State != dialog.StateWaitingOption {
		t.Fatalf("session = %+v, want waiting option", resp.Session)
	}
}
