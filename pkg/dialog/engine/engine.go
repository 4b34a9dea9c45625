// Package engine is the top-level dialogue controller. Each turn reads the
// session state, dispatches to the state's handler, and returns the updated
// session plus a structured response. The engine never errors across a turn
// boundary; every collaborator failure degrades to a valid response.
package engine

import (
	"context"
	"log"
	"strings"
	"time"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/dialog/assemble"
	"metro-chatbot-be/pkg/dialog/classify"
	"metro-chatbot-be/pkg/dialog/extract"
	"metro-chatbot-be/pkg/dialog/route"
)

// Engine wires the classifier, router and assembler behind the dialogue
// state machine. It holds no per-conversation state; the session is owned
// by the caller and passed in on every turn.
type Engine struct {
	classifier classify.Classifier
	router     *route.Router
	assembler  *assemble.Assembler
	identities dialog.IdentityStore
	answers    dialog.AnswerGenerator
	logger     *log.Logger
}

func NewEngine(
	classifier classify.Classifier,
	router *route.Router,
	assembler *assemble.Assembler,
	identities dialog.IdentityStore,
	answers dialog.AnswerGenerator,
	logger *log.Logger,
) *Engine {
	return &Engine{
		classifier: classifier,
		router:     router,
		assembler:  assembler,
		identities: identities,
		answers:    answers,
		logger:     logger,
	}
}

// Turn processes one message against the session. The session is mutated in
// place and also returned inside the response.
func (e *Engine) Turn(ctx context.Context, message string, sess *dialog.Session, history []dialog.HistoryTurn) *dialog.TurnResponse {
	if sess == nil {
		sess = dialog.NewSession()
	}
	sess.Normalize()

	resp := &dialog.TurnResponse{
		Recommends: emptyRecommendations(),
		NextSteps:  []string{},
		Session:    sess,
	}

	switch sess.State {
	case dialog.StateStart:
		e.handleStart(resp, sess)
	case dialog.StateWaitingOption:
		e.handleWaitingOption(message, resp, sess)
	case dialog.StateAskQuestions:
		e.freeFormTurn(ctx, message, nil, history, resp)
	case dialog.StateCreateAccountEmail:
		e.handleCreateEmail(ctx, message, resp, sess)
	case dialog.StateCreateAccountName:
		e.handleCreateName(message, resp, sess)
	case dialog.StateCreateAccountMobile:
		e.handleCreateMobile(ctx, message, resp, sess)
	case dialog.StateLoginEmail:
		e.handleLogin(ctx, message, resp, sess)
	case dialog.StateActiveChat:
		e.handleActiveChat(ctx, message, history, resp, sess)
	default:
		// Unknown state from a stale client: restart the conversation.
		sess.State = dialog.StateStart
		e.handleStart(resp, sess)
	}

	return resp
}

func (e *Engine) handleStart(resp *dialog.TurnResponse, sess *dialog.Session) {
	resp.Message = menuMessage
	resp.NextSteps = menuOptions
	sess.State = dialog.StateWaitingOption
}

func (e *Engine) handleWaitingOption(message string, resp *dialog.TurnResponse, sess *dialog.Session) {
	choice := strings.ToLower(strings.TrimSpace(message))

	switch {
	case matchChoice(choice, askQuestionsChoices):
		resp.Message = askQuestionsMessage
		resp.NextSteps = questionHints
		sess.State = dialog.StateAskQuestions

	case matchChoice(choice, createAccountChoices):
		resp.Message = createEmailMessage
		sess.State = dialog.StateCreateAccountEmail

	case matchChoice(choice, loginChoices):
		resp.Message = loginEmailMessage
		sess.State = dialog.StateLoginEmail

	default:
		resp.Message = invalidMenuMessage
		resp.NextSteps = menuOptions
	}
}

func (e *Engine) handleCreateEmail(ctx context.Context, message string, resp *dialog.TurnResponse, sess *dialog.Session) {
	email, ok := extract.Email(message)
	if !ok {
		resp.Message = invalidEmailMessage
		return
	}

	existing, err := e.identities.FindIdentity(ctx, email)
	if err != nil {
		e.logger.Printf("[ENGINE] identity lookup for %s failed: %v", email, err)
	}
	if existing != nil {
		// Registration is idempotent on email: a known address logs in
		// instead of creating a duplicate.
		resp.Message = "This email is already registered. Welcome back, " + existing.Name + "!\n\nHow can I help you?"
		resp.NextSteps = activeChatOptions
		sess.State = dialog.StateActiveChat
		sess.Identity = existing
		clearTempData(sess)
		return
	}

	sess.TempData["email"] = email
	resp.Message = createNameMessage
	sess.State = dialog.StateCreateAccountName
}

func (e *Engine) handleCreateName(message string, resp *dialog.TurnResponse, sess *dialog.Session) {
	name, ok := extract.Name(message)
	if !ok {
		resp.Message = invalidNameMessage
		return
	}

	sess.TempData["name"] = name
	resp.Message = "Nice to meet you, " + name + "! Please enter your mobile number:"
	sess.State = dialog.StateCreateAccountMobile
}

func (e *Engine) handleCreateMobile(ctx context.Context, message string, resp *dialog.TurnResponse, sess *dialog.Session) {
	phone, ok := extract.Phone(message)
	if !ok {
		resp.Message = invalidPhoneMessage
		return
	}

	email := sess.TempData["email"]
	name := sess.TempData["name"]
	identity, err := e.identities.CreateIdentity(ctx, email, name, phone)
	if err != nil {
		e.logger.Printf("[ENGINE] create identity for %s failed: %v", email, err)
		resp.Message = accountErrorMessage
		return
	}

	resp.Message = name + ", your account has been created! How can I help you?"
	resp.NextSteps = activeChatOptions
	sess.State = dialog.StateActiveChat
	sess.Identity = identity
	clearTempData(sess)
}

func (e *Engine) handleLogin(ctx context.Context, message string, resp *dialog.TurnResponse, sess *dialog.Session) {
	email, ok := extract.Email(message)
	if !ok {
		resp.Message = loginInvalidMessage
		return
	}

	identity, err := e.identities.FindIdentity(ctx, email)
	if err != nil {
		e.logger.Printf("[ENGINE] identity lookup for %s failed: %v", email, err)
	}
	if identity == nil {
		resp.Message = loginNotFoundMessage
		resp.NextSteps = loginRetryOptions
		sess.State = dialog.StateWaitingOption
		return
	}

	resp.Message = "Welcome back " + identity.Name + ", how can I help you?"
	resp.NextSteps = activeChatOptions
	sess.State = dialog.StateActiveChat
	sess.Identity = identity
}

func (e *Engine) handleActiveChat(ctx context.Context, message string, history []dialog.HistoryTurn, resp *dialog.TurnResponse, sess *dialog.Session) {
	e.freeFormTurn(ctx, message, sess.Identity, history, resp)

	if sess.Identity == nil || sess.Identity.Email == "" {
		return
	}

	// Best-effort history write. A persistence failure never surfaces as a
	// turn failure.
	turns := append(history, dialog.HistoryTurn{
		User: message,
		Bot:  resp.Message,
		Time: time.Now().UTC(),
	})
	if err := e.identities.AppendHistory(ctx, sess.Identity.Email, turns); err != nil {
		e.logger.Printf("[ENGINE] history save for %s failed: %v", sess.Identity.Email, err)
	}
}

// freeFormTurn runs the classify, route, fetch, cap, answer pipeline shared
// by the anonymous and authenticated question states.
func (e *Engine) freeFormTurn(ctx context.Context, message string, identity *dialog.Identity, history []dialog.HistoryTurn, resp *dialog.TurnResponse) {
	category, scores := e.classifier.Classify(message)
	e.logger.Printf("[ENGINE] classified %q as %s (scores %v)", message, category, scores)

	calls := e.router.Route(message, category)
	fetched := e.assembler.Fetch(ctx, calls)
	resp.Recommends = assemble.Cap(fetched, category)
	resp.NextSteps = assemble.NextSteps(resp.Recommends)

	answer, err := e.answers.GenerateAnswer(ctx, message, fetched, identity, history)
	if err != nil {
		e.logger.Printf("[ENGINE] answer generation failed: %v", err)
		resp.Message = apologyMessage
		resp.Recommends = emptyRecommendations()
		resp.NextSteps = retryOptions
		return
	}
	resp.Message = answer
}

func matchChoice(choice string, synonyms []string) bool {
	for _, s := range synonyms {
		if choice == s {
			return true
		}
	}
	return false
}

func clearTempData(sess *dialog.Session) {
	sess.TempData = map[string]string{}
}

func emptyRecommendations() dialog.Recommendations {
	return dialog.Recommendations{
		Products:    []dialog.Record{},
		Technicians: []dialog.Record{},
		Salesmen:    []dialog.Record{},
		Employees:   []dialog.Record{},
	}
}
