// Package chat drives the assistant conversation: keyword classification,
// AI triage when a key is configured, and the guided complaint flow
// (category question, description question, ticket confirmation).
package chat

import (
	"context"
	"fmt"
	"log"
	"sync"

	"hostelhelper/backend/internal/classifier"
	"hostelhelper/backend/internal/complaint"
	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/triage"
)

const historyLimit = 20

// flowState tracks a student partway through filing a complaint. Its
// mutex serializes turns for the student: a websocket frame and an HTTP
// chat request may arrive at the same time.
type flowState struct {
	mu       sync.Mutex
	active   bool
	category string
	history  []models.HistoryEntry
}

// Triager classifies a message with its conversation history. Satisfied
// by *triage.Client.
type Triager interface {
	Enabled() bool
	Classify(ctx context.Context, message string, history []models.HistoryEntry) triage.Result
}

// Engine processes one student message at a time and returns the bot reply.
type Engine struct {
	classifier *classifier.Classifier
	triage     Triager
	complaints *complaint.Service

	mu    sync.Mutex
	flows map[string]*flowState
}

// NewEngine wires the message pipeline. t may be nil or disabled, in
// which case keyword classification handles everything.
func NewEngine(c *classifier.Classifier, t Triager, cs *complaint.Service) *Engine {
	return &Engine{
		classifier: c,
		triage:     t,
		complaints: cs,
		flows:      make(map[string]*flowState),
	}
}

// Reply is what the engine hands back to the transport layer.
type Reply struct {
	Text     string `json:"text"`
	TicketID string `json:"ticketId,omitempty"`
}

// HandleMessage runs one turn of the conversation for a student.
func (e *Engine) HandleMessage(ctx context.Context, studentID, text string) Reply {
	e.mu.Lock()
	state, ok := e.flows[studentID]
	if !ok {
		state = &flowState{}
		e.flows[studentID] = state
	}
	e.mu.Unlock()

	state.mu.Lock()
	defer state.mu.Unlock()

	var reply Reply
	switch {
	case state.active && state.category == "":
		reply = e.handleCategoryTurn(state, text)
	case state.active:
		reply = e.handleDescriptionTurn(ctx, state, studentID, text)
	default:
		reply = e.handleOpenTurn(ctx, state, text)
	}

	// Recorded after the dispatch: triage receives the new message as a
	// separate argument, so the history must hold prior turns only.
	state.remember(models.RoleUser, text)
	state.remember(models.RoleAssistant, reply.Text)
	return reply
}

// handleCategoryTurn consumes the student's answer to "which category".
func (e *Engine) handleCategoryTurn(state *flowState, text string) Reply {
	state.category = classifier.InferCategory(text)
	return Reply{Text: fmt.Sprintf(
		"Got it! I understand this is a %s related complaint. Please describe your issue in detail.",
		state.category)}
}

// handleDescriptionTurn files the complaint from the description the
// student just gave and resets the flow.
func (e *Engine) handleDescriptionTurn(ctx context.Context, state *flowState, studentID, text string) Reply {
	category := state.category
	isEscalation := false
	suggestedSolution := ""

	if e.triage != nil && e.triage.Enabled() {
		result := e.triage.Classify(ctx, text, state.history)
		isEscalation = result.IsEscalation
		suggestedSolution = result.SuggestedSolution
		if result.Category != "" {
			category = result.Category
		}
	}

	ticketID, err := e.complaints.CreateComplaint(category, text, studentID, isEscalation, suggestedSolution)
	if err != nil {
		log.Printf("ERROR: failed to file complaint for student %s: %v", studentID, err)
		state.reset()
		return Reply{Text: "Sorry, something went wrong while filing your complaint. Please try again."}
	}

	state.reset()
	return Reply{
		Text: fmt.Sprintf(
			"Thank you for submitting your complaint. Your ticket number is %s. "+
				"We'll look into this as soon as possible. You can check the status "+
				"of your complaint by providing this ticket number.",
			ticketID),
		TicketID: ticketID,
	}
}

// handleOpenTurn classifies a message outside the complaint flow. A
// complaint-flavoured message starts the flow; when triage already knows
// the category, the category question is skipped.
func (e *Engine) handleOpenTurn(ctx context.Context, state *flowState, text string) Reply {
	if e.triage != nil && e.triage.Enabled() {
		result := e.triage.Classify(ctx, text, state.history)
		if result.IsComplaint {
			state.active = true
			state.category = result.Category
			if state.category != "" {
				return Reply{Text: fmt.Sprintf(
					"Got it! I understand this is a %s related complaint. Please describe your issue in detail.",
					state.category)}
			}
		}
		return Reply{Text: result.Text}
	}

	resp := e.classifier.Process(text)
	if resp.IsComplaint {
		state.active = true
	}
	return Reply{Text: resp.Text}
}

// ResetFlow drops any in-progress complaint flow for a student. Used when
// the session ends.
func (e *Engine) ResetFlow(studentID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.flows, studentID)
}

func (s *flowState) reset() {
	s.active = false
	s.category = ""
}

func (s *flowState) remember(role, content string) {
	s.history = append(s.history, models.HistoryEntry{Role: role, Content: content})
	if len(s.history) > historyLimit {
		s.history = s.history[len(s.history)-historyLimit:]
	}
}
