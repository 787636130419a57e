package agent

import (
	"context"
	"fmt"
	"sync"
)

// MockExchange scripts one Submit call on a MockSession.
type MockExchange struct {
	// Turns is returned from Submit.
	Turns []ConversationTurn
	// Deltas are passed to OnDelta in order before Submit returns.
	Deltas []string
	// FireSteps replays Turns' steps through OnStep. Leave false to simulate
	// a transport that loses the step callback.
	FireSteps bool
	// Err, when set, is returned instead of Turns.
	Err error
}

// MockSession is a scripted Session implementation for testing. Exchanges are
// consumed in order, one per Submit call.
type MockSession struct {
	mu        sync.Mutex
	exchanges []MockExchange
	prompts   []string
	closed    bool
}

// NewMockSession creates an empty MockSession.
func NewMockSession() *MockSession {
	return &MockSession{}
}

// Enqueue appends a scripted exchange.
func (s *MockSession) Enqueue(ex MockExchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = append(s.exchanges, ex)
}

// EnqueueText scripts an exchange whose conversation holds one assistant
// message with the given text, replayed through OnStep.
func (s *MockSession) EnqueueText(text string) {
	s.Enqueue(MockExchange{
		Turns: []ConversationTurn{{
			Kind:  TurnKindConversation,
			Steps: []Step{{Kind: StepKindAssistantMessage, Message: &StepMessage{Text: text}}},
		}},
		FireSteps: true,
	})
}

// EnqueueError scripts a failing exchange.
func (s *MockSession) EnqueueError(err error) {
	s.Enqueue(MockExchange{Err: err})
}

// Submit implements Session. It records the prompt, replays the scripted
// callbacks, and returns the scripted turns or error.
func (s *MockSession) Submit(_ context.Context, prompt string, opts SubmitOptions) ([]ConversationTurn, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	if len(s.exchanges) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("no scripted exchange for prompt %d, use Enqueue()", len(s.prompts))
	}
	ex := s.exchanges[0]
	s.exchanges = s.exchanges[1:]
	s.mu.Unlock()

	if ex.Err != nil {
		return nil, ex.Err
	}

	for _, delta := range ex.Deltas {
		if opts.OnDelta != nil {
			opts.OnDelta(delta)
		}
	}
	if ex.FireSteps && opts.OnStep != nil {
		for _, turn := range ex.Turns {
			for _, step := range turn.Steps {
				opts.OnStep(step)
			}
		}
	}

	return ex.Turns, nil
}

// Close implements Session.
func (s *MockSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Prompts returns the prompts submitted so far.
func (s *MockSession) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// SubmitCount returns how many times Submit was called.
func (s *MockSession) SubmitCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

// Closed reports whether Close was called.
func (s *MockSession) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// MockAgent is a scripted Agent implementation for testing. Each Open call
// hands out the next queued session.
type MockAgent struct {
	mu        sync.Mutex
	sessions  []*MockSession
	openError error
	openCount int
	lastOpen  OpenOptions
}

// NewMockAgent creates a MockAgent that will hand out the given sessions in
// order.
func NewMockAgent(sessions ...*MockSession) *MockAgent {
	return &MockAgent{sessions: sessions}
}

// Open implements Agent.
func (a *MockAgent) Open(_ context.Context, opts OpenOptions) (Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.openCount++
	a.lastOpen = opts

	if a.openError != nil {
		return nil, a.openError
	}
	if len(a.sessions) == 0 {
		return nil, fmt.Errorf("no scripted session for open %d, use NewMockAgent()", a.openCount)
	}
	session := a.sessions[0]
	a.sessions = a.sessions[1:]
	return session, nil
}

// SetOpenError makes subsequent Open calls fail.
func (a *MockAgent) SetOpenError(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.openError = err
}

// OpenCount returns how many times Open was called.
func (a *MockAgent) OpenCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.openCount
}

// LastOpenOptions returns the options from the most recent Open call.
func (a *MockAgent) LastOpenOptions() OpenOptions {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastOpen
}
