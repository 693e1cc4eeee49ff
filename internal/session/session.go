package session

import (
	"context"
	"strings"
	"sync"

	"github.com/dawood1123/Lumina-study-app/internal/assistant"
	"github.com/dawood1123/Lumina-study-app/internal/config"
	"github.com/dawood1123/Lumina-study-app/internal/quiz"
	"github.com/google/uuid"
)

// Session is the study flow for one user: form, loading, result or error,
// and back. At most one generation is in flight; the lock is released
// while it runs so readers can observe the loading phase.
type Session struct {
	mu          sync.Mutex
	generator   assistant.Service
	state       Snapshot
	runner      *quiz.Runner
	epoch       int
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

func New(generator assistant.Service) *Session {
	return &Session{
		generator:   generator,
		state:       Snapshot{Phase: PhaseIdle, Level: assistant.Beginner},
		subscribers: make(map[int]func(Snapshot)),
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Quiz returns the runner for the quiz on screen, nil when there is none.
func (s *Session) Quiz() *quiz.Runner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runner
}

// Subscribe registers fn to receive a snapshot after every transition.
// Callbacks run under the session lock in transition order and must not
// call back into the session.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Submit runs a fresh request. A blank topic is refused without touching
// state. The returned snapshot is the settled state, result or error.
func (s *Session) Submit(ctx context.Context, topic string, level assistant.Level, mode assistant.Mode, studyContext string) (Snapshot, error) {
	log := config.WithContext(ctx)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return s.Snapshot(), ErrEmptyTopic
	}
	if !level.IsValid() || !mode.IsValid() {
		return s.Snapshot(), ErrInvalidRequest
	}

	s.mu.Lock()
	if s.state.Phase.Busy() {
		s.mu.Unlock()
		return s.Snapshot(), ErrBusy
	}
	s.state = Snapshot{Phase: PhaseLoading, Level: level, Context: studyContext}
	s.runner = nil
	s.publishLocked()

	log.Infof("Generating %s for topic %q", mode, topic)
	epoch := s.epoch
	generated, err := s.generate(ctx, assistant.Request{
		Topic:   topic,
		Level:   level,
		Mode:    mode,
		Context: studyContext,
	})

	defer s.mu.Unlock()
	if s.epoch != epoch {
		log.Info("Session was reset while generating, discarding outcome")
		return s.state.clone(), nil
	}
	defer s.publishLocked()

	if err != nil {
		log.WithError(err).Error("Study request failed")
		s.state.Phase = PhaseError
		s.state.Error = userMessage(err, submitFallback)
		return s.state.clone(), nil
	}

	s.state.Phase = PhaseResult
	s.state.Result = &Result{
		ID:      uuid.New(),
		Content: generated.Text,
		Quiz:    generated.Quiz,
		Mode:    mode,
		Topic:   topic,
	}
	s.startRunnerLocked()
	return s.state.clone(), nil
}

// StartQuizFromContent builds a quiz strictly from the displayed content.
// The previous result survives a failure, so the call can be retried from
// the error phase.
func (s *Session) StartQuizFromContent(ctx context.Context) (Snapshot, error) {
	log := config.WithContext(ctx)

	s.mu.Lock()
	if s.state.Phase.Busy() {
		s.mu.Unlock()
		return s.Snapshot(), ErrBusy
	}
	prev := s.state.Result
	if prev == nil || prev.Mode == assistant.Quiz {
		s.mu.Unlock()
		return s.Snapshot(), ErrNoResult
	}
	s.state.Phase = PhaseQuizTransitioning
	s.state.Error = ""
	level := s.state.Level
	s.publishLocked()

	log.Infof("Generating quiz from displayed %s on %q", prev.Mode, prev.Topic)
	epoch := s.epoch
	generated, err := s.generate(ctx, assistant.Request{
		Topic:         prev.Topic,
		Level:         level,
		Mode:          assistant.Quiz,
		SourceContent: prev.Content,
	})

	defer s.mu.Unlock()
	if s.epoch != epoch {
		log.Info("Session was reset while generating, discarding outcome")
		return s.state.clone(), nil
	}
	defer s.publishLocked()

	if err != nil {
		log.WithError(err).Error("Quiz from content failed")
		s.state.Phase = PhaseError
		s.state.Error = userMessage(err, quizFromContentFallback)
		return s.state.clone(), nil
	}

	next := *prev
	next.Mode = assistant.Quiz
	next.Quiz = generated.Quiz
	s.state.Phase = PhaseResult
	s.state.Result = &next
	s.startRunnerLocked()
	return s.state.clone(), nil
}

// Reset returns to idle from any phase. A generation still in flight keeps
// running but its outcome is discarded.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.state = Snapshot{Phase: PhaseIdle, Level: s.state.Level, Context: s.state.Context}
	s.runner = nil
	s.publishLocked()
	return s.state.clone()
}

// generate must be entered with s.mu held. It unlocks for the call and
// locks again before returning.
func (s *Session) generate(ctx context.Context, req assistant.Request) (*assistant.Generated, error) {
	gen := s.generator
	s.mu.Unlock()
	defer s.mu.Lock()
	return gen.Generate(ctx, req)
}

func (s *Session) startRunnerLocked() {
	s.runner = nil
	if r := s.state.Result; r != nil && r.Mode == assistant.Quiz && len(r.Quiz) > 0 {
		s.runner = quiz.NewRunner(r.Quiz)
	}
}

func (s *Session) publishLocked() {
	snap := s.state.clone()
	for _, fn := range s.subscribers {
		fn(snap)
	}
}
