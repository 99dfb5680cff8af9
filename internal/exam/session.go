// Package exam holds the state of a single timed exam run.
//
// A Session is owned by one goroutine at a time. Presentation adapters
// drive it through Dispatch and render the Snapshot it returns.
package exam

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"pracexam/internal/question"
	"pracexam/internal/score"
)

// DefaultTimeLimit is the time allowed for a full exam.
const DefaultTimeLimit = 105 * time.Minute

// examIDLayout formats the exam identifier shared by all detail rows of a run.
const examIDLayout = "20060102-150405"

// ErrFinalized is returned when a finalized session is mutated.
var ErrFinalized = errors.New("exam already submitted")

// ErrNoSuchChoice is returned when an answer is not one of the options.
var ErrNoSuchChoice = errors.New("choice is not an option for this question")

// Options configures a new session.
type Options struct {
	Size         int
	TimeLimit    time.Duration
	PassingScore int
	Rand         *rand.Rand
}

// AnsweredQuestion pairs a question with the answer given for it.
type AnsweredQuestion struct {
	Index    int
	Question question.Question
	Selected string
	Correct  bool
}

// Outcome is the frozen result of a finalized session.
type Outcome struct {
	SessionID  string
	ExamID     string
	StartedAt  time.Time
	FinishedAt time.Time
	TimedOut   bool
	score.Result
	Answers []AnsweredQuestion
}

// Session tracks position, answers, and time for one exam.
type Session struct {
	id        string
	questions []question.Question
	answers   []string
	index     int
	timeLimit time.Duration
	passing   int
	startedAt time.Time
	outcome   *Outcome
}

// New samples opts.Size questions from bank without replacement.
func New(bank question.Bank, opts Options) (*Session, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("exam size must be positive, got %d", opts.Size)
	}
	if opts.TimeLimit <= 0 {
		return nil, fmt.Errorf("time limit must be positive, got %s", opts.TimeLimit)
	}
	if err := question.RequireSize(bank, opts.Size); err != nil {
		return nil, err
	}
	passing := opts.PassingScore
	if passing <= 0 {
		passing = score.DefaultPassingScore
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	order := rng.Perm(bank.Len())[:opts.Size]
	questions := make([]question.Question, 0, opts.Size)
	for _, i := range order {
		questions = append(questions, bank.Questions[i])
	}
	return &Session{
		id:        uuid.NewString(),
		questions: questions,
		answers:   make([]string, len(questions)),
		timeLimit: opts.TimeLimit,
		passing:   passing,
	}, nil
}

// ID returns the session id used to correlate log lines.
func (s *Session) ID() string {
	return s.id
}

// Len returns the number of questions in the exam.
func (s *Session) Len() int {
	return len(s.questions)
}

// Index returns the current zero-based position.
func (s *Session) Index() int {
	return s.index
}

// Questions returns a copy of the sampled questions in exam order.
func (s *Session) Questions() []question.Question {
	return slices.Clone(s.questions)
}

// Current returns the question at the current position.
func (s *Session) Current() question.Question {
	return s.questions[s.index]
}

// Answer returns the selected choice for question i, or "" when unanswered.
func (s *Session) Answer(i int) string {
	if i < 0 || i >= len(s.answers) {
		return ""
	}
	return s.answers[i]
}

// Finalized reports whether the session has been submitted.
func (s *Session) Finalized() bool {
	return s.outcome != nil
}

// Start records the start time. Starting twice keeps the first time.
func (s *Session) Start(now time.Time) {
	if s.startedAt.IsZero() {
		s.startedAt = now
	}
}

// Started reports whether Start has been called.
func (s *Session) Started() bool {
	return !s.startedAt.IsZero()
}

// Next advances one question; it does nothing at the last question.
func (s *Session) Next() error {
	if s.Finalized() {
		return ErrFinalized
	}
	if s.index < len(s.questions)-1 {
		s.index++
	}
	return nil
}

// Previous goes back one question; it does nothing at the first question.
func (s *Session) Previous() error {
	if s.Finalized() {
		return ErrFinalized
	}
	if s.index > 0 {
		s.index--
	}
	return nil
}

// Jump moves to question i.
func (s *Session) Jump(i int) error {
	if s.Finalized() {
		return ErrFinalized
	}
	if i < 0 || i >= len(s.questions) {
		return fmt.Errorf("question %d out of range 1-%d", i+1, len(s.questions))
	}
	s.index = i
	return nil
}

// Select records or overwrites the answer to the current question.
func (s *Session) Select(choice string) error {
	if s.Finalized() {
		return ErrFinalized
	}
	if !s.Current().HasChoice(choice) {
		return fmt.Errorf("%w: %q", ErrNoSuchChoice, choice)
	}
	s.answers[s.index] = choice
	return nil
}

// SelectIndex records the answer by zero-based option index.
func (s *Session) SelectIndex(i int) error {
	if s.Finalized() {
		return ErrFinalized
	}
	choices := s.Current().Choices
	if i < 0 || i >= len(choices) {
		return fmt.Errorf("%w: option %d", ErrNoSuchChoice, i+1)
	}
	s.answers[s.index] = choices[i]
	return nil
}

// Clear removes the answer to the current question.
func (s *Session) Clear() error {
	if s.Finalized() {
		return ErrFinalized
	}
	s.answers[s.index] = ""
	return nil
}

// Answered returns how many questions have an answer.
func (s *Session) Answered() int {
	count := 0
	for _, answer := range s.answers {
		if answer != "" {
			count++
		}
	}
	return count
}

// Remaining returns the time left at now, never below zero.
func (s *Session) Remaining(now time.Time) time.Duration {
	if s.outcome != nil {
		return max(s.timeLimit-s.outcome.FinishedAt.Sub(s.outcome.StartedAt), 0)
	}
	if s.startedAt.IsZero() {
		return s.timeLimit
	}
	return max(s.timeLimit-now.Sub(s.startedAt), 0)
}

// Tick advances the countdown and finalizes the session when time runs out.
// It reports whether this tick caused the finalization.
func (s *Session) Tick(now time.Time) bool {
	if s.Finalized() || !s.Started() {
		return false
	}
	if s.Remaining(now) > 0 {
		return false
	}
	s.finalize(now, true)
	return true
}

// Finalize scores the exam and freezes the session. Later calls return the
// same outcome.
func (s *Session) Finalize(now time.Time) Outcome {
	if s.outcome == nil {
		s.finalize(now, false)
	}
	return s.Outcome()
}

// Outcome returns a copy of the finalized outcome, or the zero value.
func (s *Session) Outcome() Outcome {
	if s.outcome == nil {
		return Outcome{}
	}
	out := *s.outcome
	out.Answers = slices.Clone(s.outcome.Answers)
	return out
}

func (s *Session) finalize(now time.Time, timedOut bool) {
	started := s.startedAt
	if started.IsZero() {
		started = now
	}
	answers := make([]AnsweredQuestion, 0, len(s.questions))
	correct := 0
	for i, q := range s.questions {
		ok := q.IsCorrect(s.answers[i])
		if ok {
			correct++
		}
		answers = append(answers, AnsweredQuestion{
			Index:    i,
			Question: q,
			Selected: s.answers[i],
			Correct:  ok,
		})
	}
	s.outcome = &Outcome{
		SessionID:  s.id,
		ExamID:     now.Format(examIDLayout),
		StartedAt:  started,
		FinishedAt: now,
		TimedOut:   timedOut,
		Result:     score.Evaluate(correct, len(s.questions), s.passing),
		Answers:    answers,
	}
}
