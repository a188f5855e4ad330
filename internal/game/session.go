package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/hangman"
	"github.com/samdwyer/hangman/internal/save"
	"github.com/samdwyer/hangman/internal/stats"
	"github.com/samdwyer/hangman/internal/telemetry"
)

var (
	// ErrNoRound is returned when an operation needs a round and none is active.
	ErrNoRound = errors.New("no round in progress")

	// ErrRoundOver is returned when saving a round that has already finished.
	ErrRoundOver = errors.New("round is already over")
)

// newSaveName generates a name for saves written without one.
var newSaveName = save.NewName

// SaveStore persists serialized rounds by name.
type SaveStore interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
	List() ([]string, error)
	Delete(name string) error
}

// Recorder keeps the history of finished rounds.
type Recorder interface {
	Record(ctx context.Context, r stats.Result) error
	Summary(ctx context.Context) (stats.Summary, error)
}

// Session ties a round to its word source, save store and statistics.
// Both front ends drive the game through it.
type Session struct {
	rules    hangman.Rules
	words    []string
	rng      *rand.Rand
	saves    SaveStore
	recorder Recorder // nil when statistics are disabled

	round    *hangman.Game
	saveName string // Save the current round was loaded from or written to
	recorded bool
}

// NewSession creates a session. recorder may be nil.
func NewSession(cfg config.Config, words []string, saves SaveStore, recorder Recorder) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		rules:    cfg.Rules(),
		words:    words,
		rng:      rand.New(rand.NewSource(seed)),
		saves:    saves,
		recorder: recorder,
	}
}

// Round returns the active round, or nil.
func (s *Session) Round() *hangman.Game {
	return s.round
}

// Active reports whether there is an unfinished round to continue.
func (s *Session) Active() bool {
	return s.round != nil && !s.round.IsTerminal()
}

// NewRound picks a fresh answer and starts a round with it.
func (s *Session) NewRound(ctx context.Context) error {
	_, span := telemetry.Tracer("session").Start(ctx, "round.new")
	defer span.End()

	answer, err := hangman.SelectAnswer(s.words, s.rules, s.rng)
	if err != nil {
		return fail(span, err)
	}
	round, err := hangman.NewGame(answer, s.rules)
	if err != nil {
		return fail(span, err)
	}

	s.round = round
	s.saveName = ""
	s.recorded = false

	span.SetAttributes(attribute.Int("word_length", len(answer)))
	log.Info().Int("word_length", len(answer)).Msg("new round")
	return nil
}

// Guess submits one letter to the active round. When the guess ends the
// round, the result is recorded.
func (s *Session) Guess(ctx context.Context, input string) (bool, error) {
	if s.round == nil {
		return false, ErrNoRound
	}

	ctx, span := telemetry.Tracer("session").Start(ctx, "round.guess")
	defer span.End()

	correct, err := s.round.SubmitGuess(input)
	if err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		return false, err
	}

	span.SetAttributes(
		attribute.Bool("correct", correct),
		attribute.Int("guesses", len(s.round.Guesses())),
		attribute.Int("incorrect_guesses", s.round.IncorrectGuessCount()),
	)

	if s.round.IsTerminal() {
		span.SetAttributes(attribute.String("outcome", s.round.Outcome().String()))
		s.finish(ctx)
	}
	return correct, nil
}

// Save writes the active round under name, or under a generated name when
// name is empty, and returns the name used. The round itself is never
// modified, so it stays playable if the write fails.
func (s *Session) Save(ctx context.Context, name string) (string, error) {
	if s.round == nil {
		return "", ErrNoRound
	}
	if s.round.IsTerminal() {
		return "", ErrRoundOver
	}
	if name == "" {
		name = s.saveName
	}
	if name == "" {
		name = newSaveName()
	}

	_, span := telemetry.Tracer("session").Start(ctx, "round.save")
	defer span.End()
	span.SetAttributes(attribute.String("save", name))

	data, err := hangman.MarshalGame(s.round)
	if err != nil {
		return "", fail(span, err)
	}
	if err := s.saves.Save(name, data); err != nil {
		log.Error().Err(err).Str("save", name).Msg("save game")
		return "", fail(span, err)
	}

	s.saveName = name
	return name, nil
}

// Load replaces the active round with a saved one. On any error the
// previous round is kept.
func (s *Session) Load(ctx context.Context, name string) error {
	_, span := telemetry.Tracer("session").Start(ctx, "round.load")
	defer span.End()
	span.SetAttributes(attribute.String("save", name))

	data, err := s.saves.Load(name)
	if err != nil {
		return fail(span, err)
	}
	round, err := hangman.UnmarshalGame(data, s.rules)
	if err != nil {
		log.Warn().Err(err).Str("save", name).Msg("rejected save")
		return fail(span, err)
	}

	s.round = round
	s.saveName = name
	s.recorded = round.IsTerminal()

	span.SetAttributes(attribute.Int("guesses", len(round.Guesses())))
	log.Info().Str("save", name).Int("guesses", len(round.Guesses())).Msg("loaded round")
	return nil
}

// SavedGames lists the saves available to Load.
func (s *Session) SavedGames() ([]string, error) {
	return s.saves.List()
}

// Summary returns a one-line statistics summary, or "" when statistics
// are disabled or unavailable.
func (s *Session) Summary(ctx context.Context) string {
	if s.recorder == nil {
		return ""
	}
	sum, err := s.recorder.Summary(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("read statistics")
		return ""
	}
	return fmt.Sprintf("Played %d, won %d (%.0f%%), streak %d, best %d",
		sum.Played, sum.Won, sum.WinRate(), sum.CurrentStreak, sum.MaxStreak)
}

// finish records a terminal round once and removes its save, which
// would otherwise let a decided round be replayed.
func (s *Session) finish(ctx context.Context) {
	if s.recorded {
		return
	}
	s.recorded = true

	log.Info().
		Str("outcome", s.round.Outcome().String()).
		Int("guesses", len(s.round.Guesses())).
		Int("incorrect_guesses", s.round.IncorrectGuessCount()).
		Msg("round finished")

	if s.recorder != nil {
		err := s.recorder.Record(ctx, stats.Result{
			Answer:           s.round.Answer(),
			Won:              s.round.Outcome() == hangman.Won,
			Guesses:          len(s.round.Guesses()),
			IncorrectGuesses: s.round.IncorrectGuessCount(),
			FinishedAt:       time.Now(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("record round")
		}
	}

	if s.saveName != "" {
		if err := s.saves.Delete(s.saveName); err != nil {
			log.Warn().Err(err).Str("save", s.saveName).Msg("remove finished save")
		}
		s.saveName = ""
	}
}

// fail marks the span as failed and passes err through.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
