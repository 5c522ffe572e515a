package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/answer"
	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/game/constants"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/google/uuid"
)

// Session owns the lifecycle of the current round. All methods are safe for
// concurrent use; state changes are serialized by a single mutex so a round
// can only ever be won once.
type Session struct {
	provider countries.Provider
	clock    Clock
	notifier Notifier
	audio    AudioSink
	recorder Recorder

	mu          sync.Mutex
	mode        types.Mode
	state       types.State
	round       *Round
	timer       Timer
	generation  uint64
	starting    int
	welcomed    bool
	lastOutcome *types.Outcome
	lastStats   *stats.Stats
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	Provider countries.Provider
	Clock    Clock
	Notifier Notifier
	Audio    AudioSink
	Recorder Recorder
	// Mode is the initial game mode. Defaults to normal.
	Mode types.Mode
}

func NewSession(opts NewSessionOptions) *Session {
	s := &Session{
		provider: opts.Provider,
		clock:    opts.Clock,
		notifier: opts.Notifier,
		audio:    opts.Audio,
		recorder: opts.Recorder,
		mode:     opts.Mode,
		state:    types.StateInitial,
	}
	if s.clock == nil {
		s.clock = SystemClock()
	}
	if s.notifier == nil {
		s.notifier = noopNotifier{}
	}
	if s.audio == nil {
		s.audio = noopAudio{}
	}
	if s.mode == "" {
		s.mode = types.ModeNormal
	}
	return s
}

// effects collects sink calls made while the lock is held so they can run after it is released.
type effects struct {
	notes   []func()
	outcome *types.Outcome
	roundID uuid.UUID
}

func (e *effects) notify(n Notifier, kind NotificationKind, msg string) {
	e.notes = append(e.notes, func() { n.Notify(kind, msg) })
}

func (e *effects) play(a AudioSink, cue Cue) {
	e.notes = append(e.notes, func() { a.Play(cue) })
}

func (s *Session) run(fx *effects) {
	for _, f := range fx.notes {
		f()
	}
	if fx.outcome != nil {
		s.record(fx.roundID, *fx.outcome)
	}
}

// StartNewGame deals a fresh round for mode and enters the playing state. If
// the provider fails or returns an invalid set, the current state and mode are
// kept and the error is returned.
func (s *Session) StartNewGame(ctx context.Context, mode types.Mode) error {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.starting++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.starting--
		s.mu.Unlock()
	}()

	count := mode.CardCount()
	list, err := s.provider.GetRandomCountries(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to get countries: %w", err)
	}
	if err := countries.Validate(list, count); err != nil {
		return &ErrNotEnoughCountries{Mode: mode, Err: err}
	}

	fx := &effects{}
	s.mu.Lock()
	if generation != s.generation {
		// a later StartNewGame call has taken over
		s.mu.Unlock()
		return nil
	}
	s.stopTimerLocked()
	s.mode = mode
	s.round = newRound(mode, list, s.clock.Now())
	s.state = types.StatePlaying
	s.lastOutcome = nil
	s.lastStats = nil
	if mode.Timed() {
		roundID := s.round.ID
		s.timer = s.clock.AfterFunc(constants.HardModeDuration, func() {
			s.expire(roundID)
		})
	}
	if !s.welcomed {
		s.welcomed = true
		fx.notify(s.notifier, NotificationInfo, MessageWelcome)
	}
	fx.notify(s.notifier, NotificationSuccess, MessageNewGame)
	fx.play(s.audio, CueStart)
	log.Debug("Started %s round %s with %d countries", mode, s.round.ID, count)
	s.mu.Unlock()

	s.run(fx)
	return nil
}

// SubmitAnswer routes a guess for countryID through the evaluator. The bool
// result is false when the input was rejected without touching state: the
// session is not playing, the card is unknown or already solved, or text is blank.
func (s *Session) SubmitAnswer(countryID int, text string) (types.Verdict, bool) {
	fx := &effects{}
	s.mu.Lock()
	if s.state != types.StatePlaying {
		s.mu.Unlock()
		return types.VerdictNone, false
	}
	card := s.round.card(countryID)
	if card == nil || card.Solved || strings.TrimSpace(text) == "" {
		s.mu.Unlock()
		return types.VerdictNone, false
	}

	var verdict types.Verdict
	if answer.Evaluate(card.Country, text) {
		verdict = types.VerdictCorrect
		card.Solved = true
		s.round.Score += constants.PointsPerCorrectAnswer
		s.round.RemainingCount--
		s.round.CorrectCount++
		fx.notify(s.notifier, NotificationSuccess, MessageCorrect)
		fx.play(s.audio, CueCorrect)
		if s.round.RemainingCount == 0 {
			s.endLocked(fx)
		}
	} else {
		verdict = types.VerdictIncorrect
		if s.round.Mode == types.ModeHard {
			s.round.Score = max(0, s.round.Score-s.round.Mode.Penalty())
			s.round.IncorrectCount++
			fx.notify(s.notifier, NotificationError, MessageIncorrect)
			fx.play(s.audio, CueIncorrect)
		}
	}
	card.LastVerdict = verdict
	s.mu.Unlock()

	s.run(fx)
	return verdict, true
}

// EndGame ends the current round. It is a win only if every card was solved.
func (s *Session) EndGame() {
	fx := &effects{}
	s.mu.Lock()
	if s.state != types.StatePlaying {
		s.mu.Unlock()
		return
	}
	s.endLocked(fx)
	s.mu.Unlock()

	s.run(fx)
}

func (s *Session) expire(roundID uuid.UUID) {
	fx := &effects{}
	s.mu.Lock()
	if s.state != types.StatePlaying || s.round == nil || s.round.ID != roundID {
		s.mu.Unlock()
		log.Debug("Ignoring stale timer for round %s", roundID)
		return
	}
	log.Debug("Round %s timed out", roundID)
	s.endLocked(fx)
	s.mu.Unlock()

	s.run(fx)
}

func (s *Session) endLocked(fx *effects) {
	s.stopTimerLocked()
	now := s.clock.Now()
	s.round.EndedAt = now
	outcome := s.round.outcome(now)
	s.round.Won = outcome.Won
	s.state = types.StateGameOver
	s.lastOutcome = &outcome
	fx.outcome = &outcome
	fx.roundID = s.round.ID
	if outcome.Won {
		fx.notify(s.notifier, NotificationSuccess, MessageVictory)
		fx.play(s.audio, CueVictory)
	} else {
		fx.notify(s.notifier, NotificationError, MessageGameOver)
		fx.play(s.audio, CueGameOver)
	}
	log.Info("Round %s over: mode=%s score=%d won=%t elapsed=%.1fs", s.round.ID, outcome.Mode, outcome.Score, outcome.Won, outcome.ElapsedSeconds)
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// record folds outcome into the stats. The result is kept for Snapshot only
// while roundID is still the current round.
func (s *Session) record(roundID uuid.UUID, outcome types.Outcome) {
	if s.recorder == nil {
		return
	}
	updated, err := s.recorder.RecordRound(context.Background(), outcome)
	if err != nil {
		log.Error("Failed to record round: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil || s.round.ID != roundID {
		log.Debug("Dropping stats of superseded round %s", roundID)
		return
	}
	s.lastStats = updated
}

// SetMode switches the game mode. Once a round has been dealt, switching
// deals a new round in the new mode and the mode only changes if that
// succeeds. Before the first round the mode is recorded, and a deal already
// in flight is replaced by one in the new mode.
func (s *Session) SetMode(ctx context.Context, mode types.Mode) error {
	s.mu.Lock()
	if s.round != nil {
		current := s.round.Mode
		s.mu.Unlock()
		if mode == current {
			return nil
		}
		return s.StartNewGame(ctx, mode)
	}
	s.mode = mode
	inFlight := s.starting > 0
	s.mu.Unlock()

	if !inFlight {
		return nil
	}
	return s.StartNewGame(ctx, mode)
}

// Hint returns the hint for an unsolved card in the current round.
func (s *Session) Hint(countryID int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != types.StatePlaying {
		return "", false
	}
	card := s.round.card(countryID)
	if card == nil || card.Solved {
		return "", false
	}
	card.HintShown = true
	return HintText(card.Country), true
}

// MarkRevealed records that a card's scratch overlay was completed. Calls for
// a previous round or outside of play are ignored.
func (s *Session) MarkRevealed(key types.CardKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != types.StatePlaying || s.round.ID != key.RoundID {
		return false
	}
	card := s.round.card(key.CountryID)
	if card == nil {
		return false
	}
	card.Revealed = true
	return true
}

// TimeLeft is the remaining countdown for a timed round in play, zero otherwise.
func (s *Session) TimeLeft() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeLeftLocked()
}

func (s *Session) timeLeftLocked() time.Duration {
	if s.state != types.StatePlaying || !s.round.Mode.Timed() {
		return 0
	}
	left := constants.HardModeDuration - s.clock.Now().Sub(s.round.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Snapshot is a point-in-time copy of the session for rendering.
type Snapshot struct {
	Mode     types.Mode
	State    types.State
	Round    *Round
	TimeLeft time.Duration
	// Outcome is set once the current round is over.
	Outcome *types.Outcome
	// Stats is the most recent stats snapshot returned by the recorder.
	Stats *stats.Stats
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Mode:     s.mode,
		State:    s.state,
		TimeLeft: s.timeLeftLocked(),
		Stats:    s.lastStats,
	}
	if s.round != nil {
		snap.Round = s.round.clone()
	}
	if s.lastOutcome != nil {
		outcome := *s.lastOutcome
		snap.Outcome = &outcome
	}
	return snap
}

func (s *Session) State() types.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Mode() types.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

type ErrNotEnoughCountries struct {
	Mode types.Mode
	Err  error
}

func (e *ErrNotEnoughCountries) Error() string {
	return fmt.Sprintf("not enough distinct countries for %s mode: %v", e.Mode, e.Err)
}

func (e *ErrNotEnoughCountries) Unwrap() error {
	return e.Err
}
