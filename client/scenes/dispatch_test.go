package scenes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/flagmaster/client/ui"
	mocks "github.com/cbodonnell/flagmaster/mocks/github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/queue"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCountries = []countries.Country{
	{ID: 1, Name: "France", Continent: "Europe", NameLength: 6},
	{ID: 2, Name: "Japan", AlternativeNames: []string{"Nippon"}, Continent: "Asia", NameLength: 5},
	{ID: 3, Name: "Brazil", AlternativeNames: []string{"Brasil"}, Continent: "South America", NameLength: 6},
	{ID: 4, Name: "Kenya", Continent: "Africa", NameLength: 5},
}

type recordedAudio struct {
	mu   sync.Mutex
	cues []game.Cue
}

func (a *recordedAudio) Play(cue game.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cues = append(a.cues, cue)
}

type dispatchHarness struct {
	session  *game.Session
	events   *queue.InMemoryQueue[messages.Event]
	audio    *recordedAudio
	d        *dispatcher
	toasts   []string
	verdicts map[int]types.Verdict
	hints    map[int]string
	failures []error
}

func newDispatchHarness(t *testing.T, provider countries.Provider) *dispatchHarness {
	h := &dispatchHarness{
		events:   queue.NewInMemoryQueue[messages.Event](64),
		audio:    &recordedAudio{},
		verdicts: make(map[int]types.Verdict),
		hints:    make(map[int]string),
	}
	h.session = game.NewSession(game.NewSessionOptions{
		Provider: provider,
		Recorder: stats.NewAggregator(nil),
	})
	h.d = &dispatcher{
		session: h.session,
		events:  h.events,
		audio:   h.audio,
		onToast: func(kind, message string) {
			h.toasts = append(h.toasts, kind+":"+message)
		},
		onVerdict: func(countryID int, verdict types.Verdict) {
			h.verdicts[countryID] = verdict
		},
		onHint: func(countryID int, hint string) {
			h.hints[countryID] = hint
		},
		onStartFailed: func(err error) {
			h.failures = append(h.failures, err)
		},
	}
	return h
}

func TestDispatcher_roundFlow(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().GetRandomCountries(mock.Anything, 4).Return(testCountries, nil)
	h := newDispatchHarness(t, provider)

	require.NoError(t, h.session.StartNewGame(context.Background(), types.ModeNormal))
	roundID := h.session.Snapshot().Round.ID

	h.d.enqueue(messages.EventTypeSubmitAnswer, &messages.SubmitAnswer{CountryID: 1, Text: "france"})
	h.d.enqueue(messages.EventTypeSubmitAnswer, &messages.SubmitAnswer{CountryID: 2, Text: "china"})
	h.d.enqueue(messages.EventTypeSubmitAnswer, &messages.SubmitAnswer{CountryID: 1, Text: "france"})
	h.d.enqueue(messages.EventTypeHint, &messages.CardRef{Key: types.CardKey{RoundID: roundID, CountryID: 3}})
	h.d.enqueue(messages.EventTypeScratchComplete, &messages.CardRef{Key: types.CardKey{RoundID: roundID, CountryID: 4}})
	h.d.enqueue(messages.EventTypeToast, &messages.Toast{Kind: "info", Message: "hello"})
	h.d.enqueue(messages.EventTypeCue, &messages.Cue{Name: string(game.CueCorrect)})
	h.d.drain()

	assert.Equal(t, map[int]types.Verdict{1: types.VerdictCorrect, 2: types.VerdictIncorrect}, h.verdicts)
	assert.Equal(t, map[int]string{3: "First letter: B, Length: 6, Continent: South America"}, h.hints)
	assert.Equal(t, []string{"info:hello"}, h.toasts)
	assert.Equal(t, []game.Cue{game.CueCorrect}, h.audio.cues)

	snap := h.session.Snapshot()
	assert.Equal(t, 25, snap.Round.Score)
	for _, card := range snap.Round.Cards {
		assert.Equal(t, card.Key.CountryID == 4, card.Revealed, card.Country.Name)
	}

	h.d.enqueue(messages.EventTypeEndGame, nil)
	h.d.drain()
	assert.Equal(t, types.StateGameOver, h.session.State())
}

func TestDispatcher_startFailed(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().GetRandomCountries(mock.Anything, 4).Return(nil, errors.New("offline"))
	h := newDispatchHarness(t, provider)

	h.d.startAsync(types.ModeNormal, false)
	require.Eventually(t, func() bool {
		return h.events.Size() == 1
	}, 5*time.Second, 10*time.Millisecond)

	h.d.drain()
	require.Len(t, h.failures, 1)
	assert.Equal(t, startFailedMessage, ui.UserMessage(h.failures[0], ""))
	assert.Equal(t, []string{"error:" + startFailedMessage}, h.toasts)
	assert.Equal(t, types.StateInitial, h.session.State())
}

func TestDispatcher_changeMode(t *testing.T) {
	provider := mocks.NewProvider(t)
	provider.EXPECT().GetRandomCountries(mock.Anything, 4).Return(testCountries, nil).Once()
	hard := append(append([]countries.Country(nil), testCountries...),
		countries.Country{ID: 5, Name: "Peru", Continent: "South America", NameLength: 4},
		countries.Country{ID: 6, Name: "Fiji", Continent: "Oceania", NameLength: 4},
	)
	provider.EXPECT().GetRandomCountries(mock.Anything, 6).Return(hard, nil).Once()
	h := newDispatchHarness(t, provider)

	require.NoError(t, h.session.StartNewGame(context.Background(), types.ModeNormal))
	h.d.enqueue(messages.EventTypeChangeMode, &messages.ChangeMode{Mode: types.ModeHard})
	h.d.drain()

	require.Eventually(t, func() bool {
		snap := h.session.Snapshot()
		return snap.Round != nil && snap.Round.Mode == types.ModeHard
	}, 5*time.Second, 10*time.Millisecond)
	h.session.EndGame()
}

func TestRules(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 5)
	assert.Contains(t, rules[2], "4 flags")
	assert.Contains(t, rules[3], "6 flags in 180 seconds")
}

func TestSummary(t *testing.T) {
	s := stats.Baseline().Apply(types.Outcome{Mode: types.ModeNormal, Score: 100, CorrectCount: 4, ElapsedSeconds: 30.5, Won: true})

	headline, lines := Summary(types.Outcome{Mode: types.ModeNormal, Score: 100, CorrectCount: 4, ElapsedSeconds: 30.5, Won: true}, s)
	assert.Equal(t, game.MessageVictory, headline)
	assert.Equal(t, []string{
		"Score: 100 (4 correct, 0 incorrect) in 30.5s",
		"Normal mode: 1 games played, high score 100, total score 100",
		"Answers: 4 correct, 0 incorrect. Fastest game: 30.5s",
	}, lines)

	headline, _ = Summary(types.Outcome{Mode: types.ModeHard}, stats.Baseline())
	assert.Equal(t, game.MessageGameOver, headline)
}
