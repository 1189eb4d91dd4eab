// Package game implements the reaction-game core: the per-stage countdown
// timer, the difficulty timing table, and the state machine that walks a
// session from difficulty selection through ten stages to the high-score
// table. The core is pure tick-driven logic; sensors arrive as classified
// events and all output leaves through the Sink contract.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paw-chaos/internal/config"
	"github.com/vovakirdan/paw-chaos/internal/gesture"
	"github.com/vovakirdan/paw-chaos/internal/hal"
	"github.com/vovakirdan/paw-chaos/internal/input"
	"github.com/vovakirdan/paw-chaos/internal/score"
)

// State identifies where the machine is in the session flow.
type State int

const (
	StateSplash State = iota
	StateDifficultySelect
	StateCountdown
	StateAwaitingAction
	StateStageCleared
	StateGameOver
	StateWin
	StateScoreEntry
	StateHighScores
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateDifficultySelect:
		return "difficulty_select"
	case StateCountdown:
		return "countdown"
	case StateAwaitingAction:
		return "awaiting_action"
	case StateStageCleared:
		return "stage_cleared"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	case StateScoreEntry:
		return "score_entry"
	case StateHighScores:
		return "high_scores"
	default:
		return "unknown"
	}
}

// Sink receives display, LED and buzzer commands. Commands are
// fire-and-forget; the sink produces no feedback into the core.
type Sink interface {
	ShowPrompt(action gesture.Action, remaining time.Duration)
	ShowMessage(lines ...string)
	SetIndicator(c hal.Color)
	PlayTone(freqHz int, dur time.Duration)
}

// NopSink discards all commands.
type NopSink struct{}

func (NopSink) ShowPrompt(gesture.Action, time.Duration) {}
func (NopSink) ShowMessage(...string)                    {}
func (NopSink) SetIndicator(hal.Color)                   {}
func (NopSink) PlayTone(int, time.Duration)              {}

// ScoreTable is the high-score table the machine consults at game end.
type ScoreTable interface {
	Qualifies(score int) bool
	Submit(initials string, score int) error
	Entries() []score.Entry
}

// Session is the transient state of one game, created at game start and
// discarded when the machine returns to difficulty selection.
type Session struct {
	Difficulty Difficulty
	Stage      int
	Prompt     gesture.Action
	Score      int
}

// Game is the state machine. All state is owned by the caller's tick
// loop; nothing here is safe for concurrent use.
type Game struct {
	cfg    config.Config
	sink   Sink
	scores ScoreTable
	logger *log.Logger
	rng    *rand.Rand

	state   State
	session Session
	timer   StageTimer
	win     bool

	diffCursor int
	hold       int

	hasPrompted bool
	lastPrompt  gesture.Action

	initials [3]byte
	slot     int
	letter   int
}

// New creates a machine in the splash state. A nil logger discards; the
// seed makes prompt selection reproducible.
func New(cfg config.Config, sink Sink, scores ScoreTable, logger *log.Logger, seed int64) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:    cfg,
		sink:   sink,
		scores: scores,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.enterSplash()
	return g
}

// State returns the current machine state.
func (g *Game) State() State {
	return g.state
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	return g.session
}

// Tick advances the machine by one tick: dt is the measured inter-tick
// delta, ev the debounced sensor events, and action the classified
// gesture when detected is true.
func (g *Game) Tick(dt time.Duration, ev input.Events, action gesture.Action, detected bool) {
	switch g.state {
	case StateSplash:
		g.tickSplash()
	case StateDifficultySelect:
		g.tickDifficultySelect(ev)
	case StateCountdown:
		g.tickCountdown()
	case StateAwaitingAction:
		g.tickAwaiting(dt, action, detected)
	case StateStageCleared:
		g.tickStageCleared()
	case StateGameOver, StateWin:
		g.tickEndScreen(ev)
	case StateScoreEntry:
		g.tickScoreEntry(ev)
	case StateHighScores:
		g.tickHighScores(ev)
	}
}

// --- Splash ---

func (g *Game) enterSplash() {
	g.state = StateSplash
	g.hold = g.cfg.Flow.SplashTicks
	if g.hold < 1 {
		g.hold = 1
	}
	// Opening frame; the tick handler takes over with the rainbow cycle.
	g.sink.SetIndicator(hal.ColorSplash)
}

func (g *Game) tickSplash() {
	total := g.cfg.Flow.SplashTicks
	if total < 1 {
		total = 1
	}
	elapsed := total - g.hold

	// Typewriter title, then the cat, with the LED cycling the rainbow.
	title := "PAW CHAOS"
	reveal := len(title) * (elapsed + 1) / total
	if reveal > len(title) {
		reveal = len(title)
	}
	g.sink.ShowMessage(title[:reveal], "", " ^._.^ ")
	g.sink.SetIndicator(hal.Rainbow[(elapsed/10)%len(hal.Rainbow)])

	g.hold--
	if g.hold <= 0 {
		for _, f := range []int{700, 800, 900, 750} {
			g.sink.PlayTone(f, 80*time.Millisecond)
		}
		g.enterDifficultySelect()
	}
}

// --- Difficulty selection ---

func (g *Game) enterDifficultySelect() {
	g.state = StateDifficultySelect
	g.session = Session{}
	g.sink.SetIndicator(hal.ColorOff)
}

func (g *Game) tickDifficultySelect(ev input.Events) {
	for _, step := range ev.Steps {
		if step == input.StepCW {
			g.diffCursor = (g.diffCursor + 1) % DifficultyCount
		} else {
			g.diffCursor = (g.diffCursor + DifficultyCount - 1) % DifficultyCount
		}
	}

	g.sink.ShowMessage(
		"Select Difficulty:",
		"> "+Difficulty(g.diffCursor).String(),
		"",
		"Press to Start",
	)

	if ev.ButtonDown {
		g.sink.PlayTone(g.cfg.Audio.Confirm, 100*time.Millisecond)
		g.session = Session{Difficulty: Difficulty(g.diffCursor), Stage: 1}
		g.win = false
		g.enterCountdown()
	}
}

// --- Countdown and stage play ---

func (g *Game) enterCountdown() {
	p := gesture.Action(g.rng.Intn(gesture.ActionCount))
	for g.hasPrompted && p == g.lastPrompt {
		// Never prompt the same action twice in a row.
		p = gesture.Action(g.rng.Intn(gesture.ActionCount))
	}
	g.session.Prompt = p
	g.lastPrompt = p
	g.hasPrompted = true

	g.state = StateCountdown
	g.hold = g.cfg.Flow.PromptTicks
	if g.hold < 1 {
		g.hold = 1
	}
	g.sink.SetIndicator(hal.ColorWaiting)
	g.sink.ShowMessage(
		fmt.Sprintf("Stage %d/%d", g.session.Stage, StageCount),
		"",
		"Do: "+p.String(),
	)
}

func (g *Game) tickCountdown() {
	g.hold--
	if g.hold <= 0 {
		g.timer.Start(Limit(g.cfg.Stages, g.session.Difficulty, g.session.Stage))
		g.state = StateAwaitingAction
	}
}

func (g *Game) tickAwaiting(dt time.Duration, action gesture.Action, detected bool) {
	// Expiry is checked before this tick's action: an action arriving on
	// or after the expiry tick is too late.
	expired := g.timer.Advance(dt)
	g.sink.SetIndicator(hal.ColorWaiting)
	g.sink.ShowPrompt(g.session.Prompt, g.timer.Remaining())

	if expired {
		g.fail()
		return
	}
	if !detected {
		return
	}
	if action == g.session.Prompt {
		g.clearStage(action)
	} else {
		// Wrong action fails the stage, it is not ignored.
		g.fail()
	}
}

func (g *Game) clearStage(action gesture.Action) {
	pts := points(g.cfg.Scoring, g.session.Stage, g.timer.Remaining(), g.timer.Limit())
	g.session.Score += pts

	g.sink.SetIndicator(hal.ColorSuccess)
	g.sink.PlayTone(g.clearTone(action), 100*time.Millisecond)
	g.sink.ShowMessage(
		fmt.Sprintf("Stage %d clear!", g.session.Stage),
		fmt.Sprintf("+%d", pts),
	)

	g.state = StateStageCleared
	g.hold = g.cfg.Flow.ClearedTicks
	if g.hold < 1 {
		g.hold = 1
	}
}

func (g *Game) tickStageCleared() {
	g.hold--
	if g.hold <= 0 {
		if g.session.Stage >= StageCount {
			g.win = true
			g.enterEnd()
			return
		}
		g.session.Stage++
		g.enterCountdown()
	}
}

func (g *Game) fail() {
	g.win = false
	g.sink.SetIndicator(hal.ColorFail)
	g.sink.PlayTone(g.cfg.Audio.Fail, 150*time.Millisecond)
	g.enterEnd()
}

func (g *Game) clearTone(action gesture.Action) int {
	switch action {
	case gesture.ActionPaw:
		return g.cfg.Audio.Paw
	case gesture.ActionTailLeft:
		return g.cfg.Audio.TailLeft
	case gesture.ActionTailRight:
		return g.cfg.Audio.TailRight
	case gesture.ActionShake:
		return g.cfg.Audio.Shake
	default:
		return g.cfg.Audio.Flip
	}
}

// --- End screens ---

func (g *Game) enterEnd() {
	if g.win {
		g.state = StateWin
		g.sink.SetIndicator(hal.ColorClear)
		g.sink.PlayTone(g.cfg.Audio.Confirm+100, 100*time.Millisecond)
		g.sink.PlayTone(g.cfg.Audio.Win, 100*time.Millisecond)
		g.sink.ShowMessage("YOU WIN!", fmt.Sprintf("Score: %d", g.session.Score), "", "Press to continue")
	} else {
		g.state = StateGameOver
		g.sink.ShowMessage("GAME OVER", fmt.Sprintf("Score: %d", g.session.Score), "", "Press to continue")
	}
}

func (g *Game) tickEndScreen(ev input.Events) {
	if !ev.ButtonDown {
		return
	}
	g.sink.PlayTone(g.cfg.Audio.Confirm, 100*time.Millisecond)
	if g.scores.Qualifies(g.session.Score) {
		g.enterScoreEntry()
	} else {
		g.enterHighScores()
	}
}

// --- Initials entry ---

func (g *Game) enterScoreEntry() {
	g.state = StateScoreEntry
	g.initials = [3]byte{'A', 'A', 'A'}
	g.slot = 0
	g.letter = 0
}

func (g *Game) tickScoreEntry(ev input.Events) {
	for _, step := range ev.Steps {
		if step == input.StepCW {
			g.letter = (g.letter + 1) % 26
		} else {
			g.letter = (g.letter + 25) % 26
		}
	}
	g.initials[g.slot] = byte('A' + g.letter)

	g.sink.ShowMessage(
		"NEW HIGH SCORE!",
		"",
		"Name: "+string(g.initials[:]),
		"",
		fmt.Sprintf("Choose Letter %d/3", g.slot+1),
	)

	if ev.ButtonDown {
		g.sink.PlayTone(g.cfg.Audio.Confirm, 100*time.Millisecond)
		g.slot++
		g.letter = 0
		if g.slot >= 3 {
			// Single synchronous write attempt; a failure is logged and
			// the session result is still shown.
			if err := g.scores.Submit(string(g.initials[:]), g.session.Score); err != nil {
				g.logger.Warn("could not save high score", "error", err)
			}
			g.enterHighScores()
		}
	}
}

// --- High-score display ---

func (g *Game) enterHighScores() {
	g.state = StateHighScores

	lines := []string{"HIGH SCORES:"}
	for i, e := range g.scores.Entries() {
		lines = append(lines, fmt.Sprintf("%d. %s  %d", i+1, e.Initials, e.Score))
	}
	lines = append(lines, "", "Press to continue")
	g.sink.ShowMessage(lines...)
	g.sink.SetIndicator(hal.ColorOff)
}

func (g *Game) tickHighScores(ev input.Events) {
	if ev.ButtonDown {
		g.enterDifficultySelect()
	}
}
