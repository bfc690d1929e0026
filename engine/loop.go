package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/loc-idle/constants"
	"github.com/lixenwraith/loc-idle/game"
	"github.com/lixenwraith/loc-idle/input"
	"github.com/lixenwraith/loc-idle/render"
	"github.com/lixenwraith/loc-idle/status"
)

// Sound receives feedback for applied events
type Sound interface {
	PlayKeystroke()
	PlayCoin()
	PlayChime()
	ToggleMute() bool
	IsMuted() bool
}

// Loop drives the game from a ticker and terminal events
// Run's goroutine is the only writer of the game; the poller only forwards events
type Loop struct {
	screen       tcell.Screen
	game         *game.Game
	mapper       *input.Mapper
	sound        Sound
	reg          *status.Registry
	tickInterval time.Duration
	crash        func(any)

	// Cached metric pointers
	statTicks   *atomic.Int64
	statApplied *atomic.Int64
	statIgnored *atomic.Int64
	statDelta   *status.AtomicFloat
	statRender  *status.AtomicFloat
}

// NewLoop wires a loop; nil sound disables feedback, nil reg allocates a private registry
func NewLoop(screen tcell.Screen, g *game.Game, sound Sound, reg *status.Registry) *Loop {
	if sound == nil {
		sound = &nopSound{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loop{
		screen:       screen,
		game:         g,
		mapper:       input.NewMapper(),
		sound:        sound,
		reg:          reg,
		tickInterval: constants.TickInterval,
		statTicks:    reg.Ints.Get(status.TickCount),
		statApplied:  reg.Ints.Get(status.EventsApplied),
		statIgnored:  reg.Ints.Get(status.EventsIgnored),
		statDelta:    reg.Floats.Get(status.TickDeltaMs),
		statRender:   reg.Floats.Get(status.RenderMicros),
	}
}

// SetTickInterval overrides the tick cadence, must be called before Run
func (l *Loop) SetTickInterval(d time.Duration) {
	l.tickInterval = d
}

// SetCrashHandler installs the panic handler for the event poller goroutine
// The handler is expected to restore the terminal and exit
func (l *Loop) SetCrashHandler(fn func(any)) {
	l.crash = fn
}

// Run processes ticks and terminal events until ctx is done, the user quits,
// or the screen stops delivering events
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventBufferSize)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if l.crash == nil {
					panic(r)
				}
				l.crash(r)
			}
		}()
		l.screen.ChannelEvents(events, quit)
	}()

	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()

	l.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !l.Handle(ev) {
				return nil
			}

		case <-ticker.C:
			l.Step()
		}
	}
}

// Step applies one Tick and redraws
func (l *Loop) Step() {
	l.apply(game.Tick())
	l.statTicks.Add(1)
	dt := l.game.State().DeltaTime
	l.statDelta.Observe(float64(dt)/float64(time.Millisecond), constants.MetricSmoothing)
	l.draw()
}

// Handle applies one terminal event, returns false when the user quits
func (l *Loop) Handle(ev tcell.Event) bool {
	in := l.mapper.Map(ev)
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		l.sound.ToggleMute()
	case input.IntentResize:
		l.screen.Sync()
	case input.IntentGame:
		l.apply(in.Event)
	default:
		return true
	}
	// Input redraws immediately instead of waiting for the next tick
	l.draw()
	return true
}

// apply forwards e to the game and plays feedback for state changes
func (l *Loop) apply(e game.Event) {
	if !l.game.Update(e) {
		l.statIgnored.Add(1)
		return
	}
	l.statApplied.Add(1)

	switch e.Kind {
	case game.EventWriteCode:
		l.sound.PlayKeystroke()
	case game.EventHireCoder, game.EventAIHype:
		l.sound.PlayCoin()
	case game.EventUpgrade:
		l.sound.PlayChime()
	}
}

func (l *Loop) draw() {
	start := time.Now()
	snap := l.game.Snapshot()
	hits := render.Draw(l.screen, snap, render.Overlay{
		Muted:   l.sound.IsMuted(),
		Metrics: l.reg.Values(),
	})
	l.mapper.SetFrame(hits, snap)
	l.screen.Show()
	l.statRender.Observe(float64(time.Since(start).Microseconds()), constants.MetricSmoothing)
}

// nopSound stands in when audio is unavailable
type nopSound struct {
	muted bool
}

func (*nopSound) PlayKeystroke() {}
func (*nopSound) PlayCoin()      {}
func (*nopSound) PlayChime()     {}

func (n *nopSound) ToggleMute() bool {
	n.muted = !n.muted
	return !n.muted
}

func (n *nopSound) IsMuted() bool { return n.muted }
