package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/loc-idle/clock"
	"github.com/lixenwraith/loc-idle/config"
	"github.com/lixenwraith/loc-idle/game"
	"github.com/lixenwraith/loc-idle/render"
	"github.com/stretchr/testify/assert"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newGame() *game.Game {
	return game.NewGame(config.DefaultBalance(), clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMapKeyBindings(t *testing.T) {
	m := NewMapper()
	m.SetFrame(nil, newGame().Snapshot())

	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
	}{
		{"space writes", key(' '), gameIntent(game.WriteCode())},
		{"w writes", key('w'), gameIntent(game.WriteCode())},
		{"enter writes", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), gameIntent(game.WriteCode())},
		{"h hires", key('h'), gameIntent(game.HireCoder())},
		{"a hypes", key('a'), gameIntent(game.AIHype())},
		{"m mutes", key('m'), Intent{Type: IntentToggleMute}},
		{"q quits", key('q'), Intent{Type: IntentQuit}},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{"unbound rune", key('z'), Intent{}},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), Intent{}},
		{"resize", tcell.NewEventResize(80, 24), Intent{Type: IntentResize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Map(tt.ev))
		})
	}
}

func TestDigitsAddressVisibleUpgrades(t *testing.T) {
	g := newGame()
	for i := 0; i < 10; i++ {
		g.Update(game.WriteCode())
	}
	g.Update(game.UpgradeAt(int(game.UpgradeOpenNano)))

	m := NewMapper()
	m.SetFrame(nil, g.Snapshot())

	// Open nano is gone, slot 1 is now Drink Coffee
	assert.Equal(t, gameIntent(game.UpgradeAt(int(game.UpgradeDrinkCoffee))), m.Map(key('1')))
	assert.Equal(t, gameIntent(game.UpgradeAt(int(game.UpgradeSwitchToVim))), m.Map(key('3')))
	// Only three upgrades remain
	assert.Equal(t, Intent{}, m.Map(key('4')))
	assert.Equal(t, Intent{}, m.Map(key('9')))
}

func TestDigitsBeforeFirstFrame(t *testing.T) {
	m := NewMapper()
	assert.Equal(t, Intent{}, m.Map(key('1')))
}

func TestMouseClicksHitRegions(t *testing.T) {
	hits := []render.Hit{
		{Rect: render.Rect{X: 2, Y: 3, W: 12, H: 1}, Event: game.WriteCode(), Enabled: true},
		{Rect: render.Rect{X: 2, Y: 11, W: 9, H: 1}, Event: game.AIHype(), Enabled: false},
		{Rect: render.Rect{X: 60, Y: 6, W: 40, H: 3}, Event: game.UpgradeAt(2), Enabled: true},
	}
	m := NewMapper()
	m.SetFrame(hits, newGame().Snapshot())

	click := func(x, y int) Intent {
		return m.Map(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	}

	assert.Equal(t, gameIntent(game.WriteCode()), click(5, 3))
	assert.Equal(t, gameIntent(game.UpgradeAt(2)), click(99, 8))
	assert.Equal(t, Intent{}, click(4, 11), "disabled button must not fire")
	assert.Equal(t, Intent{}, click(0, 0), "click outside any button")

	release := tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone)
	assert.Equal(t, Intent{}, m.Map(release), "release must not fire")
}
