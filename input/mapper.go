package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/loc-idle/game"
	"github.com/lixenwraith/loc-idle/render"
)

// runeBindings maps plain keys to fixed game events
var runeBindings = map[rune]game.Event{
	' ': game.WriteCode(),
	'w': game.WriteCode(),
	'h': game.HireCoder(),
	'a': game.AIHype(),
}

// Mapper turns terminal events into intents
// Upgrade digits and clicks are resolved against the last drawn frame
type Mapper struct {
	hits    []render.Hit
	visible []int
}

// NewMapper creates a mapper with no frame
func NewMapper() *Mapper {
	return &Mapper{}
}

// SetFrame records the regions and visible upgrades of the latest frame
func (m *Mapper) SetFrame(hits []render.Hit, snap game.Snapshot) {
	m.hits = hits
	m.visible = snap.Upgrades.Visible()
}

// Map converts ev into an intent
func (m *Mapper) Map(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.mapKey(ev)
	case *tcell.EventMouse:
		return m.mapMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Mapper) mapKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		return gameIntent(game.WriteCode())
	case tcell.KeyRune:
	default:
		return Intent{}
	}

	r := ev.Rune()
	switch {
	case r == 'q':
		return Intent{Type: IntentQuit}
	case r == 'm':
		return Intent{Type: IntentToggleMute}
	case r >= '1' && r <= '9':
		// Digits address the n-th visible upgrade, never a raw catalog index
		slot := int(r - '1')
		if slot >= len(m.visible) {
			return Intent{}
		}
		return gameIntent(game.UpgradeAt(m.visible[slot]))
	}

	if e, ok := runeBindings[r]; ok {
		return gameIntent(e)
	}
	return Intent{}
}

func (m *Mapper) mapMouse(ev *tcell.EventMouse) Intent {
	if ev.Buttons()&tcell.Button1 == 0 {
		return Intent{}
	}
	x, y := ev.Position()
	for _, h := range m.hits {
		if h.Rect.Contains(x, y) {
			if !h.Enabled {
				return Intent{}
			}
			return gameIntent(h.Event)
		}
	}
	return Intent{}
}

func gameIntent(e game.Event) Intent {
	return Intent{Type: IntentGame, Event: e}
}
