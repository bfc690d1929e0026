package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/loc-idle/game"
	"github.com/lixenwraith/loc-idle/status"
	"github.com/shopspring/decimal"
)

// Hit maps a clickable region to the event it emits
type Hit struct {
	Rect    Rect
	Event   game.Event
	Enabled bool
}

// Overlay carries non-game state shown in the status line
type Overlay struct {
	Muted   bool
	Metrics map[string]float64
}

// Column geometry
const (
	marginX      = 2
	upgradeWidth = 46
	upgradeRows  = 3
	upgradeGap   = 1
)

// Help text shown in the status line
const helpText = "space write  h hire  a hype  1-9 upgrade  m mute  q quit"

// Draw renders snap onto s and returns the frame's clickable regions
// The caller owns Show
func Draw(s tcell.Screen, snap game.Snapshot, ov Overlay) []Hit {
	w, h := s.Size()
	s.SetStyle(StyleBase)
	s.Clear()

	mid := w / 2
	hits := make([]Hit, 0, 3+len(snap.Upgrades))
	hits = drawLeft(s, snap, marginX, mid, hits)
	hits = drawRight(s, snap, mid+marginX, w-marginX, hits)
	drawStatusLine(s, w, h, ov)
	return hits
}

func drawLeft(s tcell.Screen, snap game.Snapshot, x, maxX int, hits []Hit) []Hit {
	y := 1
	drawText(s, x, y, maxX, StyleBold, "Lines of Code: "+whole(snap.LOCs))
	y += 2
	r := drawButton(s, x, y, maxX, "Write Code", true)
	hits = append(hits, Hit{Rect: r, Event: game.WriteCode(), Enabled: true})
	y += 3

	y = drawHeader(s, x, y, maxX, "Business")
	drawText(s, x, y, maxX, StyleBase, "Available Funds:    $ "+money(snap.AvailableFunds))
	drawText(s, x, y+1, maxX, StyleBase, "Price per LOC:      $ "+money(snap.LOCPrice))
	drawText(s, x, y+2, maxX, StyleBase, "Revenue per second: $ "+money(snap.RevenuePerSec()))
	y += 4

	canHype := snap.CanBuyAIHype()
	r = drawButton(s, x, y, maxX, "AI Hype", canHype)
	hits = append(hits, Hit{Rect: r, Event: game.AIHype(), Enabled: canHype})
	drawText(s, r.X+r.W+2, y, maxX, StyleBase, "Level: "+whole(snap.AIHype))
	drawText(s, x, y+1, maxX, StyleDim, "Cost: $ "+money(snap.AIHypeCost))
	y += 3

	y = drawHeader(s, x, y, maxX, "Development")
	drawText(s, x, y, maxX, StyleBase, "LOC/s: "+money(snap.LOCPerSec))
	y += 2

	canHire := snap.CanHireCoder()
	r = drawButton(s, x, y, maxX, "Hire Coder", canHire)
	hits = append(hits, Hit{Rect: r, Event: game.HireCoder(), Enabled: canHire})
	drawText(s, r.X+r.W+2, y, maxX, StyleBase, whole(snap.Coders))
	drawText(s, x, y+1, maxX, StyleDim, "Cost: $ "+money(snap.CoderCost))

	return hits
}

func drawRight(s tcell.Screen, snap game.Snapshot, x, maxX int, hits []Hit) []Hit {
	drawTextRight(s, x, 0, maxX, StyleDim, fmt.Sprintf("%.0f FPS", snap.FPS()))

	y := drawHeader(s, x, 1, maxX, "Upgrades")
	drawText(s, x, y, maxX, StyleBase, "Coder Level: "+whole(snap.CoderLevel))
	y += 2

	boxMax := x + upgradeWidth
	if boxMax > maxX {
		boxMax = maxX
	}

	for n, idx := range snap.Upgrades.Visible() {
		u := snap.Upgrades[idx]
		enabled := snap.CanUpgrade(idx)
		r := drawUpgrade(s, x, y, boxMax, n+1, u.Def, enabled)
		hits = append(hits, Hit{Rect: r, Event: game.UpgradeAt(idx), Enabled: enabled})
		y += upgradeRows + upgradeGap
	}
	return hits
}

// drawUpgrade draws a three-row upgrade card: title, description, requirement
func drawUpgrade(s tcell.Screen, x, y, maxX, slot int, def game.UpgradeDef, enabled bool) Rect {
	r := Rect{X: x, Y: y, W: maxX - x, H: upgradeRows}
	style := StyleButtonOff
	if enabled {
		style = StyleButton
	}
	fill(s, r, style)

	title := fmt.Sprintf(" %d  %s", slot, def.Name)
	drawText(s, x, y, maxX, style.Bold(true), title)
	drawText(s, x+1, y+1, maxX, style.Bold(false), def.Description)
	drawTextRight(s, x, y+2, maxX-1, style.Bold(false), def.Required)
	return r
}

func drawStatusLine(s tcell.Screen, w, h int, ov Overlay) {
	y := h - 1
	fill(s, Rect{Y: y, W: w, H: 1}, StyleStatus)

	x := 0
	if ov.Muted {
		x = drawText(s, x, y, w, StyleAudioMuted, " MUTED ")
	} else {
		x = drawText(s, x, y, w, StyleAudioOn, " SOUND ")
	}

	m := ov.Metrics
	stats := fmt.Sprintf(" ticks %.0f  events %.0f/%.0f  render %.0fµs ",
		m[status.TickCount], m[status.EventsApplied], m[status.EventsIgnored], m[status.RenderMicros])
	x = drawText(s, x, y, w, StyleStatus, stats)
	drawTextRight(s, x, y, w, StyleStatus, helpText+" ")
}

// whole formats a quantity rounded to an integer
func whole(d decimal.Decimal) string {
	return d.Round(0).String()
}

// money formats a quantity with two decimals
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
