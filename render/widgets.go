package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// drawText writes text at (x, y) clipped to maxX, returns the next free column
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawTextRight writes text so it ends at maxX
func drawTextRight(s tcell.Screen, minX, y, maxX int, style tcell.Style, text string) {
	x := maxX - runewidth.StringWidth(text)
	if x < minX {
		x = minX
	}
	drawText(s, x, y, maxX, style, text)
}

// fill paints r with spaces in style
func fill(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawHeader writes a section title with an underline, returns the row after it
func drawHeader(s tcell.Screen, x, y, maxX int, title string) int {
	drawText(s, x, y, maxX, StyleBold, title)
	for cx := x; cx < maxX; cx++ {
		s.SetContent(cx, y+1, '─', nil, StyleRule)
	}
	return y + 3
}

// drawButton draws a one-line labelled button and returns its region
func drawButton(s tcell.Screen, x, y, maxX int, label string, enabled bool) Rect {
	style := StyleButtonOff
	if enabled {
		style = StyleButton
	}
	text := " " + label + " "
	w := runewidth.StringWidth(text)
	if x+w > maxX {
		w = maxX - x
	}
	r := Rect{X: x, Y: y, W: w, H: 1}
	fill(s, r, style)
	drawText(s, x, y, x+w, style, text)
	return r
}
