package input

import "github.com/lixenwraith/loc-idle/game"

// IntentType discriminates what a terminal event asks for
type IntentType uint8

const (
	IntentNone       IntentType = iota
	IntentGame                  // Forward Intent.Event to the game
	IntentQuit                  // q, Esc, Ctrl+C
	IntentToggleMute            // m
	IntentResize                // Terminal resize
)

// Intent is the result of mapping one terminal event
type Intent struct {
	Type  IntentType
	Event game.Event
}
