package game

import "fmt"

// EventKind discriminates the closed set of game inputs
type EventKind uint8

const (
	EventTick      EventKind = iota // Timer cadence, advances idle production
	EventWriteCode                  // Manual click, one line
	EventHireCoder                  // Buy one coder
	EventUpgrade                    // Buy catalog upgrade at Event.Index
	EventAIHype                     // Buy one hype level
)

// Event is one input to Game.Update
// Index is meaningful only for EventUpgrade
type Event struct {
	Kind  EventKind
	Index int
}

// Constructors for each event kind
func Tick() Event               { return Event{Kind: EventTick} }
func WriteCode() Event          { return Event{Kind: EventWriteCode} }
func HireCoder() Event          { return Event{Kind: EventHireCoder} }
func AIHype() Event             { return Event{Kind: EventAIHype} }
func UpgradeAt(index int) Event { return Event{Kind: EventUpgrade, Index: index} }

func (e Event) String() string {
	switch e.Kind {
	case EventTick:
		return "Tick"
	case EventWriteCode:
		return "WriteCode"
	case EventHireCoder:
		return "HireCoder"
	case EventUpgrade:
		return fmt.Sprintf("Upgrade(%d)", e.Index)
	case EventAIHype:
		return "AIHype"
	default:
		return fmt.Sprintf("Event(%d)", e.Kind)
	}
}
