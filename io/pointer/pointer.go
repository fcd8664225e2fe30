// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements mouse events and the state of the
// mouse buttons.
package pointer

import (
	"larkui.org/f32"
	"larkui.org/io/event"
)

// Event is a raw mouse event delivered by the platform.
type Event struct {
	Kind Kind
	// Button identifies the pressed or released button. It is
	// meaningful only for Press and Release events.
	Button Button
	// Position is the absolute position of the mouse in window
	// coordinates. It is meaningful only for Move events.
	Position f32.Point
}

// CaptureEvent is generated when a widget claims the mouse, or
// releases its claim. While captured, every mouse event is routed to
// the capturing widget.
type CaptureEvent struct {
	// Tag identifies the widget making or releasing the claim.
	Tag event.Tag
	// Captured is true when the claim is made, false when released.
	Captured bool
}

// Kind of an Event.
type Kind uint8

const (
	// Press of a mouse button.
	Press Kind = iota
	// Release of a mouse button.
	Release
	// Move of the mouse to a new absolute position.
	Move
)

// Button identifies a mouse button. Button values are dense: every
// Button converts to a distinct index in [0, NumButtons).
type Button uint8

const (
	// ButtonLeft is the left mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the right mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button or scroll wheel.
	ButtonMiddle
	// ButtonX1 is the first extra button, usually "back".
	ButtonX1
	// ButtonX2 is the second extra button, usually "forward".
	ButtonX2
	// ButtonExtra1 through ButtonExtra4 cover mice with more
	// buttons than the common five.
	ButtonExtra1
	ButtonExtra2
	ButtonExtra3
	ButtonExtra4

	// NumButtons is the number of distinct mouse buttons.
	NumButtons = int(ButtonExtra4) + 1
)

// ButtonMap records, for every mouse button, the position of the
// mouse when the button was pressed. A button with no recorded
// position is up.
//
// The zero value ButtonMap has every button up.
type ButtonMap struct {
	states [NumButtons]buttonState
}

type buttonState struct {
	down bool
	pos  f32.Point
}

// Set records b as held down, pressed at position p. Any previously
// recorded position for b is overwritten.
func (m *ButtonMap) Set(b Button, p f32.Point) {
	m.states[b] = buttonState{down: true, pos: p}
}

// Clear records b as up.
func (m *ButtonMap) Clear(b Button) {
	m.states[b] = buttonState{}
}

// Get returns the position the mouse was at when b was pressed, and
// whether b is down.
func (m ButtonMap) Get(b Button) (f32.Point, bool) {
	s := m.states[b]
	return s.pos, s.down
}

// Take returns the state of b as Get does, and records b as up.
func (m *ButtonMap) Take(b Button) (f32.Point, bool) {
	s := m.states[b]
	m.states[b] = buttonState{}
	return s.pos, s.down
}

// Pressed returns the first held button in Button order along with
// the position it was pressed at. If no button is held, Pressed
// returns false.
func (m ButtonMap) Pressed() (Button, f32.Point, bool) {
	for i, s := range m.states {
		if s.down {
			return Button(i), s.pos, true
		}
	}
	return 0, f32.Point{}, false
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	default:
		panic("unknown Kind")
	}
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "ButtonLeft"
	case ButtonRight:
		return "ButtonRight"
	case ButtonMiddle:
		return "ButtonMiddle"
	case ButtonX1:
		return "ButtonX1"
	case ButtonX2:
		return "ButtonX2"
	case ButtonExtra1:
		return "ButtonExtra1"
	case ButtonExtra2:
		return "ButtonExtra2"
	case ButtonExtra3:
		return "ButtonExtra3"
	case ButtonExtra4:
		return "ButtonExtra4"
	default:
		panic("unknown Button")
	}
}

func (Event) ImplementsEvent()        {}
func (CaptureEvent) ImplementsEvent() {}
