// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"larkui.org/f32"
	"larkui.org/io/event"
	"larkui.org/io/key"
	"larkui.org/io/pointer"
)

// State holds the current state of user input. It is a plain value
// type: assigning a State snapshots it, and the zero value is ready
// for use, with the mouse at the origin, no buttons or modifiers held
// and no captures.
//
// A State instance must only be updated from the event dispatch
// loop; other goroutines work on snapshot copies.
type State struct {
	// MouseButtons records the held mouse buttons and the position
	// of the mouse when each was pressed.
	MouseButtons pointer.ButtonMap
	// MousePosition is the current absolute position of the mouse.
	MousePosition f32.Point
	// KeyboardCapture is the widget capturing the keyboard, or nil.
	KeyboardCapture event.Tag
	// MouseCapture is the widget capturing the mouse, or nil.
	MouseCapture event.Tag
	// Modifiers is the set of held modifier keys.
	Modifiers key.Modifiers
}

// Update transitions the state according to e. Events of any other
// type than the mouse, keyboard and capture events are ignored, as
// are keyboard events for keys that are not modifier keys.
func (s *State) Update(e event.Event) {
	switch e := e.(type) {
	case pointer.Event:
		switch e.Kind {
		case pointer.Press:
			s.MouseButtons.Set(e.Button, s.MousePosition)
		case pointer.Release:
			s.MouseButtons.Clear(e.Button)
		case pointer.Move:
			s.MousePosition = e.Position
		}
	case key.Event:
		mod, ok := e.Name.Modifier()
		if !ok {
			break
		}
		switch e.State {
		case key.Press:
			s.Modifiers |= mod
		case key.Release:
			s.Modifiers &^= mod
		}
	case pointer.CaptureEvent:
		// The claim is not checked against the current holder:
		// a capture overwrites it and an uncapture clears it
		// regardless of who holds the capture.
		if e.Captured {
			s.MouseCapture = e.Tag
		} else {
			s.MouseCapture = nil
		}
	case key.CaptureEvent:
		if e.Captured {
			s.KeyboardCapture = e.Tag
		} else {
			s.KeyboardCapture = nil
		}
	}
}

// RelativeTo returns a copy of the state with the mouse position
// translated into the coordinate system rooted at origin. The
// pressed-at positions in MouseButtons are not translated.
func (s State) RelativeTo(origin f32.Point) State {
	s.MousePosition = s.MousePosition.Sub(origin)
	return s
}
