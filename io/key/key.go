// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements keyboard events and the set of held
// modifier keys.
package key

import (
	"strings"

	"larkui.org/io/event"
)

// Event is a raw keyboard event delivered by the platform.
type Event struct {
	// Name of the key.
	Name Name
	// State is the state of the key when the event was fired.
	State State
}

// CaptureEvent is generated when a widget claims the keyboard, or
// releases its claim. While captured, every keyboard event is routed
// to the capturing widget.
type CaptureEvent struct {
	// Tag identifies the widget making or releasing the claim.
	Tag event.Tag
	// Captured is true when the claim is made, false when released.
	Captured bool
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers is a set of held modifier keys. The left and right
// variant of a modifier key share one bit.
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// Name is the identifier for a keyboard key. Unlike Modifiers, a
// Name distinguishes the left and right variant of a modifier key.
type Name string

const (
	// Names for the physical modifier keys.
	NameLeftCtrl   Name = "LeftCtrl"
	NameRightCtrl  Name = "RightCtrl"
	NameLeftShift  Name = "LeftShift"
	NameRightShift Name = "RightShift"
	NameLeftAlt    Name = "LeftAlt"
	NameRightAlt   Name = "RightAlt"
	NameLeftSuper  Name = "LeftSuper"
	NameRightSuper Name = "RightSuper"

	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEscape         Name = "⎋"
	NameDeleteBackward Name = "⌫"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
)

// Modifier returns the modifier bit n stands for. Keys that are not
// modifier keys report false.
func (n Name) Modifier() (Modifiers, bool) {
	switch n {
	case NameLeftCtrl, NameRightCtrl:
		return ModCtrl, true
	case NameLeftShift, NameRightShift:
		return ModShift, true
	case NameLeftAlt, NameRightAlt:
		return ModAlt, true
	case NameLeftSuper, NameRightSuper:
		return ModSuper, true
	}
	return 0, false
}

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "Super")
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

func (Event) ImplementsEvent()        {}
func (CaptureEvent) ImplementsEvent() {}
