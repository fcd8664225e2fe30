// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types shared by the input event packages.
package event

// Tag is the stable identifier for a widget. For a widget w, the tag is
// typically &w. A Tag never owns the widget it names; the widget tree
// does.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
