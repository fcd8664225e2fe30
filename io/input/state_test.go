// SPDX-License-Identifier: Unlicense OR MIT

package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larkui.org/f32"
	"larkui.org/io/input"
	"larkui.org/io/key"
	"larkui.org/io/pointer"
)

// unrelatedEvent stands in for toolkit events the input state does
// not care about, such as layout or text entry.
type unrelatedEvent struct{}

func (unrelatedEvent) ImplementsEvent() {}

func TestZeroValue(t *testing.T) {
	s := new(input.State)

	assert.Equal(t, f32.Point{}, s.MousePosition)
	assert.Equal(t, key.Modifiers(0), s.Modifiers)
	assert.Nil(t, s.KeyboardCapture)
	assert.Nil(t, s.MouseCapture)
	_, _, ok := s.MouseButtons.Pressed()
	assert.False(t, ok)
}

func TestPressRecordsPositionAtPressTime(t *testing.T) {
	s := new(input.State)

	s.Update(pointer.Event{Kind: pointer.Move, Position: f32.Pt(4, 5)})
	s.Update(pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft})
	s.Update(pointer.Event{Kind: pointer.Move, Position: f32.Pt(60, 30)})

	assert.Equal(t, f32.Pt(60, 30), s.MousePosition)
	p, down := s.MouseButtons.Get(pointer.ButtonLeft)
	require.True(t, down)
	assert.Equal(t, f32.Pt(4, 5), p, "stored position must reflect press time, not the later move")
}

func TestRelease(t *testing.T) {
	s := new(input.State)
	s.Update(pointer.Event{Kind: pointer.Press, Button: pointer.ButtonRight})

	s.Update(pointer.Event{Kind: pointer.Release, Button: pointer.ButtonRight})

	_, down := s.MouseButtons.Get(pointer.ButtonRight)
	assert.False(t, down)
}

func TestModifierKeys(t *testing.T) {
	s := new(input.State)

	s.Update(key.Event{Name: key.NameLeftCtrl, State: key.Press})
	assert.True(t, s.Modifiers.Contain(key.ModCtrl))

	s.Update(key.Event{Name: key.NameLeftShift, State: key.Press})
	assert.Equal(t, key.ModCtrl|key.ModShift, s.Modifiers)

	// The left and right variants share one bit.
	s.Update(key.Event{Name: key.NameRightCtrl, State: key.Release})
	assert.Equal(t, key.ModShift, s.Modifiers)

	// Keys that are not modifiers leave the set alone.
	s.Update(key.Event{Name: key.NameSpace, State: key.Press})
	s.Update(key.Event{Name: "A", State: key.Release})
	assert.Equal(t, key.ModShift, s.Modifiers)
}

func TestCapture(t *testing.T) {
	s := new(input.State)
	w1, w2 := new(int), new(int)

	s.Update(key.CaptureEvent{Tag: w1, Captured: true})
	assert.Same(t, w1, s.KeyboardCapture)
	assert.Nil(t, s.MouseCapture, "keyboard capture must not touch the mouse slot")

	// A new claim overwrites the holder without requiring an
	// uncapture first.
	s.Update(key.CaptureEvent{Tag: w2, Captured: true})
	assert.Same(t, w2, s.KeyboardCapture)

	// An uncapture clears the slot no matter which widget asked.
	s.Update(key.CaptureEvent{Tag: w1, Captured: false})
	assert.Nil(t, s.KeyboardCapture)

	s.Update(pointer.CaptureEvent{Tag: w1, Captured: true})
	assert.Same(t, w1, s.MouseCapture)
	assert.Nil(t, s.KeyboardCapture)
	s.Update(pointer.CaptureEvent{Tag: w2, Captured: false})
	assert.Nil(t, s.MouseCapture)
}

func TestUnrelatedEventsIgnored(t *testing.T) {
	s := new(input.State)
	s.Update(pointer.Event{Kind: pointer.Move, Position: f32.Pt(1, 2)})
	s.Update(pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft})
	before := *s

	s.Update(unrelatedEvent{})

	assert.Equal(t, before, *s)
}

func TestRelativeTo(t *testing.T) {
	s := new(input.State)
	s.Update(pointer.Event{Kind: pointer.Move, Position: f32.Pt(50, -10)})
	s.Update(pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft})
	s.Update(key.Event{Name: key.NameLeftAlt, State: key.Press})
	w := new(int)
	s.Update(pointer.CaptureEvent{Tag: w, Captured: true})

	rel := s.RelativeTo(f32.Pt(20, 20))

	assert.Equal(t, f32.Pt(30, -30), rel.MousePosition)
	// Everything but the mouse position carries over untranslated.
	p, down := rel.MouseButtons.Get(pointer.ButtonLeft)
	require.True(t, down)
	assert.Equal(t, f32.Pt(50, -10), p)
	assert.Equal(t, key.ModAlt, rel.Modifiers)
	assert.Same(t, w, rel.MouseCapture)
	assert.Nil(t, rel.KeyboardCapture)

	// The copy is independent of the original.
	assert.Equal(t, f32.Pt(50, -10), s.MousePosition)
	rel.Update(pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft})
	_, down = s.MouseButtons.Get(pointer.ButtonLeft)
	assert.True(t, down)
}
