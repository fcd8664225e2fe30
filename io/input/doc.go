// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input tracks the transient state of user input for a window:
which mouse buttons are held and where they were pressed, the current
mouse position, the held modifier keys, and which widget, if any,
captures the keyboard or mouse.

The event distribution layer feeds every dispatched event through
[State.Update] and consults the state to decide which widget receives
an event. Widgets query the state directly, for example to read
whether a button was pressed over them.
*/
package input
