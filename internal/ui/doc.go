// Package ui implements the Bubble Tea front end for the counter application.
//
// Core pieces:
//   - View: a screen or overlay with its own model, update, view (Elm-style)
//   - CounterView: the single screen, rendering the bordered counter panel
//   - KeybindRegistry / KeyHandler: closed key-to-command dispatch table
//   - OverlayStack: modal views (help popup) with a dismiss key
//
// Rendering is a pure function of view state so it can be tested without a
// terminal; the AppModel adapter is what Bubble Tea drives.
package ui
