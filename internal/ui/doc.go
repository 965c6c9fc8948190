// Package ui contains the Bubble Tea program that renders the product
// walkthrough in a terminal. The Model owns no presentation state of its own
// beyond layout; section, media, overlay, menu, scroll and theme state all
// live in the presenter it is constructed with.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, resize, animation ticks, command results).
//   - Resize, scroll and per-clip intersection signals are turned into
//     dispatcher events and applied to the presenter in order. Every change of
//     the body offset or geometry re-derives the intersection ratio of each
//     clip block from its line span.
//   - Clip surfaces (clips.go) are handed to the media manager through the
//     presenter's element factory; the manager starts and stops them, the
//     animation tick only advances the ones that are running.
//
// Rendering:
//   - The header is a numbered nav bar in the regular class and a collapsible
//     menu in the compact class. Section copy is markdown rendered with
//     glamour, followed by one framed block per clip.
//   - The enlarged-clip overlay replaces the body until it is dismissed with
//     esc or a click outside its box.
//   - Side effects outside the controller (clipboard) run through the command
//     bus so they are traced like any other action.
package ui
