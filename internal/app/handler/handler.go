// Package handler provides a result type and chain function for key handlers.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a key.
type Handler func(key tea.KeyMsg) Result

// Chain offers key to handlers in order until one handles it.
func Chain(key tea.KeyMsg, handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return r
		}
	}
	return NotHandled
}
