// Package keymap defines key bindings and action dispatch for the demo.
package keymap

// Contexts a binding applies in.
const (
	ContextGlobal = "global" // no sheet presented
	ContextSheet  = "sheet"  // a sheet stack is presented
)

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", ContextGlobal},
	{ActionPresentHalf, []string{"1"}, "half", ContextGlobal},
	{ActionPresentFitting, []string{"2"}, "fitting", ContextGlobal},
	{ActionPresentList, []string{"3"}, "list", ContextGlobal},
	{ActionPresentForm, []string{"4"}, "form", ContextGlobal},
	{ActionPresentMenu, []string{"5"}, "menu", ContextGlobal},
	{ActionToggleKeyboard, []string{"ctrl+k"}, "keyboard", ContextGlobal},
	{ActionClearPositions, []string{"ctrl+r"}, "forget positions", ContextGlobal},
	{ActionHelp, []string{"?"}, "help", ContextGlobal},

	// Presented stack
	{ActionDismiss, []string{"esc"}, "dismiss", ContextSheet},
	{ActionPop, []string{"backspace"}, "back", ContextSheet},
	{ActionGrow, []string{"+", "="}, "grow", ContextSheet},
	{ActionShrink, []string{"-"}, "shrink", ContextSheet},
	{ActionToggleKeyboard, []string{"ctrl+k"}, "keyboard", ContextSheet},
	{ActionQuit, []string{"ctrl+c"}, "quit", ContextSheet},
	{ActionHelp, []string{"?"}, "help", ContextSheet},

	// Replacing the presented stack
	{ActionPresentHalf, []string{"1"}, "half", ContextSheet},
	{ActionPresentFitting, []string{"2"}, "fitting", ContextSheet},
	{ActionPresentList, []string{"3"}, "list", ContextSheet},
	{ActionPresentForm, []string{"4"}, "form", ContextSheet},
	{ActionPresentMenu, []string{"5"}, "menu", ContextSheet},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
