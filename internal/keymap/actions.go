package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionToggleKeyboard Action = "toggle_keyboard"
	ActionClearPositions Action = "clear_positions"
	ActionHelp           Action = "help"

	// Presenting examples
	ActionPresentHalf    Action = "present_half"
	ActionPresentFitting Action = "present_fitting"
	ActionPresentList    Action = "present_list"
	ActionPresentForm    Action = "present_form"
	ActionPresentMenu    Action = "present_menu"

	// Actions on the presented stack
	ActionDismiss Action = "dismiss"
	ActionPop     Action = "pop"
	ActionGrow    Action = "grow"   // next taller position
	ActionShrink  Action = "shrink" // next shorter position
)
