package keymap

import (
	"slices"
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		context string
		want    []Action
	}{
		{ContextGlobal, []Action{ActionQuit, ActionPresentHalf, ActionPresentFitting, ActionPresentList, ActionPresentForm, ActionPresentMenu, ActionToggleKeyboard, ActionHelp}},
		{ContextSheet, []Action{ActionDismiss, ActionPop, ActionGrow, ActionShrink, ActionToggleKeyboard, ActionHelp}},
	}
	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			result := ByContext(tt.context)
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding context = %q, want %q", b.Context, tt.context)
				}
			}
			for _, action := range tt.want {
				if !slices.ContainsFunc(result, func(b Binding) bool { return b.Action == action }) {
					t.Errorf("ByContext(%q) is missing %q", tt.context, action)
				}
			}
		})
	}
}

func TestByContext_Unknown(t *testing.T) {
	if got := ByContext("unknown"); len(got) != 0 {
		t.Errorf("ByContext(unknown) returned %d bindings, want none", len(got))
	}
}

func TestAll_NoDuplicateKeysPerContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, key := range b.Keys {
			k := b.Context + "/" + key
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to %q and %q in %s", key, prev, b.Action, b.Context)
			}
			seen[k] = b.Action
		}
	}
}

func TestAll_Described(t *testing.T) {
	for _, b := range All {
		if b.Description == "" || len(b.Keys) == 0 {
			t.Errorf("binding %q needs keys and a description", b.Action)
		}
	}
}
