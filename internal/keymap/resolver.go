package keymap

import "slices"

// Resolver maps key presses to page actions. A key bound in several
// contexts (up in the page and in the menu) resolves to one action; the
// app decides which context handles it.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings in both directions.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Hint renders "key label" for the first key of action, as shown in the
// page footer. Unbound actions render "".
func (r *Resolver) Hint(action Action, label string) string {
	keys := r.KeysFor(action)
	if len(keys) == 0 {
		return ""
	}
	return keys[0] + " " + label
}
