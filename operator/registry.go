package operator

import (
	"errors"
	"fmt"
	"sort"
)

// Preferences toggle which generators are offered in the menu.
type Preferences struct {
	EnableSierpinski bool
}

// DefaultPreferences enables every generator.
func DefaultPreferences() Preferences {
	return Preferences{EnableSierpinski: true}
}

// Registry holds the operators available to the user. It is built from
// explicit Preferences and holds no global state.
type Registry struct {
	prefs Preferences
	ops   map[string]Operator
}

// NewRegistry registers the standalone 2D and 3D operators and, when enabled
// in prefs, the combined Sierpinski operator.
func NewRegistry(prefs Preferences) *Registry {
	r := &Registry{prefs: prefs, ops: make(map[string]Operator)}
	r.mustRegister(Sierpinski2D)
	r.mustRegister(Sierpinski3D)
	if prefs.EnableSierpinski {
		r.mustRegister(Sierpinski)
	}
	return r
}

// Register adds op to the registry. IDs must be unique.
func (r *Registry) Register(op Operator) error {
	if op.ID == "" {
		return errors.New("operator has no ID")
	} else if len(op.Kinds) == 0 {
		return fmt.Errorf("operator %s supports no modes", op.ID)
	} else if err := op.Check(op.Defaults()); err != nil {
		return fmt.Errorf("operator %s defaults: %w", op.ID, err)
	}
	if _, ok := r.ops[op.ID]; ok {
		return fmt.Errorf("operator %s already registered", op.ID)
	}
	r.ops[op.ID] = op
	return nil
}

func (r *Registry) mustRegister(op Operator) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

// Unregister removes the operator with the given ID, if present.
func (r *Registry) Unregister(id string) {
	delete(r.ops, id)
}

// Lookup returns the operator registered under id.
func (r *Registry) Lookup(id string) (Operator, bool) {
	op, ok := r.ops[id]
	return op, ok
}

// Preferences returns the preferences the registry was built with.
func (r *Registry) Preferences() Preferences { return r.prefs }

// Menu returns the registered operators sorted by label.
func (r *Registry) Menu() []Operator {
	menu := make([]Operator, 0, len(r.ops))
	for _, op := range r.ops {
		menu = append(menu, op)
	}
	sort.Slice(menu, func(i, j int) bool { return menu[i].Label < menu[j].Label })
	return menu
}

// Operators returns every registered operator sorted by ID.
func (r *Registry) Operators() []Operator {
	ops := make([]Operator, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID < ops[j].ID })
	return ops
}
