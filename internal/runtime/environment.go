package runtime

import (
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ident"
)

// Slot is a mutable cell holding a value plus its declared type and
// constness. Slots are shared by pointer so that an aliased scope entry
// (a by-reference parameter) and its owning scope observe the same
// storage.
type Slot struct {
	Value       Value
	IsConstant  bool
	DataType    ast.DataType
	DisplayName string
}

// Scope is one level of nesting: an ordered, case-insensitive mapping from
// name to *Slot. An entry is "owned" when the slot was allocated for this
// scope, or "aliased" when it points at a slot owned by another scope.
type Scope struct {
	slots *ident.Map[*Slot]
}

func newScope() *Scope {
	return &Scope{slots: ident.NewMap[*Slot]()}
}

// Environment is a stack of Scopes; lookups walk outward from the
// innermost (current) scope to the outermost (global) scope.
type Environment struct {
	scopes []*Scope
}

// NewEnvironment creates an Environment containing a single global scope.
func NewEnvironment() *Environment {
	return &Environment{scopes: []*Scope{newScope()}}
}

// NewCallEnvironment creates an Environment whose only enclosing scope is
// global (the very same *Scope, not a copy) with one fresh call-frame
// scope pushed on top. This is how a module/function call's body sees
// only globals and its own parameters, never the caller's locals.
func NewCallEnvironment(global *Scope) *Environment {
	env := &Environment{scopes: []*Scope{global}}
	env.Push()
	return env
}

// Push adds a fresh, empty scope on top of the stack, returning it so
// callers that need direct slot access (e.g. to install aliases) can keep
// a handle without looking it back up.
func (e *Environment) Push() *Scope {
	s := newScope()
	e.scopes = append(e.scopes, s)
	return s
}

// Pop removes the innermost scope.
func (e *Environment) Pop() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Global returns the outermost scope.
func (e *Environment) Global() *Scope {
	return e.scopes[0]
}

// Current returns the innermost scope.
func (e *Environment) Current() *Scope {
	return e.scopes[len(e.scopes)-1]
}

// Define creates an owned slot for name in the current scope. Returns
// false if name is already declared in this scope (redeclaration error).
func (e *Environment) Define(name string, isConstant bool, dataType ast.DataType, value Value) bool {
	return e.Current().define(name, isConstant, dataType, value)
}

func (s *Scope) define(name string, isConstant bool, dataType ast.DataType, value Value) bool {
	if s.slots.Has(name) {
		return false
	}
	s.slots.Set(name, &Slot{Value: value, IsConstant: isConstant, DataType: dataType, DisplayName: name})
	return true
}

// DefineAlias installs, in the current scope, an entry that forwards
// reads/writes to foreign (a slot owned by some other scope). Returns
// false if name is already declared in this scope.
func (e *Environment) DefineAlias(name string, foreign *Slot) bool {
	s := e.Current()
	if s.slots.Has(name) {
		return false
	}
	s.slots.Set(name, foreign)
	return true
}

// Lookup walks outward from the current scope and returns the *Slot bound
// to name, or nil if undeclared.
func (e *Environment) Lookup(name string) *Slot {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if slot, ok := e.scopes[i].slots.Get(name); ok {
			return slot
		}
	}
	return nil
}

// Get returns the current value bound to name and whether it was found.
func (e *Environment) Get(name string) (Value, bool) {
	slot := e.Lookup(name)
	if slot == nil {
		return Value{}, false
	}
	return slot.Value, true
}

// Assign walks outward from the current scope and writes value into the
// slot bound to name. Returns false if undeclared; callers must separately
// check IsConstant before calling Assign if they want a distinct
// const-assignment diagnosis.
func (e *Environment) Assign(name string, value Value) bool {
	slot := e.Lookup(name)
	if slot == nil {
		return false
	}
	slot.Value = value
	return true
}

// Serialize flattens every visible slot (outer scopes first, inner scopes
// overriding same-named entries) into a display-name -> Value map, for the
// debugger's scope snapshot.
func (e *Environment) Serialize() map[string]Value {
	out := make(map[string]Value)
	for _, scope := range e.scopes {
		scope.slots.Each(func(key string, slot *Slot) {
			out[slot.DisplayName] = slot.Value
		})
	}
	return out
}
