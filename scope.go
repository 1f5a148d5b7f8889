package simplejs

// Scope represents a lexical scope with parent chain.
type Scope struct {
	vars   map[string]JSValue
	parent *Scope
}

// NewScope creates a new scope with optional parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]JSValue), parent: parent}
}

// Get looks up a variable in the scope chain.
func (s *Scope) Get(name string) (JSValue, bool) {
	if val, ok := s.vars[name]; ok {
		return val, true
	}
	if s.parent != nil {
		return s.parent.Get(name)
	}
	return Undefined(), false
}

// Set sets a variable in the current scope.
func (s *Scope) Set(name string, val JSValue) {
	s.vars[name] = val
}

// Delete removes a variable from the current scope.
// Returns true if the variable was found and deleted, false otherwise.
func (s *Scope) Delete(name string) bool {
	if _, ok := s.vars[name]; ok {
		delete(s.vars, name)
		return true
	}
	return false
}
