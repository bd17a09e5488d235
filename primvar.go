package primkit

// PrimVar couples a data payload with the interpolation class that maps it
// onto a primitive's topology.
type PrimVar struct {
	Interpolation Interpolation
	Data          Data
}

// variableSet is the named-variable storage shared by the concrete
// primitive types.
type variableSet struct {
	vars map[string]PrimVar
}

// SetVariable adds or replaces the named variable.
func (s *variableSet) SetVariable(name string, v PrimVar) {
	if s.vars == nil {
		s.vars = make(map[string]PrimVar)
	}
	s.vars[name] = v
}

// RemoveVariable deletes the named variable if present.
func (s *variableSet) RemoveVariable(name string) {
	delete(s.vars, name)
}

// Variable returns the named variable and whether it exists.
func (s *variableSet) Variable(name string) (PrimVar, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Variables returns the primitive's variables keyed by name.
// The map is the primitive's own storage; treat it as read-only and
// mutate through SetVariable.
func (s *variableSet) Variables() map[string]PrimVar {
	return s.vars
}
