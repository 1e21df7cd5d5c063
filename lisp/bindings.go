package lisp

type bindingPair struct {
	name  string
	value Value
}

// bindings is the set of variables bound in a single scope.  Bindings
// remember the order in which names were first bound.
type bindings struct {
	pairs []bindingPair
	index map[string]int
}

func newBindings(n int) *bindings {
	return &bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[string]int, n),
	}
}

// Len returns the number of names bound.
func (s *bindings) Len() int {
	return len(s.pairs)
}

// Get returns the value bound to name.
func (s *bindings) Get(name string) (Value, bool) {
	i, ok := s.index[name]
	if !ok {
		return Value{}, false
	}
	return s.pairs[i].value, true
}

// Put binds name to v.  If name was previously bound its entry will be
// updated.  Otherwise Put creates a new binding.
func (s *bindings) Put(name string, v Value) {
	i, ok := s.index[name]
	if ok {
		s.pairs[i].value = v
		return
	}
	s.index[name] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{name, v})
}

// Names returns the bound names in the order they were first bound.
func (s *bindings) Names() []string {
	names := make([]string, len(s.pairs))
	for i := range s.pairs {
		names[i] = s.pairs[i].name
	}
	return names
}
