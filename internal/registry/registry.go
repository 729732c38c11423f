package registry

import "suiterun/internal/domain"

// Registry holds suites in registration order
type Registry struct {
	suites []*domain.Suite
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{}
}

// Register appends suites; nil suites are ignored
func (r *Registry) Register(suites ...*domain.Suite) *Registry {
	for _, s := range suites {
		if s != nil {
			r.suites = append(r.suites, s)
		}
	}
	return r
}

// Suites returns the registered suites
func (r *Registry) Suites() []*domain.Suite {
	out := make([]*domain.Suite, len(r.suites))
	copy(out, r.suites)
	return out
}

// Len returns the number of registered suites
func (r *Registry) Len() int {
	return len(r.suites)
}
