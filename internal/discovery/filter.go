package discovery

import (
	"path/filepath"
	"strings"

	"suiterun/internal/domain"
)

// Filter filters registered tests by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether the dotted test name matches pattern.
// Patterns use the form "POS[:POS...][-NEG[:NEG...]]" with * and ? wildcards,
// e.g. "Example.*" or "*-*.slow_*". A pattern without wildcards matches by substring.
func (f *Filter) Match(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	positive, negative, _ := strings.Cut(pattern, "-")
	if positive == "" {
		positive = "*"
	}

	if !matchAny(positive, name) {
		return false
	}
	return negative == "" || !matchAny(negative, name)
}

func matchAny(patterns, name string) bool {
	for _, p := range strings.Split(patterns, ":") {
		if p != "" && matchOne(p, name) {
			return true
		}
	}
	return false
}

func matchOne(pattern, name string) bool {
	// Try to match using filepath.Match (supports * and ? wildcards)
	matched, err := filepath.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	// If no wildcards, do a simple contains check
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	return false
}

// FilterByName returns suites restricted to tests matching pattern.
// Cases and suites left without tests are dropped.
func (f *Filter) FilterByName(suites []*domain.Suite, pattern string) []*domain.Suite {
	if pattern == "" {
		return suites
	}
	return f.filter(suites, func(p domain.TestPath) bool {
		return f.Match(pattern, p.String())
	})
}

// FilterByPaths returns suites restricted to the given dotted test paths
func (f *Filter) FilterByPaths(suites []*domain.Suite, paths map[string]struct{}) []*domain.Suite {
	return f.filter(suites, func(p domain.TestPath) bool {
		_, ok := paths[p.String()]
		return ok
	})
}

func (f *Filter) filter(suites []*domain.Suite, keep func(domain.TestPath) bool) []*domain.Suite {
	var filtered []*domain.Suite

	for _, s := range suites {
		ns := domain.NewSuite(s.Name)
		for _, c := range s.Cases {
			nc := domain.NewCase(c.Name)
			for _, t := range c.Tests {
				if keep(domain.TestPath{Suite: s.Name, Case: c.Name, Test: t.Name}) {
					nc.AddTest(t.Name, t.Func)
				}
			}
			if len(nc.Tests) > 0 {
				ns.AddCase(nc)
			}
		}
		if len(ns.Cases) > 0 {
			filtered = append(filtered, ns)
		}
	}

	return filtered
}
