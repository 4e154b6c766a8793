// Package defaults implements priority-ordered fallback value providers.
// Providers only ever fill fields still empty in the accumulated
// configuration; nothing set by explicit input, environment lookup, or
// detection is ever overwritten here.
package defaults

import (
	"sort"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// Provider is one fallback value source. Provide must be pure and total:
// a panicking provider is a programming defect and is deliberately not
// recovered.
type Provider struct {
	Name string

	// Priority orders providers; higher runs first and claims still-empty
	// fields before lower-priority providers are consulted.
	Priority int

	// AppliesTo gates the provider for a context. nil means always.
	AppliesTo func(ctx project.Context) bool

	// Provide proposes a candidate configuration. It may propose values
	// without regard to what is already accumulated; the fold keeps only
	// what fills a gap.
	Provide func(ctx project.Context, acc pubconfig.Config) pubconfig.Config
}

// Apply folds the applicable providers over the input configuration in
// descending priority order (stable on ties). The accumulator is the
// authoritative base: candidates only fill empty fields, where false
// booleans count as empty (see pubconfig.FillEmpty).
func Apply(ctx project.Context, input pubconfig.Config, providers []Provider) pubconfig.Config {
	applicable := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p.AppliesTo == nil || p.AppliesTo(ctx) {
			applicable = append(applicable, p)
		}
	}

	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Priority > applicable[j].Priority
	})

	acc := input
	for _, p := range applicable {
		candidate := p.Provide(ctx, acc)
		if candidate.IsEmpty() {
			continue
		}
		acc = pubconfig.FillEmpty(acc, candidate.WithSource("default:"+p.Name))
	}
	return acc
}
