package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dsbelief/element"
	"github.com/katalvlaran/dsbelief/mass"
)

// parseSource builds a MassFunction[*DiscreteElement] over an n-atom frame
// from a "bitmask:value,bitmask:value,..." spec, the format accepted by the
// --source flag on every combine/decide/discount subcommand.
func parseSource(n int, spec string) (*mass.MassFunction[*element.DiscreteElement], error) {
	m := mass.Empty[*element.DiscreteElement]()
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("dsbelief: %q: %w", pair, ErrBadFocalSpec)
		}
		bitmask, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("dsbelief: %q: %w", pair, ErrBadFocalSpec)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("dsbelief: %q: %w", pair, ErrBadFocalSpec)
		}
		e, err := element.FromNumber(n, bitmask)
		if err != nil {
			return nil, err
		}
		if err := m.AddMass(e, value); err != nil {
			return nil, err
		}
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("dsbelief: %q: %w", spec, ErrBadFocalSpec)
	}
	return m, nil
}

// parseSources parses every --source flag value in order.
func parseSources(n int, specs []string) ([]*mass.MassFunction[*element.DiscreteElement], error) {
	if len(specs) == 0 {
		return nil, ErrNoSources
	}
	out := make([]*mass.MassFunction[*element.DiscreteElement], 0, len(specs))
	for _, s := range specs {
		m, err := parseSource(n, s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
