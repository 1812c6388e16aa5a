package header

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is the parameter model extracted from one image header. It offers
// two views over the same data: the full mapping of every recognized line in
// header appearance order, and a curated grouped view restricted to the
// canonical vocabulary. A Params is immutable once built and owned by the
// caller of the parse; independent parses share nothing but the read-only
// vendor tables.
type Params struct {
	vendor          Vendor
	softwareVersion string

	// names holds the full-view keys in header appearance order.
	names []string

	// values maps every full-view key to its parsed value.
	values map[string]Value
}

// Vendor reports which acquisition software family wrote the header.
func (p *Params) Vendor() Vendor { return p.vendor }

// SoftwareVersion is the acquisition software version string, empty when the
// header does not carry one.
func (p *Params) SoftwareVersion() string { return p.softwareVersion }

// Names returns all full-view parameter names in header appearance order.
func (p *Params) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Get returns the value of a parameter by canonical (or retained raw) name.
// Querying a name that is not present fails with an UnknownParameterError
// rather than returning an empty value, so missing instrument metadata can
// never be mistaken for real readings.
func (p *Params) Get(name string) (Value, error) {
	v, ok := p.values[name]
	if !ok {
		return nil, &UnknownParameterError{Name: name}
	}
	return v, nil
}

// Measurement returns a parameter that must be a unit-carrying quantity.
func (p *Params) Measurement(name string) (Measurement, error) {
	v, err := p.Get(name)
	if err != nil {
		return Measurement{}, err
	}
	m, ok := v.(Measurement)
	if !ok {
		return Measurement{}, fmt.Errorf("parameter %q is text %q, not a measurement", name, v)
	}
	return m, nil
}

// Int returns a parameter as an integer. Measurements must have an integral
// magnitude; text values must be plain decimal integers.
func (p *Params) Int(name string) (int, error) {
	v, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case Measurement:
		n := int(v.Magnitude)
		if float64(n) != v.Magnitude {
			return 0, fmt.Errorf("parameter %q has non-integral magnitude %v", name, v.Magnitude)
		}
		return n, nil
	case Text:
		n, err := strconv.Atoi(strings.TrimSpace(string(v)))
		if err != nil {
			return 0, fmt.Errorf("parameter %q is not an integer: %w", name, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("parameter %q has unsupported value type", name)
	}
}

// Group is one curated display group of the grouped view.
type Group struct {
	// Name is the group heading, e.g. "Scanning".
	Name string

	// Names lists the canonical parameters of this group that are present
	// in the header, in the fixed curated order.
	Names []string
}

// Grouped returns the curated grouped view: the fixed group sequence with,
// per group, the canonical parameters actually present in this header. Groups
// with no present parameter are omitted. The order is fully deterministic.
func (p *Params) Grouped() []Group {
	var groups []Group
	for _, groupName := range groupOrder {
		var present []string
		for _, name := range groupMembers[groupName] {
			if _, ok := p.values[name]; ok {
				present = append(present, name)
			}
		}
		if len(present) > 0 {
			groups = append(groups, Group{Name: groupName, Names: present})
		}
	}
	return groups
}
