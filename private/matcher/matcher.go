// Package matcher resolves field bindings against the column names of a row.
//
// A Plan is compiled once for a fixed list of bindings. Resolving a plan
// against a row's column names produces one column position per binding.
// Names are dispatched first on their byte length, and then on a short
// discriminator window chosen so that every name of that length has a
// different window value. A full comparison confirms each candidate, so a
// column is compared against at most one name.
package matcher

import (
	"sort"
)

// unresolved marks a slot that has not yet matched a column.
const unresolved = -1

// Binding identifies the column for one field, either by
// its fixed position or by a name to be resolved.
type Binding struct {
	name  string
	index int
	named bool
}

// ByName returns a binding that is resolved by column name.
func ByName(name string) Binding {
	return Binding{name: name, named: true}
}

// ByIndex returns a binding to a fixed column position.
func ByIndex(index int) Binding {
	return Binding{index: index}
}

// Named reports whether b is resolved by name.
func (b Binding) Named() bool {
	return b.named
}

// Name returns the column name for a named binding, or the empty string.
func (b Binding) Name() string {
	return b.name
}

// Index returns the fixed column position for an index binding. It
// returns -1 for a named binding.
func (b Binding) Index() int {
	if b.named {
		return unresolved
	}
	return b.index
}

// Plan is the compiled decision procedure for a list of bindings.
// A Plan is immutable, and safe for concurrent use.
type Plan struct {
	// init holds the fixed index for index bindings and
	// unresolved for named bindings.
	init []int

	// owner maps each named binding to the lowest ordinal binding
	// with the same name. Index bindings have an owner of unresolved.
	owner []int

	// names lists the distinct names, in order of first appearance.
	names []candidate

	// groups is indexed by name length, nil where no name has that length.
	groups []*group
}

// candidate is a distinct name and the ordinal of its owning binding.
type candidate struct {
	name string
	slot int
}

// Compile builds a plan for the bindings. The plan resolves one
// position per binding, in the same order.
func Compile(bindings []Binding) *Plan {
	p := &Plan{
		init:  make([]int, len(bindings)),
		owner: make([]int, len(bindings)),
	}
	slots := make(map[string]int)
	for i, b := range bindings {
		if !b.named {
			p.init[i] = b.index
			p.owner[i] = unresolved
			continue
		}
		p.init[i] = unresolved
		if slot, ok := slots[b.name]; ok {
			p.owner[i] = slot
			continue
		}
		slots[b.name] = i
		p.owner[i] = i
		p.names = append(p.names, candidate{name: b.name, slot: i})
	}
	if len(p.names) > 1 {
		p.groups = buildGroups(p.names)
	}
	return p
}

// Len returns the number of bindings in the plan.
func (p *Plan) Len() int {
	return len(p.init)
}

// UniqueNames returns the number of distinct names resolved by the plan.
func (p *Plan) UniqueNames() int {
	return len(p.names)
}

// Resolve matches the plan against the column names of one row, returning
// the column position for each binding. The returned slice is newly allocated.
//
// When a column name appears more than once in columns, the first column
// with that name is used. If a name cannot be found, Resolve returns a
// *MissingError for the lowest ordinal binding with that name.
func (p *Plan) Resolve(columns []string) ([]int, error) {
	positions := make([]int, len(p.init))
	copy(positions, p.init)

	switch len(p.names) {
	case 0:
		return positions, nil
	case 1:
		return p.resolveSingle(positions, columns)
	}

	todo := len(p.names)
	for pos, name := range columns {
		n := len(name)
		if n >= len(p.groups) {
			continue
		}
		g := p.groups[n]
		if g == nil {
			continue
		}
		slot, ok := g.lookup(name)
		if !ok {
			continue
		}
		if positions[slot] == unresolved {
			positions[slot] = pos
			todo--
			if todo == 0 {
				break
			}
		}
	}
	if todo > 0 {
		return nil, p.missing(positions)
	}
	p.copyAliases(positions)
	return positions, nil
}

func (p *Plan) resolveSingle(positions []int, columns []string) ([]int, error) {
	want := p.names[0]
	for pos, name := range columns {
		if name == want.name {
			positions[want.slot] = pos
			p.copyAliases(positions)
			return positions, nil
		}
	}
	return nil, &MissingError{Name: want.name, Ordinal: want.slot}
}

// copyAliases sets every named binding to the position of its owner.
func (p *Plan) copyAliases(positions []int) {
	for i, owner := range p.owner {
		if owner != unresolved && owner != i {
			positions[i] = positions[owner]
		}
	}
}

// missing reports the lowest ordinal owner that is still unresolved.
func (p *Plan) missing(positions []int) error {
	for _, c := range p.names {
		if positions[c.slot] == unresolved {
			return &MissingError{Name: c.name, Ordinal: c.slot}
		}
	}
	// not reached: missing is only called with unresolved names
	return &MissingError{}
}

// group holds the candidate names sharing one byte length.
type group struct {
	// cands is sorted by name.
	cands []candidate

	// window is the discriminator; width is zero when names are
	// compared directly.
	window window

	// dispatch maps a window value to an index into cands.
	dispatch map[uint64]int
}

func buildGroups(names []candidate) []*group {
	byLen := make(map[int][]candidate)
	maxLen := 0
	for _, c := range names {
		n := len(c.name)
		byLen[n] = append(byLen[n], c)
		if n > maxLen {
			maxLen = n
		}
	}
	groups := make([]*group, maxLen+1)
	for n, cands := range byLen {
		sort.Slice(cands, func(i, j int) bool {
			return cands[i].name < cands[j].name
		})
		g := &group{cands: cands}
		if len(cands) > 1 {
			if w, ok := findWindow(n, cands); ok {
				g.window = w
				g.dispatch = make(map[uint64]int, len(cands))
				for i, c := range cands {
					g.dispatch[w.value(c.name)] = i
				}
			}
		}
		groups[n] = g
	}
	return groups
}

// lookup returns the slot for name, which must have the group's length.
func (g *group) lookup(name string) (int, bool) {
	if g.window.width == 0 {
		for _, c := range g.cands {
			if c.name == name {
				return c.slot, true
			}
		}
		return 0, false
	}
	i, ok := g.dispatch[g.window.value(name)]
	if !ok {
		return 0, false
	}
	c := g.cands[i]
	if c.name != name {
		return 0, false
	}
	return c.slot, true
}

// MissingError reports a name that did not match any column.
type MissingError struct {
	Name    string // column name
	Ordinal int    // lowest ordinal of a binding with this name
}

func (e *MissingError) Error() string {
	return "no column named " + e.Name
}
