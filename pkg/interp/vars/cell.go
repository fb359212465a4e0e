// Package vars implements the variable cell described in spec.md §3 and
// §4.4: a named slot holding either a direct value or a link to another
// cell, possibly living in a different call frame. Resolving a cell follows
// link chains transitively; the package itself enforces termination so that
// a cycle can never be observed by a reader.
package vars

import "fmt"

// maxLinkChain bounds how many link hops Resolve will follow before giving
// up. It only matters if a cycle were ever constructed despite the checks in
// Link; it is not reachable through normal use of this package.
const maxLinkChain = 1 << 16

// Cell is a single variable: a name plus either a direct value or a link to
// another cell.
type Cell struct {
	Name  string
	value string
	link  *Cell
}

// NewValue creates a cell holding a direct value.
func NewValue(name, value string) *Cell {
	return &Cell{Name: name, value: value}
}

// IsLink reports whether the cell is currently a link rather than a direct
// value.
func (c *Cell) IsLink() bool { return c.link != nil }

// Resolve follows link chains starting at c and returns the concrete cell
// that owns the value readers and writers should actually use.
func (c *Cell) Resolve() (*Cell, error) {
	cur := c
	for n := 0; cur.link != nil; n++ {
		if n > maxLinkChain {
			return nil, fmt.Errorf("link chain for variable %q does not terminate", c.Name)
		}
		cur = cur.link
	}
	return cur, nil
}

// Get returns the cell's value, following links.
func (c *Cell) Get() (string, error) {
	r, err := c.Resolve()
	if err != nil {
		return "", err
	}
	return r.value, nil
}

// Set stores value in the cell, following links.
func (c *Cell) Set(value string) error {
	r, err := c.Resolve()
	if err != nil {
		return err
	}
	r.value = value
	return nil
}

// Link turns c into a link to target. It refuses to create a cell that is
// immediately self-referential (c == target, or target already (transitively)
// links back to c), which is the minimal guarantee spec.md §3's "cycles are
// rejected when upvar would create one" requires.
func (c *Cell) Link(target *Cell) error {
	if target == c {
		return fmt.Errorf("variable %q cannot link to itself", c.Name)
	}
	for cur := target; cur != nil; cur = cur.link {
		if cur == c {
			return fmt.Errorf("linking %q to %q would create a cycle", c.Name, target.Name)
		}
	}
	c.link = target
	c.value = ""
	return nil
}
