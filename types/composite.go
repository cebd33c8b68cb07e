package types

import "strings"

// Composite is an ordered sequence of same-dimension Quantity parts, e.g.
// `5 ft 7 in` or `2 hr 30 min`, largest unit first.
type Composite struct {
	Parts []*Quantity
}

// NewComposite builds a Composite from its parts, largest unit first.
func NewComposite(parts ...*Quantity) *Composite {
	return &Composite{Parts: parts}
}

func (c *Composite) String() string {
	strs := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		strs[i] = p.String()
	}
	return strings.Join(strs, " ")
}

func (c *Composite) TypeName() string { return "Composite" }

func (c *Composite) Equal(other Type) bool {
	o, ok := other.(*Composite)
	if !ok || len(c.Parts) != len(o.Parts) {
		return false
	}
	for i := range c.Parts {
		if !c.Parts[i].Equal(o.Parts[i]) {
			return false
		}
	}
	return true
}
