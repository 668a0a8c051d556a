package billing

import "strings"

// Coin is an indivisible unit of value. Provenance lists every holder the
// coin has passed through, earliest first; the last entry is the current holder.
type Coin struct {
	ID         int64
	Provenance []string
}

func (c Coin) Holder() string {
	if len(c.Provenance) == 0 {
		return ""
	}
	return c.Provenance[len(c.Provenance)-1]
}

// Hops is the length of the provenance chain
func (c Coin) Hops() int {
	return len(c.Provenance)
}

// History renders provenance as space separated names.
func (c Coin) History() string {
	return strings.Join(c.Provenance, " ")
}

func (c *Coin) copy() Coin {
	provenance := make([]string, len(c.Provenance))
	copy(provenance, c.Provenance)
	return Coin{ID: c.ID, Provenance: provenance}
}
