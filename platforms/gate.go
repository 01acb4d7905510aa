package platforms

import "github.com/solarlune/resolv"

// Index is the collision index a passable platform joins and leaves.
// *resolv.Space satisfies it.
type Index interface {
	Add(objects ...*resolv.Object)
	Remove(objects ...*resolv.Object)
}

// UpdatePassable makes a passable platform solid once the character's bottom
// is no more than threshold below its top, and lets the character through
// again when it drops under that line. The body is added to or removed from
// index only when the state flips. It returns true when it flipped.
func UpdatePassable(p *Platform, characterBottom, threshold float64, index Index) bool {
	if p.Kind != Passable {
		return false
	}

	above := p.Top()-threshold <= characterBottom
	switch {
	case above && !p.Active:
		p.Active = true
		index.Add(p.Body)
		return true
	case !above && p.Active:
		p.Active = false
		index.Remove(p.Body)
		return true
	}
	return false
}
