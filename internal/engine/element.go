package engine

// Element is both a damage element and (for the seven "real" elements) an
// aura/dice colour. Physical, Piercing, Any and Omni are never aurable.
type Element int

const (
	Pyro Element = iota
	Hydro
	Electro
	Cryo
	Dendro
	Anemo
	Geo
	Physical
	Piercing
	Omni // wildcard die / "any one shared element" requirement
	Any  // requirement-only: no colour constraint
)

func (e Element) String() string {
	switch e {
	case Pyro:
		return "Pyro"
	case Hydro:
		return "Hydro"
	case Electro:
		return "Electro"
	case Cryo:
		return "Cryo"
	case Dendro:
		return "Dendro"
	case Anemo:
		return "Anemo"
	case Geo:
		return "Geo"
	case Physical:
		return "Physical"
	case Piercing:
		return "Piercing"
	case Omni:
		return "Omni"
	case Any:
		return "Any"
	default:
		return "Unknown"
	}
}

// Aurable reports whether e may appear in a Character's elemental aura.
func (e Element) Aurable() bool {
	switch e {
	case Pyro, Hydro, Electro, Cryo, Dendro, Anemo, Geo:
		return true
	default:
		return false
	}
}

// RealElements is every aurable/dice-colour element, in the fixed
// tie-break ordering used by the dice solver and iteration-order-sensitive
// catalogue lookups.
var RealElements = []Element{Pyro, Hydro, Electro, Cryo, Dendro, Anemo, Geo}

// ActualDiceElements is every element a DicePool may actually hold: the
// seven real elements plus the Omni wildcard (spec.md §3 invariant 4).
var ActualDiceElements = append(append([]Element{}, RealElements...), Omni)

// AuraSet holds the elements currently attached to a character: at most
// two, drawn only from the aurable elements (spec.md §3 invariant 3).
type AuraSet struct {
	elems [2]Element
	n     int
}

// Elements returns the aura's elements in attach order.
func (a AuraSet) Elements() []Element {
	return append([]Element{}, a.elems[:a.n]...)
}

func (a AuraSet) Len() int { return a.n }

func (a AuraSet) Empty() bool { return a.n == 0 }

// Has reports whether e is currently attached.
func (a AuraSet) Has(e Element) bool {
	for i := 0; i < a.n; i++ {
		if a.elems[i] == e {
			return true
		}
	}
	return false
}

// withAttached returns a new AuraSet with e attached. Attaching an element
// already present is a no-op (refreshes nothing: dgisim reactions always
// consume the existing aura before an attach would matter).
func (a AuraSet) withAttached(e Element) AuraSet {
	if !e.Aurable() {
		panic("engine: attempted to attach non-aurable element to aura")
	}
	if a.Has(e) {
		return a
	}
	if a.n >= 2 {
		// Should not happen: a reaction must clear before a third attach.
		// Defensive clamp keeps the invariant rather than silently growing.
		return AuraSet{elems: [2]Element{e, a.elems[0]}, n: 2}
	}
	out := a
	out.elems[out.n] = e
	out.n++
	return out
}

// cleared returns the empty aura.
func (AuraSet) cleared() AuraSet { return AuraSet{} }

// withOnly returns a new AuraSet containing exactly one element.
func withOnly(e Element) AuraSet {
	if !e.Aurable() {
		return AuraSet{}
	}
	return AuraSet{elems: [2]Element{e}, n: 1}
}
