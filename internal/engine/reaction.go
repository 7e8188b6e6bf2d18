package engine

// Reaction is the product of an incoming damage element meeting an
// existing aura. Reactions are commutative: triggering R from a-on-b or
// b-on-a yields the same final aura and the same primary bonus (spec.md
// §8 "Reaction commutativity").
type Reaction int

const (
	NoReaction Reaction = iota
	Vaporize
	Melt
	Overloaded
	ElectroCharged
	Frozen
	Superconduct
	Burning
	Bloom
	Quicken
	Crystallize
	Swirl
)

func (r Reaction) String() string {
	switch r {
	case Vaporize:
		return "Vaporize"
	case Melt:
		return "Melt"
	case Overloaded:
		return "Overloaded"
	case ElectroCharged:
		return "Electro-Charged"
	case Frozen:
		return "Frozen"
	case Superconduct:
		return "Superconduct"
	case Burning:
		return "Burning"
	case Bloom:
		return "Bloom"
	case Quicken:
		return "Quicken"
	case Crystallize:
		return "Crystallize"
	case Swirl:
		return "Swirl"
	default:
		return "None"
	}
}

// SecondaryKind enumerates the follow-up effects a reaction can queue
// beyond its bonus damage (spec.md §4.4 reaction table).
type SecondaryKind int

const (
	SecNone SecondaryKind = iota
	SecPierceOffField              // N piercing damage to every off-field enemy character
	SecForwardSwapOpponent         // force the opponent's active character forward
	SecFreezeTarget                // attach FrozenStatus to the damaged target
	SecSummonBurningFlame          // create the Burning Flame summon for the attacker's side
	SecCombatStatusDendroCore      // create DendroCoreStatus combat status for the attacker's side
	SecCombatStatusCatalyzingField // create CatalyzingFieldStatus combat status for the attacker's side
	SecCombatStatusCrystallize     // create CrystallizeStatus combat status for the attacker's side
	SecSwirlPierce                 // 1 piercing of the swirled element to every other off-field character
)

// Secondary describes one queued follow-up, with Amount used by the
// piercing variants.
type Secondary struct {
	Kind    SecondaryKind
	Amount  int
	Element Element // for SecSwirlPierce, SecSummonBurningFlame's element tag
}

// reactionKey orders a pair of aurable elements into a fixed key so the
// lookup table only needs one entry per unordered pair.
type reactionKey struct{ a, b Element }

type reactionSpec struct {
	reaction   Reaction
	bonus      int
	secondary  []Secondary
	clearsAura bool // every entry in reactionTable clears the aura; Crystallize/Swirl below have their own handling
}

// reactionTable enumerates every two-real-element pairing named in
// spec.md §4.4. Crystallize and Swirl are handled separately below since
// they pair an element with *any* aurable element, not one fixed partner.
var reactionTable = map[reactionKey]reactionSpec{
	{Pyro, Hydro}:     {Vaporize, 2, nil, true},
	{Pyro, Cryo}:      {Melt, 2, nil, true},
	{Pyro, Electro}:   {Overloaded, 2, []Secondary{{Kind: SecForwardSwapOpponent}}, true},
	{Hydro, Electro}:  {ElectroCharged, 1, []Secondary{{Kind: SecPierceOffField, Amount: 1}}, true},
	{Hydro, Cryo}:     {Frozen, 1, []Secondary{{Kind: SecFreezeTarget}}, true},
	{Electro, Cryo}:   {Superconduct, 1, []Secondary{{Kind: SecPierceOffField, Amount: 1}}, true},
	{Dendro, Pyro}:    {Burning, 1, []Secondary{{Kind: SecSummonBurningFlame}}, true},
	{Dendro, Hydro}:   {Bloom, 1, []Secondary{{Kind: SecCombatStatusDendroCore}}, true},
	{Dendro, Electro}: {Quicken, 1, []Secondary{{Kind: SecCombatStatusCatalyzingField}}, true},
}

func orderedKey(a, b Element) reactionKey {
	if _, ok := reactionTable[reactionKey{a, b}]; ok {
		return reactionKey{a, b}
	}
	return reactionKey{b, a}
}

// ResolveReaction consults the incoming damage element against the
// target's current aura. It returns NoReaction (and the aura unchanged,
// with the incoming element freshly attached if aurable and aura has
// room) when no pairing applies.
func ResolveReaction(incoming Element, aura AuraSet) (reaction Reaction, newAura AuraSet, bonus int, secondary []Secondary) {
	if incoming == Physical || incoming == Piercing {
		return NoReaction, aura, 0, nil
	}
	if aura.Empty() {
		return NoReaction, aura.withAttached(incoming), 0, nil
	}
	existing := aura.Elements()[0]
	if existing == incoming {
		return NoReaction, aura, 0, nil
	}

	if incoming == Geo || existing == Geo {
		other := existing
		if existing == Geo {
			other = incoming
		}
		if other.Aurable() {
			return Crystallize, aura.cleared(), 1, []Secondary{{Kind: SecCombatStatusCrystallize, Element: other}}
		}
	}
	if incoming == Anemo || existing == Anemo {
		other := existing
		if existing == Anemo {
			other = incoming
		}
		switch other {
		case Pyro, Hydro, Electro, Cryo:
			return Swirl, aura.cleared(), 0, []Secondary{{Kind: SecSwirlPierce, Amount: 1, Element: other}}
		}
	}

	key := orderedKey(existing, incoming)
	if spec, ok := reactionTable[key]; ok {
		next := aura
		if spec.clearsAura {
			next = aura.cleared()
		}
		return spec.reaction, next, spec.bonus, spec.secondary
	}

	// A pair with no entry above (e.g. Cryo onto Dendro, or Anemo onto
	// Dendro) does not react — attach and move on.
	return NoReaction, aura.withAttached(incoming), 0, nil
}
