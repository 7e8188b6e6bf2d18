package engine

// CardKind identifies a card archetype in the static catalogue.
type CardKind int

// CardCategory distinguishes the broad shapes of card the action
// generator and deck legality rules need to treat differently.
type CardCategory int

const (
	CardEvent CardCategory = iota // one-shot effect, then discard
	CardTalentEquipment
	CardWeaponEquipment
	CardArtifactEquipment
	CardSupport
	CardFood
	CardArcaneLegend
)

// CardDescriptor is the static data+script for one card, the "Card" half
// of the card catalogue's Card/CardInstance split (mirrors the teacher's
// own Card/CardEffect).
type CardDescriptor struct {
	Kind        CardKind
	Name        string
	Description string
	Category    CardCategory
	Cost        DiceRequirement

	// RequiresCharacter restricts play to decks containing this character
	// (talent cards).
	RequiresCharacter CharacterKind
	HasCharacterReq   bool

	// RequiresElement restricts a deck to fielding at least 2 characters of
	// this element (spec.md §6 deck legality: "Faction/element-specific
	// cards (e.g. resonance cards) require ≥ 2 characters of that
	// element"), checked by ValidateDeck rather than at play time.
	RequiresElement Element
	HasElementReq   bool

	// Legal reports whether the card can currently be played (distinct
	// from being affordable, which the dice solver checks separately).
	Legal func(gs GameState, pid Pid) bool

	// Play returns the effects produced by playing the card. target, when
	// non-nil, is the player-chosen target (equip destination, support
	// slot, etc).
	Play func(gs GameState, pid Pid, target *StaticTarget) []Effect

	// EquipStatus is the StatusKind this card attaches when played
	// (talent/weapon/artifact); zero for event/support cards, which
	// instead create their effects/support entity directly in Play.
	EquipStatus StatusKind
	// SupportStatus is the StatusKind placed into the Supports container
	// for CardSupport cards.
	SupportStatus StatusKind
}

// CardCatalogue is the CardKind -> CardDescriptor table.
var CardCatalogue = map[CardKind]*CardDescriptor{}

func registerCard(d *CardDescriptor) {
	CardCatalogue[d.Kind] = d
}

func CardDesc(kind CardKind) *CardDescriptor {
	d, ok := CardCatalogue[kind]
	if !ok {
		panic("engine: card kind not registered")
	}
	return d
}
