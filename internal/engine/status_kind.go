package engine

// StatusKind is the identity of a concrete status/summon/support type.
// A Statuses container may hold at most one instance of a given kind
// (spec.md §3 invariant 6).
type StatusKind int

const (
	StatusNone StatusKind = iota

	// Player/character hidden statuses.
	StatusChargedAttack     // PlayerHiddenStatus: parity tracker for the "charged attack" bonus
	StatusPlungeAttackReady // CharacterHiddenStatus: plunge-attack eligibility
	StatusDeathThisRound    // PlayerHiddenStatus: a character of this player died this round

	// Equipment.
	StatusEngulfingLightning   // talent: round-start energy refund at 0 Energy, skill cost discount
	StatusAquilaFavonia        // weapon: on-hit heal
	StatusCrimsonWitchOfFlames // artifact: Pyro/Vaporize/Melt booster
	StatusThunderingFury       // artifact: Electro/reaction booster, Overloaded discount

	// Character statuses.
	StatusFrozen                      // Frozen aura status: skip a turn
	StatusRockPaperScissorsComboPaper // PrepareSkillStatus: 2-turn combo finisher
	StatusMushroomPizza               // healing-over-time
	StatusPyroInfusion                // _InfusionStatus variant

	// Combat (team-wide) statuses.
	StatusDendroCore             // Bloom reaction combat status
	StatusCatalyzingField        // Quicken reaction combat status
	StatusCrystallizeShield      // StackedShieldStatus from Crystallize
	StatusRainSwordShield        // FixedShieldStatus support card
	StatusFreshWindOfFreedom     // fast-action-granting combat status
	StatusChangingShifts         // free-swap-once combat status
	StatusFerventFlamesResonance // Pyro elemental resonance combat status

	// Summons.
	SummonBurningFlame
	SummonOz
	SummonOceanicMimicFrog

	// Supports.
	SupportVanarana
	SupportLiyueHarborWharf
	SupportXudongTavern

	// Revival.
	StatusTalismanOfRevival

	// Internal bookkeeping hidden status: set by RequireDeathSwap, cleared
	// once the DeathSwap action resolves.
	statusMustDeathSwap
)

func (k StatusKind) String() string {
	if name, ok := statusNames[k]; ok {
		return name
	}
	return "Unknown"
}

var statusNames = map[StatusKind]string{
	StatusChargedAttack:               "Charged Attack",
	StatusPlungeAttackReady:           "Plunge Attack Ready",
	StatusDeathThisRound:              "Death This Round",
	StatusEngulfingLightning:          "Engulfing Lightning",
	StatusAquilaFavonia:               "Aquila Favonia",
	StatusCrimsonWitchOfFlames:        "Crimson Witch of Flames",
	StatusThunderingFury:              "Thundering Fury",
	StatusFrozen:                      "Frozen",
	StatusRockPaperScissorsComboPaper: "Rock-Paper-Scissors Combo: Paper",
	StatusMushroomPizza:               "Mushroom Pizza",
	StatusPyroInfusion:                "Pyro Elemental Infusion",
	StatusDendroCore:                  "Dendro Core",
	StatusCatalyzingField:             "Catalyzing Field",
	StatusCrystallizeShield:           "Crystallize",
	StatusRainSwordShield:             "Rain Sword",
	StatusFreshWindOfFreedom:          "Fresh Wind of Freedom",
	StatusChangingShifts:              "Changing Shifts",
	StatusFerventFlamesResonance:      "Elemental Resonance: Fervent Flames",
	SummonBurningFlame:                "Burning Flame",
	SummonOz:                          "Oz",
	SummonOceanicMimicFrog:            "Oceanic Mimic Frog",
	SupportVanarana:                   "Vanarana",
	SupportLiyueHarborWharf:           "Liyue Harbor Wharf",
	SupportXudongTavern:               "Xudong's Tavern",
	StatusTalismanOfRevival:           "Talisman of Revival",
}

// StatusFamily is the abstract category every concrete status belongs to
// (spec.md §4.5); it governs which container a status is added to and
// which iteration-order bucket the preprocessor visits it in.
type StatusFamily int

const (
	FamilyPlayerHidden StatusFamily = iota
	FamilyCharacterHidden
	FamilyEquipmentTalent
	FamilyEquipmentWeapon
	FamilyEquipmentArtifact
	FamilyCharacter
	FamilyCombat
	FamilySummon
	FamilySupport
)
