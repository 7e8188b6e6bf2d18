package engine

// Signal marks a moment in the turn/round lifecycle that statuses may
// spontaneously react to via React. Statuses subscribe implicitly by
// returning keep=false/no effects for signals they don't care about; a
// descriptor's React is always called and decides for itself (spec.md's
// REACTABLE_SIGNALS set is a pack-level filtering optimization we fold
// into each descriptor instead of a separate subscription table).
type Signal int

const (
	RoundStart Signal = iota
	RoundEnd
	EndRoundCheckOut
	PreAction
	PostAction
	PostDmg
	PostHealing
	PostSkill
	ActPreSkill
	CombatAction
	SelfSwap
	SwapEvent1
	SwapEvent2
	PostCard
	DeathEvent
	InitGameStart
	RevivalGameStart
	SelfDeclareEndRound
	TriggerRevival
	PostAny
	DirectTrigger
	PostStatusRemoval
)

// Informable marks a past event broadcast to statuses that only observe,
// never mutate, the event (spec.md §4.5).
type Informable int

const (
	InfDmgDealt Informable = iota
	InfHealing
	InfReactionTriggered
	InfPreSkillUsage
	InfPostSkillUsage
	InfCharacterDeath
	InfEquipmentDiscarding
	InfSupportRemoval
)

// Preprocessable is the disjoint-phase signal enum for the preprocessor
// pipeline (spec.md §4.4). Each family's stages run strictly left to
// right; no status sees a later stage before an earlier one within the
// same event.
type Preprocessable int

const (
	SwapCostAny Preprocessable = iota
	SwapCostElem
	SwapCostOmni
	SwapSig

	SkillCostAny
	SkillCostElem
	SkillCostOmni
	SkillSig

	Card1CostAny
	Card1CostElem
	Card1CostOmni
	Card2CostAny
	Card2CostElem
	Card2CostOmni
	Card1Sig
	Card2Sig

	DmgElement
	DmgReaction
	DmgAmountPlus
	DmgAmountMinus
	DmgAmountMul

	RollChances
	RollDiceInit
)

// SignalDetail carries the payload attached to a Signal broadcast, e.g.
// which character swapped out on SELF_SWAP. Only the fields relevant to
// the firing signal are populated; React implementations read only what
// their own kind cares about.
type SignalDetail struct {
	Actor     StaticTarget
	Target    StaticTarget
	Reaction  Reaction
	Element   Element
	Amount    int
	Character CharId
}

// InformPayload carries the payload attached to an Informable broadcast.
type InformPayload struct {
	Source  StaticTarget
	Target  StaticTarget
	Reaction Reaction
	Element  Element
	Amount   int
	Skill    SkillId
}
