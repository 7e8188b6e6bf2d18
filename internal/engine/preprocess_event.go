package engine

// PreprocessEvent is the payload a status's Preprocess method rewrites.
// Only one of the embedded event kinds is populated per call, matching the
// PreprocessableEvent union from spec.md §9 design notes; Go has no sum
// types, so the active variant is tagged explicitly.
type PreprocessEventKind int

const (
	EvDamage PreprocessEventKind = iota
	EvCost
	EvAction
	EvDiceRollInit
	EvRollChance
)

type PreprocessEvent struct {
	Kind PreprocessEventKind

	Damage DmgPEvent
	Cost   CostPEvent
	Action ActionPEvent
	Roll   DiceRollInitPEvent
	Chance RollChancePEvent
}

// DmgPEvent is the in-flight damage event threaded through DMG_ELEMENT →
// DMG_REACTION → DMG_AMOUNT_PLUS → DMG_AMOUNT_MINUS → DMG_AMOUNT_MUL
// (spec.md §4.4).
type DmgPEvent struct {
	Source      StaticTarget
	Target      StaticTarget
	Element     Element
	Damage      int
	Reaction    Reaction
	DamageType  DamageType
}

// DamageType distinguishes skill/summon/reaction-follow-up/status-tick
// damage so preprocessors can restrict themselves (e.g. weapon boosts only
// apply to the owner's own normal-attack damage).
type DamageType int

const (
	DamageFromNormalAttack DamageType = iota
	DamageFromElementalSkill
	DamageFromElementalBurst
	DamageFromSummon
	DamageFromReactionFollowUp
	DamageFromStatus
)

// CostPEvent is the in-flight cost event for swap/skill/card payments: a
// DiceRequirement being whittled down by discount statuses (talents,
// artifacts, combat statuses like Changing Shifts) before the player pays.
type CostPEvent struct {
	Req DiceRequirement
}

// ActionPEvent is the in-flight action-legality/choice event (reserved for
// statuses that restrict or redirect actions, e.g. taunt-style effects).
type ActionPEvent struct {
	Actor StaticTarget
}

// DiceRollInitPEvent carries the freshly rolled dice so that supports like
// Vanarana can turn some of them into Omni dice before the player sees
// the roll.
type DiceRollInitPEvent struct {
	Dice DicePool
}

// RollChancePEvent carries the number of rerolls a player has remaining
// this phase.
type RollChancePEvent struct {
	Chances int
}
