package engine

// This file registers every StatusKind declared in status_kind.go. Each
// descriptor mirrors one concrete status class from the reference
// implementation's status.py (DESIGN.md), translated into the
// Preprocess/Inform/React/Update contract of spec.md §4.5.

func init() {
	registerStatus(&StatusDescriptor{
		Kind: statusMustDeathSwap, Family: FamilyPlayerHidden,
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusChargedAttack, Family: FamilyPlayerHidden,
		Update: func(existing, incoming StatusInstance) StatusInstance { return incoming },
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusPlungeAttackReady, Family: FamilyCharacterHidden,
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			switch sig {
			case SelfSwap, RoundEnd:
				return nil, inst, false
			}
			return nil, inst, true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusDeathThisRound, Family: FamilyPlayerHidden,
		IsDuration: true, MaxUsages: 1,
	})

	// --- Equipment ---

	registerStatus(&StatusDescriptor{
		Kind: StatusEngulfingLightning, Family: FamilyEquipmentTalent,
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != RoundStart {
				return nil, inst, true
			}
			next := inst.WithExtra("usedThisRound", 0)
			c := gs.Player(self.Pid).Character(CharId(self.Id))
			if c.Energy == 0 {
				return []Effect{EnergyRecharge{Target: self, Amount: 1}}, next, true
			}
			return nil, next, true
		},
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != SkillSig || ev.Kind != EvCost || inst.Get("usedThisRound") != 0 {
				return ev, inst, true
			}
			if ev.Cost.Req.SameElem > 0 {
				ev.Cost.Req.SameElem--
			} else if ev.Cost.Req.Any > 0 {
				ev.Cost.Req.Any--
			}
			return ev, inst.WithExtra("usedThisRound", 1), true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusAquilaFavonia, Family: FamilyEquipmentWeapon,
		Inform: func(gs GameState, self StaticTarget, inst StatusInstance, info Informable, payload InformPayload) StatusInstance {
			if info != InfDmgDealt || payload.Source != self {
				return inst
			}
			return inst
		},
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != PostDmg || detail.Actor != self {
				return nil, inst, true
			}
			return []Effect{RecoverHP{Target: self, Amount: 1}}, inst, true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusCrimsonWitchOfFlames, Family: FamilyEquipmentArtifact,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != DmgAmountPlus || ev.Kind != EvDamage || ev.Damage.Source != self {
				return ev, inst, true
			}
			if ev.Damage.Element == Pyro {
				ev.Damage.Damage++
			}
			switch ev.Damage.Reaction {
			case Vaporize, Melt:
				ev.Damage.Damage++
			}
			return ev, inst, true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusThunderingFury, Family: FamilyEquipmentArtifact,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			switch sig {
			case DmgAmountPlus:
				if ev.Kind == EvDamage && ev.Damage.Source == self {
					if ev.Damage.Element == Electro {
						ev.Damage.Damage++
					}
					switch ev.Damage.Reaction {
					case Overloaded, ElectroCharged, Superconduct, Quicken:
						ev.Damage.Damage++
					}
				}
			case SkillCostAny:
				if ev.Kind == EvCost && ev.Cost.Req.Any > 0 {
					ev.Cost.Req.Any--
				}
			}
			return ev, inst, true
		},
	})

	// --- Character statuses ---

	registerStatus(&StatusDescriptor{
		Kind: StatusFrozen, Family: FamilyCharacter,
		IsDuration: true, MaxUsages: 1, AutoDestroy: true,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != DmgAmountPlus || ev.Kind != EvDamage || ev.Damage.Target != self {
				return ev, inst, true
			}
			if ev.Damage.Element == Pyro || ev.Damage.Element == Physical {
				ev.Damage.Damage += 2
				return ev, inst, false
			}
			return ev, inst, true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusRockPaperScissorsComboPaper, Family: FamilyCharacter,
		MaxUsages: 2, AutoDestroy: true,
		PrepareSkill: skillIdPtr(2),
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig == SelfSwap {
				return nil, inst, false
			}
			if sig != ActPreSkill || detail.Character != CharId(self.Id) {
				return nil, inst, true
			}
			next := inst.withUsages(inst.Usages - 1)
			follow := []Effect{CastSkill{Pid: self.Pid, Char: CharId(self.Id), Skill: *descriptorFor(inst.Kind).PrepareSkill}}
			return follow, next, next.Usages > 0
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusMushroomPizza, Family: FamilyCharacter,
		IsDuration: true, MaxUsages: 2,
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != RoundEnd {
				return nil, inst, true
			}
			return []Effect{RecoverHP{Target: self, Amount: 1}}, inst, true
		},
		Update: usageUpdate(2),
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusPyroInfusion, Family: FamilyCharacter,
		IsDuration: true, MaxUsages: 2,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != DmgElement || ev.Kind != EvDamage || ev.Damage.Source != self {
				return ev, inst, true
			}
			if ev.Damage.Element == Physical {
				ev.Damage.Element = Pyro
			}
			return ev, inst, true
		},
	})

	// --- Combat (team-wide) statuses ---

	registerStatus(&StatusDescriptor{
		Kind: StatusDendroCore, Family: FamilyCombat,
		MaxUsages: 1, AutoDestroy: true,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != DmgAmountPlus || ev.Kind != EvDamage || ev.Damage.Source.Pid != self.Pid {
				return ev, inst, true
			}
			switch ev.Damage.Element {
			case Pyro, Electro:
				ev.Damage.Damage += 2
				return ev, inst, false
			}
			return ev, inst, true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusCatalyzingField, Family: FamilyCombat,
		MaxUsages: 2, AutoDestroy: true,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != DmgAmountPlus || ev.Kind != EvDamage || ev.Damage.Source.Pid != self.Pid {
				return ev, inst, true
			}
			switch ev.Damage.Element {
			case Electro, Dendro:
				ev.Damage.Damage++
				return ev, inst.withUsages(inst.Usages - 1), inst.Usages-1 > 0
			}
			return ev, inst, true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusCrystallizeShield, Family: FamilyCombat,
		MaxUsages: 2, AutoDestroy: true, Update: usageUpdate(2),
		Preprocess: shieldPreprocess(false),
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusRainSwordShield, Family: FamilyCombat,
		MaxUsages: 1, AutoDestroy: true,
		Preprocess: shieldPreprocess(true),
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusFreshWindOfFreedom, Family: FamilyCombat,
		MaxUsages: 2, AutoDestroy: true,
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != PostSkill || detail.Actor.Pid != self.Pid {
				return nil, inst, true
			}
			next := inst.withUsages(inst.Usages - 1)
			return []Effect{ConsecutiveAction{Pid: self.Pid}}, next, next.Usages > 0
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusChangingShifts, Family: FamilyCombat,
		MaxUsages: 1, AutoDestroy: true,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != SwapCostAny || ev.Kind != EvCost {
				return ev, inst, true
			}
			if ev.Cost.Req.Any > 0 {
				ev.Cost.Req.Any--
				return ev, inst, false
			}
			return ev, inst, true
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: StatusFerventFlamesResonance, Family: FamilyCombat,
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != DmgAmountPlus || ev.Kind != EvDamage || ev.Damage.Source.Pid != self.Pid {
				return ev, inst, true
			}
			switch ev.Damage.DamageType {
			case DamageFromElementalSkill, DamageFromElementalBurst, DamageFromNormalAttack:
			default:
				return ev, inst, true
			}
			switch ev.Damage.Reaction {
			case Vaporize, Melt, Overloaded, Burning:
				ev.Damage.Damage += 3
			}
			return ev, inst, true
		},
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != RoundEnd {
				return nil, inst, true
			}
			return nil, inst, false
		},
	})

	// --- Summons ---

	registerStatus(&StatusDescriptor{
		Kind: SummonBurningFlame, Family: FamilySummon,
		MaxUsages: 1, Update: usageUpdate(1),
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != RoundEnd {
				return nil, inst, true
			}
			follow := []Effect{ReferredDamage{Source: self, TargetPid: self.Pid.Other(), Dynamic: DynActive, Element: Pyro, Amount: 1, DamageType: DamageFromSummon}}
			return follow, inst, false
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: SummonOz, Family: FamilySummon,
		MaxUsages: 2, Update: usageUpdate(2),
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != RoundEnd {
				return nil, inst, true
			}
			next := inst.withUsages(inst.Usages - 1)
			follow := []Effect{ReferredDamage{Source: self, TargetPid: self.Pid.Other(), Dynamic: DynActive, Element: Electro, Amount: 1, DamageType: DamageFromSummon}}
			return follow, next, next.Usages > 0
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: SummonOceanicMimicFrog, Family: FamilySummon,
		MaxUsages: 2, Update: usageUpdate(2),
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != RoundEnd {
				return nil, inst, true
			}
			next := inst.withUsages(inst.Usages - 1)
			follow := []Effect{ReferredDamage{Source: self, TargetPid: self.Pid.Other(), Dynamic: DynActive, Element: Hydro, Amount: 1, DamageType: DamageFromSummon}}
			return follow, next, next.Usages > 0
		},
	})

	// --- Supports ---

	registerStatus(&StatusDescriptor{
		Kind: SupportVanarana, Family: FamilySupport,
		MaxUsages: 2, Update: usageUpdate(2),
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != RollDiceInit || ev.Kind != EvDiceRollInit || inst.Usages <= 0 {
				return ev, inst, true
			}
			counts := ev.Roll.Dice.Counts()
			fixed, remaining := 0, inst.Usages
			for _, e := range RealElements {
				for counts[e] > 0 && remaining > 0 {
					counts[e]--
					counts[Omni]++
					fixed++
					remaining--
				}
			}
			if fixed == 0 {
				return ev, inst, true
			}
			ev.Roll.Dice = NewDicePool(counts)
			return ev, inst.withUsages(inst.Usages - fixed), inst.Usages-fixed > 0
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: SupportLiyueHarborWharf, Family: FamilySupport,
		MaxUsages: 3, Update: usageUpdate(3),
		React: func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
			if sig != RoundStart || inst.Usages <= 0 {
				return nil, inst, true
			}
			return nil, inst.withUsages(inst.Usages - 1), inst.Usages-1 > 0
		},
	})

	registerStatus(&StatusDescriptor{
		Kind: SupportXudongTavern, Family: FamilySupport,
		MaxUsages: 3, Update: usageUpdate(3),
		Preprocess: func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
			if sig != Card1CostAny || ev.Kind != EvCost || inst.Usages <= 0 {
				return ev, inst, true
			}
			if ev.Cost.Req.Any > 0 {
				ev.Cost.Req.Any--
				return ev, inst.withUsages(inst.Usages - 1), inst.Usages-1 > 0
			}
			return ev, inst, true
		},
	})

	// --- Revival ---

	registerStatus(&StatusDescriptor{
		Kind: StatusTalismanOfRevival, Family: FamilyEquipmentArtifact,
		MaxUsages: 1, Revivable: true, ReviveAmount: 1,
	})
}

func skillIdPtr(id SkillId) *SkillId { return &id }

// shieldPreprocess builds the DMG_AMOUNT_MINUS handler shared by the two
// shield shapes (spec.md §4.4): a fixed shield blocks up to a flat amount
// per hit and always consumes exactly one use; a stacked shield's usage
// count IS the remaining absorption points, consumed 1-for-1 with damage.
func shieldPreprocess(fixed bool) func(GameState, StaticTarget, StatusInstance, PreprocessEvent, Preprocessable) (PreprocessEvent, StatusInstance, bool) {
	return func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool) {
		if sig != DmgAmountMinus || ev.Kind != EvDamage || ev.Damage.Target.Pid != self.Pid {
			return ev, inst, true
		}
		if ev.Damage.Damage <= 0 {
			return ev, inst, true
		}
		if fixed {
			amt := inst.Get("amount")
			if amt <= 0 {
				amt = 1
			}
			absorb := amt
			if absorb > ev.Damage.Damage {
				absorb = ev.Damage.Damage
			}
			ev.Damage.Damage -= absorb
			return ev, inst, false
		}
		absorb := inst.Usages
		if absorb > ev.Damage.Damage {
			absorb = ev.Damage.Damage
		}
		ev.Damage.Damage -= absorb
		next := inst.withUsages(inst.Usages - absorb)
		return ev, next, next.Usages > 0
	}
}
