package engine

// This file implements signal broadcast and single-status reaction
// dispatch: the React half of the status contract (spec.md §4.5), run in
// the iteration order spec.md §4.4 fixes for preprocessing and which §5
// extends to every multi-source broadcast: active character first, then
// combat, summons (insertion order), supports (slot order), hidden, then
// the same groups for the opponent. Broadcasts never visit an off-field
// character's statuses, even when the signal targets that character.

// reactInstance invokes a single status's React and folds the result
// back into its container according to AutoDestroy/UsageDeltaOnReact.
func reactInstance(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool) {
	d := descriptorFor(inst.Kind)
	if sig == RoundEnd && d.IsDuration {
		inst = inst.withUsages(inst.Usages - 1)
		if inst.Usages <= 0 {
			return nil, inst, false
		}
	}
	if d.React == nil {
		return nil, inst, true
	}
	effects, next, keep := d.React(gs, self, inst, sig, detail)
	if !keep {
		return effects, next, false
	}
	final := next
	if d.UsageDeltaOnReact {
		final = inst.withUsages(inst.Usages + next.Usages)
	}
	if d.AutoDestroy && final.Usages <= 0 {
		return effects, final, false
	}
	return effects, final, true
}

// reactContainer runs every status in a snapshot of statuses (so a status
// added mid-pass is not visited this pass, and one removed mid-pass is
// skipped for the remainder, per spec.md §5) through reactInstance,
// returning the updated container and the combined follow-up effects in
// source order.
func reactContainer(gs GameState, zoneTarget func(StatusKind) StaticTarget, statuses Statuses, sig Signal, detail SignalDetail) (Statuses, []Effect) {
	var follow []Effect
	out := statuses
	for _, kind := range statuses.order {
		inst := statuses.byKind[kind]
		effs, next, keep := reactInstance(gs, zoneTarget(kind), inst, sig, detail)
		follow = append(follow, effs...)
		if !keep {
			out = out.Remove(kind)
		} else {
			out = out.set(next)
		}
	}
	return out, follow
}

func charZoneTarget(pid Pid, cid CharId) func(StatusKind) StaticTarget {
	return func(StatusKind) StaticTarget { return CharTarget(pid, cid) }
}

func combatZoneTarget(pid Pid) func(StatusKind) StaticTarget {
	return func(StatusKind) StaticTarget { return StaticTarget{Pid: pid, Zone: ZoneCombat} }
}

func summonZoneTarget(pid Pid) func(StatusKind) StaticTarget {
	return func(k StatusKind) StaticTarget { return StaticTarget{Pid: pid, Zone: ZoneSummon, Id: int(k)} }
}

func hiddenZoneTarget(pid Pid) func(StatusKind) StaticTarget {
	return func(StatusKind) StaticTarget { return StaticTarget{Pid: pid, Zone: ZoneHidden} }
}

// reactSupports runs every occupied support slot through reactInstance.
func reactSupports(gs GameState, pid Pid, supports Supports, sig Signal, detail SignalDetail) (Supports, []Effect) {
	var follow []Effect
	out := supports
	for _, slot := range supports.InOrder() {
		target := StaticTarget{Pid: pid, Zone: ZoneSupport, Id: slot.Sid}
		effs, next, keep := reactInstance(gs, target, slot.Inst, sig, detail)
		follow = append(follow, effs...)
		if !keep {
			out = out.Remove(slot.Sid)
		} else {
			out = out.Place(slot.Sid, next)
		}
	}
	return out, follow
}

// reactPlayer runs the full per-player container order (active character,
// combat, summons, supports, hidden) for one player.
func reactPlayer(gs GameState, pid Pid, sig Signal, detail SignalDetail) (GameState, []Effect) {
	p := gs.Player(pid)
	var follow []Effect

	if active, ok := p.ActiveCharacter(); ok {
		next, effs := reactContainer(gs, charZoneTarget(pid, active.Id), active.Statuses, sig, detail)
		follow = append(follow, effs...)
		p = p.withCharacter(active.WithStatuses(next))
	}

	nextCombat, effs := reactContainer(gs, combatZoneTarget(pid), p.CombatStatuses, sig, detail)
	follow = append(follow, effs...)
	p.CombatStatuses = nextCombat

	nextSummons, effs := reactContainer(gs, summonZoneTarget(pid), p.Summons, sig, detail)
	follow = append(follow, effs...)
	p.Summons = nextSummons

	nextSupports, effs := reactSupports(gs, pid, p.Supports, sig, detail)
	follow = append(follow, effs...)
	p.Supports = nextSupports

	nextHidden, effs := reactContainer(gs, hiddenZoneTarget(pid), p.HiddenStatuses, sig, detail)
	follow = append(follow, effs...)
	p.HiddenStatuses = nextHidden

	return gs.withPlayer(pid, p), follow
}

// BroadcastSignal fires sig across every one of pid's own status
// containers (the "All" broadcast) and pushes the resulting effects.
func BroadcastSignal(gs GameState, pid Pid, sig Signal, detail SignalDetail) (GameState, []Effect, error) {
	next, follow := reactPlayer(gs, pid, sig, detail)
	return next, follow, nil
}

// BroadcastSignalBoth fires sig for both players, active player first,
// matching the iteration order of spec.md §4.4 ("active ... then the
// opponent's").
func BroadcastSignalBoth(gs GameState, sig Signal, detail SignalDetail) (GameState, []Effect, error) {
	gs, f1 := reactPlayer(gs, gs.ActivePlayer, sig, detail)
	gs, f2 := reactPlayer(gs, gs.ActivePlayer.Other(), sig, detail)
	return gs, append(f1, f2...), nil
}

// reactOne fires sig at a single kind within whatever container target
// addresses (used by TriggerStatus for a status that explicitly targets
// itself, e.g. a PrepareSkillStatus inserting its own CastSkill).
func reactOne(gs GameState, target StaticTarget, kind StatusKind, sig Signal, detail SignalDetail) (GameState, []Effect, error) {
	p := gs.Player(target.Pid)
	switch target.Zone {
	case ZoneCharacter:
		c := p.Character(CharId(target.Id))
		inst, ok := c.Statuses.Get(kind)
		if !ok {
			return gs, nil, nil
		}
		effs, next, keep := reactInstance(gs, target, inst, sig, detail)
		if keep {
			c = c.WithStatuses(c.Statuses.set(next))
		} else {
			c = c.WithStatuses(c.Statuses.Remove(kind))
		}
		return gs.withPlayer(target.Pid, p.withCharacter(c)), effs, nil
	case ZoneCombat:
		inst, ok := p.CombatStatuses.Get(kind)
		if !ok {
			return gs, nil, nil
		}
		effs, next, keep := reactInstance(gs, target, inst, sig, detail)
		if keep {
			p.CombatStatuses = p.CombatStatuses.set(next)
		} else {
			p.CombatStatuses = p.CombatStatuses.Remove(kind)
		}
		return gs.withPlayer(target.Pid, p), effs, nil
	case ZoneHidden:
		inst, ok := p.HiddenStatuses.Get(kind)
		if !ok {
			return gs, nil, nil
		}
		effs, next, keep := reactInstance(gs, target, inst, sig, detail)
		if keep {
			p.HiddenStatuses = p.HiddenStatuses.set(next)
		} else {
			p.HiddenStatuses = p.HiddenStatuses.Remove(kind)
		}
		return gs.withPlayer(target.Pid, p), effs, nil
	case ZoneSummon:
		inst, ok := p.Summons.Get(kind)
		if !ok {
			return gs, nil, nil
		}
		effs, next, keep := reactInstance(gs, target, inst, sig, detail)
		if keep {
			p.Summons = p.Summons.set(next)
		} else {
			p.Summons = p.Summons.Remove(kind)
		}
		return gs.withPlayer(target.Pid, p), effs, nil
	default:
		return gs, nil, nil
	}
}

// secondaryEffects translates a reaction's Secondary list into concrete
// effects. dealer is the reacting damage's source player (whose side gets
// attacker-side summons/combat-statuses); defender is the damaged side
// (whose off-field characters receive piercing follow-ups).
func secondaryEffects(gs GameState, target StaticTarget, dealerPid Pid, secondary []Secondary) []Effect {
	var out []Effect
	defenderPid := target.Pid
	for _, s := range secondary {
		switch s.Kind {
		case SecPierceOffField, SecSwirlPierce:
			for _, cid := range offFieldAliveOrdered(gs, defenderPid, CharId(target.Id)) {
				out = append(out, SpecificDamage{
					Source: target, Target: CharTarget(defenderPid, cid),
					Element: Piercing, Amount: pick(s.Amount, 1), DamageType: DamageFromReactionFollowUp,
				})
			}
		case SecForwardSwapOpponent:
			out = append(out, ForwardSwap{Pid: defenderPid})
		case SecFreezeTarget:
			out = append(out, AddStatus{Target: target, Inst: NewStatusInstance(StatusFrozen, 1)})
		case SecSummonBurningFlame:
			out = append(out, AddStatus{Target: StaticTarget{Pid: dealerPid, Zone: ZoneSummon, Id: int(SummonBurningFlame)}, Inst: NewStatusInstance(SummonBurningFlame, 1)})
		case SecCombatStatusDendroCore:
			out = append(out, AddStatus{Target: StaticTarget{Pid: dealerPid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusDendroCore, 1)})
		case SecCombatStatusCatalyzingField:
			out = append(out, AddStatus{Target: StaticTarget{Pid: dealerPid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusCatalyzingField, 2)})
		case SecCombatStatusCrystallize:
			out = append(out, AddStatus{Target: StaticTarget{Pid: dealerPid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusCrystallizeShield, 1)})
		}
	}
	return out
}

func pick(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// offFieldAliveOrdered returns every alive character other than activeId
// on pid's side, in ascending CharId order (spec.md §9's resolution of the
// swirl/pierce multi-target tie-break).
func offFieldAliveOrdered(gs GameState, pid Pid, activeId CharId) []CharId {
	var out []CharId
	for _, c := range gs.Player(pid).Characters {
		if c.Alive && c.Id != activeId {
			out = append(out, c.Id)
		}
	}
	return out
}
