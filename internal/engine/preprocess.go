package engine

// This file implements the Preprocess half of the status contract
// (spec.md §4.4): every in-flight event that may be rewritten by statuses
// (damage, cost, roll) is threaded through each active status in the
// fixed iteration order, each one allowed to both rewrite the event and
// update (or remove) itself.

func equipmentFirstOrder(s Statuses) []StatusKind {
	var eq, rest []StatusKind
	for _, k := range s.order {
		switch descriptorFor(k).Family {
		case FamilyEquipmentTalent, FamilyEquipmentWeapon, FamilyEquipmentArtifact:
			eq = append(eq, k)
		default:
			rest = append(rest, k)
		}
	}
	return append(eq, rest...)
}

func preprocessContainer(gs GameState, order []StatusKind, statuses Statuses, zoneTarget func(StatusKind) StaticTarget, ev PreprocessEvent, sig Preprocessable) (Statuses, PreprocessEvent) {
	out := statuses
	for _, kind := range order {
		inst, ok := out.byKind[kind]
		if !ok {
			continue // removed earlier in this same pass
		}
		d := descriptorFor(kind)
		if d.Preprocess == nil {
			continue
		}
		nextEv, next, keep := d.Preprocess(gs, zoneTarget(kind), inst, ev, sig)
		ev = nextEv
		if keep {
			out = out.set(next)
		} else {
			out = out.Remove(kind)
		}
	}
	return out, ev
}

// preprocessPlayer runs the active character (equipment first), combat,
// summons, supports, and hidden containers of pid, threading ev through
// each and folding container updates back into gs as it goes so a later
// status in the same pass observes an up-to-date gs.
func preprocessPlayer(gs GameState, pid Pid, ev PreprocessEvent, sig Preprocessable) (GameState, PreprocessEvent) {
	p := gs.Player(pid)

	if active, ok := p.ActiveCharacter(); ok {
		order := equipmentFirstOrder(active.Statuses)
		next, nextEv := preprocessContainer(gs, order, active.Statuses, charZoneTarget(pid, active.Id), ev, sig)
		ev = nextEv
		p = p.withCharacter(active.WithStatuses(next))
		gs = gs.withPlayer(pid, p)
	}

	nextCombat, nextEv := preprocessContainer(gs, p.CombatStatuses.order, p.CombatStatuses, combatZoneTarget(pid), ev, sig)
	ev = nextEv
	p.CombatStatuses = nextCombat
	gs = gs.withPlayer(pid, p)

	nextSummons, nextEv2 := preprocessContainer(gs, p.Summons.order, p.Summons, summonZoneTarget(pid), ev, sig)
	ev = nextEv2
	p.Summons = nextSummons
	gs = gs.withPlayer(pid, p)

	for _, slot := range p.Supports.InOrder() {
		d := descriptorFor(slot.Inst.Kind)
		if d.Preprocess == nil {
			continue
		}
		target := StaticTarget{Pid: pid, Zone: ZoneSupport, Id: slot.Sid}
		nextEv3, next, keep := d.Preprocess(gs, target, slot.Inst, ev, sig)
		ev = nextEv3
		if keep {
			p.Supports = p.Supports.Place(slot.Sid, next)
		} else {
			p.Supports = p.Supports.Remove(slot.Sid)
		}
		gs = gs.withPlayer(pid, p)
	}

	nextHidden, nextEv4 := preprocessContainer(gs, p.HiddenStatuses.order, p.HiddenStatuses, hiddenZoneTarget(pid), ev, sig)
	ev = nextEv4
	p.HiddenStatuses = nextHidden
	gs = gs.withPlayer(pid, p)

	return gs, ev
}

// RunPreprocess threads ev through sourcePid's containers, then the
// opponent's, then (for damage events only) the off-field target
// character's own container if the target isn't already the active
// character visited above (spec.md §4.4 iteration order).
func RunPreprocess(gs GameState, sourcePid Pid, ev PreprocessEvent, sig Preprocessable) (GameState, PreprocessEvent) {
	gs, ev = preprocessPlayer(gs, sourcePid, ev, sig)
	gs, ev = preprocessPlayer(gs, sourcePid.Other(), ev, sig)

	if ev.Kind == EvDamage {
		tgt := ev.Damage.Target
		p := gs.Player(tgt.Pid)
		if active, ok := p.ActiveCharacter(); !ok || active.Id != CharId(tgt.Id) {
			c := p.Character(CharId(tgt.Id))
			order := equipmentFirstOrder(c.Statuses)
			next, nextEv := preprocessContainer(gs, order, c.Statuses, charZoneTarget(tgt.Pid, c.Id), ev, sig)
			ev = nextEv
			gs = gs.withPlayer(tgt.Pid, p.withCharacter(c.WithStatuses(next)))
		}
	}
	return gs, ev
}
