package engine

// informInstance runs a single status's Inform, applying AutoDestroy the
// same way reactInstance does. Inform never returns effects (spec.md
// §4.5: it only observes and may update its own fields).
func informInstance(gs GameState, self StaticTarget, inst StatusInstance, info Informable, payload InformPayload) (StatusInstance, bool) {
	d := descriptorFor(inst.Kind)
	if d.Inform == nil {
		return inst, true
	}
	next := d.Inform(gs, self, inst, info, payload)
	if d.AutoDestroy && next.Usages <= 0 {
		return next, false
	}
	return next, true
}

func informContainer(statuses Statuses, gs GameState, zoneTarget func(StatusKind) StaticTarget, info Informable, payload InformPayload) Statuses {
	out := statuses
	for _, kind := range statuses.order {
		inst := statuses.byKind[kind]
		next, keep := informInstance(gs, zoneTarget(kind), inst, info, payload)
		if keep {
			out = out.set(next)
		} else {
			out = out.Remove(kind)
		}
	}
	return out
}

func informPlayer(gs GameState, pid Pid, info Informable, payload InformPayload) GameState {
	p := gs.Player(pid)
	if active, ok := p.ActiveCharacter(); ok {
		next := informContainer(active.Statuses, gs, charZoneTarget(pid, active.Id), info, payload)
		p = p.withCharacter(active.WithStatuses(next))
	}
	p.CombatStatuses = informContainer(p.CombatStatuses, gs, combatZoneTarget(pid), info, payload)
	p.Summons = informContainer(p.Summons, gs, summonZoneTarget(pid), info, payload)
	p.HiddenStatuses = informContainer(p.HiddenStatuses, gs, hiddenZoneTarget(pid), info, payload)
	for _, slot := range p.Supports.InOrder() {
		target := StaticTarget{Pid: pid, Zone: ZoneSupport, Id: slot.Sid}
		next, keep := informInstance(gs, target, slot.Inst, info, payload)
		if keep {
			p.Supports = p.Supports.Place(slot.Sid, next)
		} else {
			p.Supports = p.Supports.Remove(slot.Sid)
		}
	}
	return gs.withPlayer(pid, p)
}

// InformBoth broadcasts an Informable to both players' entire state (the
// way "DMG_DEALT" or "REACTION_TRIGGERED" is observable duel-wide).
type InformBoth struct {
	Info    Informable
	Payload InformPayload
}

func (e InformBoth) Execute(gs GameState) (GameState, []Effect, error) {
	gs = informPlayer(gs, P1, e.Info, e.Payload)
	gs = informPlayer(gs, P2, e.Info, e.Payload)
	return gs, nil, nil
}
