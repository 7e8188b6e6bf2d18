package engine

// ResolveDamage runs the nine-step damage pipeline of spec.md §4.4 for one
// SpecificDamage instance: elemental rewrite, reaction consult, additive
// and multiplicative preprocessing stages, final HP application, broadcast
// of the resulting informables, and a trailing death check.
func ResolveDamage(gs GameState, e SpecificDamage) (GameState, []Effect, error) {
	p := gs.Player(e.Target.Pid)
	target := p.Character(CharId(e.Target.Id))
	if !target.Alive && e.DamageType != DamageFromReactionFollowUp {
		return gs, nil, nil
	}

	ev := PreprocessEvent{Kind: EvDamage, Damage: DmgPEvent{
		Source: e.Source, Target: e.Target, Element: e.Element,
		Damage: e.Amount, DamageType: e.DamageType,
	}}

	// Step 1: DMG_ELEMENT — infusions and similar statuses may rewrite the
	// element (e.g. Physical -> Pyro under a Pyro Elemental Infusion).
	gs, ev = RunPreprocess(gs, e.Source.Pid, ev, DmgElement)

	// Step 2: consult the reaction table against the target's current aura,
	// mutate the aura, fold in the reaction's bonus damage, and collect any
	// queued secondary effects (piercing, forced swap, summon creation...).
	p = gs.Player(e.Target.Pid)
	target = p.Character(CharId(e.Target.Id))
	reaction, newAura, bonus, secondary := ResolveReaction(ev.Damage.Element, target.Aura)
	var follow []Effect
	if reaction != NoReaction {
		ev.Damage.Reaction = reaction
		target = target.WithAura(newAura)
		p = p.withCharacter(target)
		gs = gs.withPlayer(e.Target.Pid, p)
		ev.Damage.Damage += bonus
		follow = append(follow, secondaryEffects(gs, e.Target, e.Source.Pid, secondary)...)
	} else if ev.Damage.Element.Aurable() {
		target = target.WithAura(target.Aura.withAttached(ev.Damage.Element))
		p = p.withCharacter(target)
		gs = gs.withPlayer(e.Target.Pid, p)
	}
	gs, ev = RunPreprocess(gs, e.Source.Pid, ev, DmgReaction)

	// Steps 3-5: additive boosts, shields, then multiplicative modifiers.
	gs, ev = RunPreprocess(gs, e.Source.Pid, ev, DmgAmountPlus)
	gs, ev = RunPreprocess(gs, e.Source.Pid, ev, DmgAmountMinus)
	if ev.Damage.Damage < 0 {
		ev.Damage.Damage = 0
	}
	gs, ev = RunPreprocess(gs, e.Source.Pid, ev, DmgAmountMul)
	if ev.Damage.Damage < 0 {
		ev.Damage.Damage = 0
	}

	// Step 6: apply the final amount to HP.
	p = gs.Player(e.Target.Pid)
	target = p.Character(CharId(e.Target.Id))
	wasAlive := target.Alive
	target = target.WithHP(target.HP - ev.Damage.Damage)
	p = p.withCharacter(target)
	gs = gs.withPlayer(e.Target.Pid, p)

	// Step 7: broadcast observer-only informables.
	follow = append(follow, InformBoth{
		Info: InfDmgDealt,
		Payload: InformPayload{
			Source: e.Source, Target: e.Target,
			Reaction: reaction, Element: ev.Damage.Element, Amount: ev.Damage.Damage,
		},
	})
	if reaction != NoReaction {
		follow = append(follow, InformBoth{
			Info: InfReactionTriggered,
			Payload: InformPayload{
				Source: e.Source, Target: e.Target,
				Reaction: reaction, Element: ev.Damage.Element,
			},
		})
	}
	if wasAlive && !target.Alive {
		follow = append(follow, InformBoth{
			Info:    InfCharacterDeath,
			Payload: InformPayload{Target: e.Target},
		})
	}

	// Step 8: a damage batch always ends with a death-swap check.
	follow = append(follow, DeathCheckChecker{})

	return gs, follow, nil
}
