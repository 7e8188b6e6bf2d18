package engine

// This file covers both halves of spec.md §4.6: cost resolution (running a
// proposed skill/card/swap cost through the preprocessor discount stages
// and checking a chosen dice payment against it, shared by ActionStep's own
// per-kind handlers in reducer.go) and the action generator
// (GenerateActions), which independently rebuilds every legal PlayerAction
// for a seat by walking the same category/target/payment decision tree the
// spec describes.

// ResolveSwapCost runs the three swap-cost discount stages then the swap
// signal stage, returning the final requirement a player must pay.
func ResolveSwapCost(gs GameState, pid Pid, base DiceRequirement) DiceRequirement {
	return resolveCostStages(gs, pid, base, SwapCostAny, SwapCostElem, SwapCostOmni, SwapSig)
}

// ResolveSkillCost runs the skill-cost discount stages then the skill
// signal stage.
func ResolveSkillCost(gs GameState, pid Pid, base DiceRequirement) DiceRequirement {
	return resolveCostStages(gs, pid, base, SkillCostAny, SkillCostElem, SkillCostOmni, SkillSig)
}

// ResolveCardCost runs the first-card-slot discount stages (Card1); Card2
// exists for the rare two-cost-option card and is resolved the same way by
// callers that need it.
func ResolveCardCost(gs GameState, pid Pid, base DiceRequirement) DiceRequirement {
	return resolveCostStages(gs, pid, base, Card1CostAny, Card1CostElem, Card1CostOmni, Card1Sig)
}

func resolveCostStages(gs GameState, pid Pid, base DiceRequirement, any, elem, omni, sig Preprocessable) DiceRequirement {
	ev := PreprocessEvent{Kind: EvCost, Cost: CostPEvent{Req: base}}
	_, ev = RunPreprocess(gs, pid, ev, any)
	_, ev = RunPreprocess(gs, pid, ev, elem)
	_, ev = RunPreprocess(gs, pid, ev, omni)
	_, ev = RunPreprocess(gs, pid, ev, sig)
	return ev.Cost.Req
}

// PayDice validates that payment exactly satisfies req (spec.md §8
// "payment idempotence": no overpayment, no underpayment) and, if so,
// returns the player's dice pool with payment removed.
func PayDice(pool DicePool, payment DicePool, req DiceRequirement) (DicePool, error) {
	for e, n := range payment.Counts() {
		if pool.Of(e) < n {
			return pool, reject(IllegalAction, "payment uses %d more %s dice than held", n-pool.Of(e), e)
		}
	}
	if !payment.JustSatisfy(req) {
		return pool, reject(IllegalAction, "payment does not exactly satisfy the required cost")
	}
	return pool.Sub(payment), nil
}

// AutoPayDice computes the cheapest payment for req from pool using the
// player's default spend precedence (spec.md §4.1 "smart selection"),
// without requiring the client to specify individual dice (used by
// auto-pay-enabled clients; action_step still accepts an explicit payment
// too).
func AutoPayDice(gs GameState, pid Pid, req DiceRequirement) (DicePool, bool) {
	having := map[Element]bool{}
	for _, c := range gs.Player(pid).Characters {
		if c.Alive {
			having[c.Descriptor().Element] = true
		}
	}
	precedence := DefaultPrecedence(having)
	return gs.Player(pid).Dice.SmartSelection(req, precedence)
}

// ActionCandidate is one leaf of the action_generator decision tree
// (spec.md §4.6): a fully-filled PlayerAction along with the cost it
// resolved against, paid via the player's default precedence so the
// candidate can be submitted to ActionStep as-is.
type ActionCandidate struct {
	Action PlayerAction
	Cost   DiceRequirement
}

// ActionGenerator holds every candidate GenerateActions found legal. An
// action is legal, per spec.md §4.6, iff the generator can yield it; this
// type is that generator's materialized output (this engine has no
// suspend points to make a truly lazy tree worthwhile, so the whole
// decision tree is built eagerly instead of walked incrementally).
type ActionGenerator struct {
	Pid        Pid
	Candidates []ActionCandidate
}

// GenerateActions enumerates every PlayerAction ActionStep would currently
// accept for pid (spec.md §4.6): category choice (death swap takes
// priority, then end-round/swap/skill/card/tuning), sub-choices (target
// character, skill id, card, tuning die), and a dice payment resolved
// through the same cost preprocessor chain ActionStep itself runs, so
// cost-discount statuses are reflected before a candidate is proposed.
// Candidates whose cost can't be paid from the player's current dice are
// dropped rather than yielded with an unpayable Dice field.
func GenerateActions(gs GameState, pid Pid) ActionGenerator {
	gen := ActionGenerator{Pid: pid}
	if gs.Over {
		return gen
	}

	if needsDeathSwap(gs, pid) {
		p := gs.Player(pid)
		for _, c := range p.Characters {
			if c.Alive && c.Id != p.ActiveCharacterId {
				gen.Candidates = append(gen.Candidates, ActionCandidate{
					Action: PlayerAction{Kind: ActionDeathSwap, Pid: pid, SwapTo: c.Id},
				})
			}
		}
		return gen
	}
	if gs.Phase != PhaseAction || gs.ActivePlayer != pid || gs.Player(pid).DeclaredEnd {
		return gen
	}

	p := gs.Player(pid)
	gen.Candidates = append(gen.Candidates, ActionCandidate{Action: PlayerAction{Kind: ActionEndRound, Pid: pid}})

	active, hasActive := p.ActiveCharacter()

	for _, c := range p.Characters {
		if !c.Alive || (hasActive && c.Id == active.Id) {
			continue
		}
		req := ResolveSwapCost(gs, pid, baseSwapCost)
		if pool, ok := AutoPayDice(gs, pid, req); ok {
			gen.Candidates = append(gen.Candidates, ActionCandidate{
				Action: PlayerAction{Kind: ActionSwap, Pid: pid, SwapTo: c.Id, Dice: pool},
				Cost:   req,
			})
		}
	}

	if hasActive && !active.Statuses.Has(StatusFrozen) {
		for _, skill := range active.Descriptor().Skills {
			if skill.Kind == SkillElementalBurst && active.Energy < active.MaxEnergy {
				continue
			}
			req := ResolveSkillCost(gs, pid, skill.Cost)
			if pool, ok := AutoPayDice(gs, pid, req); ok {
				gen.Candidates = append(gen.Candidates, ActionCandidate{
					Action: PlayerAction{Kind: ActionSkill, Pid: pid, Char: active.Id, Skill: skill.Id, Dice: pool},
					Cost:   req,
				})
			}
		}

		for e, n := range p.Dice.Counts() {
			if n <= 0 || e == Omni {
				continue
			}
			for kind, hn := range p.HandCards {
				if hn <= 0 {
					continue
				}
				gen.Candidates = append(gen.Candidates, ActionCandidate{
					Action: PlayerAction{Kind: ActionElementalTuning, Pid: pid, TuneCard: kind, TuneDie: e},
				})
			}
		}
	}

	for kind, n := range p.HandCards {
		if n <= 0 {
			continue
		}
		desc := CardDesc(kind)
		if desc.HasCharacterReq {
			onTeam := false
			for _, c := range p.Characters {
				if c.Kind == desc.RequiresCharacter {
					onTeam = true
					break
				}
			}
			if !onTeam {
				continue
			}
		}
		if desc.Legal != nil && !desc.Legal(gs, pid) {
			continue
		}
		req := ResolveCardCost(gs, pid, desc.Cost)
		pool, ok := AutoPayDice(gs, pid, req)
		if !ok {
			continue
		}
		for _, target := range cardTargets(pid, p, desc) {
			t := target
			gen.Candidates = append(gen.Candidates, ActionCandidate{
				Action: PlayerAction{Kind: ActionCard, Pid: pid, Card: kind, Target: t, Dice: pool},
				Cost:   req,
			})
		}
	}

	return gen
}

// cardTargets enumerates the targets a card's one Target slot may hold:
// an equipment card must name a living character to equip (restricted to
// the same character for talent cards); every other category plays
// untargeted.
func cardTargets(pid Pid, p PlayerState, desc *CardDescriptor) []*StaticTarget {
	switch desc.Category {
	case CardTalentEquipment, CardWeaponEquipment, CardArtifactEquipment:
		var out []*StaticTarget
		for _, c := range p.Characters {
			if !c.Alive {
				continue
			}
			if desc.Category == CardTalentEquipment && c.Kind != desc.RequiresCharacter {
				continue
			}
			t := CharTarget(pid, c.Id)
			out = append(out, &t)
		}
		return out
	default:
		return []*StaticTarget{nil}
	}
}
