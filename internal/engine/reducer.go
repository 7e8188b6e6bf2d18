package engine

// This file is the non-blocking engine API of spec.md §6: one_step pops and
// executes a single pending effect, auto_step drains the stack until
// WaitingFor reports real player input is needed, and action_step validates
// and applies one PlayerAction before draining.

// OneStep pops the top of the effect stack and executes it, returning the
// advanced state and whether anything was popped.
func OneStep(gs GameState) (GameState, bool, error) {
	top, rest := gs.EffectStack.Pop()
	if top == nil {
		return gs, false, nil
	}
	gs.EffectStack = rest
	next, follow, err := top.Execute(gs)
	if err != nil {
		return gs, true, err
	}
	next = pushEffects(next, follow)
	return CheckWinner(next), true, nil
}

// AutoStep drains the effect stack until it is empty or an invariant is
// violated, then runs any phase-transition plumbing that becomes due
// (round end -> next round, or cascading into dice roll / action phase).
func AutoStep(gs GameState) (GameState, error) {
	for {
		if gs.Over {
			return gs, nil
		}
		if !gs.EffectStack.Empty() {
			next, _, err := OneStep(gs)
			if err != nil {
				return gs, err
			}
			gs = next
			continue
		}

		advanced, err := advancePhaseIfDue(gs)
		if err != nil {
			return gs, err
		}
		if advanced.Phase == gs.Phase && advanced.Round == gs.Round && advanced.EffectStack.Empty() {
			return advanced, nil
		}
		gs = advanced
	}
}

// advancePhaseIfDue checks whether the current phase is finished and, if
// so, pushes the transition into the next one.
func advancePhaseIfDue(gs GameState) (GameState, error) {
	switch gs.Phase {
	case PhaseCardSelect:
		if gs.Round == 0 {
			return beginCardSelect(gs), nil
		}
		if gs.Player(P1).CardSelectDone && gs.Player(P2).CardSelectDone {
			next := gs
			next.Phase = PhaseStartingHandSelect
			return next, nil
		}
		return gs, nil
	case PhaseStartingHandSelect:
		if gs.Player(P1).ActiveCharacterId != 0 && gs.Player(P2).ActiveCharacterId != 0 {
			next := gs
			next = rollDice(next, P1)
			next = rollDice(next, P2)
			follow := []Effect{
				AllStatusTriggerer{Pid: P1, Signal: InitGameStart},
				AllStatusTriggerer{Pid: P2, Signal: InitGameStart},
			}
			next.Phase = PhaseRollDice
			next = pushEffects(next, follow)
			return next, nil
		}
		return gs, nil
	case PhaseRollDice:
		return gs, nil // waits for explicit reroll/confirm from both players
	case PhaseAction:
		if gs.Player(P1).DeclaredEnd && gs.Player(P2).DeclaredEnd {
			next, follow, _ := EndRoundPhase(gs)
			next.Phase = PhaseEnd
			next = pushEffects(next, follow)
			return next, nil
		}
		return gs, nil
	case PhaseEnd:
		next := CheckWinner(gs)
		if next.Over {
			return next, nil
		}
		advanced, follow, err := StartRound(next)
		if err != nil {
			return gs, err
		}
		advanced = pushEffects(advanced, follow)
		return advanced, nil
	default:
		return gs, nil
	}
}

// ConfirmRollDice marks pid done with the RollDice phase (no more
// rerolls); once both players have confirmed, the phase advances to
// Action with P1 acting first each round (spec.md §4.2).
func ConfirmRollDice(gs GameState, pid Pid) (GameState, error) {
	if gs.Phase != PhaseRollDice {
		return gs, reject(IllegalAction, "not in roll-dice phase")
	}
	p := gs.Player(pid)
	p.DiceRerollChances = 0
	gs = gs.withPlayer(pid, p)
	if gs.Player(P1).DiceRerollChances == 0 && gs.Player(P2).DiceRerollChances == 0 {
		gs = AdvanceFromRollDice(gs)
		gs.ActivePlayer = P1
	}
	return gs, nil
}

// SelectActiveCharacter is the StartingHandSelect / DeathSwap action
// choice: set pid's active character immediately (no dice cost, no
// priority pass).
func SelectActiveCharacter(gs GameState, pid Pid, cid CharId) (GameState, error) {
	p := gs.Player(pid)
	c := p.Character(cid)
	if !c.Alive {
		return gs, reject(IllegalAction, "cannot select a defeated character")
	}
	p.ActiveCharacterId = cid
	gs = gs.withPlayer(pid, p)
	return gs, nil
}

// ActionStep validates and applies a on PlayerAction, returning the state
// with its effects pushed (not yet drained) and an error if the action is
// illegal. Callers typically follow with AutoStep.
func ActionStep(gs GameState, a PlayerAction) (GameState, error) {
	if gs.Over {
		return gs, reject(IllegalAction, "game is over")
	}
	if needsDeathSwap(gs, P1) || needsDeathSwap(gs, P2) {
		if a.Kind != ActionDeathSwap {
			return gs, reject(IllegalAction, "a death swap is pending")
		}
	} else if gs.Phase != PhaseAction {
		return gs, reject(IllegalAction, "not in action phase")
	}
	if a.Kind != ActionDeathSwap && a.Pid != gs.ActivePlayer {
		return gs, reject(IllegalAction, "not %s's turn", a.Pid)
	}

	switch a.Kind {
	case ActionDeathSwap:
		return actionDeathSwap(gs, a)
	case ActionEndRound:
		return actionEndRound(gs, a)
	case ActionSwap:
		return actionSwap(gs, a)
	case ActionSkill:
		return actionSkill(gs, a)
	case ActionCard:
		return actionCard(gs, a)
	case ActionElementalTuning:
		return actionElementalTuning(gs, a)
	default:
		return gs, reject(IllegalAction, "unknown action kind")
	}
}

func actionDeathSwap(gs GameState, a PlayerAction) (GameState, error) {
	if !needsDeathSwap(gs, a.Pid) {
		return gs, reject(IllegalAction, "%s has no pending death swap", a.Pid)
	}
	p := gs.Player(a.Pid)
	c := p.Character(a.SwapTo)
	if !c.Alive {
		return gs, reject(IllegalAction, "cannot death-swap into a defeated character")
	}
	p.ActiveCharacterId = a.SwapTo
	p.HiddenStatuses = p.HiddenStatuses.Remove(statusMustDeathSwap)
	gs = gs.withPlayer(a.Pid, p)
	return gs, nil
}

func actionEndRound(gs GameState, a PlayerAction) (GameState, error) {
	p := gs.Player(a.Pid)
	if p.DeclaredEnd {
		return gs, reject(IllegalAction, "already declared end")
	}
	p.DeclaredEnd = true
	gs = gs.withPlayer(a.Pid, p)
	gs = pushEffects(gs, []Effect{AllStatusTriggerer{Pid: a.Pid, Signal: SelfDeclareEndRound}})
	other := a.Pid.Other()
	if !gs.Player(other).DeclaredEnd {
		gs.ActivePlayer = other
	}
	return gs, nil
}

// baseSwapCost is the flat 1-Any-die cost every normal swap pays before
// discounts (spec.md §4.1).
var baseSwapCost = DiceRequirement{Any: 1}

func actionSwap(gs GameState, a PlayerAction) (GameState, error) {
	p := gs.Player(a.Pid)
	c := p.Character(a.SwapTo)
	if !c.Alive {
		return gs, reject(IllegalAction, "cannot swap into a defeated character")
	}
	active, ok := p.ActiveCharacter()
	if ok && active.Id == a.SwapTo {
		return gs, reject(IllegalAction, "already active")
	}
	req := ResolveSwapCost(gs, a.Pid, baseSwapCost)
	pool, err := PayDice(p.Dice, a.Dice, req)
	if err != nil {
		return gs, err
	}
	p.Dice = pool
	gs = gs.withPlayer(a.Pid, p)
	gs = pushEffects(gs, []Effect{
		SwapCharacter{Pid: a.Pid, To: a.SwapTo},
		AllStatusTriggerer{Pid: a.Pid, Signal: SwapEvent1, Detail: SignalDetail{Character: a.SwapTo}},
		AllStatusTriggerer{Pid: a.Pid.Other(), Signal: SwapEvent2, Detail: SignalDetail{Character: a.SwapTo}},
		TurnEnd{Pid: a.Pid},
	})
	return gs, nil
}

func actionSkill(gs GameState, a PlayerAction) (GameState, error) {
	p := gs.Player(a.Pid)
	active, ok := p.ActiveCharacter()
	if !ok || active.Id != a.Char {
		return gs, reject(IllegalAction, "character %d is not active", a.Char)
	}
	if active.Statuses.Has(StatusFrozen) {
		return gs, reject(IllegalAction, "character is frozen and cannot act")
	}
	skill := active.Descriptor().Skill(a.Skill)
	if skill.Kind == SkillElementalBurst && active.Energy < active.MaxEnergy {
		return gs, reject(IllegalAction, "energy not full for elemental burst")
	}
	req := ResolveSkillCost(gs, a.Pid, skill.Cost)
	pool, err := PayDice(p.Dice, a.Dice, req)
	if err != nil {
		return gs, err
	}
	p.Dice = pool
	gs = gs.withPlayer(a.Pid, p)

	var follow []Effect
	follow = append(follow, AllStatusTriggerer{Pid: a.Pid, Signal: ActPreSkill, Detail: SignalDetail{Character: a.Char}})
	if skill.Kind == SkillElementalBurst {
		follow = append(follow, EnergyDrain{Target: CharTarget(a.Pid, a.Char), Amount: active.MaxEnergy})
	} else if skill.Kind == SkillNormalAttack {
		follow = append(follow, EnergyRecharge{Target: CharTarget(a.Pid, a.Char), Amount: 1})
	}
	follow = append(follow, CastSkill{Pid: a.Pid, Char: a.Char, Skill: a.Skill})
	follow = append(follow, TurnEnd{Pid: a.Pid})
	gs = pushEffects(gs, follow)
	return gs, nil
}

func actionCard(gs GameState, a PlayerAction) (GameState, error) {
	p := gs.Player(a.Pid)
	if p.HandCards.Count(a.Card) <= 0 {
		return gs, reject(IllegalAction, "card not in hand")
	}
	desc := CardDesc(a.Card)
	if desc.HasCharacterReq {
		found := false
		for _, c := range p.Characters {
			if c.Kind == desc.RequiresCharacter {
				found = true
				break
			}
		}
		if !found {
			return gs, reject(IllegalAction, "required character not on team")
		}
	}
	if desc.Legal != nil && !desc.Legal(gs, a.Pid) {
		return gs, reject(IllegalAction, "card is not currently playable")
	}

	req := ResolveCardCost(gs, a.Pid, desc.Cost)
	pool, err := PayDice(p.Dice, a.Dice, req)
	if err != nil {
		return gs, err
	}
	p.Dice = pool
	p.HandCards = p.HandCards.Add(a.Card, -1)
	gs = gs.withPlayer(a.Pid, p)

	var follow []Effect
	if desc.Play != nil {
		follow = append(follow, desc.Play(gs, a.Pid, a.Target)...)
	}
	if desc.EquipStatus != StatusNone && a.Target != nil {
		follow = append(follow, AddStatus{Target: *a.Target, Inst: NewStatusInstance(desc.EquipStatus, 1)})
	}
	if desc.Category == CardSupport {
		sid := p.Supports.FreeSlot()
		if sid == -1 {
			return gs, reject(IllegalAction, "support zone is full")
		}
		p.Supports = p.Supports.Place(sid, NewStatusInstance(desc.SupportStatus, descriptorFor(desc.SupportStatus).MaxUsages))
		gs = gs.withPlayer(a.Pid, p)
	}
	follow = append(follow, AllStatusTriggerer{Pid: a.Pid, Signal: PostCard, Detail: SignalDetail{}})
	follow = append(follow, TurnEnd{Pid: a.Pid})
	gs = pushEffects(gs, follow)
	return gs, nil
}

// actionElementalTuning discards a card (not the active hand requirement)
// to reroll exactly one non-Omni die into the active character's element
// (spec.md §4.1); it never passes the turn.
func actionElementalTuning(gs GameState, a PlayerAction) (GameState, error) {
	p := gs.Player(a.Pid)
	if p.HandCards.Count(a.TuneCard) <= 0 {
		return gs, reject(IllegalAction, "card not in hand")
	}
	if a.TuneDie == Omni {
		return gs, reject(IllegalAction, "cannot tune an Omni die")
	}
	if p.Dice.Of(a.TuneDie) <= 0 {
		return gs, reject(IllegalAction, "die not held")
	}
	active, ok := p.ActiveCharacter()
	if !ok {
		return gs, reject(IllegalAction, "no active character")
	}
	p.HandCards = p.HandCards.Add(a.TuneCard, -1)
	p.Dice = p.Dice.Sub(NewDicePool(map[Element]int{a.TuneDie: 1})).Add(NewDicePool(map[Element]int{active.Descriptor().Element: 1}))
	gs = gs.withPlayer(a.Pid, p)
	gs.ActivePlayer = a.Pid
	return gs, nil
}
