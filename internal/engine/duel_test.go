package engine

import "testing"

// newActionState builds a GameState already sitting in PhaseAction with
// both players' first character active, bypassing the RNG-driven
// CardSelect/StartingHandSelect/RollDice phases so scenario tests can set
// up exact preconditions deterministically.
func newActionState(t *testing.T) GameState {
	t.Helper()
	d1 := Deck{Chars: [3]CharacterKind{CharKeqing, CharXingqiu, CharNoelle}}
	d2 := Deck{Chars: [3]CharacterKind{CharKlee, CharKaeya, CharCollei}}
	gs := NewGame(d1, d2, DefaultMode(), 7)
	gs.Phase = PhaseAction
	gs.Round = 1
	gs.ActivePlayer = P1

	p1 := gs.Player1
	p1.ActiveCharacterId = 1
	gs.Player1 = p1

	p2 := gs.Player2
	p2.ActiveCharacterId = 1
	gs.Player2 = p2

	return gs
}

func hasInform(effects []Effect, info Informable, reaction Reaction) bool {
	for _, e := range effects {
		ib, ok := e.(InformBoth)
		if ok && ib.Info == info && ib.Payload.Reaction == reaction {
			return true
		}
	}
	return false
}

// Scenario 1 (spec.md §8 "Vaporize"): Pyro damage into a Hydro aura deals
// the base amount plus the Vaporize bonus, clears the aura, and reports
// the reaction to observers.
func TestScenarioVaporize(t *testing.T) {
	gs := newActionState(t)
	p2 := gs.Player2
	target := p2.Character(1) // Klee, MaxHP 10
	target = target.WithAura(withOnly(Hydro))
	p2 = p2.withCharacter(target)
	gs.Player2 = p2

	dmg := SpecificDamage{
		Source: CharTarget(P1, 1), Target: CharTarget(P2, 1),
		Element: Pyro, Amount: 3, DamageType: DamageFromElementalSkill,
	}
	next, follow, err := dmg.Execute(gs)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := next.Player(P2).Character(1)
	if got.HP != got.MaxHP-5 {
		t.Fatalf("expected HP %d (10 - (3+2)), got %d", got.MaxHP-5, got.HP)
	}
	if !got.Aura.Empty() {
		t.Fatalf("expected aura cleared after Vaporize, got %+v", got.Aura)
	}
	if !hasInform(follow, InfReactionTriggered, Vaporize) {
		t.Fatalf("expected a REACTION_TRIGGERED(Vaporize) informable among %+v", follow)
	}
}

// Scenario 2 (spec.md §8 "DendroCore boost"): a combat-status DendroCore on
// the attacking side adds +2 to the attacker's Electro/Pyro damage and is
// consumed (single use).
func TestScenarioDendroCoreBoost(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	p1.CombatStatuses = p1.CombatStatuses.Add(NewStatusInstance(StatusDendroCore, 1))
	gs.Player1 = p1

	dmg := SpecificDamage{
		Source: CharTarget(P1, 1), Target: CharTarget(P2, 1),
		Element: Electro, Amount: 2, DamageType: DamageFromElementalSkill,
	}
	next, _, err := dmg.Execute(gs)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := next.Player(P2).Character(1)
	if got.HP != got.MaxHP-4 {
		t.Fatalf("expected HP %d (10 - (2+2)), got %d", got.MaxHP-4, got.HP)
	}
	if next.Player(P1).CombatStatuses.Has(StatusDendroCore) {
		t.Fatalf("DendroCore should be consumed after boosting one instance of damage")
	}
}

// Scenario 3 (spec.md §8 "Stacked Crystallize shield"): a 2-stack
// Crystallize shield absorbs damage point-for-point and is removed once
// its stacks are exhausted.
func TestScenarioStackedCrystallizeShield(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	p1.CombatStatuses = p1.CombatStatuses.Add(NewStatusInstance(StatusCrystallizeShield, 2))
	gs.Player1 = p1

	dmg := SpecificDamage{
		Source: CharTarget(P2, 1), Target: CharTarget(P1, 1),
		Element: Anemo, Amount: 3, DamageType: DamageFromElementalSkill,
	}
	next, _, err := dmg.Execute(gs)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := next.Player(P1).Character(1)
	if got.HP != got.MaxHP-1 {
		t.Fatalf("expected HP %d (10 - (3-2)), got %d", got.MaxHP-1, got.HP)
	}
	if next.Player(P1).CombatStatuses.Has(StatusCrystallizeShield) {
		t.Fatalf("shield should be fully consumed once its 2 stacks absorb 2 damage")
	}
}

// Scenario 4 (spec.md §8 "Prepare-skill cancellation on swap"): a
// prepare-skill status is removed outright by SELF_SWAP rather than
// surviving to trigger a follow-up CastSkill.
func TestScenarioPrepareSkillCancelledOnSwap(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	c := p1.Character(1)
	c = c.WithStatuses(c.Statuses.Add(NewStatusInstance(StatusRockPaperScissorsComboPaper, 2)))
	p1 = p1.withCharacter(c)
	gs.Player1 = p1

	swap := SwapCharacter{Pid: P1, To: 2}
	next, follow, err := swap.Execute(gs)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	next = pushEffects(next, follow)
	final, err := AutoStep(next)
	if err != nil {
		t.Fatalf("AutoStep: %v", err)
	}

	from := final.Player(P1).Character(1)
	if from.Statuses.Has(StatusRockPaperScissorsComboPaper) {
		t.Fatalf("prepare-skill status must be removed by SELF_SWAP, not carried over")
	}
	if from.HP != from.MaxHP {
		t.Fatalf("no skill should have been cast as a result of the swap, HP changed to %d", from.HP)
	}
}

// Scenario 5 (spec.md §8 "Talent refund at round start"): Keqing's talent
// equipment grants 1 Energy on round start when she is sitting at 0.
func TestScenarioTalentRefundAtRoundStart(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	c := p1.Character(1) // Keqing
	c = c.WithEnergy(0)
	c = c.WithStatuses(c.Statuses.Add(NewStatusInstance(StatusEngulfingLightning, 0)))
	p1 = p1.withCharacter(c)
	gs.Player1 = p1

	trigger := AllStatusTriggerer{Pid: P1, Signal: RoundStart}
	next, follow, err := trigger.Execute(gs)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	next = pushEffects(next, follow)
	final, err := AutoStep(next)
	if err != nil {
		t.Fatalf("AutoStep: %v", err)
	}

	got := final.Player(P1).Character(1)
	if got.Energy != 1 {
		t.Fatalf("expected Engulfing Lightning to refund 1 energy at round start, got %d", got.Energy)
	}
}

// Scenario 6 (spec.md §8 "Lethal kill with defeated swap"): damage that
// drops a character to 0 HP marks it defeated, fires CHARACTER_DEATH, and
// the engine demands a death swap from that player before any other action
// is legal.
func TestScenarioLethalKillTriggersDeathSwap(t *testing.T) {
	gs := newActionState(t)
	p2 := gs.Player2
	c := p2.Character(1)
	c = c.WithHP(1)
	p2 = p2.withCharacter(c)
	gs.Player2 = p2

	dmg := SpecificDamage{
		Source: CharTarget(P1, 1), Target: CharTarget(P2, 1),
		Element: Physical, Amount: 3, DamageType: DamageFromNormalAttack,
	}
	next, follow, err := dmg.Execute(gs)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !hasInform(follow, InfCharacterDeath, NoReaction) {
		t.Fatalf("expected a CHARACTER_DEATH informable among %+v", follow)
	}

	next = pushEffects(next, follow)
	final, err := AutoStep(next)
	if err != nil {
		t.Fatalf("AutoStep: %v", err)
	}

	if final.Player(P2).Character(1).Alive {
		t.Fatalf("target should be defeated")
	}
	wait, pid := WaitingFor(final)
	if wait != WaitDeathSwap || pid != P2 {
		t.Fatalf("expected to be waiting on P2's death swap, got %v/%v", wait, pid)
	}

	if _, err := ActionStep(final, PlayerAction{Kind: ActionEndRound, Pid: P2}); err == nil {
		t.Fatalf("expected every other P2 action to be rejected while a death swap is pending")
	}
	afterSwap, err := ActionStep(final, PlayerAction{Kind: ActionDeathSwap, Pid: P2, SwapTo: 2})
	if err != nil {
		t.Fatalf("death swap should be legal: %v", err)
	}
	if afterSwap.Player(P2).ActiveCharacterId != 2 {
		t.Fatalf("expected P2's active character to become 2 after the death swap")
	}
}

func TestActionSwapPaysDiceAndPassesTurn(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	p1.Dice = NewDicePool(map[Element]int{Omni: 1})
	gs.Player1 = p1

	next, err := ActionStep(gs, PlayerAction{
		Kind: ActionSwap, Pid: P1, SwapTo: 2,
		Dice: NewDicePool(map[Element]int{Omni: 1}),
	})
	if err != nil {
		t.Fatalf("ActionStep: %v", err)
	}
	next, err = AutoStep(next)
	if err != nil {
		t.Fatalf("AutoStep: %v", err)
	}
	if next.Player(P1).ActiveCharacterId != 2 {
		t.Fatalf("expected active character 2 after swap, got %d", next.Player(P1).ActiveCharacterId)
	}
	if next.Player(P1).Dice.Num() != 0 {
		t.Fatalf("expected the single die spent on the swap, got %d left", next.Player(P1).Dice.Num())
	}
	if next.ActivePlayer != P2 {
		t.Fatalf("expected turn to pass to P2 after P1's swap")
	}
}

func TestActionSkillRejectsBurstWithoutFullEnergy(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	p1.Dice = NewDicePool(map[Element]int{Electro: 3})
	gs.Player1 = p1

	_, err := ActionStep(gs, PlayerAction{
		Kind: ActionSkill, Pid: P1, Char: 1, Skill: 3,
		Dice: NewDicePool(map[Element]int{Electro: 3}),
	})
	if err == nil {
		t.Fatalf("expected burst cast at 0 energy to be rejected")
	}
}

func TestActionSkillRejectsFrozenCaster(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	c := p1.Character(1)
	c = c.WithStatuses(c.Statuses.Add(NewStatusInstance(StatusFrozen, 1)))
	p1 = p1.withCharacter(c)
	p1.Dice = NewDicePool(map[Element]int{Electro: 3})
	gs.Player1 = p1

	_, err := ActionStep(gs, PlayerAction{
		Kind: ActionSkill, Pid: P1, Char: 1, Skill: 1,
		Dice: NewDicePool(map[Element]int{Electro: 3}),
	})
	if err == nil {
		t.Fatalf("expected a frozen active character to be unable to cast a skill")
	}
}
