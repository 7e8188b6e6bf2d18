package engine

// This file implements the top-level phase state machine (spec.md §4.2):
// CardSelect -> StartingHandSelect -> RollDice -> Action -> End -> next
// round (back to RollDice) or GameEnd.

// WaitKind tells a client what shape of input AutoStep has stopped for.
type WaitKind int

const (
	WaitNone WaitKind = iota
	WaitCardSelect
	WaitStartingHandSelect
	WaitRerollChoice
	WaitPlayerAction
	WaitDeathSwap
	WaitGameOver
)

func (k WaitKind) String() string {
	switch k {
	case WaitCardSelect:
		return "card_select"
	case WaitStartingHandSelect:
		return "starting_hand_select"
	case WaitRerollChoice:
		return "reroll_choice"
	case WaitPlayerAction:
		return "player_action"
	case WaitDeathSwap:
		return "death_swap"
	case WaitGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// WaitingFor reports what the engine needs next: either player input (and
// from whom) or WaitNone if the effect stack still has pending work for
// auto_step/one_step to drain.
func WaitingFor(gs GameState) (WaitKind, Pid) {
	if gs.Over {
		return WaitGameOver, P1
	}
	if !gs.EffectStack.Empty() {
		return WaitNone, P1
	}
	switch gs.Phase {
	case PhaseCardSelect:
		return WaitCardSelect, gs.ActivePlayer
	case PhaseStartingHandSelect:
		return WaitStartingHandSelect, gs.ActivePlayer
	case PhaseRollDice:
		return WaitRerollChoice, gs.ActivePlayer
	case PhaseAction:
		if needsDeathSwap(gs, P1) {
			return WaitDeathSwap, P1
		}
		if needsDeathSwap(gs, P2) {
			return WaitDeathSwap, P2
		}
		if gs.Player(P1).DeclaredEnd && gs.Player(P2).DeclaredEnd {
			return WaitNone, P1 // round-end effects still need to run
		}
		return WaitPlayerAction, gs.ActivePlayer
	default:
		return WaitNone, P1
	}
}

func needsDeathSwap(gs GameState, pid Pid) bool {
	return gs.Player(pid).HiddenStatuses.Has(statusMustDeathSwap)
}

// beginCardSelect deals the opening hand, grants each player their one
// match-opening redraw chance (spec.md §4.2/§6 redraw_chances), and leaves
// the state parked in PhaseCardSelect for each player's redraw decision —
// advancePhaseIfDue only moves on to PhaseStartingHandSelect once both
// have called Redraw or ConfirmCardSelect.
func beginCardSelect(gs GameState) GameState {
	gs.Round = 1
	for _, pid := range []Pid{P1, P2} {
		p := gs.Player(pid)
		p.CardRedrawChances = gs.Mode.RedrawChances
		p.CardSelectDone = false
		gs = gs.withPlayer(pid, p)
		gs = drawCards(gs, pid, gs.Mode.InitialDraw)
	}
	return gs
}

// Redraw discards the named cards from pid's opening hand and draws that
// many replacements from the deck, spending pid's one CardSelect mulligan.
func Redraw(gs GameState, pid Pid, discard []CardKind) (GameState, error) {
	if gs.Phase != PhaseCardSelect {
		return gs, reject(IllegalAction, "not in card-select phase")
	}
	p := gs.Player(pid)
	if p.CardSelectDone {
		return gs, reject(IllegalAction, "%s has already finished card select", pid)
	}
	if len(discard) > 0 && p.CardRedrawChances <= 0 {
		return gs, reject(IllegalAction, "no redraw chances remaining")
	}
	for _, k := range discard {
		if p.HandCards.Count(k) <= 0 {
			return gs, reject(IllegalAction, "card not in hand")
		}
		p.HandCards = p.HandCards.Add(k, -1)
	}
	if len(discard) > 0 {
		p.CardRedrawChances--
	}
	p.CardSelectDone = true
	gs = gs.withPlayer(pid, p)
	gs = drawCards(gs, pid, len(discard))
	return gs, nil
}

// ConfirmCardSelect marks pid done with the card-select step without
// discarding anything, keeping the dealt opening hand as-is.
func ConfirmCardSelect(gs GameState, pid Pid) (GameState, error) {
	return Redraw(gs, pid, nil)
}

// StartRound draws 2 cards, refreshes per-round allowances, rolls dice,
// and advances to PhaseRollDice. It is the RoundStart handler the reducer
// invokes when leaving PhaseEnd (round 1's opening hand and redraw are
// handled separately by beginCardSelect/Redraw, since the mulligan only
// happens once at the start of a match, not every round).
func StartRound(gs GameState) (GameState, []Effect, error) {
	gs.Round++
	for _, pid := range []Pid{P1, P2} {
		p := gs.Player(pid)
		p.DeclaredEnd = false
		p.PhaseAct = ActPassiveWait
		p.DiceRerollChances = gs.Mode.RerollChances
		gs = gs.withPlayer(pid, p)
		gs = drawCards(gs, pid, 2)
	}

	var follow []Effect
	follow = append(follow, AllStatusTriggerer{Pid: gs.ActivePlayer, Signal: RoundStart})
	follow = append(follow, AllStatusTriggerer{Pid: gs.ActivePlayer.Other(), Signal: RoundStart})
	gs = rollDice(gs, P1)
	gs = rollDice(gs, P2)
	gs.Phase = PhaseRollDice
	return gs, follow, nil
}

// drawCards moves up to n cards from the top of pid's deck into hand,
// capped at the mode's hand-size cap.
func drawCards(gs GameState, pid Pid, n int) GameState {
	p := gs.Player(pid)
	for i := 0; i < n && len(p.DeckCards) > 0; i++ {
		if p.HandCards.Total() >= gs.Mode.CardsPerHandCap {
			break
		}
		top := p.DeckCards[len(p.DeckCards)-1]
		p.DeckCards = p.DeckCards[:len(p.DeckCards)-1]
		p.HandCards = p.HandCards.Add(top, 1)
	}
	return gs.withPlayer(pid, p)
}

// rollDice rolls a fresh DicePerRoll-sized pool for pid and runs the
// ROLL_DICE_INIT preprocessor stage (Vanarana-style fixing) before storing
// it, per spec.md §4.4.
func rollDice(gs GameState, pid Pid) GameState {
	counts := map[Element]int{}
	rng := gs.Rng
	for i := 0; i < gs.Mode.DicePerRoll; i++ {
		var e Element
		e, rng = rollOneDie(rng)
		counts[e]++
	}
	gs.Rng = rng
	pool := NewDicePool(counts)

	ev := PreprocessEvent{Kind: EvDiceRollInit, Roll: DiceRollInitPEvent{Dice: pool}}
	gs, ev = RunPreprocess(gs, pid, ev, RollDiceInit)
	p := gs.Player(pid)
	p.Dice = ev.Roll.Dice
	return gs.withPlayer(pid, p)
}

func rollOneDie(rng RandomSource) (Element, RandomSource) {
	choices := append(append([]Element{}, RealElements...), Omni)
	next, n := rng.Intn(len(choices))
	return choices[n], next
}

// RerollDice keeps the dice counted in keep (element -> count kept) and
// rerolls the rest of pid's dice, consuming one of their remaining reroll
// chances.
func RerollDice(gs GameState, pid Pid, keep map[Element]int) (GameState, error) {
	p := gs.Player(pid)
	if p.DiceRerollChances <= 0 {
		return gs, reject(IllegalAction, "no reroll chances remaining")
	}
	kept := NewDicePool(keep)
	discard := p.Dice.Num() - kept.Num()
	if discard < 0 {
		return gs, reject(IllegalAction, "kept dice exceed held dice")
	}
	rng := gs.Rng
	counts := kept.Counts()
	for i := 0; i < discard; i++ {
		var e Element
		e, rng = rollOneDie(rng)
		counts[e]++
	}
	gs.Rng = rng
	p.Dice = NewDicePool(counts)
	p.DiceRerollChances--
	return gs.withPlayer(pid, p), nil
}

// AdvanceFromRollDice moves the game out of PhaseRollDice into
// PhaseAction once both players have finished any rerolling. It changes
// only the phase; ConfirmRollDice, its caller, then makes P1 the active
// player.
func AdvanceFromRollDice(gs GameState) GameState {
	gs.Phase = PhaseAction
	return gs
}

// EndRoundPhase queues the End-phase triggers (spec.md §4.2):
// END_ROUND_CHECK_OUT, then ROUND_END, for each player. The winner check,
// the draw/refresh and the move back to RollDice happen afterwards in
// advancePhaseIfDue's PhaseEnd step (CheckWinner, then StartRound).
func EndRoundPhase(gs GameState) (GameState, []Effect, error) {
	var follow []Effect
	follow = append(follow, AllStatusTriggerer{Pid: P1, Signal: EndRoundCheckOut})
	follow = append(follow, AllStatusTriggerer{Pid: P2, Signal: EndRoundCheckOut})
	follow = append(follow, AllStatusTriggerer{Pid: P1, Signal: RoundEnd})
	follow = append(follow, AllStatusTriggerer{Pid: P2, Signal: RoundEnd})
	return gs, follow, nil
}

// CheckWinner marks gs.Over/Winner/Draw once a player has no alive
// characters left (spec.md §4.2 game-end condition), consulted after every
// death-check batch and at the end of the End phase.
func CheckWinner(gs GameState) GameState {
	p1Dead := gs.Player(P1).AllDefeated()
	p2Dead := gs.Player(P2).AllDefeated()
	switch {
	case p1Dead && p2Dead:
		gs.Over, gs.Draw = true, true
	case p1Dead:
		gs.Over, gs.Winner = true, P2
	case p2Dead:
		gs.Over, gs.Winner = true, P1
	}
	return gs
}
