package engine

import "testing"

// TestGenerateActionsAlwaysOffersEndRound checks that end_round is always a
// legal candidate in the Action phase regardless of what else is available
// (spec.md §4.6: EndRound is one of the category choices).
func TestGenerateActionsAlwaysOffersEndRound(t *testing.T) {
	gs := newActionState(t)
	gen := GenerateActions(gs, P1)
	found := false
	for _, c := range gen.Candidates {
		if c.Action.Kind == ActionEndRound {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ActionEndRound among candidates, got %+v", gen.Candidates)
	}
}

// TestGenerateActionsSwapRequiresDice confirms a swap candidate is only
// offered when the player actually holds enough dice to pay the (possibly
// discounted) swap cost, and that the offered payment is exactly affordable.
func TestGenerateActionsSwapRequiresDice(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	p1.Dice = NewDicePool(nil) // no dice: nothing payable should be offered
	gs.Player1 = p1

	gen := GenerateActions(gs, P1)
	for _, c := range gen.Candidates {
		if c.Action.Kind == ActionSwap {
			t.Fatalf("did not expect a payable swap candidate with an empty dice pool: %+v", c)
		}
	}

	p1.Dice = NewDicePool(map[Element]int{Omni: 1})
	gs.Player1 = p1
	gen = GenerateActions(gs, P1)
	sawSwap := false
	for _, c := range gen.Candidates {
		if c.Action.Kind == ActionSwap {
			sawSwap = true
			if c.Action.Dice.Num() != 1 {
				t.Fatalf("expected the 1-die swap cost to be paid exactly, got %+v", c.Action.Dice)
			}
		}
	}
	if !sawSwap {
		t.Fatalf("expected a swap candidate once a payable die is held")
	}
}

// TestGenerateActionsDeathSwapOnlyOffersDeathSwap exercises the
// death-swap-takes-priority branch: when a pending death swap is recorded,
// the generator offers nothing but ActionDeathSwap candidates, one per
// living non-active character.
func TestGenerateActionsDeathSwapOnlyOffersDeathSwap(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	p1.HiddenStatuses = p1.HiddenStatuses.Add(NewStatusInstance(statusMustDeathSwap, 1))
	gs.Player1 = p1

	gen := GenerateActions(gs, P1)
	if len(gen.Candidates) == 0 {
		t.Fatalf("expected at least one death-swap candidate")
	}
	for _, c := range gen.Candidates {
		if c.Action.Kind != ActionDeathSwap {
			t.Fatalf("expected only ActionDeathSwap candidates during a pending death swap, got %+v", c.Action.Kind)
		}
	}
}

// TestGenerateActionsEquipCardTargetsLivingCharacters confirms a hand card
// needing an equip target is expanded into one candidate per eligible
// living character rather than a single untargeted candidate.
func TestGenerateActionsEquipCardTargetsLivingCharacters(t *testing.T) {
	gs := newActionState(t)
	p1 := gs.Player1
	p1.HandCards = p1.HandCards.Add(CardAquilaFavoniaCard, 1)
	p1.Dice = NewDicePool(map[Element]int{Omni: 3})
	gs.Player1 = p1

	gen := GenerateActions(gs, P1)
	targets := map[CharId]bool{}
	for _, c := range gen.Candidates {
		if c.Action.Kind == ActionCard && c.Action.Card == CardAquilaFavoniaCard {
			if c.Action.Target == nil {
				t.Fatalf("expected an equip card candidate to carry a target")
			}
			targets[CharId(c.Action.Target.Id)] = true
		}
	}
	for _, c := range gs.Player1.Characters {
		if c.Alive && !targets[c.Id] {
			t.Fatalf("expected a candidate equipping character %d, got targets %v", c.Id, targets)
		}
	}
}
