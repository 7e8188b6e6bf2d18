package engine

import "testing"

// buildRichState populates every field encodePlayer/decodePlayer touch so
// the round-trip test actually exercises each one, not just the zero value.
func buildRichState(t *testing.T) GameState {
	t.Helper()
	gs := newActionState(t)

	p1 := gs.Player1
	p1.HandCards = p1.HandCards.Add(CardAquilaFavoniaCard, 2)
	p1.Dice = NewDicePool(map[Element]int{Pyro: 2, Omni: 1})
	p1.DeclaredEnd = true
	p1.CardRedrawChances = 0
	p1.DiceRerollChances = 1
	p1.CombatStatuses = p1.CombatStatuses.Add(NewStatusInstance(StatusDendroCore, 1))
	p1.Summons = p1.Summons.Add(NewStatusInstance(StatusDendroCore, 2))
	p1.Supports = p1.Supports.Place(0, NewStatusInstance(StatusDendroCore, 3))
	p1.HiddenStatuses = p1.HiddenStatuses.Add(NewStatusInstance(statusMustDeathSwap, 1))
	c0 := p1.Characters[0]
	c0.Statuses = c0.Statuses.Add(NewStatusInstance(StatusFrozen, 1))
	p1.Characters[0] = c0
	gs.Player1 = p1

	p2 := gs.Player2
	p2.HandCards = p2.HandCards.Add(CardAquilaFavoniaCard, 1)
	p2.Dice = NewDicePool(map[Element]int{Hydro: 3})
	gs.Player2 = p2

	return gs
}

func assertViewsEqual(t *testing.T, label string, got, want PartialView) {
	t.Helper()
	if got.Round != want.Round || got.ActivePlayer != want.ActivePlayer || got.Phase != want.Phase ||
		got.Over != want.Over || got.Winner != want.Winner || got.Draw != want.Draw ||
		got.RngSeed != want.RngSeed || got.RngCounter != want.RngCounter {
		t.Fatalf("%s: top-level fields differ:\n got=%+v\nwant=%+v", label, got, want)
	}
	assertPlayerViewsEqual(t, label+" player1", got.Player1, want.Player1)
	assertPlayerViewsEqual(t, label+" player2", got.Player2, want.Player2)
}

func assertPlayerViewsEqual(t *testing.T, label string, got, want PlayerView) {
	t.Helper()
	if len(got.Characters) != len(want.Characters) {
		t.Fatalf("%s: character count got %d want %d", label, len(got.Characters), len(want.Characters))
	}
	for i := range got.Characters {
		gc, wc := got.Characters[i], want.Characters[i]
		if gc.Id != wc.Id || gc.Kind != wc.Kind || gc.HP != wc.HP || gc.Energy != wc.Energy || gc.Alive != wc.Alive {
			t.Fatalf("%s: character %d scalar fields differ: got %+v want %+v", label, i, gc, wc)
		}
		if !equalElements(gc.Aura, wc.Aura) {
			t.Fatalf("%s: character %d aura differs: got %v want %v", label, i, gc.Aura, wc.Aura)
		}
		if !equalStatuses(gc.Statuses, wc.Statuses) {
			t.Fatalf("%s: character %d statuses differ: got %+v want %+v", label, i, gc.Statuses, wc.Statuses)
		}
	}
	if got.ActiveCharacterId != want.ActiveCharacterId || got.HandCount != want.HandCount ||
		got.DeckCount != want.DeckCount || got.DeclaredEnd != want.DeclaredEnd ||
		got.CardRedrawChances != want.CardRedrawChances || got.DiceRerollChances != want.DiceRerollChances {
		t.Fatalf("%s: scalar fields differ: got %+v want %+v", label, got, want)
	}
	if len(got.Dice) != len(want.Dice) {
		t.Fatalf("%s: dice map size differs: got %v want %v", label, got.Dice, want.Dice)
	}
	for e, n := range want.Dice {
		if got.Dice[e] != n {
			t.Fatalf("%s: dice[%v] got %d want %d", label, e, got.Dice[e], n)
		}
	}
	if !equalStatuses(got.CombatStatuses, want.CombatStatuses) {
		t.Fatalf("%s: combat statuses differ: got %+v want %+v", label, got.CombatStatuses, want.CombatStatuses)
	}
	if !equalStatuses(got.Summons, want.Summons) {
		t.Fatalf("%s: summons differ: got %+v want %+v", label, got.Summons, want.Summons)
	}
	if len(got.Supports) != len(want.Supports) {
		t.Fatalf("%s: supports differ: got %+v want %+v", label, got.Supports, want.Supports)
	}
	for i := range want.Supports {
		if got.Supports[i].Sid != want.Supports[i].Sid || got.Supports[i].Inst.Kind != want.Supports[i].Inst.Kind ||
			got.Supports[i].Inst.Usages != want.Supports[i].Inst.Usages {
			t.Fatalf("%s: support %d differs: got %+v want %+v", label, i, got.Supports[i], want.Supports[i])
		}
	}
	if (got.HandCards == nil) != (want.HandCards == nil) {
		t.Fatalf("%s: hand card reveal-nilness differs: got %v want %v", label, got.HandCards, want.HandCards)
	}
	for k, n := range want.HandCards {
		if got.HandCards[k] != n {
			t.Fatalf("%s: hand card %v got %d want %d", label, k, got.HandCards[k], n)
		}
	}
	if len(got.DeckCards) != len(want.DeckCards) {
		t.Fatalf("%s: deck cards length differs: got %d want %d", label, len(got.DeckCards), len(want.DeckCards))
	}
	if (got.InitialDeck == nil) != (want.InitialDeck == nil) {
		t.Fatalf("%s: initial deck reveal-nilness differs", label)
	}
	if got.InitialDeck != nil {
		if got.InitialDeck.Chars != want.InitialDeck.Chars {
			t.Fatalf("%s: initial deck chars differ: got %v want %v", label, got.InitialDeck.Chars, want.InitialDeck.Chars)
		}
		for k, n := range want.InitialDeck.Cards {
			if got.InitialDeck.Cards[k] != n {
				t.Fatalf("%s: initial deck card %v got %d want %d", label, k, got.InitialDeck.Cards[k], n)
			}
		}
	}
	if !equalStatuses(got.HiddenStatuses, want.HiddenStatuses) {
		t.Fatalf("%s: hidden statuses differ: got %+v want %+v", label, got.HiddenStatuses, want.HiddenStatuses)
	}
}

func equalElements(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStatuses(a, b []StatusInstance) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Usages != b[i].Usages {
			return false
		}
	}
	return true
}

// TestEncodingRoundTripRevealBoth is the property spec.md §8 names:
// decoding(encoding(s)) reconstructs a PartialView identical to ViewOf(s,
// plan) for a RevealBoth plan against a stack-empty state.
func TestEncodingRoundTripRevealBoth(t *testing.T) {
	gs := buildRichState(t)
	plan := EncodingPlan{RevealBoth: true}

	want := ViewOf(gs, plan)
	got, err := Decoding(Encoding(gs, plan), plan)
	if err != nil {
		t.Fatalf("Decoding: %v", err)
	}
	assertViewsEqual(t, "RevealBoth", got, want)
}

// TestEncodingRoundTripPartialReveal checks that a plan scoped to one
// viewer hides the opponent's hand, deck contents, and hidden statuses on
// both the ViewOf and the Decoding side identically, while still
// round-tripping everything public.
func TestEncodingRoundTripPartialReveal(t *testing.T) {
	gs := buildRichState(t)
	plan := EncodingPlan{Viewer: P1}

	want := ViewOf(gs, plan)
	if want.Player2.HandCards != nil || want.Player2.DeckCards != nil || want.Player2.InitialDeck != nil || want.Player2.HiddenStatuses != nil {
		t.Fatalf("expected ViewOf to hide player2's private fields from P1's viewpoint, got %+v", want.Player2)
	}

	got, err := Decoding(Encoding(gs, plan), plan)
	if err != nil {
		t.Fatalf("Decoding: %v", err)
	}
	assertViewsEqual(t, "PartialReveal", got, want)
}

// TestEncodingTruncatedRejects confirms a short/corrupt vector is rejected
// rather than silently decoded into a zero-valued view.
func TestEncodingTruncatedRejects(t *testing.T) {
	gs := buildRichState(t)
	plan := EncodingPlan{RevealBoth: true}
	vec := Encoding(gs, plan)
	if _, err := Decoding(vec[:len(vec)/2], plan); err == nil {
		t.Fatalf("expected truncated vector to be rejected")
	}
}
