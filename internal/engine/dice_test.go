package engine

import "testing"

func TestDicePoolAddSub(t *testing.T) {
	p := NewDicePool(map[Element]int{Pyro: 2, Omni: 1})
	q := NewDicePool(map[Element]int{Pyro: 1, Hydro: 3})

	sum := p.Add(q)
	if sum.Of(Pyro) != 3 || sum.Of(Hydro) != 3 || sum.Of(Omni) != 1 {
		t.Fatalf("unexpected sum: %+v", sum.Counts())
	}

	diff := sum.Sub(q)
	if diff.Of(Pyro) != 2 || diff.Of(Hydro) != 0 || diff.Of(Omni) != 1 {
		t.Fatalf("unexpected diff: %+v", diff.Counts())
	}

	// Sub never goes negative.
	over := NewDicePool(map[Element]int{Pyro: 1}).Sub(NewDicePool(map[Element]int{Pyro: 5}))
	if over.Of(Pyro) != 0 {
		t.Fatalf("Sub should clamp at zero, got %d", over.Of(Pyro))
	}
}

func TestJustSatisfyExact(t *testing.T) {
	req := DiceRequirement{Specific: map[Element]int{Pyro: 1}, SameElem: 2, Any: 1}

	// Specific + 2 Hydro (SameElem) + 1 Cryo (Any) = exact.
	payment := NewDicePool(map[Element]int{Pyro: 1, Hydro: 2, Cryo: 1})
	if !payment.JustSatisfy(req) {
		t.Fatalf("expected exact payment to satisfy req")
	}

	// One extra die anywhere breaks exactness (payment idempotence, spec.md §8).
	over := NewDicePool(map[Element]int{Pyro: 1, Hydro: 2, Cryo: 2})
	if over.JustSatisfy(req) {
		t.Fatalf("overpayment must not satisfy JustSatisfy")
	}

	// Omni dice can cover a SameElem shortfall.
	withOmni := NewDicePool(map[Element]int{Pyro: 1, Hydro: 1, Omni: 1, Cryo: 1})
	if !withOmni.JustSatisfy(req) {
		t.Fatalf("Omni dice should be able to cover a SameElem shortfall")
	}
}

func TestBasicallySatisfySpendsOmniLast(t *testing.T) {
	req := DiceRequirement{SameElem: 2}
	pool := NewDicePool(map[Element]int{Hydro: 1, Omni: 3})

	payment, ok := pool.BasicallySatisfy(req)
	if !ok {
		t.Fatalf("pool should be able to cover req")
	}
	if payment.Of(Omni) != 1 || payment.Of(Hydro) != 1 {
		t.Fatalf("expected real dice spent before Omni, got %+v", payment.Counts())
	}

	insufficient := NewDicePool(map[Element]int{Hydro: 1})
	if _, ok := insufficient.BasicallySatisfy(req); ok {
		t.Fatalf("should not satisfy req with insufficient dice")
	}
}

func TestSmartSelectionPrefersNoCharacterTier(t *testing.T) {
	precedence := DefaultPrecedence(map[Element]bool{Electro: true})
	pool := NewDicePool(map[Element]int{Electro: 2, Cryo: 2})
	req := DiceRequirement{Any: 2}

	payment, ok := pool.SmartSelection(req, precedence)
	if !ok {
		t.Fatalf("pool should satisfy req")
	}
	// Cryo has no matching character in `precedence`, so it should be spent
	// before the Electro dice the player actually needs for Electro skills.
	if payment.Of(Cryo) != 2 || payment.Of(Electro) != 0 {
		t.Fatalf("expected Cryo spent first, got %+v", payment.Counts())
	}
}

func TestLessAnyAndLessElemDiscounts(t *testing.T) {
	req := DiceRequirement{SameElem: 2, Any: 3}
	discounted := req.LessAny(4)
	if discounted.Any != 0 || discounted.SameElem != 1 {
		t.Fatalf("LessAny should drain Any before SameElem, got %+v", discounted)
	}

	elemReq := DiceRequirement{Specific: map[Element]int{Pyro: 3}}
	less := elemReq.LessElem(Pyro, 1)
	if less.Specific[Pyro] != 2 {
		t.Fatalf("expected Pyro specific cost reduced to 2, got %d", less.Specific[Pyro])
	}
	// Original must be untouched (value semantics).
	if elemReq.Specific[Pyro] != 3 {
		t.Fatalf("LessElem must not mutate the receiver")
	}
}
