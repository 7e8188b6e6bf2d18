package engine

import "testing"

func TestReactionCommutativity(t *testing.T) {
	pairs := []struct{ a, b Element }{
		{Pyro, Hydro},
		{Pyro, Cryo},
		{Pyro, Electro},
		{Hydro, Electro},
		{Hydro, Cryo},
		{Electro, Cryo},
		{Dendro, Pyro},
		{Dendro, Hydro},
		{Dendro, Electro},
	}

	for _, p := range pairs {
		rAB, auraAB, bonusAB, _ := ResolveReaction(p.b, withOnly(p.a))
		rBA, auraBA, bonusBA, _ := ResolveReaction(p.a, withOnly(p.b))

		if rAB != rBA {
			t.Fatalf("%v/%v: reaction differs depending on order: %v vs %v", p.a, p.b, rAB, rBA)
		}
		if bonusAB != bonusBA {
			t.Fatalf("%v/%v: bonus differs depending on order: %d vs %d", p.a, p.b, bonusAB, bonusBA)
		}
		if auraAB.Empty() != auraBA.Empty() {
			t.Fatalf("%v/%v: final aura emptiness differs depending on order", p.a, p.b)
		}
	}
}

func TestVaporizeLookup(t *testing.T) {
	reaction, aura, bonus, secondary := ResolveReaction(Pyro, withOnly(Hydro))
	if reaction != Vaporize {
		t.Fatalf("expected Vaporize, got %v", reaction)
	}
	if bonus != 2 {
		t.Fatalf("expected bonus 2, got %d", bonus)
	}
	if !aura.Empty() {
		t.Fatalf("expected aura cleared after Vaporize")
	}
	if secondary != nil {
		t.Fatalf("Vaporize has no secondary effect, got %+v", secondary)
	}
}

func TestOverloadedForcesSwap(t *testing.T) {
	reaction, aura, bonus, secondary := ResolveReaction(Electro, withOnly(Pyro))
	if reaction != Overloaded || bonus != 2 || !aura.Empty() {
		t.Fatalf("unexpected Overloaded result: %v %d %v", reaction, bonus, aura)
	}
	if len(secondary) != 1 || secondary[0].Kind != SecForwardSwapOpponent {
		t.Fatalf("expected a forward-swap secondary, got %+v", secondary)
	}
}

func TestCrystallizeWithAnyAurableElement(t *testing.T) {
	for _, other := range []Element{Pyro, Hydro, Electro, Cryo, Dendro, Anemo} {
		reaction, aura, bonus, secondary := ResolveReaction(Geo, withOnly(other))
		if reaction != Crystallize {
			t.Fatalf("Geo onto %v should Crystallize, got %v", other, reaction)
		}
		if bonus != 1 || !aura.Empty() {
			t.Fatalf("unexpected Crystallize aura/bonus for %v: %d %v", other, bonus, aura)
		}
		if len(secondary) != 1 || secondary[0].Kind != SecCombatStatusCrystallize || secondary[0].Element != other {
			t.Fatalf("expected a Crystallize combat status tagged %v, got %+v", other, secondary)
		}
	}
}

func TestSwirlPiercesOtherCharacters(t *testing.T) {
	reaction, aura, bonus, secondary := ResolveReaction(Anemo, withOnly(Electro))
	if reaction != Swirl || bonus != 0 || !aura.Empty() {
		t.Fatalf("unexpected Swirl result: %v %d %v", reaction, bonus, aura)
	}
	if len(secondary) != 1 || secondary[0].Kind != SecSwirlPierce || secondary[0].Element != Electro {
		t.Fatalf("expected a swirl-pierce secondary carrying Electro, got %+v", secondary)
	}
}

func TestNoReactionAttachesAura(t *testing.T) {
	reaction, aura, bonus, secondary := ResolveReaction(Pyro, AuraSet{})
	if reaction != NoReaction || bonus != 0 || secondary != nil {
		t.Fatalf("expected no reaction on an empty aura, got %v %d %+v", reaction, bonus, secondary)
	}
	if !aura.Has(Pyro) {
		t.Fatalf("expected incoming element attached to the empty aura")
	}
}

func TestPhysicalNeverReacts(t *testing.T) {
	reaction, aura, _, _ := ResolveReaction(Physical, withOnly(Hydro))
	if reaction != NoReaction {
		t.Fatalf("Physical damage must never trigger a reaction, got %v", reaction)
	}
	if !aura.Has(Hydro) {
		t.Fatalf("Physical damage must not disturb the existing aura")
	}
}
