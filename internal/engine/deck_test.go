package engine

import "testing"

func demoDeck() Deck {
	return Deck{
		Chars: [3]CharacterKind{CharKeqing, CharXingqiu, CharNoelle},
		Cards: map[CardKind]int{
			CardLeaveItToMe:              2,
			CardSweetMadame:              2,
			CardThunderingPenance:        2,
			CardAquilaFavoniaCard:        2,
			CardCrimsonWitchOfFlamesCard: 2,
			CardVanaranaCard:             2,
			CardXudongTavernCard:         2,
			CardWindAndFreedom:           2,
			CardChangingShiftsCard:       2,
		},
	}
}

func TestValidateDeckAccepts(t *testing.T) {
	if err := ValidateDeck(demoDeck(), DemoMode()); err != nil {
		t.Fatalf("expected a well-formed 18-card deck to validate, got %v", err)
	}
}

func TestValidateDeckRejectsDuplicateCharacter(t *testing.T) {
	d := demoDeck()
	d.Chars = [3]CharacterKind{CharKeqing, CharKeqing, CharNoelle}
	if err := ValidateDeck(d, DemoMode()); err == nil {
		t.Fatalf("expected duplicate characters to be rejected")
	}
}

func TestValidateDeckRejectsTooManyCopies(t *testing.T) {
	d := demoDeck()
	d.Cards[CardSweetMadame] = 3
	d.Cards[CardChangingShiftsCard] = 1 // keep size consistent with the +1 above
	if err := ValidateDeck(d, DemoMode()); err == nil {
		t.Fatalf("expected more than 2 copies of a non-Arcane-Legend card to be rejected")
	}
}

func TestValidateDeckRejectsWrongSize(t *testing.T) {
	d := demoDeck()
	delete(d.Cards, CardChangingShiftsCard)
	if err := ValidateDeck(d, DemoMode()); err == nil {
		t.Fatalf("expected a deck short of DeckSize to be rejected")
	}
}

func TestValidateDeckRejectsTalentWithoutCharacter(t *testing.T) {
	d := demoDeck()
	d.Chars = [3]CharacterKind{CharKlee, CharXingqiu, CharNoelle}
	if err := ValidateDeck(d, DemoMode()); err == nil {
		t.Fatalf("expected Thundering Penance to be rejected without Keqing on the team")
	}
}

func TestValidateDeckRejectsUnknownCharacter(t *testing.T) {
	d := demoDeck()
	d.Chars[0] = CharacterKind(99)
	if err := ValidateDeck(d, DemoMode()); err == nil {
		t.Fatalf("expected an unknown character kind to be rejected")
	}
}

func TestValidateDeckDefaultModeRequiresThirtyCards(t *testing.T) {
	if err := ValidateDeck(demoDeck(), DefaultMode()); err == nil {
		t.Fatalf("an 18-card deck must not validate against DefaultMode's 30-card deck size")
	}
}

// TestValidateDeckRejectsResonanceWithoutTwoElementCharacters checks
// spec.md §6's "Faction/element-specific cards (e.g. resonance cards)
// require ≥ 2 characters of that element" rule: demoDeck only fields one
// Pyro-less team, so a Pyro resonance card must be rejected.
func TestValidateDeckRejectsResonanceWithoutTwoElementCharacters(t *testing.T) {
	d := demoDeck()
	d.Cards[CardAbyssalSummonsCard] = 2
	delete(d.Cards, CardChangingShiftsCard) // keep total card count unchanged
	if err := ValidateDeck(d, DemoMode()); err == nil {
		t.Fatalf("expected a Pyro resonance card to be rejected without 2+ Pyro characters on the team")
	}
}

// TestValidateDeckAcceptsResonanceWithTwoElementCharacters confirms the
// same card validates once the team fields 2+ Pyro characters.
func TestValidateDeckAcceptsResonanceWithTwoElementCharacters(t *testing.T) {
	d := demoDeck()
	d.Chars = [3]CharacterKind{CharKeqing, CharKlee, CharYoimiya} // Keqing keeps Thundering Penance legal; Klee+Yoimiya are both Pyro
	d.Cards[CardAbyssalSummonsCard] = 2
	delete(d.Cards, CardChangingShiftsCard)
	if err := ValidateDeck(d, DemoMode()); err != nil {
		t.Fatalf("expected a Pyro resonance card to validate with 2 Pyro characters on the team, got %v", err)
	}
}
