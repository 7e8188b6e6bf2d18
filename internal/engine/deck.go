package engine

// ValidateDeck enforces the deck construction-legality rules of spec.md §6:
// exactly 3 distinct characters, a total card count matching the mode's
// deck size, an Arcane Legend cap, talent cards restricted to decks that
// field the character they equip, and element-resonance cards restricted
// to decks fielding at least 2 characters of that element.
func ValidateDeck(deck Deck, mode ModeDescriptor) error {
	seen := map[CharacterKind]bool{}
	elemCount := map[Element]int{}
	for _, k := range deck.Chars {
		if k == 0 {
			return reject(DeckIllegal, "deck must name exactly 3 characters")
		}
		if seen[k] {
			return reject(DeckIllegal, "deck characters must be distinct")
		}
		seen[k] = true
		desc, ok := CharacterCatalogue[k]
		if !ok {
			return reject(DeckIllegal, "unknown character kind %d", k)
		}
		elemCount[desc.Element]++
	}

	total := 0
	arcane := 0
	for kind, n := range deck.Cards {
		if n < 0 {
			return reject(DeckIllegal, "negative card count")
		}
		desc, ok := CardCatalogue[kind]
		if !ok {
			return reject(DeckIllegal, "unknown card kind %d", kind)
		}
		if n > 2 && desc.Category != CardArcaneLegend {
			return reject(DeckIllegal, "card %s appears more than twice", desc.Name)
		}
		if desc.Category == CardArcaneLegend {
			if n > 1 {
				return reject(DeckIllegal, "an Arcane Legend card may appear at most once")
			}
			arcane += n
		}
		if desc.HasCharacterReq && !seen[desc.RequiresCharacter] {
			return reject(DeckIllegal, "talent card %s requires its character on the team", desc.Name)
		}
		if desc.HasElementReq && elemCount[desc.RequiresElement] < 2 {
			return reject(DeckIllegal, "resonance card %s requires at least 2 %s characters on the team", desc.Name, desc.RequiresElement)
		}
		total += n
	}
	if arcane > mode.ArcaneLegendCap {
		return reject(DeckIllegal, "deck exceeds Arcane Legend cap of %d", mode.ArcaneLegendCap)
	}
	if total != mode.DeckSize {
		return reject(DeckIllegal, "deck must contain exactly %d cards, has %d", mode.DeckSize, total)
	}
	return nil
}
