package engine

// ModeDescriptor configures the size caps and per-round allowances the
// rest of the engine reads instead of hard-coding (spec.md §6).
type ModeDescriptor struct {
	CardsPerHandCap int
	SummonsCap      int
	SupportsCap     int
	DeckSize        int
	InitialDraw     int
	DicePerRoll     int
	RerollChances   int
	RedrawChances   int
	ArcaneLegendCap int
}

// DefaultMode is the standard ruleset (spec.md §6).
func DefaultMode() ModeDescriptor {
	return ModeDescriptor{
		CardsPerHandCap: 10,
		SummonsCap:      4,
		SupportsCap:     4,
		DeckSize:        30,
		InitialDraw:     5,
		DicePerRoll:     8,
		RerollChances:   1,
		RedrawChances:   1,
		ArcaneLegendCap: 2,
	}
}

// DemoMode is DefaultMode with DeckSize scaled down to fit the engine's
// representative card catalogue: most of its card kinds carry no
// character requirement, so a 2-copy-cap deck built only from those tops
// out well short of DefaultMode's canonical 30. The cmd drivers' bundled
// decks.yaml is built against this mode rather than DefaultMode's 30.
func DemoMode() ModeDescriptor {
	m := DefaultMode()
	m.DeckSize = 18
	return m
}
