// Package deckfile parses the YAML deck library used by the CLI and network
// driver programs (DESIGN.md: adapted from the teacher's internal/game
// deck.go, which also wraps gopkg.in/yaml.v3 over a flat "decks:" list).
package deckfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duelcore/duelcore/internal/engine"
)

// File is the top-level YAML structure of a deck library.
type File struct {
	Decks []Entry `yaml:"decks"`
}

// Entry is a single named deck: exactly three character names and a list
// of card names with counts.
type Entry struct {
	Name       string      `yaml:"name"`
	Characters []string    `yaml:"characters"`
	Cards      []CardEntry `yaml:"cards"`
}

// CardEntry is a card name and how many copies the deck carries.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// charByName and cardByName are built lazily (buildIndexes) from the engine's registered catalogues so deck
// files can refer to characters and cards by their display name rather than
// by numeric CardKind/CharacterKind.
var (
	charByName map[string]engine.CharacterKind
	cardByName map[string]engine.CardKind
)

func buildIndexes() {
	if charByName != nil {
		return
	}
	charByName = make(map[string]engine.CharacterKind, len(engine.CharacterCatalogue))
	for kind, desc := range engine.CharacterCatalogue {
		charByName[desc.Name] = kind
	}
	cardByName = make(map[string]engine.CardKind, len(engine.CardCatalogue))
	for kind, desc := range engine.CardCatalogue {
		cardByName[desc.Name] = kind
	}
}

// Load reads and parses a deck library file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read deck file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse deck YAML: %w", err)
	}
	return f, nil
}

// ByNumber resolves the nth deck (1-indexed) into an engine.Deck, or an
// error naming the first unresolvable character/card name.
func ByNumber(path string, n int) (string, engine.Deck, error) {
	f, err := Load(path)
	if err != nil {
		return "", engine.Deck{}, err
	}
	if n < 1 || n > len(f.Decks) {
		return "", engine.Deck{}, fmt.Errorf("deck %d not found (have %d decks)", n, len(f.Decks))
	}
	return Resolve(f.Decks[n-1])
}

// Resolve converts one YAML deck entry into an engine.Deck.
func Resolve(e Entry) (string, engine.Deck, error) {
	buildIndexes()

	if len(e.Characters) != 3 {
		return "", engine.Deck{}, fmt.Errorf("deck %q: must name exactly 3 characters, got %d", e.Name, len(e.Characters))
	}
	var deck engine.Deck
	for i, name := range e.Characters {
		kind, ok := charByName[name]
		if !ok {
			return "", engine.Deck{}, fmt.Errorf("deck %q: unknown character %q", e.Name, name)
		}
		deck.Chars[i] = kind
	}

	deck.Cards = make(map[engine.CardKind]int, len(e.Cards))
	for _, ce := range e.Cards {
		kind, ok := cardByName[ce.Name]
		if !ok {
			return "", engine.Deck{}, fmt.Errorf("deck %q: unknown card %q", e.Name, ce.Name)
		}
		deck.Cards[kind] += ce.Count
	}

	return e.Name, deck, nil
}

// Names returns the names of every deck in the library, in file order.
func Names(f File) []string {
	names := make([]string, len(f.Decks))
	for i, d := range f.Decks {
		names[i] = d.Name
	}
	return names
}
