// Command duelnetd hosts a duel for two remote terminals over a websocket.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/duelcore/duelcore/internal/deckfile"
	"github.com/duelcore/duelcore/internal/duelnet"
	"github.com/duelcore/duelcore/internal/engine"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to the deck library YAML file")
	addr := flag.String("addr", ":9999", "listen address")
	deck1 := flag.Int("deck1", 1, "1-indexed deck for P1")
	deck2 := flag.Int("deck2", 2, "1-indexed deck for P2")
	seed := flag.Int64("seed", 1, "deterministic RNG seed")
	flag.Parse()

	name1, d1, err := deckfile.ByNumber(*decks, *deck1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "duelnetd: %v\n", err)
		os.Exit(1)
	}
	name2, d2, err := deckfile.ByNumber(*decks, *deck2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "duelnetd: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Hosting %s vs %s at ws://%s/duel\n", name1, name2, *addr)

	srv := &duelnet.Server{Deck1: d1, Deck2: d2, Mode: engine.DemoMode(), Seed: *seed}
	if err := srv.ListenAndServe(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "duelnetd: %v\n", err)
		os.Exit(1)
	}
}
