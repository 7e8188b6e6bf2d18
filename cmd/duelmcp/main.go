// Command duelmcp serves the duel engine to an MCP client over stdio.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/duelcore/duelcore/internal/duelmcp"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to the deck library YAML file")
	flag.Parse()

	duelmcp.SetDecksFile(*decks)

	s := server.NewMCPServer("duelcore", "1.0.0")
	duelmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "duelmcp: %v\n", err)
		os.Exit(1)
	}
}
