// Command duelcli is the terminal client that joins a duelnetd match.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/duelcore/duelcore/internal/duelnet"
)

func main() {
	addr := flag.String("addr", "ws://localhost:9999/duel", "duelnetd websocket address")
	flag.Parse()

	fmt.Printf("Connecting to %s...\n", *addr)
	if err := duelnet.Connect(context.Background(), *addr); err != nil {
		fmt.Fprintf(os.Stderr, "duelcli: %v\n", err)
		os.Exit(1)
	}
}
