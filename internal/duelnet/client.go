package duelnet

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coder/websocket"
)

// Connect dials addr and runs an interactive terminal REPL against a
// hosted Server (DESIGN.md: adapted from the teacher's internal/net.Client,
// generalized from a raw TCP connection to a websocket one).
func Connect(ctx context.Context, addr string) error {
	conn, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.CloseNow()

	reader := bufio.NewReader(os.Stdin)
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		var msg ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Error != "" {
			fmt.Println("! " + msg.Error)
			continue
		}
		renderState(msg)
		if msg.GameOver {
			if msg.Draw {
				fmt.Println("Match ends in a draw.")
			} else {
				fmt.Println(msg.Winner + " wins the match.")
			}
			return nil
		}
		reply := promptForReply(reader, msg)
		out, err := json.Marshal(reply)
		if err != nil {
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, out); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
}

func renderState(msg ServerMessage) {
	if msg.View == nil {
		return
	}
	v := *msg.View
	fmt.Println()
	fmt.Printf("Round %d | %s | waiting on %s (%s)\n", v.Round, v.Phase, msg.WaitingFor, msg.Waiting)
	for _, pid := range []string{"P1", "P2"} {
		pv := v.Player1
		if pid == "P2" {
			pv = v.Player2
		}
		fmt.Printf("%s: active=%d hand=%d deck=%d dice=%v\n", pid, pv.ActiveCharacterId, pv.HandCount, pv.DeckCount, pv.Dice)
		for _, c := range pv.Characters {
			status := "alive"
			if !c.Alive {
				status = "down"
			}
			fmt.Printf("  char %d: hp=%d energy=%d aura=%v (%s)\n", c.Id, c.HP, c.Energy, c.Aura, status)
		}
	}
	for _, ev := range msg.Events {
		fmt.Printf("  . %s\n", ev.Details)
	}
}

// promptForReply asks the terminal user for the next frame to send, shaped
// by what the server says it's waiting on. Nothing is re-prompted: an
// action line that does not parse becomes end_round, and a non-numeric
// character id is sent as 0; the server is the final arbiter of legality.
func promptForReply(reader *bufio.Reader, msg ServerMessage) ClientMessage {
	switch msg.Waiting {
	case "reroll_choice":
		fmt.Print("confirm roll? (y/n): ")
		if readYesNo(reader) {
			return ClientMessage{Type: "confirm_roll"}
		}
		return ClientMessage{Type: "reroll", Keep: map[string]int{}}
	case "starting_hand_select", "death_swap":
		fmt.Print("select character id: ")
		n := readInt(reader)
		if msg.Waiting == "death_swap" {
			return ClientMessage{Type: "death_swap", Char: n}
		}
		return ClientMessage{Type: "select_active", Char: n}
	default:
		fmt.Println("enter action as: end_round | skill <char> <skill> | swap <char> | card <kind>")
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		return parseActionLine(strings.TrimSpace(line))
	}
}

func parseActionLine(line string) ClientMessage {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "end_round"}}
	}
	switch fields[0] {
	case "skill":
		if len(fields) < 3 {
			return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "end_round"}}
		}
		char, _ := strconv.Atoi(fields[1])
		skill, _ := strconv.Atoi(fields[2])
		return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "skill", Char: char, Skill: skill}}
	case "swap":
		if len(fields) < 2 {
			return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "end_round"}}
		}
		to, _ := strconv.Atoi(fields[1])
		return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "swap", SwapTo: to}}
	case "card":
		if len(fields) < 2 {
			return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "end_round"}}
		}
		kind, _ := strconv.Atoi(fields[1])
		return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "card", Card: kind}}
	default:
		return ClientMessage{Type: "action", Action: &ActionMessage{Kind: "end_round"}}
	}
}

func readInt(reader *bufio.Reader) int {
	line, _ := reader.ReadString('\n')
	n, _ := strconv.Atoi(strings.TrimSpace(line))
	return n
}

func readYesNo(reader *bufio.Reader) bool {
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
