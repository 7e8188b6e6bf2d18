// Package duelnet hosts a duel between two remote terminals over a
// websocket, and provides the matching CLI client REPL (DESIGN.md: adapted
// from the teacher's internal/net, itself a JSON-over-connection protocol,
// generalized from TCP framing to github.com/coder/websocket frames).
package duelnet

import (
	"github.com/duelcore/duelcore/internal/dlog"
	"github.com/duelcore/duelcore/internal/engine"
)

// ServerMessage is the envelope for every server-to-client frame.
type ServerMessage struct {
	Type   string `json:"type"`
	GameID string `json:"game_id,omitempty"`

	View   *engine.PartialView `json:"view,omitempty"`
	Events []dlog.DuelEvent    `json:"events,omitempty"`

	Waiting    string `json:"waiting,omitempty"`     // WaitKind.String()
	WaitingFor string `json:"waiting_for,omitempty"` // "P1" / "P2"
	Error      string `json:"error,omitempty"`

	GameOver bool   `json:"game_over,omitempty"`
	Winner   string `json:"winner,omitempty"`
	Draw     bool   `json:"draw,omitempty"`
}

// ClientMessage is the envelope for every client-to-server frame.
type ClientMessage struct {
	Type string `json:"type"`

	Action  *ActionMessage `json:"action,omitempty"` // "action"
	Keep    map[string]int `json:"keep,omitempty"`   // "reroll": element name -> kept count
	Char    int            `json:"char,omitempty"`   // "select_active" / "death_swap"
	Discard []int          `json:"discard,omitempty"` // "redraw": CardKind values to discard
}

// ActionMessage is the wire form of engine.PlayerAction: string-keyed
// enums so the protocol stays human-readable over the socket.
type ActionMessage struct {
	Kind string `json:"kind"` // "card", "skill", "swap", "end_round", "tune", "death_swap"

	Card   int             `json:"card,omitempty"`
	Target *TargetMessage  `json:"target,omitempty"`
	Dice   map[string]int  `json:"dice,omitempty"`

	Char  int `json:"char,omitempty"`
	Skill int `json:"skill,omitempty"`

	SwapTo int `json:"swap_to,omitempty"`

	TuneCard int    `json:"tune_card,omitempty"`
	TuneDie  string `json:"tune_die,omitempty"`
}

// TargetMessage is the wire form of engine.StaticTarget.
type TargetMessage struct {
	Pid  string `json:"pid"`
	Zone string `json:"zone"`
	Id   int    `json:"id"`
}

func elementByName(name string) (engine.Element, bool) {
	for _, e := range append(append([]engine.Element{}, engine.RealElements...), engine.Omni, engine.Physical, engine.Piercing) {
		if e.String() == name {
			return e, true
		}
	}
	return 0, false
}

func diceFromWire(m map[string]int) engine.DicePool {
	counts := make(map[engine.Element]int, len(m))
	for name, n := range m {
		if e, ok := elementByName(name); ok {
			counts[e] = n
		}
	}
	return engine.NewDicePool(counts)
}

func pidFromWire(s string) engine.Pid {
	if s == "P2" {
		return engine.P2
	}
	return engine.P1
}

func zoneFromWire(s string) engine.Zone {
	switch s {
	case "combat":
		return engine.ZoneCombat
	case "summon":
		return engine.ZoneSummon
	case "support":
		return engine.ZoneSupport
	case "hidden":
		return engine.ZoneHidden
	default:
		return engine.ZoneCharacter
	}
}

func cardsFromWire(ns []int) []engine.CardKind {
	out := make([]engine.CardKind, len(ns))
	for i, n := range ns {
		out[i] = engine.CardKind(n)
	}
	return out
}

func targetFromWire(t *TargetMessage) *engine.StaticTarget {
	if t == nil {
		return nil
	}
	st := engine.StaticTarget{Pid: pidFromWire(t.Pid), Zone: zoneFromWire(t.Zone), Id: t.Id}
	return &st
}

// toAction converts a wire ActionMessage into an engine.PlayerAction for
// the given player, resolving the action kind from m.Kind here. An
// unrecognised kind becomes ActionEndRound, which ActionStep accepts
// whenever ending the round is legal for that player.
func (m *ActionMessage) toAction(pid engine.Pid) engine.PlayerAction {
	a := engine.PlayerAction{Pid: pid, Dice: diceFromWire(m.Dice)}
	switch m.Kind {
	case "card":
		a.Kind = engine.ActionCard
		a.Card = engine.CardKind(m.Card)
		a.Target = targetFromWire(m.Target)
	case "skill":
		a.Kind = engine.ActionSkill
		a.Char = engine.CharId(m.Char)
		a.Skill = engine.SkillId(m.Skill)
	case "swap":
		a.Kind = engine.ActionSwap
		a.SwapTo = engine.CharId(m.SwapTo)
	case "tune":
		a.Kind = engine.ActionElementalTuning
		a.TuneCard = engine.CardKind(m.TuneCard)
		if e, ok := elementByName(m.TuneDie); ok {
			a.TuneDie = e
		}
	case "death_swap":
		a.Kind = engine.ActionDeathSwap
		a.SwapTo = engine.CharId(m.SwapTo)
	default:
		a.Kind = engine.ActionEndRound
	}
	return a
}
