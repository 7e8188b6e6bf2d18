// Package duelmcp exposes a duel to an MCP client (e.g. an LLM agent) as a
// set of tools: start a match, submit one action at a time, inspect state.
// DESIGN.md: adapted from the teacher's internal/mcp, but simplified around
// the new engine's pull-based, non-blocking reducer (OneStep/AutoStep):
// there is no PlayerController interface to implement and no background
// goroutine blocking on a channel per decision, because nothing in the new
// architecture blocks — a tool call just submits a PlayerAction and the
// reducer runs to completion synchronously.
package duelmcp

import (
	"fmt"
	"sync"

	"github.com/duelcore/duelcore/internal/deckfile"
	"github.com/duelcore/duelcore/internal/dlog"
	"github.com/duelcore/duelcore/internal/duelnet"
	"github.com/duelcore/duelcore/internal/engine"
)

// Session is the single active match an MCP server process hosts (the
// teacher's own activeSession/GameSession was likewise a package-level
// singleton: one duel per stdio process).
type Session struct {
	mu   sync.Mutex
	sess *duelnet.Session
}

var active Session

// decksFile is set by main before the server starts serving tools.
var decksFile = "decks.yaml"

func SetDecksFile(path string) { decksFile = path }

// Start loads two decks by number and begins a new match.
func (s *Session) Start(deck1Num, deck2Num int, seed int64) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess != nil {
		return "", "", fmt.Errorf("a match is already running; call reset first")
	}
	name1, d1, err := deckfile.ByNumber(decksFile, deck1Num)
	if err != nil {
		return "", "", fmt.Errorf("load deck %d: %w", deck1Num, err)
	}
	name2, d2, err := deckfile.ByNumber(decksFile, deck2Num)
	if err != nil {
		return "", "", fmt.Errorf("load deck %d: %w", deck2Num, err)
	}
	sess, err := duelnet.NewSession(d1, d2, engine.DemoMode(), seed)
	if err != nil {
		return "", "", err
	}
	s.sess = sess
	return name1, name2, nil
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
}

func (s *Session) get() (*duelnet.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, fmt.Errorf("no match is running; call start_game first")
	}
	return s.sess, nil
}

// StateSummary is the JSON shape every tool response carries: the current
// viewer-scoped view, the waiting decision, and any events emitted since
// the last call.
type StateSummary struct {
	GameID     string             `json:"game_id"`
	View       engine.PartialView `json:"view"`
	Waiting    string             `json:"waiting"`
	WaitingFor string             `json:"waiting_for"`
	Events     []dlog.DuelEvent   `json:"events"`
	GameOver   bool               `json:"game_over"`
	Winner     string             `json:"winner,omitempty"`
	Draw       bool               `json:"draw,omitempty"`
}

// summarize builds a StateSummary for pid and drains that session's event
// log (events are shared across both seats of one stdio session, so the
// first caller after a state change sees them; this mirrors the teacher's
// own per-tool-call drainEvents()).
func summarize(sess *duelnet.Session, pid engine.Pid) (StateSummary, error) {
	gs := sess.Snapshot()

	view, err := duelnet.ViewFor(gs, pid)
	if err != nil {
		return StateSummary{}, err
	}
	waiting, waitPid := engine.WaitingFor(gs)
	out := StateSummary{
		GameID:     sess.GameID,
		View:       view,
		Waiting:    waiting.String(),
		WaitingFor: waitPid.String(),
		Events:     sess.DrainEvents(),
		GameOver:   gs.Over,
		Draw:       gs.Draw,
	}
	if gs.Over && !gs.Draw {
		out.Winner = gs.Winner.String()
	}
	return out, nil
}
