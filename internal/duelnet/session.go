package duelnet

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/duelcore/duelcore/internal/dlog"
	"github.com/duelcore/duelcore/internal/engine"
)

// Session wraps one immutable GameState behind a mutex, and derives
// observable dlog.DuelEvents from state transitions by diffing before/after
// snapshots. The engine itself stays a pure value transformer (spec.md §3);
// event narration is strictly a driver-layer concern, same division of
// labour as the teacher's Duel (game logic) vs internal/log (narration).
type Session struct {
	mu     sync.Mutex
	GameID string
	State  engine.GameState
	Log    *dlog.MemoryLogger
}

// NewSession starts a fresh duel and auto-steps it to the first real
// decision point. GameID is assigned once here and never reused: it's the
// stable identifier a transport/spectator hands back to reconnect to this
// duel, distinct from the small integer ids (CharId, Pid) the engine itself
// uses internally.
func NewSession(deck1, deck2 engine.Deck, mode engine.ModeDescriptor, seed int64) (*Session, error) {
	if err := engine.ValidateDeck(deck1, mode); err != nil {
		return nil, err
	}
	if err := engine.ValidateDeck(deck2, mode); err != nil {
		return nil, err
	}
	gs := engine.NewGame(deck1, deck2, mode, seed)
	s := &Session{GameID: uuid.New().String(), State: gs, Log: dlog.NewMemoryLogger()}
	if err := s.drain(gs); err != nil {
		return nil, err
	}
	return s, nil
}

// ViewFor builds pid's imperfect-information view of the current state by
// round-tripping it through the spec's own encode/decode pair (encoding.go)
// rather than hand-rolling a second view projection.
func ViewFor(gs engine.GameState, pid engine.Pid) (engine.PartialView, error) {
	plan := engine.EncodingPlan{Viewer: pid}
	return engine.Decoding(engine.Encoding(gs, plan), plan)
}

// Apply validates and applies a player action, auto-steps the resulting
// effects, and logs whatever became observable.
func (s *Session) Apply(a engine.PlayerAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := engine.ActionStep(s.State, a)
	if err != nil {
		return err
	}
	return s.drain(next)
}

// ConfirmRoll, Reroll, SelectActive mirror the remaining phase-transition
// entry points the reducer exposes outside of ActionStep.
func (s *Session) ConfirmRoll(pid engine.Pid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := engine.ConfirmRollDice(s.State, pid)
	if err != nil {
		return err
	}
	return s.drain(next)
}

func (s *Session) Reroll(pid engine.Pid, keep map[engine.Element]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := engine.RerollDice(s.State, pid, keep)
	if err != nil {
		return err
	}
	return s.drain(next)
}

func (s *Session) SelectActive(pid engine.Pid, cid engine.CharId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := engine.SelectActiveCharacter(s.State, pid, cid)
	if err != nil {
		return err
	}
	return s.drain(next)
}

// Redraw and ConfirmCardSelect drive the one-time opening-hand mulligan
// (spec.md §4.2/§6 redraw_chances) during PhaseCardSelect.
func (s *Session) Redraw(pid engine.Pid, discard []engine.CardKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := engine.Redraw(s.State, pid, discard)
	if err != nil {
		return err
	}
	return s.drain(next)
}

func (s *Session) ConfirmCardSelect(pid engine.Pid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := engine.ConfirmCardSelect(s.State, pid)
	if err != nil {
		return err
	}
	return s.drain(next)
}

// Waiting reports what input the engine needs next.
func (s *Session) Waiting() (engine.WaitKind, engine.Pid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.WaitingFor(s.State)
}

// Snapshot returns the current state under lock, for callers (duelmcp) that
// build their own projection rather than going through the server/client
// frame types.
func (s *Session) Snapshot() engine.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State
}

// DrainEvents returns and clears everything logged since the last drain.
func (s *Session) DrainEvents() []dlog.DuelEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.Log.Events()
	s.Log = dlog.NewMemoryLogger()
	return events
}

// drain runs AutoStep from next, logs the diff against the session's
// previous state, and commits the result. Caller must hold s.mu.
func (s *Session) drain(next engine.GameState) error {
	before := s.State
	drained, err := engine.AutoStep(next)
	if err != nil {
		return err
	}
	for _, ev := range diffEvents(before, drained) {
		s.Log.Log(ev)
	}
	s.State = drained
	return nil
}

// diffEvents derives a best-effort narration of what changed between two
// snapshots. This is necessarily an approximation (the engine's effect
// stack doesn't carry a causal label out to the driver layer) but is
// sufficient for a spectator/replay log, matching the level of detail the
// teacher's own Notify-based event stream provides to its network clients.
func diffEvents(before, after engine.GameState) []dlog.DuelEvent {
	var out []dlog.DuelEvent
	add := func(pid engine.Pid, t dlog.EventType, details string) {
		out = append(out, dlog.DuelEvent{Round: after.Round, Player: int(pid), Type: t, Details: details})
	}

	if after.Round != before.Round {
		add(after.ActivePlayer, dlog.EventRoundStart, "round "+strconv.Itoa(after.Round)+" begins")
	}
	if after.Phase != before.Phase {
		add(after.ActivePlayer, dlog.EventPhaseChange, "phase -> "+after.Phase.String())
	}
	for _, pid := range []engine.Pid{engine.P1, engine.P2} {
		bp, ap := before.Player(pid), after.Player(pid)
		if bp.ActiveCharacterId != ap.ActiveCharacterId && ap.ActiveCharacterId != 0 {
			add(pid, dlog.EventSwap, "active character -> "+strconv.Itoa(int(ap.ActiveCharacterId)))
		}
		for _, bc := range bp.Characters {
			ac := ap.Character(bc.Id)
			if ac.HP < bc.HP {
				add(pid, dlog.EventDamageDealt, "character "+strconv.Itoa(int(bc.Id))+" takes "+strconv.Itoa(bc.HP-ac.HP)+" damage")
			} else if ac.HP > bc.HP {
				add(pid, dlog.EventDamageDealt, "character "+strconv.Itoa(int(bc.Id))+" heals "+strconv.Itoa(ac.HP-bc.HP))
			}
			if bc.Alive && !ac.Alive {
				add(pid, dlog.EventCharacterDeath, "character "+strconv.Itoa(int(bc.Id))+" defeated")
			}
		}
	}
	if after.Over && !before.Over {
		if after.Draw {
			add(engine.P1, dlog.EventDraw, "match ends in a draw")
		} else {
			add(after.Winner, dlog.EventWin, after.Winner.String()+" wins")
		}
	}
	return out
}
