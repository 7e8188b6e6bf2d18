package duelnet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/duelcore/duelcore/internal/engine"
)

// Server hosts one duel at a websocket endpoint, accepting exactly two
// connections (P1 then P2) and relaying action frames into a Session.
type Server struct {
	Deck1, Deck2 engine.Deck
	Mode         engine.ModeDescriptor
	Seed         int64

	mu      sync.Mutex
	session *Session
	conns   [2]*websocket.Conn
	joined  int
}

// ListenAndServe starts the HTTP server with a single "/duel" websocket
// route (mirrors the teacher's web.Server.ListenAndServe signature).
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /duel", s.handleConn)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("duelnet: accept error: %v", err)
		return
	}
	defer conn.CloseNow()

	pid, err := s.register(conn)
	if err != nil {
		conn.Close(websocket.StatusPolicyViolation, err.Error())
		return
	}

	ctx := r.Context()
	s.pushState(ctx, pid)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(ctx, pid, fmt.Sprintf("bad frame: %v", err))
			continue
		}
		if err := s.handleMessage(ctx, pid, msg); err != nil {
			s.sendError(ctx, pid, err.Error())
			continue
		}
		s.broadcastState(ctx)
	}
}

func (s *Server) register(conn *websocket.Conn) (engine.Pid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.joined >= 2 {
		return 0, fmt.Errorf("duel already has two players")
	}
	pid := engine.P1
	if s.joined == 1 {
		pid = engine.P2
	}
	s.conns[s.joined] = conn
	s.joined++
	if s.joined == 2 && s.session == nil {
		sess, err := NewSession(s.Deck1, s.Deck2, s.Mode, s.Seed)
		if err != nil {
			return 0, err
		}
		s.session = sess
	}
	return pid, nil
}

func (s *Server) handleMessage(ctx context.Context, pid engine.Pid, msg ClientMessage) error {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()
	if sess == nil {
		return fmt.Errorf("waiting for both players to connect")
	}
	switch msg.Type {
	case "action":
		if msg.Action == nil {
			return fmt.Errorf("missing action")
		}
		return sess.Apply(msg.Action.toAction(pid))
	case "confirm_roll":
		return sess.ConfirmRoll(pid)
	case "reroll":
		return sess.Reroll(pid, diceFromWire(msg.Keep).Counts())
	case "select_active":
		return sess.SelectActive(pid, engine.CharId(msg.Char))
	case "death_swap":
		return sess.Apply(engine.PlayerAction{Kind: engine.ActionDeathSwap, Pid: pid, SwapTo: engine.CharId(msg.Char)})
	case "redraw":
		return sess.Redraw(pid, cardsFromWire(msg.Discard))
	case "confirm_card_select":
		return sess.ConfirmCardSelect(pid)
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func (s *Server) broadcastState(ctx context.Context) {
	s.pushState(ctx, engine.P1)
	s.pushState(ctx, engine.P2)
}

func (s *Server) pushState(ctx context.Context, pid engine.Pid) {
	s.mu.Lock()
	sess := s.session
	conn := s.conns[pid]
	s.mu.Unlock()
	if sess == nil || conn == nil {
		return
	}

	sess.mu.Lock()
	gs := sess.State
	gameID := sess.GameID
	sess.mu.Unlock()

	view, err := ViewFor(gs, pid)
	if err != nil {
		s.sendError(ctx, pid, err.Error())
		return
	}
	waiting, waitPid := engine.WaitingFor(gs)

	msg := ServerMessage{
		Type:       "state",
		GameID:     gameID,
		View:       &view,
		Events:     sess.Log.Events(),
		Waiting:    waiting.String(),
		WaitingFor: waitPid.String(),
		GameOver:   gs.Over,
		Draw:       gs.Draw,
	}
	if gs.Over && !gs.Draw {
		msg.Winner = gs.Winner.String()
	}
	s.send(ctx, conn, msg)
}

func (s *Server) sendError(ctx context.Context, pid engine.Pid, reason string) {
	s.mu.Lock()
	conn := s.conns[pid]
	s.mu.Unlock()
	if conn == nil {
		return
	}
	s.send(ctx, conn, ServerMessage{Type: "error", Error: reason})
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("duelnet: marshal error: %v", err)
		return
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		log.Printf("duelnet: write error: %v", err)
	}
}
