package duelmcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/duelcore/duelcore/internal/engine"
)

// RegisterTools adds every duel tool to s (mirrors the teacher's
// mcp.RegisterTools).
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(legalActionsTool(), handleLegalActions)
	s.AddTool(redrawTool(), handleRedraw)
	s.AddTool(confirmCardSelectTool(), handleConfirmCardSelect)
	s.AddTool(confirmRollTool(), handleConfirmRoll)
	s.AddTool(selectActiveTool(), handleSelectActive)
	s.AddTool(deathSwapTool(), handleDeathSwap)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(castSkillTool(), handleCastSkill)
	s.AddTool(swapTool(), handleSwap)
	s.AddTool(endRoundTool(), handleEndRound)
}

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new duel between deck 1 and deck 2 from the configured deck library. "+
			"Both seats (P1 and P2) are controlled through this same tool surface by passing the relevant pid to every other tool."),
		mcp.WithNumber("deck1", mcp.Required(), mcp.Description("1-indexed deck number for P1")),
		mcp.WithNumber("deck2", mcp.Required(), mcp.Description("1-indexed deck number for P2")),
		mcp.WithNumber("seed", mcp.Description("deterministic RNG seed (default 1)")),
	)
}

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck1 := request.GetInt("deck1", 0)
	deck2 := request.GetInt("deck2", 0)
	seed := int64(request.GetInt("seed", 1))
	if deck1 < 1 || deck2 < 1 {
		return mcp.NewToolResultError("deck1 and deck2 must be >= 1"), nil
	}
	name1, name2, err := active.Start(deck1, deck2, seed)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to start game: %v", err), nil
	}
	return replyFor(engine.P1, fmt.Sprintf("P1=%s vs P2=%s", name1, name2))
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current match state for one seat, plus any events since the last call. Read-only."),
		pidParam(),
	)
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return replyFor(pidFrom(request), "")
}

func redrawTool() mcp.Tool {
	return mcp.NewTool("redraw",
		mcp.WithDescription("Spend this seat's one opening-hand mulligan: discard the named cards and draw replacements. "+
			"Pass an empty discard list to keep the dealt hand."),
		pidParam(),
		mcp.WithString("discard", mcp.Description("JSON array of CardKind values to discard, e.g. [3,3,7]")),
	)
}

func handleRedraw(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	if err := sess.Redraw(pid, cardsFromJSON(request.GetString("discard", ""))); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func confirmCardSelectTool() mcp.Tool {
	return mcp.NewTool("confirm_card_select",
		mcp.WithDescription("Keep this seat's dealt opening hand as-is, without spending the mulligan."),
		pidParam(),
	)
}

func handleConfirmCardSelect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	if err := sess.ConfirmCardSelect(pid); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func legalActionsTool() mcp.Tool {
	return mcp.NewTool("legal_actions",
		mcp.WithDescription("Enumerate every action this seat could currently submit to play_card/cast_skill/swap_character/"+
			"end_round/death_swap, each already paired with an affordable dice payment. Elemental-tuning candidates "+
			"are listed too, but no tool submits them. Read-only."),
		pidParam(),
	)
}

// actionCandidateWire is the JSON shape of one engine.ActionCandidate: the
// wire-friendly mirror of ActionMessage in internal/duelnet, but describing
// a candidate action rather than decoding a submitted one.
type actionCandidateWire struct {
	Kind   string         `json:"kind"`
	Card   int            `json:"card,omitempty"`
	Target *targetWire    `json:"target,omitempty"`
	Char   int            `json:"char,omitempty"`
	Skill  int            `json:"skill,omitempty"`
	SwapTo int            `json:"swap_to,omitempty"`
	TuneCard int          `json:"tune_card,omitempty"`
	TuneDie  string       `json:"tune_die,omitempty"`
	Dice   map[string]int `json:"dice,omitempty"`
}

type targetWire struct {
	Pid  string `json:"pid"`
	Zone string `json:"zone"`
	Id   int    `json:"id"`
}

func handleLegalActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	gen := engine.GenerateActions(sess.Snapshot(), pid)

	out := make([]actionCandidateWire, 0, len(gen.Candidates))
	for _, c := range gen.Candidates {
		a := c.Action
		w := actionCandidateWire{
			Kind: a.Kind.String(), Card: int(a.Card), Char: int(a.Char), Skill: int(a.Skill),
			SwapTo: int(a.SwapTo), TuneCard: int(a.TuneCard), TuneDie: a.TuneDie.String(),
			Dice: diceToWire(a.Dice),
		}
		if a.Target != nil {
			w.Target = &targetWire{Pid: a.Target.Pid.String(), Zone: a.Target.Zone.String(), Id: a.Target.Id}
		}
		out = append(out, w)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultErrorf("marshal error: %v", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func diceToWire(pool engine.DicePool) map[string]int {
	counts := pool.Counts()
	if len(counts) == 0 {
		return nil
	}
	out := make(map[string]int, len(counts))
	for e, n := range counts {
		out[e.String()] = n
	}
	return out
}

func confirmRollTool() mcp.Tool {
	return mcp.NewTool("confirm_roll",
		mcp.WithDescription("Stop rerolling dice for this seat during the RollDice phase."),
		pidParam(),
	)
}

func handleConfirmRoll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	if err := sess.ConfirmRoll(pid); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func selectActiveTool() mcp.Tool {
	return mcp.NewTool("select_active_character",
		mcp.WithDescription("Choose this seat's active character (starting-hand-select phase, or any time one is unset)."),
		pidParam(),
		mcp.WithNumber("char", mcp.Required(), mcp.Description("character id (1-indexed within the roster)")),
	)
}

func handleSelectActive(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	cid := engine.CharId(request.GetInt("char", 0))
	if err := sess.SelectActive(pid, cid); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func deathSwapTool() mcp.Tool {
	return mcp.NewTool("death_swap",
		mcp.WithDescription("Choose the next active character after this seat's active character was defeated."),
		pidParam(),
		mcp.WithNumber("char", mcp.Required(), mcp.Description("character id to swap in")),
	)
}

func handleDeathSwap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	a := engine.PlayerAction{Kind: engine.ActionDeathSwap, Pid: pid, SwapTo: engine.CharId(request.GetInt("char", 0))}
	if err := sess.Apply(a); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from hand. dice is a JSON object mapping element names to the exact payment chosen."),
		pidParam(),
		mcp.WithNumber("card", mcp.Required(), mcp.Description("CardKind of the card to play")),
		mcp.WithString("dice", mcp.Description("JSON object e.g. {\"Pyro\":1,\"Omni\":1}")),
		mcp.WithNumber("target_char", mcp.Description("character id to equip/target, if applicable")),
	)
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	a := engine.PlayerAction{
		Kind: engine.ActionCard,
		Pid:  pid,
		Card: engine.CardKind(request.GetInt("card", 0)),
		Dice: diceFromJSON(request.GetString("dice", "")),
	}
	if tc := request.GetInt("target_char", 0); tc > 0 {
		t := engine.CharTarget(pid, engine.CharId(tc))
		a.Target = &t
	}
	if err := sess.Apply(a); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func castSkillTool() mcp.Tool {
	return mcp.NewTool("cast_skill",
		mcp.WithDescription("Cast one of the active character's skills, paying the given dice."),
		pidParam(),
		mcp.WithNumber("char", mcp.Required(), mcp.Description("active character id")),
		mcp.WithNumber("skill", mcp.Required(), mcp.Description("SkillId on that character")),
		mcp.WithString("dice", mcp.Description("JSON object e.g. {\"Pyro\":3}")),
	)
}

func handleCastSkill(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	a := engine.PlayerAction{
		Kind:  engine.ActionSkill,
		Pid:   pid,
		Char:  engine.CharId(request.GetInt("char", 0)),
		Skill: engine.SkillId(request.GetInt("skill", 0)),
		Dice:  diceFromJSON(request.GetString("dice", "")),
	}
	if err := sess.Apply(a); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func swapTool() mcp.Tool {
	return mcp.NewTool("swap_character",
		mcp.WithDescription("Swap the active character, paying the (possibly discounted) swap cost."),
		pidParam(),
		mcp.WithNumber("char", mcp.Required(), mcp.Description("character id to swap in")),
		mcp.WithString("dice", mcp.Description("JSON object e.g. {\"Omni\":1}")),
	)
}

func handleSwap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	a := engine.PlayerAction{Kind: engine.ActionSwap, Pid: pid, SwapTo: engine.CharId(request.GetInt("char", 0)), Dice: diceFromJSON(request.GetString("dice", ""))}
	if err := sess.Apply(a); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func endRoundTool() mcp.Tool {
	return mcp.NewTool("end_round",
		mcp.WithDescription("Declare this seat done acting for the round."),
		pidParam(),
	)
}

func handleEndRound(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pid := pidFrom(request)
	if err := sess.Apply(engine.PlayerAction{Kind: engine.ActionEndRound, Pid: pid}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return replyFor(pid, "")
}

func pidParam() mcp.ToolOption {
	return mcp.WithString("pid", mcp.Required(), mcp.Description("\"P1\" or \"P2\""))
}

func pidFrom(request mcp.CallToolRequest) engine.Pid {
	if request.GetString("pid", "P1") == "P2" {
		return engine.P2
	}
	return engine.P1
}

func cardsFromJSON(s string) []engine.CardKind {
	if s == "" {
		return nil
	}
	var raw []int
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil
	}
	out := make([]engine.CardKind, len(raw))
	for i, n := range raw {
		out[i] = engine.CardKind(n)
	}
	return out
}

func diceFromJSON(s string) engine.DicePool {
	if s == "" {
		return engine.NewDicePool(nil)
	}
	var raw map[string]int
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return engine.NewDicePool(nil)
	}
	counts := make(map[engine.Element]int, len(raw))
	for name, n := range raw {
		for _, e := range append(append([]engine.Element{}, engine.RealElements...), engine.Omni) {
			if e.String() == name {
				counts[e] = n
			}
		}
	}
	return engine.NewDicePool(counts)
}

func replyFor(pid engine.Pid, note string) (*mcp.CallToolResult, error) {
	sess, err := active.get()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	summary, err := summarize(sess, pid)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to summarize state: %v", err), nil
	}
	data, err := json.Marshal(struct {
		Note string `json:"note,omitempty"`
		StateSummary
	}{Note: note, StateSummary: summary})
	if err != nil {
		return mcp.NewToolResultErrorf("marshal error: %v", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
