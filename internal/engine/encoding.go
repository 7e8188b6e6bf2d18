package engine

import (
	"bytes"
	"encoding/binary"
)

// EncodingPlan controls what a view of GameState reveals (spec.md §4.7):
// a full encoding for persistence/replay, or a partial one that hides the
// viewer's opponent's hand and deck order the way a real client must.
type EncodingPlan struct {
	Viewer      Pid
	RevealBoth  bool // true for server-side persistence; false for a client view
}

// Encoding serializes gs into a flat byte vector under plan. The format is
// a private wire format for this engine only (not meant to interop with
// any other implementation), built with encoding/binary the way the
// teacher's own wire-facing code favours explicit, dependency-free framing
// over reflection-based encoders for its own internal state (DESIGN.md).
func Encoding(gs GameState, plan EncodingPlan) []byte {
	var buf bytes.Buffer
	putInt(&buf, int64(gs.Round))
	putInt(&buf, int64(gs.ActivePlayer))
	putInt(&buf, int64(gs.Phase))
	putBool(&buf, gs.Over)
	putInt(&buf, int64(gs.Winner))
	putBool(&buf, gs.Draw)
	putInt(&buf, gs.Rng.seed)
	putInt(&buf, int64(gs.Rng.counter))

	encodePlayer(&buf, gs.Player1, plan.RevealBoth || plan.Viewer == P1)
	encodePlayer(&buf, gs.Player2, plan.RevealBoth || plan.Viewer == P2)
	return buf.Bytes()
}

// encodePlayer writes every field of a PlayerState that is either always
// public (characters, auras, visible statuses, combat/summon/support
// containers, dice, round allowances) or gated on revealHand (hand
// contents and deck/initial-deck composition — the only information §3
// calls out as private to the opponent). HiddenStatuses is likewise
// gated: per spec.md §4.5 a PlayerHiddenStatus/CharacterHiddenStatus is
// invisible by definition, so it shares the hand's reveal condition
// rather than getting its own.
//
// The effect stack is not part of this format: every caller of Encoding
// reaches it only through auto_step's contract (WaitingFor returns
// WaitNone, never a real decision, while the stack has pending work), so
// a GameState worth encoding always carries an empty stack already.
func encodePlayer(buf *bytes.Buffer, p PlayerState, revealHand bool) {
	putInt(buf, int64(len(p.Characters)))
	for _, c := range p.Characters {
		putInt(buf, int64(c.Id))
		putInt(buf, int64(c.Kind))
		putInt(buf, int64(c.HP))
		putInt(buf, int64(c.Energy))
		putBool(buf, c.Alive)
		aura := c.Aura.Elements()
		putInt(buf, int64(len(aura)))
		for _, e := range aura {
			putInt(buf, int64(e))
		}
		putStatuses(buf, c.Statuses)
	}
	putInt(buf, int64(p.ActiveCharacterId))

	if revealHand {
		putInt(buf, int64(len(p.HandCards)))
		for k, n := range p.HandCards {
			putInt(buf, int64(k))
			putInt(buf, int64(n))
		}
		putInt(buf, int64(len(p.DeckCards)))
		for _, k := range p.DeckCards {
			putInt(buf, int64(k))
		}
		putInt(buf, int64(len(p.InitialDeck.Chars)))
		for _, k := range p.InitialDeck.Chars {
			putInt(buf, int64(k))
		}
		putInt(buf, int64(len(p.InitialDeck.Cards)))
		for k, n := range p.InitialDeck.Cards {
			putInt(buf, int64(k))
			putInt(buf, int64(n))
		}
		putStatuses(buf, p.HiddenStatuses)
	} else {
		putInt(buf, int64(p.HandCards.Total())) // count only, not contents
		putInt(buf, int64(len(p.DeckCards)))
	}

	counts := p.Dice.Counts()
	putInt(buf, int64(len(counts)))
	for e, n := range counts {
		putInt(buf, int64(e))
		putInt(buf, int64(n))
	}
	putBool(buf, p.DeclaredEnd)
	putInt(buf, int64(p.CardRedrawChances))
	putInt(buf, int64(p.DiceRerollChances))
	putStatuses(buf, p.CombatStatuses)
	putStatuses(buf, p.Summons)
	putSupports(buf, p.Supports)
}

func putStatuses(buf *bytes.Buffer, s Statuses) {
	insts := s.InOrder()
	putInt(buf, int64(len(insts)))
	for _, inst := range insts {
		putStatusInstance(buf, inst)
	}
}

func putStatusInstance(buf *bytes.Buffer, inst StatusInstance) {
	putInt(buf, int64(inst.Kind))
	putInt(buf, int64(inst.Usages))
	putInt(buf, int64(len(inst.Extra)))
	for k, v := range inst.Extra {
		putString(buf, k)
		putInt(buf, int64(v))
	}
}

func putSupports(buf *bytes.Buffer, s Supports) {
	entries := s.InOrder()
	putInt(buf, int64(s.Cap()))
	putInt(buf, int64(len(entries)))
	for _, e := range entries {
		putInt(buf, int64(e.Sid))
		putStatusInstance(buf, e.Inst)
	}
}

func putString(buf *bytes.Buffer, s string) {
	putInt(buf, int64(len(s)))
	buf.WriteString(s)
}

func putInt(buf *bytes.Buffer, v int64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func putBool(buf *bytes.Buffer, b bool) {
	if b {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

// decoder reads back the primitives Encoding wrote, in the same order.
type decoder struct {
	r *bytes.Reader
}

func newDecoder(vec []byte) *decoder { return &decoder{r: bytes.NewReader(vec)} }

func (d *decoder) int() (int64, error) { return binary.ReadVarint(d.r) }

func (d *decoder) bool() (bool, error) {
	b, err := d.r.ReadByte()
	return b != 0, err
}

func (d *decoder) string() (string, error) {
	n, err := d.int()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := d.r.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// PartialView is the decoded, read-only summary a client reconstructs from
// an Encoding. Every field that spec.md §4.5 treats as public (characters,
// auras, visible statuses, combat/summon/support containers, dice, round
// allowances) is always populated; the fields gated behind revealHand are
// exactly the ones §3 calls private to the opponent (hand contents, deck
// order/composition, and PlayerHiddenStatus/CharacterHiddenStatus, which
// are invisible by definition).
//
// Encoding round-trip (spec.md §8): for any stack-empty GameState (true of
// every state auto_step can return to a caller) and a RevealBoth plan,
// decoding(encoding(s)) reconstructs a PartialView identical to ViewOf(s,
// plan) — i.e. every field this view type carries, not the GameState
// value itself. The one thing this format deliberately excludes from the
// law is the effect stack, which is never non-empty at a point the format
// would be asked to encode (see encodePlayer's doc comment); encoding it
// would require a type tag and field layout per one of the ~20 concrete
// Effect structs for no observable benefit, since nothing ever inspects it
// through this interface.
type PartialView struct {
	Round        int
	ActivePlayer Pid
	Phase        PhaseTag
	Over         bool
	Winner       Pid
	Draw         bool
	RngSeed      int64
	RngCounter   uint64

	Player1 PlayerView
	Player2 PlayerView
}

type PlayerView struct {
	Characters        []CharacterView
	ActiveCharacterId CharId
	HandCount         int
	HandCards         CardMultiset // nil unless the encoding revealed it
	DeckCount         int
	DeckCards         []CardKind // nil unless the encoding revealed it
	InitialDeck       *Deck      // nil unless the encoding revealed it
	Dice              map[Element]int
	DeclaredEnd       bool
	CardRedrawChances int
	DiceRerollChances int
	CombatStatuses    []StatusInstance
	Summons           []StatusInstance
	Supports          []SupportView
	HiddenStatuses    []StatusInstance // nil unless the encoding revealed it
}

type SupportView struct {
	Sid  int
	Inst StatusInstance
}

type CharacterView struct {
	Id       CharId
	Kind     CharacterKind
	HP       int
	Energy   int
	Alive    bool
	Aura     []Element
	Statuses []StatusInstance
}

// ViewOf builds the same PartialView shape Decoding(Encoding(gs, plan),
// plan) would, directly from gs with no serialization round-trip. It
// exists to state and test the encoding round-trip law without comparing
// against the GameState type Decoding was explicitly scoped away from.
func ViewOf(gs GameState, plan EncodingPlan) PartialView {
	v := PartialView{
		Round: gs.Round, ActivePlayer: gs.ActivePlayer, Phase: gs.Phase,
		Over: gs.Over, Winner: gs.Winner, Draw: gs.Draw,
		RngSeed: gs.Rng.seed, RngCounter: gs.Rng.counter,
	}
	v.Player1 = playerViewOf(gs.Player1, plan.RevealBoth || plan.Viewer == P1)
	v.Player2 = playerViewOf(gs.Player2, plan.RevealBoth || plan.Viewer == P2)
	return v
}

func playerViewOf(p PlayerState, reveal bool) PlayerView {
	pv := PlayerView{
		ActiveCharacterId: p.ActiveCharacterId,
		DeckCount:         len(p.DeckCards),
		DeclaredEnd:       p.DeclaredEnd,
		CardRedrawChances: p.CardRedrawChances,
		DiceRerollChances: p.DiceRerollChances,
		Dice:              p.Dice.Counts(),
		CombatStatuses:    p.CombatStatuses.InOrder(),
		Summons:           p.Summons.InOrder(),
	}
	for _, c := range p.Characters {
		pv.Characters = append(pv.Characters, CharacterView{
			Id: c.Id, Kind: c.Kind, HP: c.HP, Energy: c.Energy, Alive: c.Alive,
			Aura: c.Aura.Elements(), Statuses: c.Statuses.InOrder(),
		})
	}
	for _, e := range p.Supports.InOrder() {
		pv.Supports = append(pv.Supports, SupportView{Sid: e.Sid, Inst: e.Inst})
	}
	pv.HandCount = p.HandCards.Total()
	if reveal {
		pv.HandCards = p.HandCards.clone()
		pv.DeckCards = make([]CardKind, len(p.DeckCards))
		copy(pv.DeckCards, p.DeckCards)
		deck := Deck{Chars: p.InitialDeck.Chars, Cards: make(map[CardKind]int, len(p.InitialDeck.Cards))}
		for k, n := range p.InitialDeck.Cards {
			deck.Cards[k] = n
		}
		pv.InitialDeck = &deck
		pv.HiddenStatuses = p.HiddenStatuses.InOrder()
	}
	return pv
}

// Decoding parses vec back into a PartialView. It cannot distinguish a
// revealing from a non-revealing encoding by inspection alone; callers
// must track which EncodingPlan produced vec (mirrors spec.md §4.7's
// decoding taking the same plan the encoder used).
func Decoding(vec []byte, plan EncodingPlan) (PartialView, error) {
	d := newDecoder(vec)
	var v PartialView

	round, err := d.int()
	if err != nil {
		return v, reject(InvalidEncoding, "truncated round: %v", err)
	}
	v.Round = int(round)

	active, err := d.int()
	if err != nil {
		return v, reject(InvalidEncoding, "truncated active player: %v", err)
	}
	v.ActivePlayer = Pid(active)

	phase, err := d.int()
	if err != nil {
		return v, reject(InvalidEncoding, "truncated phase: %v", err)
	}
	v.Phase = PhaseTag(phase)

	if v.Over, err = d.bool(); err != nil {
		return v, reject(InvalidEncoding, "truncated over flag: %v", err)
	}
	winner, err := d.int()
	if err != nil {
		return v, reject(InvalidEncoding, "truncated winner: %v", err)
	}
	v.Winner = Pid(winner)
	if v.Draw, err = d.bool(); err != nil {
		return v, reject(InvalidEncoding, "truncated draw flag: %v", err)
	}
	seed, err := d.int()
	if err != nil {
		return v, reject(InvalidEncoding, "truncated rng seed: %v", err)
	}
	v.RngSeed = seed
	counter, err := d.int()
	if err != nil {
		return v, reject(InvalidEncoding, "truncated rng counter: %v", err)
	}
	v.RngCounter = uint64(counter)

	v.Player1, err = decodePlayer(d, plan.RevealBoth || plan.Viewer == P1)
	if err != nil {
		return v, err
	}
	v.Player2, err = decodePlayer(d, plan.RevealBoth || plan.Viewer == P2)
	if err != nil {
		return v, err
	}
	return v, nil
}

func decodeStatuses(d *decoder) ([]StatusInstance, error) {
	n, err := d.int()
	if err != nil {
		return nil, reject(InvalidEncoding, "truncated status count: %v", err)
	}
	out := make([]StatusInstance, 0, n)
	for i := int64(0); i < n; i++ {
		inst, err := decodeStatusInstance(d)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

func decodeStatusInstance(d *decoder) (StatusInstance, error) {
	var inst StatusInstance
	kind, err := d.int()
	if err != nil {
		return inst, reject(InvalidEncoding, "truncated status kind: %v", err)
	}
	inst.Kind = StatusKind(kind)
	usages, err := d.int()
	if err != nil {
		return inst, reject(InvalidEncoding, "truncated status usages: %v", err)
	}
	inst.Usages = int(usages)
	extraN, err := d.int()
	if err != nil {
		return inst, reject(InvalidEncoding, "truncated status extra count: %v", err)
	}
	inst.Extra = make(map[string]int, extraN)
	for i := int64(0); i < extraN; i++ {
		k, err := d.string()
		if err != nil {
			return inst, reject(InvalidEncoding, "truncated status extra key: %v", err)
		}
		v, err := d.int()
		if err != nil {
			return inst, reject(InvalidEncoding, "truncated status extra value: %v", err)
		}
		inst.Extra[k] = int(v)
	}
	return inst, nil
}

func decodeSupports(d *decoder) ([]SupportView, error) {
	if _, err := d.int(); err != nil { // cap, not needed to reconstruct the view
		return nil, reject(InvalidEncoding, "truncated supports cap: %v", err)
	}
	n, err := d.int()
	if err != nil {
		return nil, reject(InvalidEncoding, "truncated supports count: %v", err)
	}
	var out []SupportView
	for i := int64(0); i < n; i++ {
		sid, err := d.int()
		if err != nil {
			return nil, reject(InvalidEncoding, "truncated support slot id: %v", err)
		}
		inst, err := decodeStatusInstance(d)
		if err != nil {
			return nil, err
		}
		out = append(out, SupportView{Sid: int(sid), Inst: inst})
	}
	return out, nil
}

func decodePlayer(d *decoder, revealedHand bool) (PlayerView, error) {
	var pv PlayerView
	n, err := d.int()
	if err != nil {
		return pv, reject(InvalidEncoding, "truncated character count: %v", err)
	}
	for i := int64(0); i < n; i++ {
		var cv CharacterView
		id, _ := d.int()
		cv.Id = CharId(id)
		kind, _ := d.int()
		cv.Kind = CharacterKind(kind)
		hp, _ := d.int()
		cv.HP = int(hp)
		energy, _ := d.int()
		cv.Energy = int(energy)
		alive, _ := d.bool()
		cv.Alive = alive
		auraLen, _ := d.int()
		cv.Aura = make([]Element, 0, auraLen)
		for j := int64(0); j < auraLen; j++ {
			e, _ := d.int()
			cv.Aura = append(cv.Aura, Element(e))
		}
		cv.Statuses, err = decodeStatuses(d)
		if err != nil {
			return pv, err
		}
		pv.Characters = append(pv.Characters, cv)
	}
	active, err := d.int()
	if err != nil {
		return pv, reject(InvalidEncoding, "truncated active character id: %v", err)
	}
	pv.ActiveCharacterId = CharId(active)

	if revealedHand {
		handN, _ := d.int()
		pv.HandCards = CardMultiset{}
		for i := int64(0); i < handN; i++ {
			k, _ := d.int()
			c, _ := d.int()
			pv.HandCards[CardKind(k)] = int(c)
			pv.HandCount += int(c)
		}
		deckN, err := d.int()
		if err != nil {
			return pv, reject(InvalidEncoding, "truncated deck count: %v", err)
		}
		pv.DeckCount = int(deckN)
		pv.DeckCards = make([]CardKind, 0, deckN)
		for i := int64(0); i < deckN; i++ {
			k, _ := d.int()
			pv.DeckCards = append(pv.DeckCards, CardKind(k))
		}
		var deck Deck
		charsN, err := d.int()
		if err != nil {
			return pv, reject(InvalidEncoding, "truncated initial deck chars: %v", err)
		}
		for i := int64(0); i < charsN && i < 3; i++ {
			k, _ := d.int()
			deck.Chars[i] = CharacterKind(k)
		}
		cardsN, err := d.int()
		if err != nil {
			return pv, reject(InvalidEncoding, "truncated initial deck cards: %v", err)
		}
		deck.Cards = make(map[CardKind]int, cardsN)
		for i := int64(0); i < cardsN; i++ {
			k, _ := d.int()
			c, _ := d.int()
			deck.Cards[CardKind(k)] = int(c)
		}
		pv.InitialDeck = &deck
		pv.HiddenStatuses, err = decodeStatuses(d)
		if err != nil {
			return pv, err
		}
	} else {
		handCount, _ := d.int()
		pv.HandCount = int(handCount)
		deckN, err := d.int()
		if err != nil {
			return pv, reject(InvalidEncoding, "truncated deck count: %v", err)
		}
		pv.DeckCount = int(deckN)
	}

	diceN, _ := d.int()
	pv.Dice = map[Element]int{}
	for i := int64(0); i < diceN; i++ {
		e, _ := d.int()
		c, _ := d.int()
		pv.Dice[Element(e)] = int(c)
	}
	declared, _ := d.bool()
	pv.DeclaredEnd = declared
	redraw, _ := d.int()
	pv.CardRedrawChances = int(redraw)
	reroll, _ := d.int()
	pv.DiceRerollChances = int(reroll)
	var err2 error
	pv.CombatStatuses, err2 = decodeStatuses(d)
	if err2 != nil {
		return pv, err2
	}
	pv.Summons, err2 = decodeStatuses(d)
	if err2 != nil {
		return pv, err2
	}
	pv.Supports, err2 = decodeSupports(d)
	if err2 != nil {
		return pv, err2
	}
	return pv, nil
}
