package engine

// Effect is one pending state mutation. The effect stack is a closed,
// tagged-variant union (spec.md §9 design note), not arbitrary closures,
// so it stays reproducible: Execute is a pure function from the current
// state to the next state plus whatever further effects it enqueues.
type Effect interface {
	// Execute applies the effect, returning the next state and any
	// further effects to push (in natural, first-to-last order — the
	// stack pushes them reversed so they still run in that order).
	Execute(gs GameState) (GameState, []Effect, error)
}

// EffectStack is a LIFO queue of pending effects.
type EffectStack struct {
	items []Effect
}

func (s EffectStack) Empty() bool { return len(s.items) == 0 }

func (s EffectStack) Len() int { return len(s.items) }

// Push adds a single effect to the top of the stack.
func (s EffectStack) Push(e Effect) EffectStack {
	out := EffectStack{items: append(append([]Effect{}, s.items...), e)}
	return out
}

// PushManyFL pushes effects given in natural first-to-last execution
// order, reversing them onto the LIFO so link 1 still executes before
// link 2 (spec.md §4.3 "push_many_fl").
func (s EffectStack) PushManyFL(effects []Effect) EffectStack {
	out := append([]Effect{}, s.items...)
	for i := len(effects) - 1; i >= 0; i-- {
		out = append(out, effects[i])
	}
	return EffectStack{items: out}
}

// Pop removes and returns the top effect.
func (s EffectStack) Pop() (Effect, EffectStack) {
	if len(s.items) == 0 {
		return nil, s
	}
	top := s.items[len(s.items)-1]
	rest := EffectStack{items: append([]Effect{}, s.items[:len(s.items)-1]...)}
	return top, rest
}

// pushEffects is the common "pop current top, push its follow-ups" wiring
// used throughout execute: it takes the state already advanced past the
// popped effect and threads the follow-up effects onto the stack.
func pushEffects(gs GameState, follow []Effect) GameState {
	gs.EffectStack = gs.EffectStack.PushManyFL(follow)
	return gs
}

// --- Group markers (visual grouping only; no state change) ---

type EffectsGroupStart struct{ Label string }

func (e EffectsGroupStart) Execute(gs GameState) (GameState, []Effect, error) { return gs, nil, nil }

type EffectsGroupEnd struct{}

func (e EffectsGroupEnd) Execute(gs GameState) (GameState, []Effect, error) { return gs, nil, nil }

// --- HP / energy ---

// RecoverHP heals a living target by Amount, clamped to MaxHP.
type RecoverHP struct {
	Target StaticTarget
	Amount int
}

func (e RecoverHP) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Target.Pid)
	c := p.Character(CharId(e.Target.Id))
	if !c.Alive {
		return gs, nil, nil
	}
	healed := c.WithHP(c.HP + e.Amount)
	gs = gs.withPlayer(e.Target.Pid, p.withCharacter(healed))
	follow := []Effect{PersonalStatusTriggerer{Target: e.Target, Signal: PostHealing}}
	return gs, follow, nil
}

// ReviveRecoverHP heals a defeated target back to life, bypassing the
// "only alive targets" rule (spec.md §4.3).
type ReviveRecoverHP struct {
	Target StaticTarget
	Amount int
}

func (e ReviveRecoverHP) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Target.Pid)
	c := p.Character(CharId(e.Target.Id))
	revived := c.WithHP(e.Amount)
	gs = gs.withPlayer(e.Target.Pid, p.withCharacter(revived))
	return gs, nil, nil
}

// EnergyRecharge adds energy to a character, clamped to MaxEnergy.
type EnergyRecharge struct {
	Target StaticTarget
	Amount int
}

func (e EnergyRecharge) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Target.Pid)
	c := p.Character(CharId(e.Target.Id))
	if !c.Alive {
		return gs, nil, nil
	}
	gs = gs.withPlayer(e.Target.Pid, p.withCharacter(c.WithEnergy(c.Energy+e.Amount)))
	return gs, nil, nil
}

// EnergyDrain removes energy from a character (e.g. Electro-Charged-style
// effects some cards apply to the opponent).
type EnergyDrain struct {
	Target StaticTarget
	Amount int
}

func (e EnergyDrain) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Target.Pid)
	c := p.Character(CharId(e.Target.Id))
	gs = gs.withPlayer(e.Target.Pid, p.withCharacter(c.WithEnergy(c.Energy-e.Amount)))
	return gs, nil, nil
}

// --- Status mutation (generalized over Zone via StaticTarget, per
// one generic effect per verb rather than one per
// Character/Combat/Summon/Support/Hidden pairing) ---

type AddStatus struct {
	Target StaticTarget
	Inst   StatusInstance
}

func (e AddStatus) Execute(gs GameState) (GameState, []Effect, error) {
	return applyStatusContainerOp(gs, e.Target, func(s Statuses) Statuses { return s.Add(e.Inst) })
}

type OverrideStatus struct {
	Target StaticTarget
	Inst   StatusInstance
}

func (e OverrideStatus) Execute(gs GameState) (GameState, []Effect, error) {
	return applyStatusContainerOp(gs, e.Target, func(s Statuses) Statuses { return s.Override(e.Inst) })
}

type UpdateStatus struct {
	Target StaticTarget
	Delta  StatusInstance // Kind must match an existing instance
}

func (e UpdateStatus) Execute(gs GameState) (GameState, []Effect, error) {
	return applyStatusContainerOp(gs, e.Target, func(s Statuses) Statuses {
		existing, ok := s.Get(e.Delta.Kind)
		if !ok {
			return s.Add(e.Delta)
		}
		d := descriptorFor(e.Delta.Kind)
		if d.Update != nil {
			return s.set(d.Update(existing, e.Delta))
		}
		return s.set(e.Delta)
	})
}

type RemoveStatus struct {
	Target StaticTarget
	Kind   StatusKind
}

func (e RemoveStatus) Execute(gs GameState) (GameState, []Effect, error) {
	gs2, follow, err := applyStatusContainerOp(gs, e.Target, func(s Statuses) Statuses { return s.Remove(e.Kind) })
	if err != nil {
		return gs, nil, err
	}
	follow = append(follow, AllStatusTriggerer{Pid: e.Target.Pid, Signal: PostStatusRemoval})
	return gs2, follow, nil
}

// applyStatusContainerOp resolves which of a character/combat/summon/
// hidden container op applies to, runs it, and enforces the summon
// capacity invariant (spec.md §3 invariant 8) by returning an
// InternalInvariant error instead of growing past cap. The slot-based
// support zone is not handled here; actionCard places support cards
// into their slot directly.
func applyStatusContainerOp(gs GameState, target StaticTarget, op func(Statuses) Statuses) (GameState, []Effect, error) {
	p := gs.Player(target.Pid)
	switch target.Zone {
	case ZoneCharacter:
		c := p.Character(CharId(target.Id))
		c = c.WithStatuses(op(c.Statuses))
		return gs.withPlayer(target.Pid, p.withCharacter(c)), nil, nil
	case ZoneCombat:
		p.CombatStatuses = op(p.CombatStatuses)
		return gs.withPlayer(target.Pid, p), nil, nil
	case ZoneSummon:
		next := op(p.Summons)
		if next.Len() > gs.Mode.SummonsCap {
			return gs, nil, reject(InternalInvariant, "summon cap %d exceeded", gs.Mode.SummonsCap)
		}
		p.Summons = next
		return gs.withPlayer(target.Pid, p), nil, nil
	case ZoneHidden:
		p.HiddenStatuses = op(p.HiddenStatuses)
		return gs.withPlayer(target.Pid, p), nil, nil
	default:
		return gs, nil, reject(InternalInvariant, "status op on non-status zone %s", target.Zone)
	}
}

// --- Targetting / death helpers ---

// DynamicCharacterTarget resolves an abstract reference (the active
// character, "next alive", etc.) to a concrete CharId at execution time,
// used by ReferredDamage.
type DynamicCharacterTarget int

const (
	DynActive DynamicCharacterTarget = iota
	DynNextAlive
)

// ReferredDamage resolves an abstract target to a concrete one and pushes
// SpecificDamage (spec.md §4.3).
type ReferredDamage struct {
	Source     StaticTarget
	TargetPid  Pid
	Dynamic    DynamicCharacterTarget
	Element    Element
	Amount     int
	DamageType DamageType
}

func (e ReferredDamage) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.TargetPid)
	var cid CharId
	switch e.Dynamic {
	case DynActive:
		c, ok := p.ActiveCharacter()
		if !ok {
			return gs, nil, nil
		}
		cid = c.Id
	case DynNextAlive:
		found := false
		for _, c := range p.Characters {
			if c.Alive {
				cid = c.Id
				found = true
				break
			}
		}
		if !found {
			return gs, nil, nil
		}
	}
	follow := []Effect{SpecificDamage{
		Source: e.Source, Target: CharTarget(e.TargetPid, cid),
		Element: e.Element, Amount: e.Amount, DamageType: e.DamageType,
	}}
	return gs, follow, nil
}

// SpecificDamage is a concrete, resolved damage instance; its Execute
// drives the full resolution pipeline of spec.md §4.4 by delegating to
// ResolveDamage (damage.go) and pushing the resulting effects.
type SpecificDamage struct {
	Source     StaticTarget
	Target     StaticTarget
	Element    Element
	Amount     int
	DamageType DamageType
}

func (e SpecificDamage) Execute(gs GameState) (GameState, []Effect, error) {
	return ResolveDamage(gs, e)
}

// AliveMarkChecker/DefeatedMarkChecker re-derive the Alive flag for every
// character (defensive re-assertion of invariant 1; normally redundant
// since WithHP already maintains it, but kept as an explicit effect the
// way dgisim emits one after any batch of HP changes, so a future bug in
// an ad-hoc HP mutation is caught rather than silently producing a
// dead-but-marked-alive character).
type AliveMarkChecker struct{}

func (e AliveMarkChecker) Execute(gs GameState) (GameState, []Effect, error) {
	for _, pid := range []Pid{P1, P2} {
		p := gs.Player(pid)
		for _, c := range p.Characters {
			if c.HP > 0 && !c.Alive {
				p = p.withCharacter(c.WithHP(c.HP))
			}
		}
		gs = gs.withPlayer(pid, p)
	}
	return gs, nil, nil
}

type DefeatedMarkChecker struct{}

func (e DefeatedMarkChecker) Execute(gs GameState) (GameState, []Effect, error) {
	var follow []Effect
	for _, pid := range []Pid{P1, P2} {
		p := gs.Player(pid)
		for _, c := range p.Characters {
			if c.HP <= 0 && c.Alive {
				p = p.withCharacter(c.WithHP(0))
				follow = append(follow, PersonalStatusTriggerer{Target: CharTarget(pid, c.Id), Signal: DeathEvent})
			}
		}
		gs = gs.withPlayer(pid, p)
	}
	return gs, follow, nil
}

// DeathCheckChecker drains at the end of a damage batch: for each
// defeated character it consults revival statuses in order, and when a
// player's active character is defeated and not revived it demands a
// DeathSwap from that player (spec.md §4.4 step 9).
type DeathCheckChecker struct{}

func (e DeathCheckChecker) Execute(gs GameState) (GameState, []Effect, error) {
	var follow []Effect
	for _, pid := range []Pid{P1, P2} {
		p := gs.Player(pid)
		for _, c := range p.Characters {
			if c.Alive || c.HP > 0 {
				continue
			}
			revived, newGs := tryRevive(gs, pid, c.Id)
			gs = newGs
			if !revived && c.Id == p.ActiveCharacterId {
				follow = append(follow, RequireDeathSwap{Pid: pid})
			}
		}
	}
	return gs, follow, nil
}

// tryRevive consults the Revivable statuses among the character's own
// statuses, in order, and applies the first one; combat and hidden
// statuses are not searched.
func tryRevive(gs GameState, pid Pid, cid CharId) (bool, GameState) {
	p := gs.Player(pid)
	c := p.Character(cid)
	for _, inst := range c.Statuses.InOrder() {
		d := descriptorFor(inst.Kind)
		if !d.Revivable {
			continue
		}
		newStatuses := c.Statuses.Remove(inst.Kind)
		newC := c.WithStatuses(newStatuses).WithHP(d.ReviveAmount)
		gs = gs.withPlayer(pid, p.withCharacter(newC))
		return true, gs
	}
	return false, gs
}

// RequireDeathSwap marks that pid must choose a DeathSwap action before
// any other action is legal for them; the action generator/legality
// layer checks for the statusMustDeathSwap hidden status (needsDeathSwap)
// rather than a bespoke GameState field, keeping GameState's shape
// uniform.
type RequireDeathSwap struct{ Pid Pid }

func (e RequireDeathSwap) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Pid)
	p.HiddenStatuses = p.HiddenStatuses.Override(NewStatusInstance(statusMustDeathSwap, 1))
	return gs.withPlayer(e.Pid, p), nil, nil
}

// --- Swap ---

type SwapCharacter struct {
	Pid Pid
	To  CharId
}

func (e SwapCharacter) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Pid)
	from, _ := p.ActiveCharacter()
	p.ActiveCharacterId = e.To
	gs = gs.withPlayer(e.Pid, p)
	follow := []Effect{PersonalStatusTriggerer{Target: CharTarget(e.Pid, from.Id), Signal: SelfSwap}}
	return gs, follow, nil
}

// ForwardSwap advances the opponent's active character to the next one in
// roster order (Overloaded's forced swap).
type ForwardSwap struct{ Pid Pid }

func (e ForwardSwap) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Pid)
	cur, ok := p.ActiveCharacter()
	if !ok {
		return gs, nil, nil
	}
	next := nextAliveCyclic(p.Characters, cur.Id, 1)
	if next == 0 || next == cur.Id {
		return gs, nil, nil
	}
	follow := []Effect{SwapCharacter{Pid: e.Pid, To: next}}
	return gs, follow, nil
}

// BackwardSwap is ForwardSwap's mirror, used by a small number of
// cards/statuses that push the active character backward in roster order.
type BackwardSwap struct{ Pid Pid }

func (e BackwardSwap) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Pid)
	cur, ok := p.ActiveCharacter()
	if !ok {
		return gs, nil, nil
	}
	next := nextAliveCyclic(p.Characters, cur.Id, -1)
	if next == 0 || next == cur.Id {
		return gs, nil, nil
	}
	follow := []Effect{SwapCharacter{Pid: e.Pid, To: next}}
	return gs, follow, nil
}

func nextAliveCyclic(chars []Character, from CharId, dir int) CharId {
	n := len(chars)
	if n == 0 {
		return 0
	}
	idx := -1
	for i, c := range chars {
		if c.Id == from {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0
	}
	for step := 1; step <= n; step++ {
		i := ((idx+dir*step)%n + n) % n
		if chars[i].Alive {
			return chars[i].Id
		}
	}
	return 0
}

// --- Signal broadcasts ---

type AllStatusTriggerer struct {
	Pid    Pid
	Signal Signal
	Detail SignalDetail
}

func (e AllStatusTriggerer) Execute(gs GameState) (GameState, []Effect, error) {
	return BroadcastSignal(gs, e.Pid, e.Signal, e.Detail)
}

type PersonalStatusTriggerer struct {
	Target StaticTarget
	Signal Signal
	Detail SignalDetail
}

func (e PersonalStatusTriggerer) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Target.Pid)
	switch e.Target.Zone {
	case ZoneCharacter:
		c := p.Character(CharId(e.Target.Id))
		next, follow := reactContainer(gs, charZoneTarget(e.Target.Pid, c.Id), c.Statuses, e.Signal, e.Detail)
		gs = gs.withPlayer(e.Target.Pid, p.withCharacter(c.WithStatuses(next)))
		return gs, follow, nil
	default:
		return reactOne(gs, e.Target, StatusKind(e.Target.Id), e.Signal, e.Detail)
	}
}

type TriggerStatus struct {
	Target StaticTarget
	Kind   StatusKind
	Signal Signal
	Detail SignalDetail
}

func (e TriggerStatus) Execute(gs GameState) (GameState, []Effect, error) {
	return reactOne(gs, e.Target, e.Kind, e.Signal, e.Detail)
}

type TriggerSummon struct {
	Pid    Pid
	Kind   StatusKind
	Signal Signal
	Detail SignalDetail
}

func (e TriggerSummon) Execute(gs GameState) (GameState, []Effect, error) {
	return reactOne(gs, StaticTarget{Pid: e.Pid, Zone: ZoneSummon, Id: int(e.Kind)}, e.Kind, e.Signal, e.Detail)
}

type TriggerSupport struct {
	Pid    Pid
	Sid    int
	Signal Signal
	Detail SignalDetail
}

func (e TriggerSupport) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Pid)
	inst, ok := p.Supports.At(e.Sid)
	if !ok {
		return gs, nil, nil
	}
	d := descriptorFor(inst.Kind)
	if d.React == nil {
		return gs, nil, nil
	}
	target := StaticTarget{Pid: e.Pid, Zone: ZoneSupport, Id: e.Sid}
	follow, next, keep := d.React(gs, target, inst, e.Signal, e.Detail)
	if keep {
		p.Supports = p.Supports.Place(e.Sid, next)
	} else {
		p.Supports = p.Supports.Remove(e.Sid)
	}
	return gs.withPlayer(e.Pid, p), follow, nil
}

// --- Phase control ---

// ConsecutiveAction marks that pid's next action does not pass priority to
// the opponent (a "fast action" just occurred).
type ConsecutiveAction struct{ Pid Pid }

func (e ConsecutiveAction) Execute(gs GameState) (GameState, []Effect, error) {
	gs.ActivePlayer = e.Pid
	return gs, nil, nil
}

// TurnEnd passes the acting turn to the other player, unless they have
// already declared end for the round.
type TurnEnd struct{ Pid Pid }

func (e TurnEnd) Execute(gs GameState) (GameState, []Effect, error) {
	other := e.Pid.Other()
	if gs.Player(other).DeclaredEnd {
		gs.ActivePlayer = e.Pid
	} else {
		gs.ActivePlayer = other
	}
	return gs, nil, nil
}

// CastSkill invokes a character's skill script, used both for a directly
// chosen SkillAction and for a PrepareSkillStatus's stored follow-up.
type CastSkill struct {
	Pid  Pid
	Char CharId
	Skill SkillId
}

func (e CastSkill) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Pid)
	c := p.Character(e.Char)
	skill := c.Descriptor().Skill(e.Skill)
	self := CharTarget(e.Pid, e.Char)
	effects := skill.Execute(gs, e.Pid, self)
	var follow []Effect
	follow = append(follow, effects...)
	follow = append(follow, AllStatusTriggerer{Pid: e.Pid, Signal: PostSkill})
	return gs, follow, nil
}

// ApplyElementalAura attaches/reacts an element onto a target's aura,
// used by skills/cards that apply an aura without dealing damage (auras
// applied as part of damage go through ResolveDamage instead).
type ApplyElementalAura struct {
	Target  StaticTarget
	Element Element
}

func (e ApplyElementalAura) Execute(gs GameState) (GameState, []Effect, error) {
	p := gs.Player(e.Target.Pid)
	c := p.Character(CharId(e.Target.Id))
	if !c.Alive {
		return gs, nil, nil
	}
	reaction, newAura, _, secondary := ResolveReaction(e.Element, c.Aura)
	gs = gs.withPlayer(e.Target.Pid, p.withCharacter(c.WithAura(newAura)))
	follow := secondaryEffects(gs, e.Target, e.Target.Pid.Other(), secondary)
	if reaction != NoReaction {
		follow = append(follow, AllStatusTriggerer{Pid: e.Target.Pid, Signal: PostAny, Detail: SignalDetail{Reaction: reaction, Target: e.Target}})
	}
	return gs, follow, nil
}
