package engine

// StatusInstance is the small runtime value carried per status: its kind,
// a primary counter (usages, remaining duration, shield stacks — whatever
// the concrete status's descriptor interprets it as) and a handful of
// named extra fields for statuses that need more than one number (e.g. a
// shield's per-stack amount, an infusion's element). This is the
// "CardInstance" half of the Card/CardInstance split the teacher uses for
// its own open catalogue, applied to statuses (DESIGN.md).
type StatusInstance struct {
	Kind   StatusKind
	Usages int
	Extra  map[string]int
}

func NewStatusInstance(kind StatusKind, usages int) StatusInstance {
	return StatusInstance{Kind: kind, Usages: usages, Extra: map[string]int{}}
}

func (s StatusInstance) WithExtra(key string, v int) StatusInstance {
	out := s
	out.Extra = make(map[string]int, len(s.Extra)+1)
	for k, vv := range s.Extra {
		out.Extra[k] = vv
	}
	out.Extra[key] = v
	return out
}

func (s StatusInstance) Get(key string) int { return s.Extra[key] }

func (s StatusInstance) withUsages(n int) StatusInstance {
	out := s
	out.Usages = n
	return out
}

// StatusDescriptor is the static, shared-by-every-instance behaviour table
// for one StatusKind — the "Card" half of the split. All four contract
// methods from spec.md §4.5 are optional function fields; a nil field
// means "no-op, keep instance unchanged" for Preprocess/Inform/React, or
// "replace with incoming" for Update.
type StatusDescriptor struct {
	Kind   StatusKind
	Family StatusFamily

	MaxUsages   int  // 0 = uncapped
	AutoDestroy bool // remove when Usages <= 0 after a React/Inform post-hook
	IsDuration  bool // Usages counts down on RoundEnd instead of being a use-counter

	// UsageDeltaOnReact resolves spec.md §9's open question: when React
	// returns a new Usages value, is it a delta to apply on top of the
	// current value (true) or the absolute new value (false)? Recorded
	// explicitly per status rather than inferred from an embedding.
	UsageDeltaOnReact bool

	Preprocess func(gs GameState, self StaticTarget, inst StatusInstance, ev PreprocessEvent, sig Preprocessable) (PreprocessEvent, StatusInstance, bool)
	Inform     func(gs GameState, self StaticTarget, inst StatusInstance, info Informable, payload InformPayload) StatusInstance
	React      func(gs GameState, self StaticTarget, inst StatusInstance, sig Signal, detail SignalDetail) ([]Effect, StatusInstance, bool)
	Update     func(existing, incoming StatusInstance) StatusInstance

	// Revivable/PrepareSkill mark membership in the two cross-cutting
	// mix-in behaviours from spec.md §4.5. Revivable is consulted directly
	// by DeathCheckChecker (through tryRevive) rather than through React;
	// PrepareSkill names the skill that the status's own React casts on
	// ACT_PRE_SKILL.
	Revivable    bool
	ReviveAmount int
	PrepareSkill *SkillId // non-nil: this status, while present, forces CastSkill of *PrepareSkill on ACT_PRE_SKILL
}

// StatusRegistry is the StatusKind -> StatusDescriptor table, analogous to
// the teacher's CardRegistry map of name -> constructor.
var StatusRegistry = map[StatusKind]*StatusDescriptor{}

func registerStatus(d *StatusDescriptor) {
	StatusRegistry[d.Kind] = d
}

func descriptorFor(kind StatusKind) *StatusDescriptor {
	d, ok := StatusRegistry[kind]
	if !ok {
		panic("engine: status kind not registered: " + kind.String())
	}
	return d
}

// usageUpdate is the default Update for _UsageStatus-style descriptors:
// usages sum, capped at MaxUsages (spec.md §4.5).
func usageUpdate(max int) func(existing, incoming StatusInstance) StatusInstance {
	return func(existing, incoming StatusInstance) StatusInstance {
		sum := existing.Usages + incoming.Usages
		if max > 0 && sum > max {
			sum = max
		}
		return existing.withUsages(sum)
	}
}

// Statuses is an ordered set of StatusInstance values keyed by kind: at
// most one instance of a given kind, insertion order preserved for
// iteration (spec.md §3).
type Statuses struct {
	order []StatusKind
	byKind map[StatusKind]StatusInstance
}

func NewStatuses() Statuses {
	return Statuses{byKind: map[StatusKind]StatusInstance{}}
}

func (s Statuses) Len() int { return len(s.order) }

func (s Statuses) Get(kind StatusKind) (StatusInstance, bool) {
	inst, ok := s.byKind[kind]
	return inst, ok
}

func (s Statuses) Has(kind StatusKind) bool {
	_, ok := s.byKind[kind]
	return ok
}

// InOrder returns every instance in insertion order.
func (s Statuses) InOrder() []StatusInstance {
	out := make([]StatusInstance, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKind[k])
	}
	return out
}

func (s Statuses) clone() Statuses {
	out := Statuses{
		order:  append([]StatusKind{}, s.order...),
		byKind: make(map[StatusKind]StatusInstance, len(s.byKind)),
	}
	for k, v := range s.byKind {
		out.byKind[k] = v
	}
	return out
}

// Add inserts inst, merging through the descriptor's Update if an
// instance of the same kind already exists (spec.md §4.5: "created ...;
// updated by its own update method when the same type is re-added").
func (s Statuses) Add(inst StatusInstance) Statuses {
	out := s.clone()
	d := descriptorFor(inst.Kind)
	if existing, ok := out.byKind[inst.Kind]; ok && d.Update != nil {
		out.byKind[inst.Kind] = d.Update(existing, inst)
		return out
	}
	if !out.Has(inst.Kind) {
		out.order = append(out.order, inst.Kind)
	}
	out.byKind[inst.Kind] = inst
	return out
}

// Override replaces unconditionally, ignoring any existing instance's
// Update merge rule.
func (s Statuses) Override(inst StatusInstance) Statuses {
	out := s.clone()
	if !out.Has(inst.Kind) {
		out.order = append(out.order, inst.Kind)
	}
	out.byKind[inst.Kind] = inst
	return out
}

// Remove deletes the instance of the given kind, if present.
func (s Statuses) Remove(kind StatusKind) Statuses {
	if !s.Has(kind) {
		return s
	}
	out := s.clone()
	delete(out.byKind, kind)
	for i, k := range out.order {
		if k == kind {
			out.order = append(out.order[:i], out.order[i+1:]...)
			break
		}
	}
	return out
}

// set replaces an existing instance's value without touching order,
// used by the signal-propagation/preprocess loops after a React/Preprocess
// call returns an updated instance for the same kind.
func (s Statuses) set(inst StatusInstance) Statuses {
	out := s.clone()
	out.byKind[inst.Kind] = inst
	return out
}
