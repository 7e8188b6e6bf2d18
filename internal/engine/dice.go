package engine

import "sort"

// DicePool is a non-negative multiset of dice, keyed by the elements a die
// can actually be (the seven real elements plus Omni). It is a plain value
// type: every mutating-looking method returns a new pool.
type DicePool struct {
	counts map[Element]int
}

// NewDicePool builds a pool from explicit per-element counts. Negative or
// zero entries are dropped immediately so two pools with the same
// non-zero contents always compare equal via reflect.DeepEqual-style
// structural equality on Counts().
func NewDicePool(counts map[Element]int) DicePool {
	p := DicePool{counts: map[Element]int{}}
	for e, n := range counts {
		if n > 0 {
			p.counts[e] = n
		}
	}
	return p
}

// Counts returns a defensive copy of the per-element counts.
func (p DicePool) Counts() map[Element]int {
	out := make(map[Element]int, len(p.counts))
	for e, n := range p.counts {
		out[e] = n
	}
	return out
}

// Of returns the die count for one element.
func (p DicePool) Of(e Element) int { return p.counts[e] }

// Num returns the total die count.
func (p DicePool) Num() int {
	n := 0
	for _, c := range p.counts {
		n += c
	}
	return n
}

// IsEven reports whether the total die count is even.
func (p DicePool) IsEven() bool { return p.Num()%2 == 0 }

// Add returns p with q's dice added.
func (p DicePool) Add(q DicePool) DicePool {
	out := p.Counts()
	for e, n := range q.counts {
		out[e] += n
	}
	return NewDicePool(out)
}

// Sub returns p with q's dice removed; counts never go negative (extra
// removal beyond what's present is simply clamped to zero, matching a
// multiset difference).
func (p DicePool) Sub(q DicePool) DicePool {
	out := p.Counts()
	for e, n := range q.counts {
		if out[e] <= n {
			delete(out, e)
		} else {
			out[e] -= n
		}
	}
	return NewDicePool(out)
}

// CostLessElem returns p with n fewer dice of elem removed (clamped to
// what's available). If elem is nil, n fewer of whichever single element
// has the most copies is removed (a generic "reduce elemental cost"
// discount with no fixed colour).
func (p DicePool) CostLessElem(n int, elem *Element) DicePool {
	if n <= 0 {
		return p
	}
	target := Element(-1)
	if elem != nil {
		target = *elem
	} else {
		best, bestN := Element(-1), -1
		for _, e := range ActualDiceElements {
			if p.counts[e] > bestN {
				best, bestN = e, p.counts[e]
			}
		}
		target = best
	}
	return p.Sub(NewDicePool(map[Element]int{target: n}))
}

// CostLessAny removes up to n dice total, any colours, favouring the
// colour with the most copies first (so a flat discount doesn't strand a
// player's only die of a colour they need elsewhere).
func (p DicePool) CostLessAny(n int) DicePool {
	out := p.Counts()
	for n > 0 {
		best, bestN := Element(-1), 0
		for _, e := range ActualDiceElements {
			if out[e] > bestN {
				best, bestN = e, out[e]
			}
		}
		if bestN == 0 {
			break
		}
		out[best]--
		n--
	}
	return NewDicePool(out)
}

// DiceRequirement describes a cost to pay: some fixed number of specific
// real-element dice, plus an "OMNI requirement" count (dice that must all
// share one real element, satisfiable by real Omni dice of any colour or
// by real dice of one shared colour) and an "ANY requirement" count (no
// colour constraint at all). Specific/SameElem/Any are requirement-only
// shapes; ActualDice never appear as keys here except inside Specific.
type DiceRequirement struct {
	Specific map[Element]int
	SameElem int
	Any      int
}

// Total is the number of dice the requirement demands.
func (r DiceRequirement) Total() int {
	n := r.SameElem + r.Any
	for _, c := range r.Specific {
		n += c
	}
	return n
}

// JustSatisfy reports whether payment exactly covers req: a payment with
// the right specific-element counts, whose OMNI-requirement slice can be
// grouped into one shared colour (real dice of that colour plus/minus real
// Omni dice), and whose remaining dice equal the ANY-requirement count
// exactly (spec.md §8 "Payment idempotence" depends on this being exact,
// not merely sufficient).
func (p DicePool) JustSatisfy(req DiceRequirement) bool {
	if p.Num() != req.Total() {
		return false
	}
	remaining := p.Counts()
	for e, n := range req.Specific {
		if remaining[e] < n {
			return false
		}
		remaining[e] -= n
	}
	if req.SameElem > 0 {
		if !consumeSameElem(remaining, req.SameElem) {
			return false
		}
	}
	left := 0
	for _, n := range remaining {
		left += n
	}
	return left == req.Any
}

// consumeSameElem tries to remove n dice from remaining that are all one
// real element (using Omni dice to cover any shortfall of that element),
// mutating remaining in place on success.
func consumeSameElem(remaining map[Element]int, n int) bool {
	omni := remaining[Omni]
	for _, e := range RealElements {
		have := remaining[e]
		if have+omni >= n {
			fromReal := n
			if fromReal > have {
				fromReal = have
			}
			fromOmni := n - fromReal
			remaining[e] -= fromReal
			remaining[Omni] -= fromOmni
			return true
		}
	}
	// No real dice of any colour at all: pure Omni payment.
	if omni >= n {
		remaining[Omni] -= n
		return true
	}
	return false
}

// BasicallySatisfy finds the cheapest payment for req drawn from pool,
// spending real Omni dice last. Returns ok=false if pool cannot cover req.
func (p DicePool) BasicallySatisfy(req DiceRequirement) (payment DicePool, ok bool) {
	remaining := p.Counts()
	paid := map[Element]int{}

	for e, n := range req.Specific {
		if remaining[e] < n {
			return DicePool{}, false
		}
		remaining[e] -= n
		paid[e] += n
	}

	if req.SameElem > 0 {
		best := Element(-1)
		bestHave := -1
		for _, e := range RealElements {
			if remaining[e] > bestHave {
				best, bestHave = e, remaining[e]
			}
		}
		fromReal := req.SameElem
		if best == -1 || bestHave < fromReal {
			fromReal = bestHave
			if fromReal < 0 {
				fromReal = 0
			}
		}
		fromOmni := req.SameElem - fromReal
		if remaining[Omni] < fromOmni {
			return DicePool{}, false
		}
		if fromReal > 0 {
			remaining[best] -= fromReal
			paid[best] += fromReal
		}
		if fromOmni > 0 {
			remaining[Omni] -= fromOmni
			paid[Omni] += fromOmni
		}
	}

	if req.Any > 0 {
		order := smartPrecedence(remaining)
		need := req.Any
		for _, e := range order {
			if need == 0 {
				break
			}
			take := remaining[e]
			if take > need {
				take = need
			}
			remaining[e] -= take
			paid[e] += take
			need -= take
		}
		if need > 0 {
			return DicePool{}, false
		}
	}

	return NewDicePool(paid), true
}

// smartPrecedence orders elements for "spend the least useful dice first"
// auto-selection (spec.md §4.1): dice of elements the paying player has no
// matching character for come first (modeled here, absent character
// context, as "spend Omni last, otherwise most-copies-first"); ties break
// on the fixed RealElements ordering.
func smartPrecedence(counts map[Element]int) []Element {
	elems := append([]Element{}, RealElements...)
	sort.SliceStable(elems, func(i, j int) bool {
		ci, cj := counts[elems[i]], counts[elems[j]]
		if ci != cj {
			return ci > cj
		}
		return i < j
	})
	return append(elems, Omni)
}

// SmartSelection chooses payment for req given a tiered spend precedence:
// precedence[0] is the set of elements to exhaust first. Characters-less
// elements are expected to be placed in the first tier by the caller
// (spec.md §4.1 priority order); Omni dice should always be the last tier.
func (p DicePool) SmartSelection(req DiceRequirement, precedence [][]Element) (DicePool, bool) {
	remaining := p.Counts()
	paid := map[Element]int{}

	for e, n := range req.Specific {
		if remaining[e] < n {
			return DicePool{}, false
		}
		remaining[e] -= n
		paid[e] += n
	}

	need := req.SameElem + req.Any
	if need == 0 {
		return NewDicePool(paid), true
	}

	// SameElem must come from one colour; satisfy it before the freeform
	// Any pool is drawn down, using the same tiered precedence to choose
	// which colour to commit to among those with enough copies.
	if req.SameElem > 0 {
		chosen := Element(-1)
		for _, tier := range precedence {
			for _, e := range tier {
				if e == Omni {
					continue
				}
				if remaining[e] >= req.SameElem {
					chosen = e
					break
				}
			}
			if chosen != -1 {
				break
			}
		}
		fromOmni := 0
		if chosen == -1 {
			// No single colour covers it alone; blend with Omni.
			best, bestHave := Element(-1), -1
			for _, e := range RealElements {
				if remaining[e] > bestHave {
					best, bestHave = e, remaining[e]
				}
			}
			if best != -1 && bestHave > 0 {
				chosen = best
				fromOmni = req.SameElem - bestHave
			}
		}
		if chosen == -1 {
			fromOmni = req.SameElem
			if remaining[Omni] < fromOmni {
				return DicePool{}, false
			}
			remaining[Omni] -= fromOmni
			paid[Omni] += fromOmni
		} else {
			fromReal := req.SameElem - fromOmni
			if remaining[chosen] < fromReal || remaining[Omni] < fromOmni {
				return DicePool{}, false
			}
			remaining[chosen] -= fromReal
			paid[chosen] += fromReal
			if fromOmni > 0 {
				remaining[Omni] -= fromOmni
				paid[Omni] += fromOmni
			}
		}
	}

	if req.Any > 0 {
		left := req.Any
		for _, tier := range precedence {
			tierElems := append([]Element{}, tier...)
			sort.SliceStable(tierElems, func(i, j int) bool {
				return remaining[tierElems[i]] > remaining[tierElems[j]]
			})
			for _, e := range tierElems {
				if left == 0 {
					break
				}
				take := remaining[e]
				if take > left {
					take = left
				}
				remaining[e] -= take
				paid[e] += take
				left -= take
			}
		}
		if left > 0 {
			return DicePool{}, false
		}
	}

	return NewDicePool(paid), true
}

// LessAny discounts a requirement by n dice, preferring to shrink the
// no-colour-constraint slice first, then SameElem, used by generic
// discount statuses (e.g. "your next card costs 2 less").
func (r DiceRequirement) LessAny(n int) DiceRequirement {
	out := r
	take := n
	if out.Any > 0 {
		d := take
		if d > out.Any {
			d = out.Any
		}
		out.Any -= d
		take -= d
	}
	if take > 0 && out.SameElem > 0 {
		d := take
		if d > out.SameElem {
			d = out.SameElem
		}
		out.SameElem -= d
		take -= d
	}
	return out
}

// LessElem discounts n dice of a specific required element, used by
// talents/artifacts that only discount their own skill's cost.
func (r DiceRequirement) LessElem(elem Element, n int) DiceRequirement {
	out := r
	out.Specific = make(map[Element]int, len(r.Specific))
	for e, c := range r.Specific {
		out.Specific[e] = c
	}
	if c, ok := out.Specific[elem]; ok {
		d := n
		if d > c {
			d = c
		}
		out.Specific[elem] = c - d
		if out.Specific[elem] == 0 {
			delete(out.Specific, elem)
		}
	}
	return out
}

// DefaultPrecedence builds the §4.1 three-tier spend order given the set
// of elements the player has at least one character of. Omni is always
// last; non-character elements are spent before character elements.
func DefaultPrecedence(havingCharacterOf map[Element]bool) [][]Element {
	var noChar, other []Element
	for _, e := range RealElements {
		if havingCharacterOf[e] {
			other = append(other, e)
		} else {
			noChar = append(noChar, e)
		}
	}
	return [][]Element{noChar, other, {Omni}}
}
