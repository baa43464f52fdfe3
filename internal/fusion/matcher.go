package fusion

import (
	"math"

	"go.uber.org/zap"
)

// Room matching is a deterministic greedy pass rather than a full bipartite
// assignment: anchor rooms claim candidates in anchor-list order, and a
// claimed candidate is never reconsidered for a later anchor room. With
// fewer than ~50 rooms per source the quality difference against an
// optimal assignment is negligible and the greedy pass keeps the binding
// order reproducible.

// MatchRooms groups candidate rooms across sources into match groups, one
// per physical room.
//
// The anchor source is the first non-empty candidate list in AnchorPriority
// order. Every anchor room seeds a group; each other non-empty source
// contributes at most its best-scoring unclaimed candidate above the
// acceptance threshold. Anchor rooms with no match from a source simply
// omit that source. Unmatched candidates from non-anchor sources are
// dropped: non-anchor sources are partial evidence only, never rooms in
// their own right.
func (e *Engine) MatchRooms(in *Input) []MatchGroup {
	lists := in.bySource()

	var anchor Source
	for _, s := range AnchorPriority {
		if len(lists[s]) > 0 {
			anchor = s
			break
		}
	}
	if anchor == "" {
		return nil
	}

	// Candidates already bound to a group, per non-anchor source.
	claimed := make(map[Source][]bool)
	for _, s := range AnchorPriority {
		if s != anchor {
			claimed[s] = make([]bool, len(lists[s]))
		}
	}

	groups := make([]MatchGroup, 0, len(lists[anchor]))
	for _, ref := range lists[anchor] {
		group := MatchGroup{Members: []Member{{Source: anchor, Room: ref}}}

		for _, s := range AnchorPriority {
			if s == anchor || len(lists[s]) == 0 {
				continue
			}
			if idx := e.findBestMatch(ref, lists[s], claimed[s]); idx >= 0 {
				claimed[s][idx] = true
				group.Members = append(group.Members, Member{Source: s, Room: lists[s][idx]})
			}
		}
		groups = append(groups, group)
	}

	e.log.Debug("matched rooms across sources",
		zap.String("anchor", string(anchor)),
		zap.Int("groups", len(groups)),
	)
	return groups
}

// findBestMatch returns the index of the unclaimed candidate with the
// highest similarity to the reference room, or -1 when no candidate scores
// above the acceptance threshold. Ties keep the first candidate
// encountered.
func (e *Engine) findBestMatch(ref CandidateRoom, candidates []CandidateRoom, claimed []bool) int {
	best := -1
	bestScore := 0.0

	for i, cand := range candidates {
		if claimed[i] {
			continue
		}
		if score := e.similarity(ref, cand); score > bestScore {
			bestScore = score
			best = i
		}
	}

	if bestScore > e.cfg.Matcher.AcceptThreshold {
		return best
	}
	return -1
}

// similarity scores how likely two candidates denote the same physical
// room: a type component for an exact known-type match plus an area
// component that decays linearly with relative area difference and is
// gated off entirely beyond MaxAreaDifference.
func (e *Engine) similarity(ref, cand CandidateRoom) float64 {
	m := e.cfg.Matcher
	score := 0.0

	if ref.Type == cand.Type && ref.Type != RoomUnknown {
		score += m.TypeMatchWeight
	}

	refArea, candArea := ref.Dimensions.Area(), cand.Dimensions.Area()
	if refArea > 0 && candArea > 0 {
		diff := math.Abs(refArea-candArea) / math.Max(refArea, candArea)
		if diff < m.MaxAreaDifference {
			score += m.AreaWeight * (1 - diff)
		}
	}

	return score
}
