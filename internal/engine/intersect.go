package engine

import "sort"

// interval is an inclusive [lo, hi] range on whichever axis a segment
// varies over. A perpendicular crossing contributes a degenerate interval
// (lo == hi); a colinear overlap contributes a proper range.
type interval struct {
	lo, hi int64
}

// unionLen returns the number of distinct integers covered by the union of
// ivs, computed by sorting and merging — never by enumerating individual
// points. This is what lets the engine absorb a colinear overlap of, say,
// 100,000 cells in time proportional to the number of overlapping
// segments, not to the overlap's length.
func unionLen(ivs []interval) uint64 {
	if len(ivs) == 0 {
		return 0
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].lo < ivs[j].lo })

	var total uint64
	curLo, curHi := ivs[0].lo, ivs[0].hi
	for _, iv := range ivs[1:] {
		if iv.lo <= curHi+1 {
			if iv.hi > curHi {
				curHi = iv.hi
			}
			continue
		}
		total += uint64(curHi-curLo) + 1
		curLo, curHi = iv.lo, iv.hi
	}
	total += uint64(curHi-curLo) + 1
	return total
}

// absorb computes the number of distinct lattice points of the new
// segment `s` that coincide with any segment already present in `own`
// (same orientation, for colinear overlap) or `other` (opposite
// orientation, for perpendicular crossings). It does not mutate either
// index; the caller appends `s` to its owning index afterward.
func absorb(s Segment, own, other *segmentIndex) uint64 {
	var ivs []interval

	// Perpendicular: candidates are the opposite-orientation segments whose
	// Fixed coordinate falls inside s's range — only those can possibly
	// cross s at all.
	other.fixedInRange(s.Lo, s.Hi, func(o Segment) {
		if s.Fixed >= o.Lo && s.Fixed <= o.Hi {
			ivs = append(ivs, interval{lo: o.Fixed, hi: o.Fixed})
		}
	})

	// Colinear: candidates are same-orientation segments at the exact same
	// Fixed coordinate.
	own.sameFixed(s.Fixed, func(o Segment) {
		if lo, hi, ok := overlap(s.Lo, s.Hi, o.Lo, o.Hi); ok {
			ivs = append(ivs, interval{lo: lo, hi: hi})
		}
	})

	return unionLen(ivs)
}
