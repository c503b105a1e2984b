package engine

import "github.com/google/btree"

// segRef orders segments of one orientation by their Fixed coordinate,
// breaking ties by insertion order so same-Fixed segments (parallel,
// colinear moves) all coexist in the tree instead of colliding as a set.
//
// Keeping the segments in a B-tree ordered by Fixed turns both queries the
// intersection engine needs into range scans instead of full linear scans:
//   - colinear candidates for a new segment at coordinate f: the contiguous
//     run of entries with Fixed == f.
//   - perpendicular candidates for a new segment spanning [lo, hi]: the
//     contiguous run of entries with Fixed in [lo, hi].
//
// This is the "replace the lists with interval trees keyed by Fixed"
// refinement; the per-command contract (§4.2) is unchanged, only the scan
// bound improves from O(n) to O(log n + matches).
type segRef struct {
	fixed int64
	idx   int
}

func (a segRef) less(b segRef) bool {
	if a.fixed != b.fixed {
		return a.fixed < b.fixed
	}
	return a.idx < b.idx
}

const (
	refIdxMin = -1 << 62
	refIdxMax = 1<<62 - 1
)

// segmentIndex is an append-only, Fixed-ordered collection of segments of
// one orientation (all-H or all-V).
type segmentIndex struct {
	segments []Segment
	tree     *btree.BTreeG[segRef]
}

func newSegmentIndex() *segmentIndex {
	return &segmentIndex{
		tree: btree.NewG(32, segRef.less),
	}
}

func (idx *segmentIndex) append(s Segment) {
	ref := segRef{fixed: s.Fixed, idx: len(idx.segments)}
	idx.segments = append(idx.segments, s)
	idx.tree.ReplaceOrInsert(ref)
}

func (idx *segmentIndex) len() int {
	return len(idx.segments)
}

// sameFixed invokes fn for every stored segment whose Fixed coordinate
// equals f, in insertion order.
func (idx *segmentIndex) sameFixed(f int64, fn func(Segment)) {
	lo := segRef{fixed: f, idx: refIdxMin}
	hi := segRef{fixed: f, idx: refIdxMax}
	idx.tree.AscendRange(lo, hi, func(ref segRef) bool {
		fn(idx.segments[ref.idx])
		return true
	})
}

// fixedInRange invokes fn for every stored segment whose Fixed coordinate
// lies in [lo, hi], in Fixed order.
func (idx *segmentIndex) fixedInRange(lo, hi int64, fn func(Segment)) {
	if lo > hi {
		return
	}
	loRef := segRef{fixed: lo, idx: refIdxMin}
	hiRef := segRef{fixed: hi, idx: refIdxMax}
	idx.tree.AscendRange(loRef, hiRef, func(ref segRef) bool {
		fn(idx.segments[ref.idx])
		return true
	})
}
