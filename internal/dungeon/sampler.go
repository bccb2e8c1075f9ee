package dungeon

import (
	"math"
	"sort"

	rng "dungen/pkg/core"
)

// placementSampler is a discrete distribution over candidate room top-left
// positions. Candidate weight is exp(-cost at the candidate's center), so
// low-cost regions are exponentially more likely to be drawn. The sampler is
// rebuilt from the cost map snapshot for every draw and holds no state of
// its own beyond the cumulative weights.
type placementSampler struct {
	w, h  int
	cum   []float64
	total float64
}

// newPlacementSampler builds the distribution for a room of the given size.
// The sampled center is clamped in-bounds so rooms spilling off the edge are
// still weighted by a real cost value.
func newPlacementSampler(cost *CostMap, roomW, roomH int) *placementSampler {
	w := cost.grid.W
	h := cost.grid.H
	s := &placementSampler{w: w, h: h, cum: make([]float64, w*h)}
	running := 0.0
	for y := 0; y < h; y++ {
		cy := clampInt(y+roomH/2, 0, h-1)
		for x := 0; x < w; x++ {
			cx := clampInt(x+roomW/2, 0, w-1)
			running += math.Exp(-cost.At(cx, cy))
			s.cum[y*w+x] = running
		}
	}
	s.total = running
	return s
}

// pick draws one top-left candidate. When every weight has underflowed to
// zero (uniformly extreme costs) the draw falls back to uniform.
func (s *placementSampler) pick(r *rng.RNG) (int, int) {
	if s.total == 0 {
		idx := r.IntN(len(s.cum))
		return idx % s.w, idx / s.w
	}
	target := r.Float64() * s.total
	idx := sort.SearchFloat64s(s.cum, target)
	if idx >= len(s.cum) {
		idx = len(s.cum) - 1
	}
	return idx % s.w, idx / s.w
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
