package dungeon

import (
	"container/heap"
	"fmt"
	"math"
)

// Step costs before the cost-map contribution is added. Carved floor is
// cheaper than rock so corridors prefer reusing existing floor.
const (
	floorStepCost = 0.5
	wallStepCost  = 1.0
)

// Cardinal neighbor order, fixed for reproducibility.
var cardinalDirs = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

type pathNode struct {
	idx       int
	cost      float64
	remaining int
}

// pathQueue orders nodes by accumulated cost, breaking ties by remaining
// Manhattan distance to the target and then by linear cell index, so the
// search expands identically for identical inputs.
type pathQueue []pathNode

func (q pathQueue) Len() int { return len(q) }
func (q pathQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	if q[i].remaining != q[j].remaining {
		return q[i].remaining < q[j].remaining
	}
	return q[i].idx < q[j].idx
}
func (q pathQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *pathQueue) Push(x any)   { *q = append(*q, x.(pathNode)) }
func (q *pathQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// connect carves a minimum-cost route between two cells. Every route cell
// becomes floor and a single path-weight deposit lands on the route's
// midpoint cell, discouraging later corridors from running parallel.
//
// The grid has no impassable terrain, so an unreachable target means the
// traversal model itself is broken; that is a fatal invariant violation,
// not a recoverable condition.
func (w *World) connect(ax, ay, bx, by int) {
	w.stats.Connects++

	width := w.w
	total := w.w * w.h
	start := ay*width + ax
	target := by*width + bx

	dist := make([]float64, total)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	prev := make([]int32, total)
	for i := range prev {
		prev[i] = -1
	}

	dist[start] = 0
	q := &pathQueue{{idx: start, cost: 0, remaining: manhattan(ax, ay, bx, by)}}
	heap.Init(q)

	costs := w.cost.Cells()
	tiles := w.tiles.Cells()

	found := false
	for q.Len() > 0 {
		n := heap.Pop(q).(pathNode)
		if n.cost > dist[n.idx] {
			continue
		}
		if n.idx == target {
			found = true
			break
		}
		x := n.idx % width
		y := n.idx / width
		for _, d := range cardinalDirs {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= w.w || ny < 0 || ny >= w.h {
				continue
			}
			ni := ny*width + nx
			step := wallStepCost
			if tiles[ni] == tileFloor {
				step = floorStepCost
			}
			nd := n.cost + step + costs[ni]
			if nd < dist[ni] {
				dist[ni] = nd
				prev[ni] = int32(n.idx)
				heap.Push(q, pathNode{idx: ni, cost: nd, remaining: manhattan(nx, ny, bx, by)})
			}
		}
	}

	if !found {
		panic(fmt.Sprintf("dungeon: internal invariant violated: no route from (%d,%d) to (%d,%d)", ax, ay, bx, by))
	}

	route := []int{target}
	for i := target; prev[i] >= 0; i = int(prev[i]) {
		route = append(route, int(prev[i]))
	}
	for _, idx := range route {
		tiles[idx] = tileFloor
	}

	mid := route[len(route)/2]
	w.cost.Deposit(mid%width, mid/width, w.cfg.Params.PathCostWeight)
	w.stats.PathDeposits++
}

func manhattan(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
