package dungeon

// Room is an axis-aligned rectangle already clipped to the grid. Rooms may
// overlap each other; overlap is only discouraged statistically through the
// cost map, never rejected.
type Room struct {
	X, Y int
	W, H int
}

// Center returns the room's center cell, used as the cost-deposit origin
// and as the pathfinding endpoint.
func (r Room) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// clipRect truncates the rectangle at the grid boundary. A room that spills
// off the edge is cut, never repositioned. The second return value is false
// when nothing of the rectangle remains.
func clipRect(x, y, w, h, gridW, gridH int) (Room, bool) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > gridW {
		w = gridW - x
	}
	if y+h > gridH {
		h = gridH - y
	}
	if w <= 0 || h <= 0 || x >= gridW || y >= gridH {
		return Room{}, false
	}
	return Room{X: x, Y: y, W: w, H: h}, true
}

// placeRooms attempts to add n rooms. Each accepted room is carved to floor,
// deposits room-weight cost at its center and is appended to the room list.
// A candidate whose clipped extent is degenerate is resampled rather than
// accepted, so the list always records exactly n rooms.
func (w *World) placeRooms(n int) {
	p := w.cfg.Params
	for len(w.rooms) < n {
		rw := w.rng.IntRange(p.MinRoomDim, p.MaxRoomDim)
		rh := w.rng.IntRange(p.MinRoomDim, p.MaxRoomDim)

		sampler := newPlacementSampler(w.cost, rw, rh)
		x, y := sampler.pick(w.rng)

		room, ok := clipRect(x, y, rw, rh, w.w, w.h)
		if !ok {
			continue
		}

		w.carveRoom(room)
		cx, cy := room.Center()
		w.cost.Deposit(cx, cy, p.RoomCostWeight)
		w.stats.RoomDeposits++
		w.rooms = append(w.rooms, room)
	}
}

func (w *World) carveRoom(r Room) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			w.tiles.Set(x, y, tileFloor)
		}
	}
}
