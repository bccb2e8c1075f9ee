package dungeon

// buildLoop connects the rooms in placement order into a single closed
// cycle: r0 → r1 → … → r(n-1) → r0. Every room ends up with two main-loop
// neighbors, so the whole dungeon is reachable without backtracking. One
// room is a no-op (no self-loop); two rooms degenerate into a back-and-forth
// pair of corridors, which still closes the loop.
func (w *World) buildLoop() {
	n := len(w.rooms)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ax, ay := w.rooms[i].Center()
		bx, by := w.rooms[j].Center()
		w.connect(ax, ay, bx, by)
		w.links = append(w.links, [2]int{i, j})
	}
}

// extraLinks adds crisscross corridors between non-adjacent room pairs after
// the main loop is closed. Links are additive only; the loop connections are
// never removed or substituted.
func (w *World) extraLinks() {
	chance := w.cfg.Params.ExtraLinkChance
	if chance <= 0 {
		return
	}
	n := len(w.rooms)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // already adjacent on the loop
			}
			if w.rng.Float64() >= chance {
				continue
			}
			ax, ay := w.rooms[i].Center()
			bx, by := w.rooms[j].Center()
			w.connect(ax, ay, bx, by)
			w.links = append(w.links, [2]int{i, j})
		}
	}
}
