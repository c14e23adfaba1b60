package snake

// Pilot picks headings for headless runs. It scores each legal heading by
// the room left after moving there and the wrap-aware distance to the
// nearest item worth chasing. Ties resolve in Directions order, so a pilot
// is deterministic for a given snapshot.
type Pilot struct {
	// SpaceLimit caps the flood fill; zero means the whole grid.
	SpaceLimit int
}

// Next returns the heading the pilot would steer toward. ok is false when
// every heading collides.
func (p Pilot) Next(snap Snapshot) (dir Direction, ok bool) {
	if len(snap.Segments) == 0 {
		return snap.Heading, false
	}

	grid := Grid{Width: snap.Width, Height: snap.Height}
	head := snap.Head()
	blocked := bodyCells(snap)

	target, hunting := p.target(grid, snap)

	bestScore := 0
	for _, d := range Directions {
		if len(snap.Segments) > 1 && d == snap.Heading.Opposite() {
			continue
		}
		next := grid.Step(head, d)
		// Move checks collisions before trimming, so the tail blocks too.
		if snap.Occupied(next) {
			continue
		}

		space := p.reachable(grid, next, blocked)
		score := space * 50
		if space < len(snap.Segments) {
			score -= 5000
		}
		if hunting {
			score += (grid.Width + grid.Height - grid.Distance(next, target)) * 2
			if next == target {
				score += 1000
			}
		}

		if !ok || score > bestScore {
			bestScore = score
			dir = d
			ok = true
		}
	}
	if !ok {
		return snap.Heading, false
	}
	return dir, true
}

// target prefers an active special item, then ordinary food.
func (p Pilot) target(grid Grid, snap Snapshot) (Position, bool) {
	head := snap.Head()
	if snap.SpecialActive {
		// Chase the special only if it can be reached before expiry.
		ticks := grid.Distance(head, snap.Special)
		if snap.TickRate > 0 && ticks*1000/snap.TickRate < int(snap.SpecialRemaining.Milliseconds()) {
			return snap.Special, true
		}
	}
	if snap.FoodPresent {
		return snap.Food, true
	}
	return Position{}, false
}

// reachable counts free cells connected to start. The tail is left out of
// blocked because it vacates as the body advances.
func (p Pilot) reachable(grid Grid, start Position, blocked map[Position]bool) int {
	limit := p.SpaceLimit
	if limit <= 0 {
		limit = grid.Area()
	}

	visited := map[Position]bool{start: true}
	queue := []Position{start}
	count := 0
	for len(queue) > 0 && count < limit {
		curr := queue[0]
		queue = queue[1:]
		count++

		for _, d := range Directions {
			next := grid.Step(curr, d)
			if blocked[next] || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return count
}

// bodyCells returns every segment except the tail.
func bodyCells(snap Snapshot) map[Position]bool {
	cells := make(map[Position]bool, len(snap.Segments))
	for i, seg := range snap.Segments {
		if i == len(snap.Segments)-1 && i > 0 {
			break
		}
		cells[seg.Position] = true
	}
	return cells
}
