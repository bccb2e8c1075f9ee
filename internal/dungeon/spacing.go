package dungeon

import "math"

// SpacingResult captures room-spacing telemetry for one configuration,
// aggregated over a family of seeds. It backs the tuning claim that a higher
// room cost weight pushes room centers apart: the effect is statistical, so
// it is only meaningful across many runs, never a single one.
type SpacingResult struct {
	// RoomCostWeight echoes the weight the runs were generated with.
	RoomCostWeight float64
	// MinCenterDistance is the smallest pairwise room-center distance seen
	// in any run.
	MinCenterDistance float64
	// MeanMinDistance averages each run's minimum pairwise distance.
	MeanMinDistance float64
	// MeanDistance averages all pairwise distances across all runs.
	MeanDistance float64
	// Runs counts the seeds that produced at least two rooms.
	Runs int
}

// RoomSpacingResult generates one dungeon per seed and aggregates pairwise
// room-center distances. The same World is reused across seeds; each Reset
// rebuilds all state.
func RoomSpacingResult(cfg Config, seeds []int64) (SpacingResult, error) {
	world, err := NewWithConfig(cfg)
	if err != nil {
		return SpacingResult{}, err
	}

	result := SpacingResult{
		RoomCostWeight:    cfg.Params.RoomCostWeight,
		MinCenterDistance: math.Inf(1),
	}
	sumMin := 0.0
	sumAll := 0.0
	pairs := 0

	for _, seed := range seeds {
		world.Reset(seed)
		rooms := world.Rooms()
		if len(rooms) < 2 {
			continue
		}
		runMin := math.Inf(1)
		for i := 0; i < len(rooms); i++ {
			ax, ay := rooms[i].Center()
			for j := i + 1; j < len(rooms); j++ {
				bx, by := rooms[j].Center()
				d := math.Hypot(float64(ax-bx), float64(ay-by))
				sumAll += d
				pairs++
				if d < runMin {
					runMin = d
				}
			}
		}
		if runMin < result.MinCenterDistance {
			result.MinCenterDistance = runMin
		}
		sumMin += runMin
		result.Runs++
	}

	if result.Runs > 0 {
		result.MeanMinDistance = sumMin / float64(result.Runs)
	} else {
		result.MinCenterDistance = 0
	}
	if pairs > 0 {
		result.MeanDistance = sumAll / float64(pairs)
	}
	return result, nil
}
