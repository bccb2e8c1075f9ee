package dungeon

import "testing"

func spacingConfig(weight float64) Config {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 48
	cfg.Params.TargetRoomCount = 5
	cfg.Params.MinRoomDim = 3
	cfg.Params.MaxRoomDim = 5
	cfg.Params.ExtraLinkChance = 0
	cfg.Params.RoomCostWeight = weight
	return cfg
}

func TestHigherRoomWeightIncreasesSpacing(t *testing.T) {
	seeds := make([]int64, 40)
	for i := range seeds {
		seeds[i] = int64(i + 1)
	}

	low, err := RoomSpacingResult(spacingConfig(0), seeds)
	if err != nil {
		t.Fatalf("RoomSpacingResult: %v", err)
	}
	high, err := RoomSpacingResult(spacingConfig(6), seeds)
	if err != nil {
		t.Fatalf("RoomSpacingResult: %v", err)
	}

	if low.Runs != len(seeds) || high.Runs != len(seeds) {
		t.Fatalf("expected every seed to count, got %d and %d runs", low.Runs, high.Runs)
	}
	if high.MeanMinDistance <= low.MeanMinDistance {
		t.Fatalf("expected heavier room weight to spread rooms, got mean-min %.2f (w=6) vs %.2f (w=0)",
			high.MeanMinDistance, low.MeanMinDistance)
	}
}

func TestSpacingResultAggregates(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5}
	res, err := RoomSpacingResult(spacingConfig(2), seeds)
	if err != nil {
		t.Fatalf("RoomSpacingResult: %v", err)
	}
	if res.RoomCostWeight != 2 {
		t.Fatalf("weight not echoed: %g", res.RoomCostWeight)
	}
	if res.MinCenterDistance > res.MeanMinDistance {
		t.Fatalf("min %.2f exceeds mean-min %.2f", res.MinCenterDistance, res.MeanMinDistance)
	}
	if res.MeanMinDistance > res.MeanDistance {
		t.Fatalf("mean-min %.2f exceeds mean %.2f", res.MeanMinDistance, res.MeanDistance)
	}
	if res.Runs != len(seeds) {
		t.Fatalf("expected %d runs, got %d", len(seeds), res.Runs)
	}
}

func TestSpacingRejectsInvalidConfig(t *testing.T) {
	cfg := spacingConfig(2)
	cfg.Width = 0
	if _, err := RoomSpacingResult(cfg, []int64{1}); err == nil {
		t.Fatal("expected an error for an invalid config")
	}
}
