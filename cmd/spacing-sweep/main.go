package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"dungen/internal/dungeon"
)

func main() {
	weightsFlag := flag.String("weights", "0,0.5,1,2,4,6", "comma-separated room cost weights to sweep")
	runs := flag.Int("runs", 50, "seeds per weight")
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 48, "grid height in cells")
	rooms := flag.Int("rooms", 8, "target room count")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	csvPath := flag.String("csv", "", "optional path for CSV output")
	flag.Parse()

	weights, err := parseWeights(*weightsFlag)
	if err != nil {
		log.Fatalf("parse weights: %v", err)
	}

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = int64(i + 1)
	}

	baseCfg := dungeon.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Params.TargetRoomCount = *rooms
	baseCfg.Params.ExtraLinkChance = 0

	fmt.Printf("Sweeping %d weights over %d seeds (%d workers)\n", len(weights), len(seeds), *workers)

	jobs := make(chan float64)
	results := make(chan dungeon.SpacingResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for weight := range jobs {
				cfg := baseCfg
				cfg.Params.RoomCostWeight = weight
				res, err := dungeon.RoomSpacingResult(cfg, seeds)
				if err != nil {
					log.Printf("weight %.2f: %v", weight, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		for _, weight := range weights {
			jobs <- weight
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var collected []dungeon.SpacingResult
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].RoomCostWeight < collected[j].RoomCostWeight
	})

	fmt.Printf("%-8s %-10s %-12s %-10s %s\n", "weight", "min", "mean-min", "mean", "runs")
	for _, res := range collected {
		fmt.Printf("%-8.2f %-10.2f %-12.2f %-10.2f %d\n",
			res.RoomCostWeight, res.MinCenterDistance, res.MeanMinDistance, res.MeanDistance, res.Runs)
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, collected); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		fmt.Printf("Wrote %s\n", *csvPath)
	}
}

func parseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	weights := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q", part)
		}
		if w < 0 {
			return nil, fmt.Errorf("negative weight %q", part)
		}
		weights = append(weights, w)
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("no weights given")
	}
	return weights, nil
}

func writeCSV(path string, results []dungeon.SpacingResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"weight", "min", "mean_min", "mean", "runs"}); err != nil {
		return err
	}
	for _, res := range results {
		record := []string{
			strconv.FormatFloat(res.RoomCostWeight, 'f', 2, 64),
			strconv.FormatFloat(res.MinCenterDistance, 'f', 3, 64),
			strconv.FormatFloat(res.MeanMinDistance, 'f', 3, 64),
			strconv.FormatFloat(res.MeanDistance, 'f', 3, 64),
			strconv.Itoa(res.Runs),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
