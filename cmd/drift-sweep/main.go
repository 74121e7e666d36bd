// Command drift-sweep measures how well the cloud window keeps up with a
// reference point drifting at constant speed, across a grid of diffusion
// rates and drift speeds. It runs headless and prints one line per scenario.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	"cloudsim/internal/sims/clouds"
)

type paramSet struct {
	diffusionRate float64
	driftSpeed    float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("diffusion=%.3f drift=%.2f", p.diffusionRate, p.driftSpeed)
}

type scenarioResult struct {
	params paramSet

	deposited float64
	retained  float64
	peak      float64
	lag       float64
	shifts    int
	occupancy int
}

// occupancySink counts the cells of the last presented snapshot that hold
// more than one unit of density.
type occupancySink struct {
	occupied int
}

func (k *occupancySink) Present(snap clouds.Snapshot) {
	occupied := 0
	for _, d := range snap.Density {
		if d > 1 {
			occupied++
		}
	}
	k.occupied = occupied
}

func main() {
	ticks := flag.Int("ticks", 600, "ticks to simulate per scenario")
	depositEvery := flag.Int("deposit-every", 40, "deposit a density blob every N ticks")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	diffusionOptions := []float64{0.005, 0.01, 0.02, 0.05}
	driftOptions := []float64{0, 0.5, 1, 2, 4, 8}

	var sets []paramSet
	for _, d := range diffusionOptions {
		for _, v := range driftOptions {
			sets = append(sets, paramSet{diffusionRate: d, driftSpeed: v})
		}
	}

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				res, err := runScenario(p, *ticks, *depositEvery)
				if err != nil {
					log.Fatalf("scenario %v: %v", p, err)
				}
				results <- res
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, p := range sets {
			jobs <- p
		}
		close(jobs)
	}()

	var collected []scenarioResult
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool {
		a, b := collected[i].params, collected[j].params
		if a.driftSpeed != b.driftSpeed {
			return a.driftSpeed < b.driftSpeed
		}
		return a.diffusionRate < b.diffusionRate
	})

	for _, res := range collected {
		fmt.Printf("%-28s retained=%5.1f%% peak=%8.1f lag=%7.1f shifts=%3d occupied=%5d\n",
			res.params, res.retained*100, res.peak, res.lag, res.shifts, res.occupancy)
	}
}

func runScenario(p paramSet, ticks, depositEvery int) (scenarioResult, error) {
	cfg := clouds.DefaultConfig()
	cfg.Params.DiffusionRate = p.diffusionRate
	cfg.Params.SeedBlobCount = 0

	sys, err := clouds.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}

	sink := &occupancySink{}
	sys.SetSink(sink)

	ref := &clouds.PointReference{}
	sys.SetReference(ref)

	cloud := sys.AddCompound(clouds.DefaultCompounds()[0])
	sys.Reset(cfg.Seed)

	const blobAmount = 20000.0

	res := scenarioResult{params: p}
	prevOffsetX, _, _ := sys.Window()
	for t := 0; t < ticks; t++ {
		ref.MoveBy(p.driftSpeed, 0)
		if depositEvery > 0 && t%depositEvery == 0 {
			cloud.AddDensity(blobAmount, ref.X, ref.Y)
			res.deposited += blobAmount
		}
		if err := sys.Tick(); err != nil {
			return res, err
		}
		if offsetX, _, _ := sys.Window(); offsetX != prevOffsetX {
			res.shifts++
			prevOffsetX = offsetX
		}
	}

	res.occupancy = sink.occupied
	if res.deposited > 0 {
		res.retained = cloud.Total() / res.deposited
	}
	if vals := cloud.Density().Values(); len(vals) > 0 {
		res.peak = floats.Max(vals)
	}
	offsetX, _, _ := sys.Window()
	res.lag = ref.X - float64(offsetX)
	return res, nil
}
