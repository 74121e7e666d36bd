//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cloudsim/internal/app"
	"cloudsim/internal/sims/clouds"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ccfg := clouds.DefaultConfig()
	if cfg.ConfigFile != "" {
		var err error
		ccfg, err = clouds.FromFile(cfg.ConfigFile)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if cfg.Width > 0 {
		ccfg.Width = cfg.Width
	}
	if cfg.Height > 0 {
		ccfg.Height = cfg.Height
	}

	sys, err := clouds.NewWithConfig(ccfg)
	if err != nil {
		log.Fatalf("clouds: %v", err)
	}
	for _, compound := range clouds.DefaultCompounds() {
		sys.AddCompound(compound)
	}
	ref := &clouds.PointReference{}
	sys.SetReference(ref)
	sys.Reset(cfg.Seed)

	game := app.New(sys, ref, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sys.Size()

	ebiten.SetWindowTitle("cloudsim: " + sys.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
