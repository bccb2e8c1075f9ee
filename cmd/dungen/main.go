//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dungen/internal/app"
	"dungen/internal/core"
	_ "dungen/internal/dungeon"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Generators()[cfg.Gen]
	if !ok {
		log.Fatalf("unknown generator %q", cfg.Gen)
	}

	gen := factory(cfg.GenOptions())
	gen.Reset(cfg.Seed)

	game := app.New(gen, cfg.Scale, cfg.Seed)
	size := gen.Size()

	ebiten.SetWindowTitle("dungen — " + gen.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
