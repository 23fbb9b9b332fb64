//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"rect-lives/internal/app"
	"rect-lives/internal/core"
	_ "rect-lives/internal/sims/rectlives"
	_ "rect-lives/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim, err := factory(cfg.Options())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("rect-lives: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
