package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fillthescreen/ecs/component"
	"github.com/milk9111/fillthescreen/engine"
	"github.com/milk9111/fillthescreen/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	spawn := flag.Int("spawn", -1, "override adversary spawn chance percent")
	mute := flag.Bool("mute", false, "disable sound")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("using default tuning: %v", err)
		tuning = component.DefaultTuning()
	}
	if *spawn >= 0 {
		tuning.SpawnChance = *spawn
	}

	eng := engine.New(engine.Options{Tuning: &tuning, Seed: *seed})
	game := NewGame(eng, *debug, !*mute)
	defer game.Close()

	ebiten.SetTPS(tuning.TickRate)
	ebiten.SetWindowSize(int(tuning.ArenaWidth), int(tuning.ArenaHeight))
	ebiten.SetWindowTitle("Fill The Screen")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
