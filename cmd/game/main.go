// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-shooter/internal/assets"
	"go-shooter/internal/config"
	"go-shooter/internal/defs"
	"go-shooter/internal/screen"
	"go-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	stagePath := flag.String("stage", "", "Path to a stage definition (JSON). Empty uses the built-in stage")
	seed := flag.Int64("seed", 0, "Seed for enemy placement, 0 picks one from the clock")
	pprofAddr := flag.String("pprof", "", "Serve pprof on this address, e.g. localhost:6060")
	showTitle := flag.Bool("title", true, "Start from the title screen")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	stage, err := defs.LoadStage(*stagePath)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	sprites := assets.NewManager(screen.LoadImage)
	go func() {
		if err := sprites.Preload(context.Background(), config.SpritePaths); err != nil {
			log.Printf("WARNING: Some sprites failed to load: %v", err)
			return
		}
		log.Printf("Loaded %d sprites", sprites.Len())
	}()

	sm := state.NewStateMachine()
	newPlay := func() state.State {
		return state.NewPlayState(sm, sprites, stage, *seed)
	}
	if *showTitle {
		sm.SetState(state.NewTitleState(sm, newPlay))
	} else {
		sm.SetState(newPlay())
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Shooter")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
