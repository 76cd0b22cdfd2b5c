// cmd/pendant-demo/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-pendant/internal/config"
	"go-pendant/internal/defs"
	"go-pendant/internal/event"
	"go-pendant/internal/state"
	"go-pendant/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
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

type options struct {
	defsPath  string
	fontPath  string
	pprofAddr string
}

func main() {
	var opts options

	root := &cobra.Command{
		Use:          "pendant-demo",
		Short:        "Shows speech-bubble pendants for every anchor position",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.Flags().StringVar(&opts.defsPath, "defs", config.DemoDefsPath, "pendant definitions JSON file")
	root.Flags().StringVar(&opts.fontPath, "font", "", "TrueType/OpenType font file (default: bundled Go Regular)")
	root.Flags().StringVar(&opts.pprofAddr, "pprof", "", "serve net/http/pprof on this address")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	if opts.pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(opts.pprofAddr, nil))
		}()
	}

	var fontData []byte
	if opts.fontPath != "" {
		data, err := os.ReadFile(opts.fontPath)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		fontData = data
	}
	fonts, err := ui.LoadFonts(fontData)
	if err != nil {
		return err
	}

	definitions, err := defs.LoadPendantDefinitions(opts.defsPath)
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	demo, err := state.NewDemoState(sm, fonts, definitions, event.NewDispatcher())
	if err != nil {
		return err
	}
	sm.SetState(demo)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.DemoWindowTitle)
	return ebiten.RunGame(app)
}
