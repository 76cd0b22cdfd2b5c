// internal/state/demo_state.go
package state

import (
	"fmt"
	"log"

	"go-pendant/internal/config"
	"go-pendant/internal/defs"
	"go-pendant/internal/event"
	"go-pendant/internal/ui"
	"go-pendant/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	helpFontSize = 12
	helpText     = "A: anchor  C: color  +/-: font size"
)

// DemoState shows one pendant per definition laid out in a grid.
type DemoState struct {
	sm            *StateMachine
	dispatcher    *event.Dispatcher
	helpFace      font.Face
	pendants      []*ui.Pendant
	paletteIndex  int
	invalidations int
}

func NewDemoState(sm *StateMachine, fonts *ui.Fonts, definitions []defs.PendantDefinition, dispatcher *event.Dispatcher) (*DemoState, error) {
	helpFace, err := fonts.Face(helpFontSize)
	if err != nil {
		return nil, err
	}

	s := &DemoState{
		sm:         sm,
		dispatcher: dispatcher,
		helpFace:   helpFace,
	}
	for _, def := range definitions {
		p, err := def.Build(fonts)
		if err != nil {
			return nil, err
		}
		s.pendants = append(s.pendants, p)
	}
	s.layout()
	return s, nil
}

// Pendants returns the pendants in definition order.
func (s *DemoState) Pendants() []*ui.Pendant {
	return s.pendants
}

// Invalidations counts repaint requests seen since Enter.
func (s *DemoState) Invalidations() int {
	return s.invalidations
}

func (s *DemoState) OnEvent(e event.Event) {
	if e.Type == event.PendantInvalidated {
		s.invalidations++
	}
}

func (s *DemoState) Enter() {
	s.invalidations = 0
	s.dispatcher.Subscribe(event.PendantInvalidated, s)
	for _, p := range s.pendants {
		p.SetDispatcher(s.dispatcher)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.PendantsLoaded, Data: len(s.pendants)})
}

func (s *DemoState) Exit() {
	for _, p := range s.pendants {
		p.SetDispatcher(nil)
	}
	s.dispatcher.Unsubscribe(event.PendantInvalidated, s)
}

func (s *DemoState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.CycleAnchors()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.CycleColors()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		s.StepFontSize(config.DemoFontSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		s.StepFontSize(-config.DemoFontSizeStep)
	}
}

// CycleAnchors moves every pendant to its next anchor position.
func (s *DemoState) CycleAnchors() {
	for _, p := range s.pendants {
		p.SetAnchor(p.Anchor().Next())
	}
	log.Printf("Anchors cycled, %d repaint requests so far", s.invalidations)
}

// CycleColors paints every pendant with the next palette color.
func (s *DemoState) CycleColors() {
	s.paletteIndex = (s.paletteIndex + 1) % len(config.DemoPalette)
	clr := config.DemoPalette[s.paletteIndex]
	for _, p := range s.pendants {
		p.SetColor(clr)
	}
	log.Printf("Pendant color set to %s", render.HexString(clr))
}

// StepFontSize changes every pendant's font size by delta within the demo
// limits and refits the frames around the resized labels.
func (s *DemoState) StepFontSize(delta float64) {
	for _, p := range s.pendants {
		size := p.FontSize() + delta
		if size < config.DemoMinFontSize || size > config.DemoMaxFontSize {
			continue
		}
		if err := p.SetFontSize(size); err != nil {
			log.Printf("Error: font size %v for %q: %v", size, p.Text(), err)
			continue
		}
		if err := p.FitToText(); err != nil {
			log.Printf("Error: refit %q: %v", p.Text(), err)
		}
	}
	s.layout()
}

func (s *DemoState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for _, p := range s.pendants {
		p.Draw(screen)
	}
	text.Draw(screen, fmt.Sprintf("%s  (repaints: %d)", helpText, s.invalidations), s.helpFace,
		config.DemoCellPadding/2, config.ScreenHeight-config.DemoCellPadding/2, config.TextLightColor)
}

// layout centers each pendant in its grid cell.
func (s *DemoState) layout() {
	cols := config.DemoColumns
	rows := (len(s.pendants) + cols - 1) / cols
	if rows == 0 {
		return
	}
	cellW := float64(config.ScreenWidth) / float64(cols)
	cellH := float64(config.ScreenHeight-config.DemoCellPadding) / float64(rows)

	for i, p := range s.pendants {
		col, row := i%cols, i/cols
		frame := p.Frame()
		p.SetPosition(
			float64(col)*cellW+(cellW-frame.W)/2,
			float64(row)*cellH+(cellH-frame.H)/2,
		)
	}
}
