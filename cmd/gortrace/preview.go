package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/gortrace"
)

// preview shows a finished render. S saves it again, Esc closes the window.
type preview struct {
	renderer *gortrace.Renderer
	frame    *ebiten.Image
	out      string
	status   string
}

func newPreview(renderer *gortrace.Renderer, out string) *preview {
	return &preview{
		renderer: renderer,
		frame:    ebiten.NewImageFromImage(renderer.Image()),
		out:      out,
		status:   "S: save  Esc: quit",
	}
}

func (p *preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := p.renderer.SavePNG(p.out); err != nil {
			log.Printf("Error saving %s: %v", p.out, err)
			p.status = "save failed"
		} else {
			p.status = fmt.Sprintf("saved %s", p.out)
		}
	}
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.DrawImage(p.frame, nil)
	ebitenutil.DebugPrint(screen, p.status)
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.renderer.Width(), p.renderer.Height()
}

func runPreview(renderer *gortrace.Renderer, out string) error {
	ebiten.SetWindowSize(renderer.Width(), renderer.Height())
	ebiten.SetWindowTitle("gortrace")
	if err := ebiten.RunGame(newPreview(renderer, out)); err != nil {
		return fmt.Errorf("preview window: %w", err)
	}
	return nil
}
