// Package term is a terminal render backend: an orthographic projection of
// the ocean sphere with formations drawn as glyphs whose brightness follows
// their emergence. Demo-quality on purpose — the engine is backend-agnostic.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/thalassa/engine/internal/geom"
	"github.com/thalassa/engine/internal/render"
)

// glyph ramp from barely-emerged to fully present
var ramp = []rune(" .:-=+*#%@")

type sprite struct {
	drawable  render.Drawable
	position  geom.Vec3
	scale     float64
	emergence float64
}

// View implements render.Backend on a tcell screen. Single-goroutine access
// like every other backend; key events are drained on a side goroutine that
// only closes the quit channel.
type View struct {
	screen tcell.Screen
	radius float64
	live   map[uint64]*sprite
	quit   chan struct{}
}

func NewView(radius float64) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorTeal))

	v := &View{
		screen: screen,
		radius: radius,
		live:   make(map[uint64]*sprite),
		quit:   make(chan struct{}),
	}
	go v.pollEvents()
	return v, nil
}

// Quit is closed when the user presses q, Esc, or Ctrl-C.
func (v *View) Quit() <-chan struct{} { return v.quit }

func (v *View) Stop() { v.screen.Fini() }

func (v *View) pollEvents() {
	for {
		ev := v.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC ||
				(e.Key() == tcell.KeyRune && e.Rune() == 'q') {
				close(v.quit)
				return
			}
		case *tcell.EventResize:
			v.screen.Sync()
		case nil:
			return // screen finalized
		}
	}
}

func (v *View) Add(d render.Drawable) {
	v.live[d.ID()] = &sprite{drawable: d}
}

func (v *View) Remove(d render.Drawable) {
	delete(v.live, d.ID())
}

func (v *View) SetTransform(d render.Drawable, position geom.Vec3, _ geom.Quat, scale float64) {
	if s := v.live[d.ID()]; s != nil {
		s.position = position
		s.scale = scale
	}
}

func (v *View) SetUniforms(d render.Drawable, u render.Uniforms) {
	if s := v.live[d.ID()]; s != nil {
		s.emergence = u.Emergence
	}
}

// Render repaints the frame: the sphere limb, then every near-side sprite.
// Called once per tick by the demo loop, after Engine.Tick.
func (v *View) Render() {
	v.screen.Clear()
	w, h := v.screen.Size()
	cx, cy := w/2, h/2

	// terminal cells are ~2x taller than wide
	sx := float64(w) / (v.radius * 5)
	sy := sx / 2

	v.drawLimb(cx, cy, sx, sy)

	for _, s := range v.live {
		if s.position.Z < 0 {
			continue // far side of the sphere
		}
		x := cx + int(s.position.X*sx)
		y := cy - int(s.position.Y*sy)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		idx := int(s.emergence * float64(len(ramp)-1))
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
		if s.emergence >= 1 {
			style = style.Bold(true)
		}
		v.screen.SetContent(x, y, ramp[idx], nil, style)
	}

	v.screen.Show()
}

func (v *View) drawLimb(cx, cy int, sx, sy float64) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	const steps = 160
	for i := 0; i < steps; i++ {
		t := float64(i) / steps * 2 * math.Pi
		x := cx + int(v.radius*math.Cos(t)*sx)
		y := cy - int(v.radius*math.Sin(t)*sy)
		v.screen.SetContent(x, y, '·', nil, style)
	}
}
