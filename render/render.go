package render

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
	"github.com/oakmund/tilerpg/engine"
	"github.com/oakmund/tilerpg/gamemap"
)

// Renderer draws the world each frame: terrain layer first, then entity
// renderables by z-priority, then the UI rows (message log and status
// line). It only reads component and resource state; the simulation
// never depends on whether a frame was drawn.
type Renderer struct {
	screen tcell.Screen
	uiRows int
}

// New wraps an initialized screen.
func New(screen tcell.Screen, uiRows int) *Renderer {
	return &Renderer{screen: screen, uiRows: uiRows}
}

type drawOp struct {
	pos component.Position
	r   component.Renderable
}

// Draw renders one frame.
func (r *Renderer) Draw(w *engine.World) {
	r.screen.Clear()

	m := engine.MustGetResource[*gamemap.Map](w.Resources)
	r.drawTerrain(m)
	r.drawEntities(w)
	r.drawUI(w, m)

	r.screen.Show()
}

func (r *Renderer) drawTerrain(m *gamemap.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.TileAt(component.Position{X: x, Y: y})
			r.screen.SetContent(x, y, tile.Glyph, nil, styleFor(tile.FG))
		}
	}
}

func (r *Renderer) drawEntities(w *engine.World) {
	cs := &w.Components

	ops := make([]drawOp, 0, cs.Renderable.Len())
	for _, e := range cs.Renderable.Entities() {
		pos, ok := cs.Position.Get(e)
		if !ok {
			continue
		}
		rend, _ := cs.Renderable.Get(e)
		ops = append(ops, drawOp{pos: pos, r: rend})
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].r.ZPriority < ops[j].r.ZPriority })

	for _, op := range ops {
		r.screen.SetContent(op.pos.X, op.pos.Y, op.r.Glyph, nil, styleFor(op.r.FG))
	}
}

func (r *Renderer) drawUI(w *engine.World, m *gamemap.Map) {
	msgs := engine.MustGetResource[*engine.MessageLog](w.Resources)
	player := engine.MustGetResource[*engine.PlayerResource](w.Resources)
	cs := &w.Components

	base := m.Height
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, line := range msgs.Recent(r.uiRows - 1) {
		r.printLine(0, base+i, line, dim)
	}

	status := ""
	if stats, ok := cs.Health.Get(player.Entity); ok {
		status += fmt.Sprintf("hp: %d/%d  ", stats.HP, stats.MaxHP)
	}
	if pos, ok := cs.Position.Get(player.Entity); ok {
		status += fmt.Sprintf("pos: %d, %d", pos.X, pos.Y)
	}
	r.printLine(0, base+r.uiRows-1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) printLine(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func styleFor(fg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
}
