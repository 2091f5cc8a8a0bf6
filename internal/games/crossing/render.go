package crossing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Glyphs used on the field.
const (
	glyphGoal     = '▒'
	glyphVerge    = '·'
	glyphLaneMark = '-'
	glyphCar      = '█'
	glyphFrog     = '▓'
	glyphSkid     = 'x'
	glyphImpact   = '✸'
	glyphOrnament = '✿'
)

// hitBlink is the flash period of the player during a hit reaction.
const hitBlink = 150 * time.Millisecond

// layout maps playfield pixels onto terminal cells.
type layout struct {
	offX, offY   int
	cellW, cellH int
	pf           config.Playfield
}

// fieldLayout fits the playfield between the HUD and the footer, keeping
// cells roughly twice as wide as tall. Reports false when it cannot fit.
func fieldLayout(pf config.Playfield, w, h int) (layout, bool) {
	if pf.Rows <= 0 || pf.Cols <= 0 {
		return layout{}, false
	}
	availH := h - hudHeight - footerHeight
	cellH := availH / pf.Rows
	cellW := w / pf.Cols
	if cellH < 1 || cellW < 2 {
		return layout{}, false
	}
	if cellW > 2*cellH {
		cellW = 2 * cellH
	}
	if cellH > (cellW+1)/2 {
		cellH = (cellW + 1) / 2
	}
	return layout{
		offX:  (w - cellW*pf.Cols) / 2,
		offY:  hudHeight + (availH-cellH*pf.Rows)/2,
		cellW: cellW,
		cellH: cellH,
		pf:    pf,
	}, true
}

func (l layout) col(px float64) int {
	return int(math.Floor(px / l.pf.CellSize * float64(l.cellW)))
}

func (l layout) row(py float64) int {
	return int(math.Floor(py / l.pf.CellSize * float64(l.cellH)))
}

// span converts a pixel interval to a half-open cell interval that is
// never empty, so small entities stay visible.
func span(from, to float64, cells int, cell float64) (int, int) {
	a := int(math.Floor(from / cell * float64(cells)))
	b := int(math.Ceil(to / cell * float64(cells)))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// boxRect converts a pixel box to screen cells, clipped to the field.
func (l layout) boxRect(b core.Box) (core.Rect, bool) {
	x0, x1 := span(b.X, b.Right(), l.cellW, l.pf.CellSize)
	y0, y1 := span(b.Y, b.Bottom(), l.cellH, l.pf.CellSize)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, l.cellW*l.pf.Cols)
	y1 = min(y1, l.cellH*l.pf.Rows)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(l.offX+x0, l.offY+y0, x1-x0, y1-y0), true
}

// point converts a pixel position to a screen cell inside the field.
func (l layout) point(x, y float64) (int, int, bool) {
	cx, cy := l.col(x), l.row(y)
	if cx < 0 || cy < 0 || cx >= l.cellW*l.pf.Cols || cy >= l.cellH*l.pf.Rows {
		return 0, 0, false
	}
	return l.offX + cx, l.offY + cy, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}

	g.renderHUD(dst)

	l, ok := fieldLayout(g.cfg.Playfield, dst.Width(), dst.Height())
	if g.tooSmall || !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst, l)
	g.renderHits(dst, l)
	for _, o := range g.round.Obstacles() {
		if r, ok := l.boxRect(o.Box()); ok {
			dst.DrawRect(r, glyphCar, o.Color)
		}
	}
	for _, o := range g.round.Ornaments() {
		if x, y, ok := l.point(o.X, o.Y); ok {
			dst.SetColored(x, y, glyphOrnament, o.Color)
		}
	}
	g.renderPlayer(dst, l)
	g.renderFooter(dst)

	r := g.round
	switch {
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case r.Phase() == PhaseLevelCleared:
		g.renderOverlay(dst,
			fmt.Sprintf("Level %d cleared!", r.Level()-1),
			fmt.Sprintf("Level %d starts in %.1fs", r.Level(), r.Remaining().Seconds()))
	case r.Phase() == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Reached level %d. Press R to restart", r.Level()))
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	r := g.round
	hud := fmt.Sprintf(" %s  Level: %d/%d  Lives: ", g.Title(), r.Level(), r.MaxLevel())
	dst.DrawText(0, 0, hud)
	hearts := strings.Repeat("♥", r.Lives()) + strings.Repeat("♡", max(g.cfg.Round.Lives-r.Lives(), 0))
	dst.DrawTextColored(len([]rune(hud)), 0, hearts, core.ColorBrightRed)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderFooter draws a one-line hint for the current phase.
func (g *Game) renderFooter(dst *core.Screen) {
	var hint string
	switch g.round.Phase() {
	case PhaseBonusBoard:
		hint = fmt.Sprintf("All %d levels cleared! Press R to play again", g.round.MaxLevel())
	case PhaseLevelCleared:
		hint = "Enter to continue"
	case PhaseHitReaction:
		hint = "Splat!"
	default:
		return
	}
	dst.DrawTextCentered(dst.Height()-1, hint, core.ColorBrightYellow)
}

// renderField paints the goal band, the verges and the road lanes.
func (g *Game) renderField(dst *core.Screen, l layout) {
	pf := g.cfg.Playfield
	lanes := make(map[int]bool, len(pf.Lanes))
	for _, row := range pf.Lanes {
		lanes[row] = true
	}

	width := l.cellW * pf.Cols
	for row := 0; row < pf.Rows; row++ {
		y := l.offY + row*l.cellH
		band := core.NewRect(l.offX, y, width, l.cellH)
		switch {
		case row < pf.GoalRows:
			dst.DrawRect(band, glyphGoal, core.ColorGreen)
		case lanes[row]:
			// Dashed divider on the bottom line of a lane followed by another lane.
			if lanes[row+1] && l.cellH > 1 {
				for x := 0; x < width; x += 4 {
					dst.SetColored(l.offX+x, y+l.cellH-1, glyphLaneMark, core.ColorGray)
				}
			}
		default:
			dst.DrawRect(band, glyphVerge, core.ColorGreen)
		}
	}
}

// renderHits draws skid marks for this level's collisions; the latest one
// stands out while the hit reaction runs.
func (g *Game) renderHits(dst *core.Screen, l layout) {
	r := g.round
	hits := r.Hits()
	for i, h := range hits {
		if h.Level != r.Level() {
			continue
		}
		x, y, ok := l.point(h.X, h.Y)
		if !ok {
			continue
		}
		if i == len(hits)-1 && r.Phase() == PhaseHitReaction {
			dst.SetColored(x, y, glyphImpact, core.ColorBrightRed)
			continue
		}
		dst.SetColored(x, y, glyphSkid, core.ColorGray)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, l layout) {
	r := g.round
	if r.Phase() == PhaseHitReaction && (r.Remaining()/hitBlink)%2 == 1 {
		return
	}
	rect, ok := l.boxRect(r.Player().Box())
	if !ok {
		return
	}
	color := core.ColorBrightGreen
	if r.Phase() == PhaseHitReaction {
		color = core.ColorBrightRed
	}
	dst.DrawRect(rect, glyphFrog, color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
