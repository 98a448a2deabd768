package omega

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/omega-arcade/internal/core"
)

// Minimum screen size that fits the border, banner and HUD.
const (
	MinScreenW = 32
	MinScreenH = 12
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	LifeChar   = '♥'
)

// minBannerRows keeps a label row and a value row between the banner borders.
const minBannerRows = 4

// Render draws the play-field, banner, HUD and player to the screen.
// The whole field is stretched over the screen; world y points up.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	// Outer border
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorYellow)

	banner, player := g.layout(dst.Width(), dst.Height())
	dst.DrawBox(banner, core.ColorYellow)
	g.drawHUD(dst, banner)
	g.drawLives(dst, banner)

	dst.DrawRect(player, PlayerChar, core.ColorBrightYellow)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// layout projects the banner and the player sprite onto a cols x rows screen.
// The world clamp keeps the player below the banner; rounding on small
// screens can still put them on the same row, so the sprite is pushed down.
func (g *Game) layout(cols, rows int) (banner, player core.Rect) {
	w := g.world
	pr := projector{field: w.Params.Field, cols: cols, rows: rows}

	banner = pr.rect(w.Params.Banner)
	banner.H = max(banner.H, minBannerRows)

	player = pr.sprite(w.Player.Pos, w.Player.Size)
	if player.Overlaps(banner) {
		player.Y = banner.Bottom()
	}
	return banner, player
}

// hudLine returns where line i of a HUD element is drawn inside the banner.
// ok is false when the banner has no interior row left for it.
func hudLine(banner core.Rect, el TextElement, i int, line string) (r core.Rect, ok bool) {
	y := banner.Y + 1 + i
	if y >= banner.Bottom()-1 {
		return core.Rect{}, false
	}
	n := utf8.RuneCountInString(line)
	x := banner.X + 2
	if el.Anchor == AnchorTopRight {
		x = banner.Right() - 2 - n
	}
	return core.NewRect(x, y, n, 1), true
}

// drawHUD places each text element inside the banner according to its anchor.
func (g *Game) drawHUD(dst *core.Screen, banner core.Rect) {
	for _, el := range g.world.HUD.Elements() {
		for i, line := range strings.Split(el.Text, "\n") {
			r, ok := hudLine(banner, el, i, line)
			if !ok {
				break
			}
			dst.DrawText(r.X, r.Y, line, core.ColorBrightYellow)
		}
	}
}

// drawLives centers the lives on the first banner row where they keep a
// one-cell gap from the HUD text. They are skipped when no row is free.
func (g *Game) drawLives(dst *core.Screen, banner core.Rect) {
	lives := int(g.world.State.Lives)
	if lives == 0 {
		return
	}
	text := strings.TrimSpace(strings.Repeat(string(LifeChar)+" ", lives))
	n := utf8.RuneCountInString(text)
	x := banner.X + (banner.W-n)/2

	for y := banner.Y + 1; y < banner.Bottom()-1; y++ {
		padded := core.NewRect(x-1, y, n+2, 1)
		if !g.hudCovers(banner, padded) {
			dst.DrawText(x, y, text, core.ColorYellow)
			return
		}
	}
}

// hudCovers reports whether any drawn HUD line overlaps r.
func (g *Game) hudCovers(banner, r core.Rect) bool {
	for _, el := range g.world.HUD.Elements() {
		for i, line := range strings.Split(el.Text, "\n") {
			lr, ok := hudLine(banner, el, i, line)
			if !ok {
				break
			}
			if lr.Overlaps(r) {
				return true
			}
		}
	}
	return false
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}

// projector maps world coordinates onto screen cells.
type projector struct {
	field      core.Vec2
	cols, rows int
}

// cell returns the screen cell containing world point p.
func (p projector) cell(v core.Vec2) (int, int) {
	fx := (v.X + p.field.X/2) / p.field.X
	fy := (p.field.Y/2 - v.Y) / p.field.Y
	x := int(math.Round(fx * float64(p.cols-1)))
	y := int(math.Round(fy * float64(p.rows-1)))
	return core.Clamp(x, 0, p.cols-1), core.Clamp(y, 0, p.rows-1)
}

// rect converts a world box into a screen rectangle.
func (p projector) rect(b core.Bounds) core.Rect {
	x0, y0 := p.cell(core.V2(b.Min.X, b.Max.Y))
	x1, y1 := p.cell(core.V2(b.Max.X, b.Min.Y))
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// sprite returns the screen rectangle of a sprite centered on pos.
// Sprites are at least one cell in each direction.
func (p projector) sprite(pos, size core.Vec2) core.Rect {
	cw := max(1, int(math.Round(size.X/p.field.X*float64(p.cols))))
	ch := max(1, int(math.Round(size.Y/p.field.Y*float64(p.rows))))
	cx, cy := p.cell(pos)
	return core.NewRect(cx-cw/2, cy-ch/2, cw, ch)
}
