// Command geomview is an interactive visualizer for the region algebra.
// Two regions are drawn on the terminal; arrow keys (or hjkl) move the
// second one, Tab cycles the displayed operation, and +/- adjusts the
// spacing used by grow/shrink. The active geometry provider is taken
// from the TUI_GEOM_PROVIDER environment variable or the -provider flag.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	geom "github.com/grindlemire/tui-geom"
)

type mode int

const (
	modeIntersection mode = iota
	modeUnion
	modeSplit
	modeGrow
	modeCount
)

func (m mode) String() string {
	switch m {
	case modeIntersection:
		return "intersection"
	case modeUnion:
		return "union"
	case modeSplit:
		return "split"
	case modeGrow:
		return "grow/shrink"
	}
	return "unknown"
}

var (
	styleFixed   = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleMoving  = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleResult  = tcell.StyleDefault.Background(tcell.ColorDarkRed)
	styleOutline = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

type viewer struct {
	screen   tcell.Screen
	provider geom.Provider
	mode     mode
	fixed    geom.Region
	moving   geom.Region
	margin   int
}

func main() {
	providerName := flag.String("provider", os.Getenv(geom.ProviderEnvVar),
		"geometry provider (native or reference)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("failed to create screen", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("failed to initialize screen", "err", err)
	}

	v := &viewer{
		screen:   screen,
		provider: geom.SelectProvider(*providerName),
		margin:   1,
	}
	v.reset()
	v.run()
	screen.Fini()

	logger.Info("exited", "provider", v.provider.Name(), "mode", v.mode.String())
}

// reset recenters both regions for the current screen size.
func (v *viewer) reset() {
	w, h := v.screen.Size()
	bounds := geom.NewRegion(0, 0, w, max(h-1, 0))
	size := geom.NewSize(w/3, h/3)
	v.fixed = geom.RegionAt(bounds.CenterOf(size), size).Translate(geom.NewOffset(-w/8, -h/8))
	v.moving = geom.RegionAt(bounds.CenterOf(size), size).Translate(geom.NewOffset(w/8, h/8))
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.reset()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	step := geom.Offset{}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		v.mode = (v.mode + 1) % modeCount
	case tcell.KeyUp:
		step = geom.NewOffset(0, -1)
	case tcell.KeyDown:
		step = geom.NewOffset(0, 1)
	case tcell.KeyLeft:
		step = geom.NewOffset(-1, 0)
	case tcell.KeyRight:
		step = geom.NewOffset(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			step = geom.NewOffset(0, -1)
		case 'j':
			step = geom.NewOffset(0, 1)
		case 'h':
			step = geom.NewOffset(-1, 0)
		case 'l':
			step = geom.NewOffset(1, 0)
		case '+', '=':
			v.margin++
		case '-':
			v.margin = max(v.margin-1, 0)
		case 'r':
			v.reset()
		}
	}
	if !step.IsOrigin() {
		v.moving = v.moving.Translate(step)
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	window := geom.NewRegion(0, 0, w, max(h-1, 0))

	v.fillRegion(v.fixed.Crop(window), styleFixed)
	v.fillRegion(v.moving.Crop(window), styleMoving)

	var status string
	switch v.mode {
	case modeIntersection:
		result := v.provider.Intersection(v.fixed, v.moving)
		v.fillRegion(result.Crop(window), styleResult)
		status = fmt.Sprintf("intersection=%v area=%d overlaps=%v",
			result, result.Area(), v.provider.Overlaps(v.fixed, v.moving))
	case modeUnion:
		result := v.provider.Union(v.fixed, v.moving)
		v.outlineRegion(result.Crop(window), styleOutline)
		status = fmt.Sprintf("union=%v area=%d", result, result.Area())
	case modeSplit:
		center := v.moving.Center().Sub(v.fixed.Offset())
		q1, q2, q3, q4 := v.provider.Split(v.fixed, center.X, center.Y)
		for _, q := range []geom.Region{q1, q2, q3, q4} {
			v.outlineRegion(q.Crop(window), styleOutline)
		}
		status = fmt.Sprintf("split at %v quadrants=%v %v %v %v", center, q1, q2, q3, q4)
	case modeGrow:
		spacing := geom.SpacingAll(v.margin)
		grown := v.provider.Grow(v.fixed, spacing)
		shrunk := v.provider.Shrink(v.fixed, spacing)
		v.outlineRegion(grown.Crop(window), styleOutline)
		v.fillRegion(shrunk.Crop(window), styleResult)
		status = fmt.Sprintf("spacing=%d grown=%v shrunk=%v", v.margin, grown, shrunk)
	}

	v.drawText(0, h-1, fmt.Sprintf(
		"[%s] %s | provider=%s | arrows/hjkl move, tab mode, +/- spacing, r reset, q quit",
		v.mode, status, v.provider.Name()), styleStatus)
	v.screen.Show()
}

func (v *viewer) fillRegion(r geom.Region, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			v.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (v *viewer) outlineRegion(r geom.Region, style tcell.Style) {
	if r.IsEmpty() {
		return
	}
	x1, y1, x2, y2 := r.Corners()
	for x := x1; x < x2; x++ {
		v.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
		v.screen.SetContent(x, y2-1, tcell.RuneHLine, nil, style)
	}
	for y := y1; y < y2; y++ {
		v.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
		v.screen.SetContent(x2-1, y, tcell.RuneVLine, nil, style)
	}
	v.screen.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	v.screen.SetContent(x2-1, y1, tcell.RuneURCorner, nil, style)
	v.screen.SetContent(x1, y2-1, tcell.RuneLLCorner, nil, style)
	v.screen.SetContent(x2-1, y2-1, tcell.RuneLRCorner, nil, style)
}

func (v *viewer) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
