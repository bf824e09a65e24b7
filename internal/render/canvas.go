// Package render provides terminal scene renderers for the stardust CLI.
//
// Everything here is an ordinary [engine.SceneRenderer]: the core treats a
// terminal canvas no differently from any other caller-supplied draw policy.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stardust/internal/motion"
	"github.com/san-kum/stardust/particle"
)

const (
	clearScreen = "\033[2J\033[H"
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Canvas is a stated scene renderer plotting dots onto a rune grid and
// writing ANSI frames to Out. It counts frames through the Global
// notification, which fires once per step whether or not the frame is drawn,
// so the status line reports simulation steps, not draw calls.
type Canvas struct {
	Width, Height int
	FrameRate     int
	Out           io.Writer

	steps     int
	lastFrame time.Time
	grid      [][]rune
}

// NewCanvas builds a canvas renderer with the given cell dimensions.
func NewCanvas(width, height, frameRate int) *Canvas {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
	}
	return &Canvas{
		Width:     width,
		Height:    height,
		FrameRate: frameRate,
		Out:       os.Stdout,
		grid:      grid,
	}
}

// RenderScene draws the whole scene. Frames beyond the configured rate are
// dropped; the simulation itself is never throttled here.
func (c *Canvas) RenderScene(s particle.Scene[motion.Dot]) {
	if c.FrameRate > 0 {
		if time.Since(c.lastFrame) < time.Second/time.Duration(c.FrameRate) {
			return
		}
		c.lastFrame = time.Now()
	}

	c.clear()
	for _, p := range s {
		p.Draw() // per-particle policy first: a Trail records here
		c.plotTrail(p)
		d := p.Data()
		c.set(int(d.X), int(d.Y), glyph(d.Age))
	}

	fmt.Fprint(c.Out, clearScreen)
	fmt.Fprintln(c.Out, c.Frame(s))
}

// Notify counts simulation steps via the once-per-frame Global change.
func (c *Canvas) Notify(change particle.StateChange) {
	if change == particle.Global {
		c.steps++
	}
}

// Steps returns the number of Global advances observed.
func (c *Canvas) Steps() int { return c.steps }

// Frame renders the current grid and status line as a styled string.
func (c *Canvas) Frame(s particle.Scene[motion.Dot]) string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	status := statusStyle.Render(fmt.Sprintf("step %d  particles %d", c.steps, s.Len()))
	return frameStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n" + status
}

func (c *Canvas) plotTrail(p *particle.Particle[motion.Dot]) {
	trail, ok := p.RenderPolicy().Policy.(*motion.Trail)
	if !ok {
		return
	}
	for _, pt := range trail.Points() {
		c.set(int(pt.X), int(pt.Y), '.')
	}
}

func (c *Canvas) clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = ' '
		}
	}
}

func (c *Canvas) set(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.grid[y][x] = r
	}
}

func glyph(age int) rune {
	switch {
	case age < 10:
		return '*'
	case age < 30:
		return 'o'
	default:
		return '.'
	}
}
