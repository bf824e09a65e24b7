package render

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Plot renders a recorded metric series as an ASCII graph.
func Plot(name string, series []float64, height int) string {
	if len(series) == 0 {
		return fmt.Sprintf("%s: no data", name)
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption(name),
	)
	return graph
}

// Sparkline renders a compact one-block-high series for status panes.
func Sparkline(series []float64, width int) string {
	if len(series) == 0 {
		return ""
	}
	if len(series) > width {
		series = series[len(series)-width:]
	}

	min, max := series[0], series[0]
	for _, v := range series {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, v := range series {
		idx := 0
		if max > min {
			idx = int((v - min) / (max - min) * float64(len(blocks)-1))
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
