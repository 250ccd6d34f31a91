package reports

import "strings"

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders score percentages as block characters, keeping the most
// recent width points. A width of zero or less keeps every point.
func Sparkline(points []Point, width int) string {
	if width > 0 && len(points) > width {
		points = points[len(points)-width:]
	}
	var b strings.Builder
	for _, p := range points {
		b.WriteRune(sparkBlock(p.ScorePct))
	}
	return b.String()
}

func sparkBlock(pct int) rune {
	switch {
	case pct <= 0:
		return sparkBlocks[0]
	case pct >= 100:
		return sparkBlocks[len(sparkBlocks)-1]
	}
	return sparkBlocks[pct*(len(sparkBlocks)-1)/100]
}
