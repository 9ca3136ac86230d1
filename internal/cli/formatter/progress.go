package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%. Color tracks completion:
// red below a third, yellow up to two thirds, green beyond.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	style := StyleRed
	switch {
	case pct >= 0.66:
		style = StyleGreen
	case pct >= 0.33:
		style = StyleYellow
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %d%%", style.Render(bar), int(pct*100+0.5))
}
