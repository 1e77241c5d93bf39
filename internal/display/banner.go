package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the startup art, centred for the terminal width
// and tinted with the banner style. Swap banner.txt to change it.
func RenderBanner() string {
	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	artWidth := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > artWidth {
			artWidth = n
		}
	}

	indent := ""
	if w := termWidth(); w > artWidth {
		indent = strings.Repeat(" ", (w-artWidth)/2)
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(indent)
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
