package renderers

import (
	"strconv"

	"github.com/lixenwraith/mind-palace/content"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/sequence"
	"github.com/lixenwraith/mind-palace/ui"
)

// Loading screen box size
const (
	loadingWidth   = 80
	loadingHistory = 7
	loadingHeight  = 2 + 5 + loadingHistory + 1 + 2 + 1
)

func centered(buf *render.RenderBuffer, w, h int) ui.Region {
	root := ui.Root(buf)
	w = min(w, root.W-2)
	h = min(h, root.H)
	return root.Sub((root.W-w)/2, (root.H-h)/2, w, h)
}

func percent(p float64) string {
	return strconv.Itoa(int(p+0.5)) + "%"
}

// progressBlock draws the label, percentage and bar on rows y and y+1
func progressBlock(r ui.Region, y int, label string, pct float64) {
	r.Text(0, y, label, rgbComment)
	r.TextRight(y, percent(pct), rgbSand)
	r.Progress(0, y+1, r.W, pct/100, render.RgbCyan, render.RgbDarkGray)
}

func statusLine(r ui.Region, y int, label string, pct float64) {
	s := "● " + label + " " + sequence.StatusLabel(pct)
	x := (r.W - ui.Width(s)) / 2
	x += r.Text(x, y, "● ", rgbTeal)
	x += r.Text(x, y, label+" ", rgbOrchid)
	r.Text(x, y, sequence.StatusLabel(pct), render.RgbCyan)
}

// LoadingScreen draws the scripted command loader over the loading galaxy
type LoadingScreen struct {
	loader *sequence.Loader
	text   content.Loading
	labels content.Boot
}

// NewLoadingScreen creates the loading view; labels supplies the progress and status captions
func NewLoadingScreen(loader *sequence.Loader, text content.Loading, labels content.Boot) *LoadingScreen {
	return &LoadingScreen{loader: loader, text: text, labels: labels}
}

// Render draws the loading terminal
func (s *LoadingScreen) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	box := centered(buf, loadingWidth, loadingHeight)
	glass(box)
	inner := box.Card("", ui.LineDouble, render.RgbCyan).Pad(2, 0)

	inner.Row(0).TextCenter(0, s.text.Title, render.RgbCyan)
	inner.Bold(0, 0, inner.W)
	progressBlock(inner, 2, s.labels.Progress, s.loader.Progress())

	prompt := s.loader.Prompt()
	history := s.loader.History()
	if len(history) > loadingHistory {
		history = history[len(history)-loadingHistory:]
	}
	y := 5
	for _, line := range history {
		fg := rgbTeal
		if line == sequence.SuccessLine {
			fg = render.RgbTerminalGreen
		}
		inner.Text(0, y, line, fg)
		y++
	}
	if !s.loader.Complete() {
		inner.Text(0, y, prompt+s.loader.Current()+"▌", rgbTeal)
	}

	statusLine(inner, inner.H-1, s.labels.Status, s.loader.Progress())
}

// BootScreen draws the boot progress over the boot galaxy
type BootScreen struct {
	boot   *sequence.Boot
	labels content.Boot
}

// NewBootScreen creates the boot view
func NewBootScreen(boot *sequence.Boot, labels content.Boot) *BootScreen {
	return &BootScreen{boot: boot, labels: labels}
}

// Render draws the title, progress bar and status
func (s *BootScreen) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r := centered(buf, loadingWidth, 7)
	pct := float64(s.boot.Progress())

	r.Row(0).TextCenter(0, s.labels.Title, render.RgbTerminalGreen)
	r.Bold(0, 0, r.W)
	progressBlock(r, 2, s.labels.Progress, pct)
	statusLine(r, 5, s.labels.Status, pct)
}
