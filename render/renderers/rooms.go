package renderers

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/mind-palace/contact"
	"github.com/lixenwraith/mind-palace/content"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/sequence"
	"github.com/lixenwraith/mind-palace/ui"
)

// RoomView is the live state of the current room, replaced on every room entry
type RoomView struct {
	Lines  []*sequence.Typewriter // welcome typewriters, parallel to Content.Welcome.Lines
	Glitch *sequence.Glitch
	Form   *contact.Form
}

// RoomRenderer draws the current room between the fixed panels
type RoomRenderer struct {
	nav      *navigation.Navigator
	content  *content.Content
	view     *RoomView
	terminal *TerminalPanel
	hits     *HitMap
}

// NewRoomRenderer creates the room view; terminal decides how much height the room gets
func NewRoomRenderer(nav *navigation.Navigator, c *content.Content, view *RoomView, terminal *TerminalPanel, hits *HitMap) *RoomRenderer {
	return &RoomRenderer{nav: nav, content: c, view: view, terminal: terminal, hits: hits}
}

// Render draws the current room
func (r *RoomRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	open := r.terminal != nil && r.terminal.IsVisible()
	area := region(buf, ComputeLayout(ctx.Width, ctx.Height, open).Room)
	if area.W <= 0 || area.H <= 0 {
		return
	}

	switch r.nav.Room() {
	case navigation.Welcome:
		r.renderWelcome(area)
	case navigation.PrefrontalCortex:
		r.renderProjects(area)
	case navigation.TemporalLobe:
		r.renderMemory(area)
	case navigation.LimbicSystem:
		r.renderChaos(area)
	case navigation.MotorCortex:
		r.renderSkills(area)
	case navigation.Synapse:
		r.renderSynapse(area)
	}
}

// header draws a room title and subtitle, returns rows used
func header(area ui.Region, title string, h content.Header, fg render.RGB) int {
	area.Row(0).TextCenter(0, title, fg)
	area.Bold(0, 0, area.W)
	area.Row(1).TextCenter(0, h.Subtitle, rgbComment)
	return 3
}

// columns splits area into n equal columns separated by gap cells
func columns(area ui.Region, y, h, n, gap int) []ui.Region {
	if n <= 0 {
		return nil
	}
	w := (area.W - gap*(n-1)) / n
	cols := make([]ui.Region, n)
	for i := range cols {
		cols[i] = area.Sub(i*(w+gap), y, w, h)
	}
	return cols
}

func (r *RoomRenderer) renderWelcome(area ui.Region) {
	w := &r.content.Welcome
	area.Row(0).TextCenter(0, w.Title, w.Color)
	area.Bold(0, 0, area.W)

	y := 2
	for i, tw := range r.view.Lines {
		if i >= len(w.Lines) {
			break
		}
		text := tw.Visible()
		if !tw.Done() && text != "" {
			text += "▌"
		}
		area.Row(y).TextCenter(0, text, w.Lines[i].Color)
		y += 2
	}

	statW := min(20, area.W/max(1, len(w.Stats)))
	statRow := area.Sub((area.W-statW*len(w.Stats))/2, y, statW*len(w.Stats), 4)
	for i, s := range w.Stats {
		card := statRow.Sub(i*statW, 0, statW-1, 4)
		glass(card)
		inner := card.Card("", ui.LineRounded, s.Color)
		inner.Row(0).TextCenter(0, s.Value, s.Color)
		inner.Bold(0, 0, inner.W)
		inner.Row(1).TextCenter(0, s.Label, render.RgbGray)
		r.hits.Add(card, toneTarget(s.Tone))
	}

	area.Row(y+5).TextCenter(0, w.Footer, rgbMuted)
}

// projectCardHeight is border, title, two description rows, tech, status and actions
const projectCardHeight = 8

func (r *RoomRenderer) renderProjects(area ui.Region) {
	p := &r.content.Projects
	y := header(area, p.Header.Title, p.Header, p.Header.Color)

	const perRow = 2
	actions := "[" + strings.Join(p.Actions, "] [") + "]"
	for i, item := range p.Items {
		row := i / perRow
		cols := columns(area, y+row*projectCardHeight, projectCardHeight, perRow, 2)
		card := cols[i%perRow]
		glass(card)
		inner := card.Card(item.File, ui.LineRounded, item.Color)

		inner.TextBold(0, 0, item.Title, item.Color)
		inner.Sub(0, 1, inner.W, 2).Wrap(0, 0, item.Description, rgbLightGray)
		inner.Text(0, 3, strings.Join(item.Tech, " · "), render.RgbCyan)
		x := inner.Text(0, 4, "● "+item.Status, p.StatusColors[item.Status])
		inner.Text(x+1, 4, "["+item.Kind+"]", render.RgbGray)
		inner.Text(0, 5, actions, rgbMuted)

		r.hits.Add(card, toneTarget(item.Tone))
	}
}

func (r *RoomRenderer) renderMemory(area ui.Region) {
	m := &r.content.Memory
	y := header(area, m.Header.Title, m.Header, m.Header.Color)
	cols := columns(area, y, area.H-y, 2, 2)

	core := cols[0]
	glass(core)
	inner := core.Card(m.Core.Title, ui.LineRounded, render.RgbPurple)
	row := 0
	for _, e := range m.Core.Entries {
		inner.Text(0, row, e.Period, e.Color)
		inner.TextBold(0, row+1, e.Role, render.RGBWhite)
		row += 2 + inner.Wrap(0, row+2, e.Detail, render.RgbGray) + 1
	}
	r.hits.Add(core, toneTarget(m.Core.Tone))

	ph := &m.Philosophy
	phil := cols[1]
	glass(phil)
	inner = phil.Card(ph.Title, ui.LineRounded, render.RgbBlue)
	row = inner.Wrap(0, 0, ph.Quote, render.RgbPurple) + 1
	for _, para := range ph.Paragraphs {
		row += inner.Wrap(0, row, para, rgbLightGray) + 1
	}
	inner.Text(0, row, ph.Obsessions.Title, rgbComment)
	for i, item := range ph.Obsessions.Items {
		inner.Text(0, row+1+i, "▸ "+item, render.RgbCyan)
	}
	r.hits.Add(phil, toneTarget(ph.Tone))
}

// chaosCardHeight is border, title, caption and the meter or code line
const chaosCardHeight = 5

func (r *RoomRenderer) renderChaos(area ui.Region) {
	c := &r.content.Chaos
	title, fg := c.Header.Title, c.Header.Color
	if g := r.view.Glitch; g != nil {
		title = g.Title()
		if g.Glitched() {
			fg = render.RgbPink
		}
	}
	y := header(area, title, c.Header, fg)
	r.hits.Add(area.Sub(0, 0, area.W, 2), toneTarget(c.Tone))

	for i, card := range columns(area, y, chaosCardHeight, len(c.Cards), 2) {
		spec := c.Cards[i]
		glass(card)
		inner := card.Card("", ui.LineRounded, spec.Color)
		inner.TextBold(0, 0, spec.Glyph+" "+spec.Title, spec.Color)
		inner.Text(0, 1, spec.Caption, render.RgbGray)
		if spec.Meter {
			chaos := 0.0
			if g := r.view.Glitch; g != nil {
				chaos = g.Chaos()
			}
			pct := strconv.Itoa(int(chaos+0.5)) + "%"
			inner.Progress(0, 2, inner.W-len(pct)-1, chaos/100, spec.Color, render.RgbDarkGray)
			inner.TextRight(2, pct, spec.Color)
		} else {
			inner.Text(0, 2, spec.Code, render.RgbTerminalGreen)
		}
		r.hits.Add(card, toneTarget(spec.Tone))
	}
	y += chaosCardHeight + 1

	y += area.Sub(2, y, area.W-4, area.H-y).Wrap(0, 0, c.Quote, render.RgbPurple) + 1
	y += area.Sub(2, y, area.W-4, area.H-y).Wrap(0, 0, c.Paragraph, rgbLightGray) + 1

	gen := area.Sub(0, y, area.W, 5)
	glass(gen)
	inner := gen.Card("", ui.LineRounded, render.RgbRed)
	inner.Text(0, 0, c.Generator.Title, rgbComment)
	if g := r.view.Glitch; g != nil && len(c.Generator.Thoughts) > 0 {
		thought := c.Generator.Thoughts[g.Thought()%len(c.Generator.Thoughts)]
		inner.Text(0, 1, "> "+thought, render.RgbYellow)
	}
	inner.Text(0, 2, c.Generator.Hint, rgbMuted)
}

func (r *RoomRenderer) renderSkills(area ui.Region) {
	s := &r.content.Skills
	y := header(area, s.Header.Title, s.Header, s.Header.Color)

	rows := 0
	for _, p := range s.Panels {
		rows = max(rows, len(p.Skills))
	}
	panelH := rows + 2
	for i, col := range columns(area, y, panelH, len(s.Panels), 2) {
		p := s.Panels[i]
		glass(col)
		inner := col.Card(p.Title, ui.LineRounded, render.RgbYellow)
		const nameW, pctW = 18, 5
		for j, sk := range p.Skills {
			inner.Text(0, j, sk.Name, rgbLightGray)
			inner.Progress(nameW, j, inner.W-nameW-pctW, float64(sk.Level)/100, sk.Color, render.RgbDarkGray)
			inner.TextRight(j, strconv.Itoa(sk.Level)+"%", sk.Color)
		}
		r.hits.Add(col, toneTarget(p.Tone))
	}
	y += panelH + 1

	stats := area.Sub(0, y, area.W, 5)
	glass(stats)
	inner := stats.Card(s.Stats.Title, ui.LineRounded, render.RgbCyan)
	for i, cell := range columns(inner, 0, 3, len(s.Stats.Items), 1) {
		st := s.Stats.Items[i]
		cell.Row(0).TextCenter(0, st.Value, st.Color)
		cell.Bold(0, 0, cell.W)
		cell.Row(1).TextCenter(0, st.Label, render.RgbGray)
		r.hits.Add(cell, toneTarget(st.Tone))
	}
}

func (r *RoomRenderer) renderSynapse(area ui.Region) {
	s := &r.content.Synapse
	y := header(area, s.Header.Title, s.Header, s.Header.Color)
	form := r.view.Form

	cardH := 2 + len(s.Banner) + 2 + 2*len(s.Prompts) + 2
	card := area.Sub(0, y, area.W, cardH)
	glass(card)
	inner := card.Card(s.Title, ui.LineRounded, rgbTeal)

	row := 0
	for _, line := range s.Banner {
		inner.Text(0, row, line, rgbComment)
		row++
	}
	inner.Text(0, row, "● "+s.Channel, render.RgbTerminalGreen)
	row += 2

	for i, prompt := range s.Prompts {
		inner.Text(0, row, prompt, render.RgbTerminalGreen)
		if form != nil && i < len(contact.Fields) {
			field := contact.Field(i)
			in := inner.Sub(2, row+1, inner.W-2, 1)
			in.Fill(render.RgbDarkGray, 0.5)
			in.TextField(0, form.Input(field), contact.Fields[i].Placeholder, rgbLightGray, rgbMuted, form.Focused() == field)
			r.hits.Add(in, Target{Action: ActionFocus, Field: field})
		}
		row += 2
	}

	if form != nil {
		fg := render.RgbPurple
		switch form.Status() {
		case contact.Transmitting:
			fg = render.RgbYellow
		case contact.Success:
			fg = render.RgbTerminalGreen
		}
		btn := inner.Row(row)
		btn.TextCenter(0, form.ButtonLabel(), fg)
		if form.Focused() == contact.FieldSubmit {
			btn.Bold(0, 0, btn.W)
		}
		r.hits.Add(btn, Target{Action: ActionSubmit})
	}

	y += cardH + 1
	for i, line := range s.Footer {
		area.Row(y+i).TextCenter(0, line, rgbMuted)
	}
}
