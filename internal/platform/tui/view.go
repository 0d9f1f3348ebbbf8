package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

const (
	portraitWidth  = 40
	landscapeWidth = 76
	minFrameWidth  = 30
	meterWidth     = 30

	emptyLogPrompt = "Choose a comment style to reply..."
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// The meter is unlabeled; only its fill and band color move.
	positiveMeter = progress.New(
		progress.WithGradient("#6ee7b7", "#10b981"),
		progress.WithoutPercentage(),
		progress.WithWidth(meterWidth),
	)
	negativeMeter = progress.New(
		progress.WithGradient("#fca5a5", "#ef4444"),
		progress.WithoutPercentage(),
		progress.WithWidth(meterWidth),
	)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	if m.showingResults() {
		b.WriteString(renderResults(engine.Summarize(m.state), m.config.ScreenW))
	} else {
		b.WriteString(m.renderRound())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStatus draws the title, the footprint meter and the like counter.
func (m Model) renderStatus() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Straight to the Comments"),
		mutedStyle.Render("Chase the likes. (Or do you?)"),
		renderMeter(m.state.Footprint()),
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		labelStyle.Render("Likes"),
		titleStyle.Render(humanize.Comma(int64(m.state.Likes()))),
	)

	gap := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

// renderMeter draws the unlabeled reputation bar.
func renderMeter(footprint int) string {
	bar := positiveMeter
	if footprint < 0 {
		bar = negativeMeter
	}
	return bar.ViewAs(engine.Meter(footprint) / 100)
}

// displayedRound returns the round on screen: the one just played while
// paused, otherwise the active one.
func (m Model) displayedRound() (int, engine.Platform) {
	if m.pending && m.last != nil {
		return m.last.Round, m.last.Platform
	}
	return m.state.Round(), m.state.Platform()
}

// renderRound draws the active platform frame with its comment log and
// reply buttons.
func (m Model) renderRound() string {
	round, platform := m.displayedRound()

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("Round %d / %d", round+1, engine.Rounds)))
	b.WriteString("\n")
	b.WriteString(m.renderFrame(platform))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Tip: Choose a style to reply. Likes are visible. Reputation isn't."))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(orientationNote(platform)))
	return b.String()
}

// frameWidth returns the outer frame width for a platform on a screen.
func frameWidth(p engine.Platform, screenW int) int {
	w := landscapeWidth
	if p.IsPortrait() {
		w = portraitWidth
	}
	if screenW > 0 && w > screenW-2 {
		w = max(screenW-2, minFrameWidth)
	}
	return w
}

// orientationNote is the footer under the frame.
func orientationNote(p engine.Platform) string {
	if p.IsPortrait() {
		return p.Label + " is portrait"
	}
	return p.Label + " is landscape"
}

// renderFrame draws a platform as a bordered post in its accent color.
func (m Model) renderFrame(p engine.Platform) string {
	accent := lipgloss.Color(p.Accent)
	outer := frameWidth(p, m.config.ScreenW)
	inner := outer - 4 // border and padding

	mediaHeight := 4
	if p.IsPortrait() {
		mediaHeight = 7
	}

	dot := lipgloss.NewStyle().Foreground(accent).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render(p.Label)
	handle := mutedStyle.Render("@user · now")
	headerGap := max(inner-lipgloss.Width(dot)-lipgloss.Width(name)-lipgloss.Width(handle)-1, 1)
	header := dot + " " + name + strings.Repeat(" ", headerGap) + handle

	media := lipgloss.NewStyle().
		Width(inner).
		Height(mediaHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("245")).
		Render(fmt.Sprintf("Media Placeholder (%s)", p.Orientation))

	sections := []string{
		header,
		media,
		lipgloss.NewStyle().Bold(true).Render("Comments"),
		m.renderLog(inner),
	}
	if m.state.IsBlocked(p.Key) {
		sections = append(sections, errorStyle.Render("Your comments here are hidden."))
	}
	sections = append(sections, "", m.renderButtons(inner, accent))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(outer - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderLog draws the last exchange or the empty prompt.
func (m Model) renderLog(width int) string {
	if m.exchange == nil {
		return mutedStyle.Italic(true).Render(emptyLogPrompt)
	}

	you := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	npc := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	body := lipgloss.NewStyle().Width(width)

	lines := m.exchange.Lines()
	speakers := [3]string{you.Render("@you"), npc.Render("@npc"), you.Render("@you")}
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = body.Render(speakers[i] + ": " + line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// renderButtons draws the comment style grid.
func (m Model) renderButtons(width int, accent lipgloss.Color) string {
	styles := engine.Styles()
	cell := max(width/styleColumns-1, 8)

	base := lipgloss.NewStyle().
		Width(cell).
		Align(lipgloss.Center).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	selected := base.
		BorderForeground(accent).
		Bold(true).
		Foreground(accent)
	disabled := base.Foreground(lipgloss.Color("238"))

	var rows []string
	for start := 0; start < len(styles); start += styleColumns {
		end := min(start+styleColumns, len(styles))
		cells := make([]string, 0, styleColumns)
		for i := start; i < end; i++ {
			label := fmt.Sprintf("%d %s", i+1, styles[i].Label)
			switch {
			case m.pending:
				cells = append(cells, disabled.Render(label))
			case i == m.cursor:
				cells = append(cells, selected.Render(label))
			default:
				cells = append(cells, base.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderResults draws the end-of-session card.
func renderResults(sum engine.Summary, screenW int) string {
	blocked := "None"
	if labels := sum.BlockedLabels(); len(labels) > 0 {
		blocked = strings.Join(labels, ", ")
	}

	stat := func(label, value, caption string) string {
		lines := []string{labelStyle.Render(label), titleStyle.Render(value)}
		if caption != "" {
			lines = append(lines, mutedStyle.Render(caption))
		}
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	stats := []string{
		stat("Total Likes", humanize.Comma(int64(sum.Likes)), ""),
		stat("Platforms that blocked you", fmt.Sprintf("%d", len(sum.Blocked)), blocked),
		stat("Digital Footprint", fmt.Sprintf("%d", sum.Footprint), "Higher is better"),
	}
	statRow := lipgloss.JoinHorizontal(lipgloss.Top, stats...)
	if screenW > 0 && lipgloss.Width(statRow) > screenW {
		statRow = lipgloss.JoinVertical(lipgloss.Left, stats...)
	}

	labelWidth := 0
	for _, c := range sum.Consequences {
		labelWidth = max(labelWidth, lipgloss.Width(c.Platform.Label))
	}
	consequences := make([]string, 0, len(sum.Consequences)+1)
	consequences = append(consequences, lipgloss.NewStyle().Bold(true).Render("Platform Consequences"))
	for _, c := range sum.Consequences {
		name := lipgloss.NewStyle().
			Width(labelWidth + 2).
			Foreground(lipgloss.Color(c.Platform.Accent)).
			Render(c.Platform.Label)
		consequences = append(consequences, name+c.Result)
	}

	rating := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Final Rating"),
		titleStyle.Render(string(sum.Rating)),
		mutedStyle.Render("Your choices shape how you're seen. Press r to replay."),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Results"),
		statRow,
		"",
		strings.Join(consequences, "\n"),
		"",
		rating,
	)
}
