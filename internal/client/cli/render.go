package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
)

// palette holds the semantic colours of one theme.
type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var palettes = map[models.Theme]palette{
	// Catppuccin Latte
	models.ThemeLight: {
		Text:    "#4c4f69",
		Muted:   "#8c8fa1",
		Accent:  "#1e66f5",
		Border:  "#bcc0cc",
		Success: "#40a02b",
		Warning: "#df8e1d",
		Error:   "#d20f39",
	},
	// Catppuccin Mocha
	models.ThemeDark: {
		Text:    "#cdd6f4",
		Muted:   "#7f849c",
		Accent:  "#89b4fa",
		Border:  "#45475a",
		Success: "#a6e3a1",
		Warning: "#f9e2af",
		Error:   "#f38ba8",
	},
}

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	danger   lipgloss.Style
	panel    lipgloss.Style
	activeTb lipgloss.Style
	tab      lipgloss.Style
}

// Renderer draws the dashboard panels as styled text. It follows the app theme
// through ThemeChanged.
type Renderer struct {
	lg *lipgloss.Renderer

	mu    sync.RWMutex
	theme models.Theme
	st    styles
}

// NewRenderer returns a renderer targeting w in the light theme.
func NewRenderer(w io.Writer) *Renderer {
	r := &Renderer{lg: lipgloss.NewRenderer(w)}
	r.ThemeChanged(models.ThemeLight)
	return r
}

// ThemeChanged rebuilds the styles for theme.
func (r *Renderer) ThemeChanged(theme models.Theme) {
	p, ok := palettes[theme]
	if !ok {
		theme, p = models.ThemeLight, palettes[models.ThemeLight]
	}

	st := styles{
		title:    r.lg.NewStyle().Bold(true).Foreground(p.Accent),
		text:     r.lg.NewStyle().Foreground(p.Text),
		muted:    r.lg.NewStyle().Foreground(p.Muted),
		accent:   r.lg.NewStyle().Foreground(p.Accent),
		success:  r.lg.NewStyle().Foreground(p.Success),
		warning:  r.lg.NewStyle().Foreground(p.Warning),
		danger:   r.lg.NewStyle().Foreground(p.Error),
		panel:    r.lg.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		activeTb: r.lg.NewStyle().Bold(true).Underline(true).Foreground(p.Accent),
		tab:      r.lg.NewStyle().Foreground(p.Muted),
	}

	r.mu.Lock()
	r.theme, r.st = theme, st
	r.mu.Unlock()
}

func (r *Renderer) Theme() models.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

func (r *Renderer) styles() styles {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.st
}

func (r *Renderer) Info(msg string) string    { return r.styles().accent.Render(msg) }
func (r *Renderer) Success(msg string) string { return r.styles().success.Render(msg) }
func (r *Renderer) Error(msg string) string   { return r.styles().danger.Render(msg) }

// Pipeline draws the tab bar and the borrowers of the active tab. The selected
// borrower is marked with an arrow.
func (r *Renderer) Pipeline(p models.BorrowerPipeline, active models.TabType, selectedID string) string {
	st := r.styles()

	tabs := make([]string, 0, len(models.AllTabs()))
	for _, tab := range models.AllTabs() {
		label := fmt.Sprintf("%s (%d)", tab.Title(), len(p.Bucket(tab)))
		if tab == active {
			tabs = append(tabs, st.activeTb.Render(label))
		} else {
			tabs = append(tabs, st.tab.Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(st.title.Render("Borrower Pipeline"))
	b.WriteString("\n")
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n")

	bucket := p.Bucket(active)
	if len(bucket) == 0 {
		b.WriteString(st.muted.Render("No borrowers in this stage"))
	}
	for i, br := range bucket {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "  "
		if br.ID == selectedID {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-4s %-18s %-14s %12s  %s", marker, br.ID, br.Name, br.LoanType, formatMoney(br.Amount), br.Status)
		if br.ID == selectedID {
			b.WriteString(st.accent.Render(line))
		} else {
			b.WriteString(st.text.Render(line))
		}
	}

	return st.panel.Render(b.String())
}

// Detail draws the selected borrower. actions are the ones the viewer may
// trigger; all but escalation are listed only under AI findings.
func (r *Renderer) Detail(br *models.Borrower, actions []models.Action) string {
	st := r.styles()

	if br == nil {
		return st.panel.Render(st.muted.Render("Select a borrower to view details"))
	}

	var b strings.Builder
	b.WriteString(st.title.Render(br.Name))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("%s · %s · %s", br.LoanType, formatMoney(br.Amount), br.Status)))
	b.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("\n%s %s", st.muted.Render(label+":"), st.text.Render(value)))
	}
	field("Email", br.Email)
	field("Phone", br.Phone)
	field("Employment", br.Employment)
	if br.Income != nil {
		field("Income", formatMoney(*br.Income))
	}
	if br.ExistingLoan != nil {
		field("Existing loan", formatMoney(*br.ExistingLoan))
	}
	if br.CreditScore != nil {
		field("Credit score", strconv.Itoa(*br.CreditScore))
	}
	field("Source of funds", br.SourceOfFunds)
	if br.RiskSignal != nil {
		b.WriteString("\n" + st.warning.Render("Risk: "+*br.RiskSignal))
	}

	// Documents, valuer and approve belong to the AI findings; escalation is
	// always on offer.
	var flagged, general []models.Action
	for _, a := range actions {
		if a == models.ActionEscalateToCommittee {
			general = append(general, a)
		} else {
			flagged = append(flagged, a)
		}
	}
	line := func(a models.Action) string {
		return "\n" + st.text.Render(fmt.Sprintf("  %-9s %s", actionCommand(a), a.Label()))
	}

	if len(br.AIFlags) > 0 {
		b.WriteString("\n\n" + st.title.Render(fmt.Sprintf("AI Explainability (%d issues)", len(br.AIFlags))))
		for _, f := range br.AIFlags {
			b.WriteString("\n" + st.danger.Render("! "+f))
		}
		for _, a := range flagged {
			b.WriteString(line(a))
		}
	}

	if len(general) > 0 {
		b.WriteString("\n\n" + st.title.Render("Actions"))
		for _, a := range general {
			b.WriteString(line(a))
		}
	}

	return st.panel.Render(b.String())
}

// Broker draws the broker overview and the onboarding workflow. Either may be
// nil while loading.
func (r *Renderer) Broker(info *models.BrokerInfo, wf *models.OnboardingWorkflow) string {
	st := r.styles()

	var b strings.Builder
	b.WriteString(st.title.Render("Broker Overview"))
	if info == nil {
		b.WriteString("\n" + st.muted.Render("Loading..."))
	} else {
		b.WriteString("\n" + st.text.Render(info.Name))
		b.WriteString("\n" + st.muted.Render(fmt.Sprintf("Deals: %d  Approval rate: %s  Pending: %d", info.Deals, info.ApprovalRate, info.Pending)))
		if info.Email != "" || info.Phone != "" {
			b.WriteString("\n" + st.muted.Render(strings.TrimSpace(info.Email+"  "+info.Phone)))
		}
	}

	b.WriteString("\n\n" + st.title.Render("Onboarding Workflow"))
	if wf == nil {
		b.WriteString("\n" + st.muted.Render("Loading..."))
	} else {
		for i, s := range wf.Steps {
			b.WriteString("\n" + st.text.Render(fmt.Sprintf("%d. %s", i+1, s)))
		}
	}

	b.WriteString("\n\n" + st.title.Render("AI Assistant"))
	b.WriteString("\n" + st.success.Render("[x] Enable AI Assistant"))
	b.WriteString("\n" + st.muted.Render("AI Assistant will help automate document review and risk assessment."))

	return st.panel.Render(b.String())
}

// actionCommand is the REPL command that triggers a.
func actionCommand(a models.Action) string {
	switch a {
	case models.ActionRequestDocuments:
		return "docs"
	case models.ActionSendToValuer:
		return "valuer"
	case models.ActionApproveLoan:
		return "approve"
	case models.ActionEscalateToCommittee:
		return "escalate"
	}
	return string(a)
}

// formatMoney renders v as whole dollars with thousands separators. Any
// finite float is accepted.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 0, 64)
	neg := v < 0 && s != "0"

	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}
