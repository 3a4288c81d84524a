package analyze

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fraudlens/internal/predict"
	"github.com/abhisek/fraudlens/internal/presenter"
	"github.com/abhisek/fraudlens/internal/transaction"
	"github.com/abhisek/fraudlens/internal/ui/components"
	"github.com/abhisek/fraudlens/internal/ui/layout"
	"github.com/abhisek/fraudlens/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const featureColumns = 4

func (s *AnalyzeScreen) View(width, height int) string {
	if layout.IsWide(width) {
		formWidth := width * 11 / 20
		left := s.renderForm(formWidth)
		right := s.renderResult(width - formWidth - 2)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.renderForm(width), s.renderResult(width))
}

// renderForm renders the input fields.
func (s *AnalyzeScreen) renderForm(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("  Transaction Details"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		s.fields[fieldAmount].View(),
		"   ",
		s.fields[fieldTime].View(),
	))
	b.WriteString("\n")

	if s.advanced {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("PCA features (blank = 0)"))
		b.WriteString("\n")
		b.WriteString(s.renderFeatureGrid())
	} else {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d anonymized features set · Ctrl+A to edit", s.nonZeroFeatures())))
	}

	if s.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Invalid.Render("✗ " + s.formErr))
	}

	_, loading := s.presenter.State().(presenter.Loading)
	label := "Analyze Transaction"
	if loading {
		label = "Analyzing…"
	}
	b.WriteString("\n\n")
	b.WriteString(components.NewButton(label, !loading).View())

	return lipgloss.NewStyle().Width(width).Padding(1, 1).Render(b.String())
}

func (s *AnalyzeScreen) renderFeatureGrid() string {
	var rows []string
	for start := 0; start < transaction.FeatureCount; start += featureColumns {
		var cells []string
		for i := start; i < start+featureColumns && i < transaction.FeatureCount; i++ {
			cells = append(cells, s.fields[fieldFirstFeature+i].InlineView(5)+"  ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (s *AnalyzeScreen) nonZeroFeatures() int {
	c := transaction.Build(s.raw(), nil)
	n := 0
	for _, v := range c.Features {
		if v != 0 {
			n++
		}
	}
	return n
}

// renderResult renders the panel for the current presenter state.
func (s *AnalyzeScreen) renderResult(width int) string {
	cardWidth := width - 2
	if cardWidth < 20 {
		cardWidth = 20
	}

	switch st := s.presenter.State().(type) {
	case presenter.Loading:
		return theme.Card.Width(cardWidth).Render(s.renderLoading())
	case presenter.Success:
		return theme.Card.Width(cardWidth).Render(s.renderSuccess(st.Result, cardWidth-6))
	case presenter.Failure:
		return theme.ErrorCard.Width(cardWidth).Render(renderFailure(st))
	default:
		return theme.Card.Width(cardWidth).Render(renderIdle())
	}
}

func renderIdle() string {
	return strings.Join([]string{
		theme.Subtitle.Render("No analysis yet"),
		"",
		theme.Body.Render("Enter an amount and time, then press Enter."),
		theme.Hint.Render("Ctrl+P loads an example transaction."),
	}, "\n")
}

func (s *AnalyzeScreen) renderLoading() string {
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	elapsed := s.now().Sub(s.started).Seconds()
	return strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(frame + " Analyzing transaction…"),
		"",
		theme.Hint.Render(fmt.Sprintf("%.1fs elapsed", elapsed)),
	}, "\n")
}

func (s *AnalyzeScreen) renderSuccess(r predict.Result, width int) string {
	d := presenter.Derive(r)

	verdictColor := theme.Success
	if d.IsFraud {
		verdictColor = theme.Error
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(verdictColor).Bold(true).Render(d.Icon + "  " + d.Headline))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s at %s",
		transaction.FormatAmount(s.submitted.Amount),
		transaction.FormatElapsed(s.submitted.Time),
	)))
	b.WriteString("\n\n")

	meter := components.NewProgressBar("Fraud", d.Meter, d.FraudPercent, width, theme.Error)
	b.WriteString(meter.View())
	b.WriteString("\n")
	b.WriteString(theme.Label.Render("Genuine") + "  " + theme.Body.Render(d.GenuinePercent))
	b.WriteString("   ")
	b.WriteString(theme.Label.Render("Confidence") + "  " + theme.Body.Render(d.Confidence))
	b.WriteString("\n\n")

	badge := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BadgeColor(d.Badge.Class)).
		Bold(true).
		Padding(0, 1).
		Render(d.Badge.Text)
	b.WriteString(theme.Label.Render("Risk") + "  " + badge)
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Width(width).Render(d.Recommendation))
	b.WriteString("\n\n")

	action := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(verdictColor).
		Bold(true).
		Padding(0, 2).
		Render(d.Action)
	b.WriteString(action)

	return b.String()
}

func renderFailure(f presenter.Failure) string {
	var b strings.Builder
	b.WriteString(theme.Invalid.Render("⚠ Analysis failed"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(f.Message))

	if hints := troubleshooting(f.Kind); len(hints) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Label.Render("Try:"))
		for _, h := range hints {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("  • " + h))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press Enter to retry or Ctrl+R to dismiss."))
	return b.String()
}

// troubleshooting returns next steps for a failure kind.
func troubleshooting(k predict.Kind) []string {
	switch k {
	case predict.KindNetworkUnreachable:
		return []string{
			"Start the prediction service",
			"Check the address with --api or " + predict.EnvBaseURL,
		}
	case predict.KindTimeout:
		return []string{
			"The model may still be loading; retry in a moment",
			"Raise the limit with --timeout",
		}
	case predict.KindServerRejected:
		return []string{
			"Check the field values",
			"Inspect the service logs for details",
		}
	case predict.KindMalformedResponse:
		return []string{
			"Confirm the service version is " + predict.MinServiceVersion + " or newer",
		}
	}
	return nil
}
