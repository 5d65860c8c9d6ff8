// Package report renders an analysis report as text, JSON or an XLSX workbook.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spigell/skillgap/internal/analysis"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders r in the named format.
func Write(w io.Writer, format string, r *analysis.Report) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return Text(w, r)
	case FormatJSON:
		return JSON(w, r)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func JSON(w io.Writer, r *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Text writes the plain career analysis report followed by the detailed sections.
func Text(w io.Writer, r *analysis.Report) error {
	var b strings.Builder

	b.WriteString("AI CAREER ANALYSIS REPORT\n")
	b.WriteString("-------------------------\n")
	fmt.Fprintf(&b, "Target Role: %s\n", r.Role)
	fmt.Fprintf(&b, "Date: %s\n", r.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Request: %s\n\n", r.RequestID)

	fmt.Fprintf(&b, "OVERALL READINESS: %s%%\n\n", formatScore(r.ReadinessScore))

	b.WriteString("MISSING SKILLS:\n")
	if len(r.MissingSkills) == 0 {
		b.WriteString("None - Great job!\n\n")
	} else {
		fmt.Fprintf(&b, "%s\n\n", strings.Join(r.MissingSkills, ", "))
	}

	b.WriteString("RECOMMENDATIONS:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	b.WriteString("\nSCORES:\n")
	fmt.Fprintf(&b, "- Skill match (%s): %s%%\n", r.Strategy, formatScore(r.MatchScore))
	fmt.Fprintf(&b, "- Reputation: %s\n", formatScore(r.ReputationScore))
	fmt.Fprintf(&b, "- Resume quality: %d/100\n", r.QualityScore)
	fmt.Fprintf(&b, "- Impact: %d/100\n", r.ImpactScore)
	fmt.Fprintf(&b, "- Experience level: %s\n", r.ExperienceLevel)
	fmt.Fprintf(&b, "- AI proficiency: %s\n", r.AIProficiency.Tier)
	fmt.Fprintf(&b, "- Salary range: %s\n", r.Salary)

	fmt.Fprintf(&b, "\nMATCHED SKILLS:\n%s\n", joinOrNone(r.MatchedSkills))

	if feedback := append(append([]string{}, r.QualityFeedback...), r.ImpactFeedback...); len(feedback) > 0 {
		b.WriteString("\nRESUME FEEDBACK:\n")
		for _, f := range feedback {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	source := "generated"
	if r.Roadmap.Synthesized {
		source = "synthesized"
	}
	fmt.Fprintf(&b, "\nROADMAP (%s):\n%s\n", source, strings.TrimSpace(r.Roadmap.Text))

	if len(r.InterviewQuestions) > 0 {
		b.WriteString("\nINTERVIEW QUESTIONS:\n")
		for i, q := range r.InterviewQuestions {
			fmt.Fprintf(&b, "%d. [%s] %s\n   Tip: %s\n", i+1, q.Type, q.Question, q.Tip)
		}
	}

	fmt.Fprintf(&b, "\nRESUME AUDIT:\n%s\n", strings.TrimSpace(r.Audit.Body))

	if r.ProfileReview != nil {
		fmt.Fprintf(&b, "\nPROFILE REVIEW:\n%s\n", strings.TrimSpace(r.ProfileReview.Body))
	}
	if r.CoverLetter != nil {
		fmt.Fprintf(&b, "\nCOVER LETTER:\n%s\n", strings.TrimSpace(r.CoverLetter.Body))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
