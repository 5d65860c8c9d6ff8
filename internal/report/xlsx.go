package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/skillgap/internal/analysis"
)

const (
	summarySheet   = "Summary"
	skillsSheet    = "Skills"
	recsSheet      = "Recommendations"
	roadmapSheet   = "Roadmap"
	interviewSheet = "Interview"
)

// WriteXLSX saves the workbook at path, adding the .xlsx extension when missing.
func WriteXLSX(path string, r *analysis.Report) error {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}

	f, err := workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(filepath.Clean(path)); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// XLSX streams the workbook to w.
func XLSX(w io.Writer, r *analysis.Report) error {
	f, err := workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

type sheetWriter struct {
	f      *excelize.File
	sheet  string
	row    int
	header int
	label  int
	err    error
}

func (s *sheetWriter) set(col string, v any) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellValue(s.sheet, fmt.Sprintf("%s%d", col, s.row), v)
}

func (s *sheetWriter) style(from, to string, style int) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellStyle(s.sheet, fmt.Sprintf("%s%d", from, s.row), fmt.Sprintf("%s%d", to, s.row), style)
}

func (s *sheetWriter) headers(values ...string) {
	cols := []string{"A", "B", "C", "D"}
	for i, v := range values {
		s.set(cols[i], v)
	}
	s.style("A", cols[len(values)-1], s.header)
	s.row++
}

func (s *sheetWriter) pair(label string, value any) {
	s.set("A", label)
	s.style("A", "A", s.label)
	s.set("B", value)
	s.row++
}

func workbook(r *analysis.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	label, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{skillsSheet, recsSheet, roadmapSheet, interviewSheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	newWriter := func(sheet string) *sheetWriter {
		return &sheetWriter{f: f, sheet: sheet, row: 1, header: header, label: label}
	}

	sum := newWriter(summarySheet)
	sum.headers("Career Analysis Report", "")
	sum.pair("Target Role", r.Role)
	sum.pair("Date", r.GeneratedAt.Format("2006-01-02"))
	sum.pair("Request", r.RequestID)
	sum.pair("Overall Readiness (%)", r.ReadinessScore)
	sum.pair("Skill Match (%)", r.MatchScore)
	sum.pair("Matching Strategy", r.Strategy)
	sum.pair("Reputation", r.ReputationScore)
	sum.pair("Resume Quality", r.QualityScore)
	sum.pair("Impact", r.ImpactScore)
	sum.pair("Experience Level", string(r.ExperienceLevel))
	sum.pair("AI Proficiency", r.AIProficiency.Tier)
	sum.pair("Salary Range", r.Salary)
	if sum.err == nil {
		sum.err = f.SetColWidth(summarySheet, "A", "A", 25)
	}
	if sum.err == nil {
		sum.err = f.SetColWidth(summarySheet, "B", "B", 50)
	}

	sk := newWriter(skillsSheet)
	sk.headers("Skill", "Status")
	for _, s := range r.MatchedSkills {
		sk.set("A", s)
		sk.set("B", "matched")
		sk.row++
	}
	for _, s := range r.MissingSkills {
		sk.set("A", s)
		sk.set("B", "missing")
		sk.row++
	}

	rec := newWriter(recsSheet)
	rec.headers("#", "Recommendation")
	for i, item := range r.Recommendations {
		rec.set("A", i+1)
		rec.set("B", item)
		rec.row++
	}

	rm := newWriter(roadmapSheet)
	if r.Timeline != nil {
		rm.headers("Stage", "Title", "Actions", "Output")
		for _, st := range r.Timeline.Stages {
			rm.set("A", st.Number)
			rm.set("B", st.Title)
			rm.set("C", strings.Join(st.Actions, "\n"))
			rm.set("D", st.Output)
			rm.row++
		}
	} else {
		rm.headers("Roadmap")
		rm.set("A", r.Roadmap.Text)
	}

	iv := newWriter(interviewSheet)
	iv.headers("Type", "Question", "Tip")
	for _, q := range r.InterviewQuestions {
		iv.set("A", q.Type)
		iv.set("B", q.Question)
		iv.set("C", q.Tip)
		iv.row++
	}

	for _, s := range []*sheetWriter{sum, sk, rec, rm, iv} {
		if s.err != nil {
			f.Close()
			return nil, fmt.Errorf("fill sheet %s: %w", s.sheet, s.err)
		}
	}

	return f, nil
}
