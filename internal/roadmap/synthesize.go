package roadmap

import (
	"fmt"
	"strings"
)

// Focus returns the first three missing skills padded with placeholder labels.
func Focus(missing []string) [focusCount]string {
	focus := placeholders
	n := 0
	for _, skill := range missing {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		focus[n] = skill
		n++
		if n == focusCount {
			break
		}
	}
	return focus
}

type stage struct {
	title   string
	window  string
	actions []string
	check   string
	output  string
}

// Synthesize renders a roadmap of the variant from the first three missing skills.
// The result depends only on its arguments.
func Synthesize(variant Variant, missing []string, role string, recommendation string) string {
	focus := Focus(missing)
	role = strings.TrimSpace(role)
	if role == "" {
		role = "your target role"
	}

	if variant == VariantWeeks {
		return renderWeeks(focus, role, recommendation)
	}
	return renderSteps(focus, role, recommendation, len(missing) == 0)
}

func renderSteps(focus [focusCount]string, role, recommendation string, allSet bool) string {
	stages := []stage{
		{
			title:   "Assess the Gap",
			window:  "Days 1-3",
			actions: []string{fmt.Sprintf("List the %s requirements you already cover", role), "Pick one guided course per focus area"},
			output:  "A written study plan with weekly goals",
		},
		{
			title:   fmt.Sprintf("Learn %s", focus[0]),
			window:  "Week 1-2",
			actions: []string{fmt.Sprintf("Work through the fundamentals of %s", focus[0]), "Solve small exercises daily"},
			output:  fmt.Sprintf("A repository of %s exercises with notes", focus[0]),
		},
		{
			title:   fmt.Sprintf("Build with %s", focus[1]),
			window:  "Week 3-4",
			actions: []string{fmt.Sprintf("Apply %s in a mini-project", focus[1]), "Write a short design note"},
			output:  fmt.Sprintf("A working mini-project that uses %s", focus[1]),
		},
		{
			title:   fmt.Sprintf("Integrate %s", focus[2]),
			window:  "Week 5-6",
			actions: []string{fmt.Sprintf("Combine %s with the previous project", focus[2]), "Add tests and documentation"},
			output:  fmt.Sprintf("The mini-project extended with %s", focus[2]),
		},
		{
			title:   "Capstone Project",
			window:  "Week 7-8",
			actions: []string{fmt.Sprintf("Build an end-to-end project relevant to %s", role), "Deploy it and measure one result"},
			output:  "A deployed capstone with a README and metrics",
		},
		{
			title:   "Showcase and Apply",
			window:  "Week 9",
			actions: []string{"Update your resume with quantified outcomes", "Practice interview questions on the new skills"},
			output:  "An updated resume and five tailored applications",
		},
	}

	var b strings.Builder
	b.WriteString("### Goal\n")
	if allSet {
		fmt.Fprintf(&b, "- You are all set for %s. Keep sharpening %s, %s and %s.\n", role, focus[0], focus[1], focus[2])
	} else {
		fmt.Fprintf(&b, "- Become job-ready as a %s by closing gaps in %s, %s and %s.\n", role, focus[0], focus[1], focus[2])
	}

	for i, s := range stages {
		fmt.Fprintf(&b, "\n### Step %d: %s (%s)\n", i+1, s.title, s.window)
		for _, action := range s.actions {
			fmt.Fprintf(&b, "- %s\n", action)
		}
		fmt.Fprintf(&b, "- **Output:** %s\n", s.output)
	}

	writeRecommendation(&b, recommendation)
	return b.String()
}

func renderWeeks(focus [focusCount]string, role, recommendation string) string {
	stages := []stage{
		{
			title:   fmt.Sprintf("Foundation in %s", focus[0]),
			actions: []string{fmt.Sprintf("Basics of %s", focus[0]), "Hands-on exercises"},
			check:   fmt.Sprintf("Explain the core ideas of %s without notes", focus[0]),
			output:  fmt.Sprintf("A mini-project using %s", focus[0]),
		},
		{
			title:   fmt.Sprintf("Deep Dive into %s", focus[1]),
			actions: []string{fmt.Sprintf("Advanced concepts of %s", focus[1]), "Integration with other tools"},
			check:   fmt.Sprintf("Finish a guided %s exercise end to end", focus[1]),
			output:  "A proof of concept combining both skills",
		},
		{
			title:   fmt.Sprintf("Application of %s", focus[2]),
			actions: []string{fmt.Sprintf("Real-world use cases of %s", focus[2]), "Debugging and optimization"},
			check:   "Profile and fix one bottleneck",
			output:  "An open source contribution or a published write-up",
		},
		{
			title:   "Mastery",
			actions: []string{fmt.Sprintf("System design implications for a %s", role), "Mock interviews"},
			check:   "Pass a mock interview covering all three skills",
			output:  "A final capstone project",
		},
	}

	var b strings.Builder
	for i, s := range stages {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### Week %d: %s\n", i+1, s.title)
		for _, action := range s.actions {
			fmt.Fprintf(&b, "- %s\n", action)
		}
		fmt.Fprintf(&b, "- **Checkpoint:** %s\n", s.check)
		fmt.Fprintf(&b, "- **Output:** Deliverable: %s\n", s.output)
	}

	writeRecommendation(&b, recommendation)
	return b.String()
}

func writeRecommendation(b *strings.Builder, recommendation string) {
	recommendation = strings.TrimSpace(recommendation)
	if recommendation == "" {
		return
	}
	fmt.Fprintf(b, "\n### Recommendation\n- %s\n", recommendation)
}
