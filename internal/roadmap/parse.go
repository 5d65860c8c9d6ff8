package roadmap

import (
	"regexp"
	"strings"
)

var stageHeading = regexp.MustCompile(`^###\s*(?:Step|Week)\s*(\d+)\s*:\s*(.+)$`)

const defaultOutput = "Complete this step with a measurable deliverable."

// Stage is one parsed roadmap stage.
type Stage struct {
	Number  string   `json:"number"`
	Title   string   `json:"title"`
	Window  string   `json:"window,omitempty"`
	Actions []string `json:"actions"`
	Output  string   `json:"output"`
}

// Timeline is the structured form of a roadmap document.
type Timeline struct {
	Goal   string  `json:"goal,omitempty"`
	Stages []Stage `json:"stages"`
}

// Parse reads "### Step N: title (window)" or "### Week N: title" blocks with their bullet
// actions and "Output:" lines. ok is false when no stage heading was found.
func Parse(text string) (Timeline, bool) {
	var (
		tl      Timeline
		current *Stage
		goal    []string
		inGoal  bool
	)

	flush := func() {
		if current == nil {
			return
		}
		if current.Output == "" {
			current.Output = defaultOutput
		}
		tl.Stages = append(tl.Stages, *current)
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "### Goal") {
			inGoal = true
			continue
		}

		if m := stageHeading.FindStringSubmatch(line); m != nil {
			inGoal = false
			flush()
			title, window := splitWindow(strings.ReplaceAll(m[2], "**", ""))
			current = &Stage{Number: m[1], Title: title, Window: window, Actions: []string{}}
			continue
		}

		if strings.HasPrefix(line, "### ") {
			inGoal = false
			flush()
			continue
		}

		if inGoal {
			goal = append(goal, strings.TrimSpace(strings.ReplaceAll(strings.TrimLeft(line, "- "), "**", "")))
			continue
		}

		if current == nil {
			continue
		}

		cleaned := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if _, after, found := strings.Cut(cleaned, "Output:"); found {
			current.Output = strings.TrimSpace(after)
			continue
		}

		if action, found := strings.CutPrefix(cleaned, "- "); found {
			if action = strings.TrimSpace(action); action != "" {
				current.Actions = append(current.Actions, action)
			}
		}
	}
	flush()

	tl.Goal = strings.TrimSpace(strings.Join(goal, " "))
	return tl, len(tl.Stages) > 0
}

func splitWindow(title string) (string, string) {
	title = strings.TrimSpace(title)
	if !strings.HasSuffix(title, ")") {
		return title, ""
	}
	idx := strings.LastIndex(title, "(")
	if idx == -1 {
		return title, ""
	}
	return strings.TrimSpace(title[:idx]), strings.TrimSpace(title[idx+1 : len(title)-1])
}
