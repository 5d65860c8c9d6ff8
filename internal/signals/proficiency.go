package signals

import "strings"

// Proficiency is an AI-skill tier with a one-line description.
type Proficiency struct {
	Tier        string `json:"tier"`
	Description string `json:"description"`
}

var (
	foundationSkills   = []string{"python", "sql", "pandas", "numpy", "matplotlib", "excel"}
	intermediateSkills = []string{"scikit-learn", "tensorflow", "keras", "pytorch", "nlp", "opencv", "flask", "django"}
	advancedSkills     = []string{"transformers", "llm", "generative ai", "reinforcement learning", "mlops", "docker", "kubernetes", "aws", "azure"}
)

// AIProficiency places a skill set in the highest tier it has any skill from.
func AIProficiency(skills []string) Proficiency {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	count := func(tier []string) int {
		n := 0
		for _, s := range tier {
			if _, ok := have[s]; ok {
				n++
			}
		}
		return n
	}

	switch {
	case count(advancedSkills) > 0:
		return Proficiency{Tier: "AI Expert", Description: "You demonstrate advanced AI capabilities (LLMs, MLOps, Cloud)."}
	case count(intermediateSkills) > 0:
		return Proficiency{Tier: "AI Practitioner", Description: "You can build and deploy standard AI models."}
	case count(foundationSkills) > 0:
		return Proficiency{Tier: "AI Enthusiast", Description: "You have the data science foundations."}
	default:
		return Proficiency{Tier: "Aspiring AI Developer", Description: "Start with Python and Data Basics."}
	}
}
