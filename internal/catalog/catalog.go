// Package catalog holds the static tables the engine is configured with: the skill vocabulary,
// the role catalog, canned learning advice and salary bands.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const SalaryUnavailable = "Salary data not available"

// Role is a job role with its ordered list of required skills.
type Role struct {
	Name   string   `mapstructure:"name"`
	Skills []string `mapstructure:"skills"`
}

// SalaryBands are the salary ranges of a role per experience band.
type SalaryBands struct {
	Junior string `mapstructure:"junior"`
	Mid    string `mapstructure:"mid"`
	Senior string `mapstructure:"senior"`
	Lead   string `mapstructure:"lead"`
}

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	vocabulary []string
	roles      []Role
	byName     map[string]int
	advice     map[string]string
	salaries   map[string]SalaryBands
}

// file is the layout of an overlay catalog file.
type file struct {
	Vocabulary []string               `mapstructure:"vocabulary"`
	Roles      []Role                 `mapstructure:"roles"`
	Advice     map[string]string      `mapstructure:"advice"`
	Salaries   map[string]SalaryBands `mapstructure:"salaries"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return build(defaultVocabulary, defaultRoles, defaultAdvice, defaultSalaries)
}

// Load returns the built-in catalog overlaid with the tables found in the file at path.
// Roles in the file replace built-in roles with the same (case-insensitive) name, vocabulary
// entries are appended, advice and salaries are merged by key.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}

	var overlay file
	if err := v.Unmarshal(&overlay); err != nil {
		return nil, fmt.Errorf("decoding catalog file %q: %w", path, err)
	}

	vocabulary := append(append([]string{}, defaultVocabulary...), overlay.Vocabulary...)

	roles := append([]Role{}, defaultRoles...)
	for _, role := range overlay.Roles {
		replaced := false
		for i := range roles {
			if strings.EqualFold(roles[i].Name, role.Name) {
				roles[i] = role
				replaced = true
				break
			}
		}
		if !replaced {
			roles = append(roles, role)
		}
	}

	advice := make(map[string]string, len(defaultAdvice)+len(overlay.Advice))
	for k, val := range defaultAdvice {
		advice[k] = val
	}
	for k, val := range overlay.Advice {
		advice[strings.ToLower(strings.TrimSpace(k))] = val
	}

	salaries := make(map[string]SalaryBands, len(defaultSalaries)+len(overlay.Salaries))
	for k, val := range defaultSalaries {
		salaries[k] = val
	}
	for k, val := range overlay.Salaries {
		salaries[k] = val
	}

	return build(vocabulary, roles, advice, salaries), nil
}

func build(vocabulary []string, roles []Role, advice map[string]string, salaries map[string]SalaryBands) *Catalog {
	c := &Catalog{
		byName:   make(map[string]int, len(roles)),
		advice:   make(map[string]string, len(advice)),
		salaries: make(map[string]SalaryBands, len(salaries)),
	}

	seen := make(map[string]struct{}, len(vocabulary))
	for _, label := range vocabulary {
		label = strings.TrimSpace(label)
		key := strings.ToLower(label)
		if label == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		c.vocabulary = append(c.vocabulary, label)
	}

	for _, role := range roles {
		name := strings.TrimSpace(role.Name)
		if name == "" {
			continue
		}
		skills := make([]string, 0, len(role.Skills))
		for _, s := range role.Skills {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		c.byName[strings.ToLower(name)] = len(c.roles)
		c.roles = append(c.roles, Role{Name: name, Skills: skills})
	}

	for k, v := range advice {
		c.advice[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for k, v := range salaries {
		c.salaries[strings.ToLower(strings.TrimSpace(k))] = v
	}

	return c
}

// Vocabulary returns a copy of the skill vocabulary in canonical order.
func (c *Catalog) Vocabulary() []string {
	return append([]string(nil), c.vocabulary...)
}

// Role looks up a role by case-insensitive exact name. A role without skills is reported
// as unsupported.
func (c *Catalog) Role(name string) (Role, bool) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Role{}, false
	}
	role := c.roles[idx]
	if len(role.Skills) == 0 {
		return Role{}, false
	}
	return Role{Name: role.Name, Skills: append([]string(nil), role.Skills...)}, true
}

// Roles returns the names of all supported roles, sorted.
func (c *Catalog) Roles() []string {
	names := make([]string, 0, len(c.roles))
	for _, role := range c.roles {
		if len(role.Skills) > 0 {
			names = append(names, role.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Advice returns the canned suggestion for a skill.
func (c *Catalog) Advice(skill string) (string, bool) {
	advice, ok := c.advice[strings.ToLower(strings.TrimSpace(skill))]
	return advice, ok
}

// Salary returns the salary range for a role and an experience level label.
func (c *Catalog) Salary(role, level string) string {
	bands, ok := c.salaries[strings.ToLower(strings.TrimSpace(role))]
	if !ok {
		return SalaryUnavailable
	}

	var value string
	switch {
	case strings.Contains(level, "Senior"):
		value = bands.Senior
	case strings.Contains(level, "Mid"):
		value = bands.Mid
	case strings.Contains(level, "Lead"), strings.Contains(level, "Principal"):
		value = bands.Lead
	default:
		value = bands.Junior
	}

	if value == "" {
		return SalaryUnavailable
	}
	return value
}
