package model

import "strings"

// TeamMember is a person on the research team roster.
type TeamMember struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Role           string   `yaml:"role"`
	Specialization string   `yaml:"specialization"`
	Avatar         string   `yaml:"avatar"`
	Bio            string   `yaml:"bio"`
	Skills         []string `yaml:"skills"`
	GitHub         string   `yaml:"github,omitempty"`
	LinkedIn       string   `yaml:"linkedin,omitempty"`
	Email          string   `yaml:"email,omitempty"`
	IsLead         bool     `yaml:"is_lead,omitempty"`
}

// Initials returns up to two upper-case initials from the member's name,
// skipping academic titles. It is the placeholder shown when no avatar
// is available.
func (m TeamMember) Initials() string {
	var initials []rune
	for _, word := range strings.Fields(m.Name) {
		if isTitle(word) {
			continue
		}
		r := []rune(word)
		initials = append(initials, r[0])
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "?"
	}
	return strings.ToUpper(string(initials))
}

func isTitle(word string) bool {
	switch strings.ToLower(strings.TrimSuffix(word, ".")) {
	case "dr", "prof", "mr", "mrs", "ms":
		return true
	}
	return false
}
