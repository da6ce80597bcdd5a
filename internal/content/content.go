// Package content holds the static display records of the site. Everything
// here is defined at build time; accessors return fresh slices so callers
// cannot reorder or truncate the shared lists.
package content

import (
	"slices"

	"github.com/Zachkp/pillar-dev/internal/apperr"
)

// CategoryAll disables skill filtering.
const CategoryAll = "All"

var categories = []string{CategoryAll, "Frontend", "Backend", "DevOps", "AI/ML", "Security"}

// Categories returns the skill filter buttons in display order.
func Categories() []string {
	return slices.Clone(categories)
}

// IsCategory reports whether c is one of the filter buttons.
func IsCategory(c string) bool {
	return slices.Contains(categories, c)
}

// FilterSkills returns the skills whose category equals category exactly,
// in their original order. CategoryAll returns the full list.
func FilterSkills(category string) []TechSkill {
	if category == CategoryAll {
		return slices.Clone(techSkills)
	}
	filtered := make([]TechSkill, 0, len(techSkills))
	for _, skill := range techSkills {
		if skill.Category == category {
			filtered = append(filtered, skill)
		}
	}
	return filtered
}

// Projects returns all portfolio projects
func Projects() []Project {
	return slices.Clone(projects)
}

// ProjectByID returns a specific project by ID
func ProjectByID(id int) (Project, error) {
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, apperr.NewNotFound("project not found")
}

func Experiences() []ExperienceItem {
	return slices.Clone(experiences)
}

func SkillLevels() []SkillLevel {
	return slices.Clone(skillLevels)
}

func ContactDetails() []ContactInfo {
	return slices.Clone(contactInfo)
}

func SocialLinks() []SocialLink {
	return slices.Clone(socialLinks)
}

func NavLinks() []NavLink {
	return slices.Clone(navLinks)
}

// SectionIDs returns the in-page anchors without the leading '#'.
func SectionIDs() []string {
	ids := make([]string, 0, len(navLinks))
	for _, link := range navLinks {
		ids = append(ids, link.Href[1:])
	}
	return ids
}
