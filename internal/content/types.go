package content

// Project represents a portfolio gallery entry
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
	GitHub      string   `json:"github,omitempty"`
	Color       string   `json:"color"`
}

// Side places an experience item on the timeline
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ExperienceItem represents one timeline milestone
type ExperienceItem struct {
	ID          int    `json:"id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Side        Side   `json:"side"`
}

// SkillLevel is a proficiency bar shown beside the timeline
type SkillLevel struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Level int    `json:"level"`
}

// TechSkill represents a card in the skills grid
type TechSkill struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

type ContactInfo struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href"`
}

type SocialLink struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// InfoCard is one of the hosting/programming/frameworks cards under the skills grid
type InfoCard struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
}
