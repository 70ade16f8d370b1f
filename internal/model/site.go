package model

// Site holds the landing-page copy.
type Site struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Sidebar     string `yaml:"sidebar"`
}

// ResearchArea is one field of work shown on the research page.
type ResearchArea struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
}

// ImpactStat is a headline figure on the research page.
type ImpactStat struct {
	Value       string `yaml:"value"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Publication is a paper or report produced by the project.
type Publication struct {
	Title   string `yaml:"title"`
	Authors string `yaml:"authors"`
	Venue   string `yaml:"venue"`
	Year    int    `yaml:"year"`
	URL     string `yaml:"url,omitempty"`
}

// Research groups everything shown on the research page.
type Research struct {
	Areas        []ResearchArea `yaml:"areas"`
	Impact       []ImpactStat   `yaml:"impact"`
	Publications []Publication  `yaml:"publications"`
}

// Partner is a supporting organisation listed in the footer.
type Partner struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
	URL  string `yaml:"url"`
}

// Contact is the footer contact block.
type Contact struct {
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

// Footer holds the persistent footer copy.
type Footer struct {
	Description   string    `yaml:"description"`
	Contact       Contact   `yaml:"contact"`
	ResearchAreas []string  `yaml:"research_areas"`
	Partners      []Partner `yaml:"partners"`
}

// Tab is one page of the project-details section. Body is markdown.
type Tab struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Body  string `yaml:"body"`
}

// ForumCategory is a selectable discussion category.
type ForumCategory struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}
