package model

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectCompleted, ProjectPaused:
		return true
	}
	return false
}

// Priority ranks a project's urgency.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Category groups projects by research field.
type Category string

const (
	CategoryAI       Category = "ai"
	CategoryBiotech  Category = "biotech"
	CategoryAgritech Category = "agritech"
	CategoryResearch Category = "research"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAI, CategoryBiotech, CategoryAgritech, CategoryResearch:
		return true
	}
	return false
}

// Budget holds monetary amounts in pounds sterling. Spent <= Allocated <= Total
// is expected but not enforced.
type Budget struct {
	Total     float64 `yaml:"total"`
	Allocated float64 `yaml:"allocated"`
	Spent     float64 `yaml:"spent"`
}

// Milestone is a dated sub-goal of a project.
type Milestone struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	DueDate     Date   `yaml:"due_date"`
	Completed   bool   `yaml:"completed"`

	// CompletedDate is set only when Completed is true.
	CompletedDate *Date `yaml:"completed_date,omitempty"`
}

// Project is a research project with its milestones and posted updates.
type Project struct {
	ID           string          `yaml:"id"`
	Title        string          `yaml:"title"`
	Subtitle     string          `yaml:"subtitle"`
	Description  string          `yaml:"description"`
	Status       ProjectStatus   `yaml:"status"`
	Progress     int             `yaml:"progress"`
	StartDate    Date            `yaml:"start_date"`
	EndDate      *Date           `yaml:"end_date,omitempty"`
	Budget       Budget          `yaml:"budget"`
	Team         []string        `yaml:"team"`
	Technologies []string        `yaml:"technologies"`
	Objectives   []string        `yaml:"objectives"`
	Milestones   []Milestone     `yaml:"milestones"`
	Updates      []ProjectUpdate `yaml:"updates"`
	Category     Category        `yaml:"category"`
	Priority     Priority        `yaml:"priority"`
}

// CompletedMilestones returns how many milestones are marked completed.
func (p Project) CompletedMilestones() int {
	n := 0
	for _, m := range p.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}
