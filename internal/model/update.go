package model

// UpdateType classifies a feed post.
type UpdateType string

const (
	UpdateAnnouncement UpdateType = "announcement"
	UpdateProgress     UpdateType = "progress"
	UpdateMilestone    UpdateType = "milestone"
	UpdateResearch     UpdateType = "research"
)

// Valid reports whether t is one of the known update types.
func (t UpdateType) Valid() bool {
	switch t {
	case UpdateAnnouncement, UpdateProgress, UpdateMilestone, UpdateResearch:
		return true
	}
	return false
}

// Attachment is a link to supporting material on an update.
type Attachment struct {
	Type  string `yaml:"type"` // image, document or link
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
}

// ProjectUpdate is a timestamped post shown in activity feeds.
type ProjectUpdate struct {
	ID           string       `yaml:"id"`
	Author       string       `yaml:"author"`
	AuthorHandle string       `yaml:"author_handle"`
	Date         Date         `yaml:"date"`
	Content      string       `yaml:"content"`
	Hashtags     []string     `yaml:"hashtags"`
	Likes        int          `yaml:"likes"`
	Comments     int          `yaml:"comments"`
	Shares       int          `yaml:"shares"`
	Type         UpdateType   `yaml:"type"`
	Attachments  []Attachment `yaml:"attachments,omitempty"`
}

// FeedEntry is one post in an activity feed. It is either a BareUpdate or
// an AttributedUpdate; callers switch on the concrete type.
type FeedEntry interface {
	Post() ProjectUpdate
	feedEntry()
}

// BareUpdate is a post that does not belong to any project.
type BareUpdate struct {
	ProjectUpdate
}

// AttributedUpdate is a project's post tagged with its parent project.
type AttributedUpdate struct {
	ProjectUpdate
	ProjectID    string
	ProjectTitle string
}

// Post returns the underlying update.
func (u BareUpdate) Post() ProjectUpdate { return u.ProjectUpdate }

// Post returns the underlying update.
func (u AttributedUpdate) Post() ProjectUpdate { return u.ProjectUpdate }

func (BareUpdate) feedEntry()       {}
func (AttributedUpdate) feedEntry() {}
