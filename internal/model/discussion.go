package model

// Discussion is a community forum thread.
type Discussion struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Date     Date     `yaml:"date"`
	Category string   `yaml:"category"`
	Content  string   `yaml:"content"`
	Likes    int      `yaml:"likes"`
	Replies  int      `yaml:"replies"`
	Tags     []string `yaml:"tags"`
}
