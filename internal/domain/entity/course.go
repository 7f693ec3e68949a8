package entity

// Difficulty buckets used by the catalog filters.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Price lists the subscription tiers for a course.
type Price struct {
	Monthly   int `json:"monthly"`
	Quarterly int `json:"quarterly"`
	Annual    int `json:"annual"`
}

// CourseMentor is the embedded author reference on a catalog entry.
type CourseMentor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Course is a catalog entry fetched per listing or detail view.
// Enrolled implies Progress is defined in [0,100].
type Course struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Mentor       CourseMentor `json:"mentor"`
	Thumbnail    string       `json:"thumbnail,omitempty"`
	Price        Price        `json:"price"`
	Category     string       `json:"category"`
	Difficulty   Difficulty   `json:"difficulty"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"reviewCount"`
	StudentCount int          `json:"studentCount"`
	Modules      []Module     `json:"modules"`
	Enrolled     bool         `json:"enrolled,omitempty"`
	Progress     int          `json:"progress,omitempty"`
}

// Module groups lessons inside a course.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
	Locked  bool     `json:"locked,omitempty"`
}

// Lesson is a single video unit. Duration is in seconds.
type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	VideoURL  string `json:"videoUrl"`
	Duration  int    `json:"duration"`
	Completed bool   `json:"completed,omitempty"`
	Locked    bool   `json:"locked,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// LessonCount returns the total number of lessons across all modules.
func (c *Course) LessonCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

// CompletedCount returns the number of completed lessons across all modules.
func (c *Course) CompletedCount() int {
	n := 0
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.Completed {
				n++
			}
		}
	}
	return n
}
