package lessons

// Level is the difficulty band of a lesson.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelChallenge    Level = "Challenge"
)

// AllLevels returns all levels in display order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelChallenge}
}

// Example is a runnable query with a short explanation.
type Example struct {
	SQL  string `json:"sql"`
	Note string `json:"note"`
}

// Exercise is a task with its solution query, shown on demand.
type Exercise struct {
	Title string `json:"title"`
	SQL   string `json:"sql"`
}

// Lesson is one unit of tutorial content. Lessons are static and never
// mutated after package init.
type Lesson struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Level      Level      `json:"level"`
	Time       string     `json:"time"`
	Tags       []string   `json:"tags"`
	Content    string     `json:"content"` // HTML
	StarterSQL string     `json:"starter_sql"`
	Examples   []Example  `json:"examples"`
	Exercises  []Exercise `json:"exercises"`
}
