package exercises

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DefaultCaloriesPerMinute is used for calorie estimation when an
// exercise has no burn rate of its own.
const DefaultCaloriesPerMinute = 5

type Exercise struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Muscle            string     `json:"muscle"`
	Equipment         string     `json:"equipment"`
	Difficulty        Difficulty `json:"difficulty"`
	Instructions      []string   `json:"instructions"`
	CaloriesPerMinute float64    `json:"caloriesPerMinute"`
}
