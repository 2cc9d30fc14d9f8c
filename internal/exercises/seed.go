package exercises

// SeedCatalog is the starter exercise catalog, inserted once when the
// exercise table is empty.
var SeedCatalog = []Exercise{
	{
		Name:       "Push-ups",
		Category:   "strength",
		Muscle:     "chest",
		Equipment:  "bodyweight",
		Difficulty: DifficultyBeginner,
		Instructions: []string{
			"Start in a plank position with hands shoulder-width apart",
			"Lower your body until chest nearly touches the floor",
			"Push back up to starting position",
			"Keep your core tight throughout the movement",
		},
		CaloriesPerMinute: 8,
	},
	{
		Name:       "Squats",
		Category:   "strength",
		Muscle:     "legs",
		Equipment:  "bodyweight",
		Difficulty: DifficultyBeginner,
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Lower your body as if sitting back into a chair",
			"Keep your chest up and knees behind toes",
			"Return to starting position",
		},
		CaloriesPerMinute: 6,
	},
	{
		Name:       "Burpees",
		Category:   "cardio",
		Muscle:     "full body",
		Equipment:  "bodyweight",
		Difficulty: DifficultyIntermediate,
		Instructions: []string{
			"Start in standing position",
			"Drop into squat and place hands on floor",
			"Jump feet back into plank position",
			"Do a push-up, jump feet forward, then jump up",
		},
		CaloriesPerMinute: 12,
	},
	{
		Name:       "Plank",
		Category:   "strength",
		Muscle:     "core",
		Equipment:  "bodyweight",
		Difficulty: DifficultyBeginner,
		Instructions: []string{
			"Start in push-up position",
			"Lower to forearms",
			"Keep body straight from head to heels",
			"Hold position while breathing normally",
		},
		CaloriesPerMinute: 4,
	},
	{
		Name:       "Mountain Climbers",
		Category:   "cardio",
		Muscle:     "core",
		Equipment:  "bodyweight",
		Difficulty: DifficultyIntermediate,
		Instructions: []string{
			"Start in plank position",
			"Bring one knee toward chest",
			"Quickly switch legs",
			"Continue alternating at a fast pace",
		},
		CaloriesPerMinute: 10,
	},
	{
		Name:       "Lunges",
		Category:   "strength",
		Muscle:     "legs",
		Equipment:  "bodyweight",
		Difficulty: DifficultyBeginner,
		Instructions: []string{
			"Stand with feet hip-width apart",
			"Step forward with one leg",
			"Lower hips until both knees are at 90 degrees",
			"Return to starting position and repeat",
		},
		CaloriesPerMinute: 7,
	},
	{
		Name:       "Jumping Jacks",
		Category:   "cardio",
		Muscle:     "full body",
		Equipment:  "bodyweight",
		Difficulty: DifficultyBeginner,
		Instructions: []string{
			"Start with feet together, arms at sides",
			"Jump while spreading legs shoulder-width apart",
			"Simultaneously raise arms overhead",
			"Jump back to starting position",
		},
		CaloriesPerMinute: 9,
	},
	{
		Name:       "Deadlifts",
		Category:   "strength",
		Muscle:     "back",
		Equipment:  "barbell",
		Difficulty: DifficultyIntermediate,
		Instructions: []string{
			"Stand with feet hip-width apart, bar over mid-foot",
			"Bend at hips and knees to grip the bar",
			"Keep chest up and back straight",
			"Drive through heels to lift the bar",
		},
		CaloriesPerMinute: 8,
	},
	{
		Name:       "Yoga Flow",
		Category:   "flexibility",
		Muscle:     "full body",
		Equipment:  "mat",
		Difficulty: DifficultyBeginner,
		Instructions: []string{
			"Start in mountain pose",
			"Flow through sun salutation sequence",
			"Hold each pose for 5-8 breaths",
			"Focus on smooth transitions",
		},
		CaloriesPerMinute: 3,
	},
	{
		Name:       "High Knees",
		Category:   "cardio",
		Muscle:     "legs",
		Equipment:  "bodyweight",
		Difficulty: DifficultyBeginner,
		Instructions: []string{
			"Stand with feet hip-width apart",
			"Run in place lifting knees high",
			"Aim to bring knees to waist level",
			"Pump arms naturally",
		},
		CaloriesPerMinute: 11,
	},
}
