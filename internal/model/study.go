package model

// QuizQuestion 单选题，Options 固定四项，Correct 为正确选项下标
// swagger:model QuizQuestion
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Flashcard 闪卡
// swagger:model Flashcard
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Difficulty 测验难度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)
