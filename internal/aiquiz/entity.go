package aiquiz

const QuestionsPerQuiz = 5

var OptionLetters = []string{"A", "B", "C", "D"}

type Question struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
}

type QuestionRequest struct {
	Topic string `json:"topic" validate:"required,max=255"`
}

type QuestionResponse struct {
	Questions []Question `json:"questions"`
}

// ExplanationInput describes one wrongly answered question.
type ExplanationInput struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
	Options       map[string]string
	Topic         string
}
