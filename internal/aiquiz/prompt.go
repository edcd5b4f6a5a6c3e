package aiquiz

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are an expert quiz generator. Generate exactly 5 multiple-choice questions about the given topic. ` +
	`Each question should have 4 options (A, B, C, D) with only one correct answer. Return the response as a valid JSON array.`

const explanationSystemPrompt = `You are a friendly tutor. Explain quiz answers in one or two short, encouraging sentences. ` +
	`Be factually accurate and never contradict the stated correct answer.`

const quizFormat = `[
  {
    "question": "Question text here?",
    "options": {
      "A": "Option A text",
      "B": "Option B text",
      "C": "Option C text",
      "D": "Option D text"
    },
    "correct_answer": "A"
  }
]`

func BuildQuizPrompt(topic, contextText string) string {
	var b strings.Builder

	if contextText != "" {
		b.WriteString(contextText)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b,
		"Generate 5 multiple-choice questions about '%s'. Each question should have 4 options (A, B, C, D) "+
			"with only one correct answer. Return the response as a JSON array with this exact structure:\n\n%s\n\n",
		topic, quizFormat,
	)
	b.WriteString("Make sure the questions are educational, clear, and appropriate for the topic. " +
		"The correct answers should be factual and well-reasoned.")
	if contextText != "" {
		b.WriteString(" Base the questions on the factual information provided above.")
	}
	b.WriteString(" Return only the JSON array, without markdown or commentary.")

	return b.String()
}

func BuildExplanationPrompt(question, correctAnswer, userAnswer string, options map[string]string, contextText string) string {
	var b strings.Builder

	if contextText != "" {
		b.WriteString(contextText)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", question)
	for _, letter := range OptionLetters {
		if text, ok := options[letter]; ok {
			fmt.Fprintf(&b, "%s) %s\n", letter, text)
		}
	}
	fmt.Fprintf(&b, "\nCorrect answer: %s\n", describeOption(correctAnswer, options))
	fmt.Fprintf(&b, "Student's answer: %s\n\n", describeOption(userAnswer, options))

	b.WriteString("In 1-2 sentences, explain why the correct answer is right and why the student's answer is wrong. " +
		"Keep the tone encouraging and educational.")
	if contextText != "" {
		b.WriteString(" Ground the explanation in the factual information provided above.")
	}

	return b.String()
}

func describeOption(letter string, options map[string]string) string {
	if text, ok := options[letter]; ok && text != "" {
		return fmt.Sprintf("%s) %s", letter, text)
	}
	return letter
}
