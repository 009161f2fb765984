package aiquiz

import "fmt"

const quizShape = `{
  "title": "A short title for the quiz",
  "summary": "A brief 2-3 sentence summary describing the quiz",
  "questions": [
    {
      "question": "Example question?",
      "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
      "answer": "Correct Option"
    }
  ]
}`

// BuildPrompt expects a request that already went through defaulting.
func BuildPrompt(req QuizRequest) string {
	return fmt.Sprintf(
		"Create a %d-question multiple choice quiz on the topic %q with difficulty %q.\n"+
			"Return the response as a JSON object with the following structure:\n%s\n"+
			"Every question must have exactly 4 options and the answer must be copied verbatim from its options.\n"+
			"Make sure the response is only valid JSON with no extra text, explanations, or formatting outside the JSON object.",
		req.NumQuestions, req.Topic, req.Difficulty, quizShape,
	)
}
