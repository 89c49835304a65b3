package ai

import (
	"strings"
)

// BuildAnalystPrompt wraps a user question in the business analyst template sent to the model.
func BuildAnalystPrompt(query string) string {
	var promptBuilder strings.Builder
	promptBuilder.WriteString("You are an expert business analyst. Analyze this business question and provide detailed insights with specific numbers and metrics: ")
	promptBuilder.WriteString(query)
	promptBuilder.WriteString("\n\n")
	promptBuilder.WriteString("Please format your response to include:\n")
	promptBuilder.WriteString("1. A clear, direct answer\n")
	promptBuilder.WriteString("2. Key metrics and trends\n")
	promptBuilder.WriteString("3. Specific numbers and percentages\n")
	promptBuilder.WriteString("4. Business implications")

	return promptBuilder.String()
}
