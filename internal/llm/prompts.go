package llm

import "fmt"

const schedulePromptTemplate = `Act as a senior civil engineer. I will give you the items of a construction budget and you will produce a logically ordered execution schedule.

PROJECT: %s
ITEMS: %s

EXPECTED OUTPUT: only JSON (no markdown) containing a list of tasks.
Format: [{"phase": "Phase name", "task": "Description", "duration_days": number_of_days, "dependency": "previous task or null"}]`

const analyzePromptTemplate = `Analyze this construction crew and suggest productivity improvements or cost cuts: %s`

const chatPromptTemplate = `Context: %s. Question: %s`

func schedulePrompt(project, items string) string {
	return fmt.Sprintf(schedulePromptTemplate, project, items)
}

func analyzePrompt(team string) string {
	return fmt.Sprintf(analyzePromptTemplate, team)
}

func chatPrompt(context, question string) string {
	return fmt.Sprintf(chatPromptTemplate, context, question)
}
