package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gen-obras/internal/models"
)

// ParseSchedule extracts the task list from a raw schedule response. Code
// fences are removed first, so fenced and unfenced replies parse the same.
// The first balanced JSON array that decodes as a non-empty task list wins;
// an empty array is only returned when no later candidate has tasks.
func ParseSchedule(raw string) ([]models.Task, error) {
	cleaned := strings.TrimSpace(stripCodeFences(raw))

	var (
		lastErr error
		empty   []models.Task
	)
	for start := strings.IndexByte(cleaned, '['); start != -1; {
		block := balancedBlock(cleaned[start:], '[', ']')
		if block == "" {
			break
		}

		var tasks []models.Task
		err := json.Unmarshal([]byte(block), &tasks)
		switch {
		case err != nil:
			lastErr = err
		case len(tasks) > 0:
			return tasks, nil
		case empty == nil:
			empty = []models.Task{}
		}

		next := strings.IndexByte(cleaned[start+1:], '[')
		if next == -1 {
			break
		}
		start += 1 + next
	}

	if empty != nil {
		return empty, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, lastErr)
	}
	return nil, fmt.Errorf("%w: no JSON array found in response", ErrInvalidOutput)
}

// stripCodeFences removes every ``` marker together with a language tag
// directly following it (```json, ```JSON, ```javascript).
func stripCodeFences(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for {
		i := strings.Index(s, "```")
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		s = s[i+3:]
		s = strings.TrimLeftFunc(s, func(r rune) bool {
			return unicode.IsLetter(r)
		})
	}
}

// balancedBlock returns the prefix of s that closes the bracket opened at
// s[0], ignoring brackets inside JSON strings. It returns "" if the bracket
// never closes.
func balancedBlock(s string, open, close byte) string {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
