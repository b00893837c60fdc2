package intent

import (
	"regexp"
	"strings"
)

var topicPattern = regexp.MustCompile(`\b(?:on|about|for|in)\s+([a-zA-Z0-9_\-\s]+)$`)

// ExtractParameters pulls structured arguments out of a classified
// utterance. Absent patterns simply omit the key; this never fails.
func ExtractParameters(text string, label Label) map[string]string {
	parameters := map[string]string{}

	switch label {
	case LabelStartInterview:
		if strings.Contains(text, "technical") {
			parameters["type"] = "technical"
		} else if strings.Contains(text, "behavioral") {
			parameters["type"] = "behavioral"
		}
	case LabelPrepareQuestions:
		if m := topicPattern.FindStringSubmatch(text); m != nil {
			if topic := strings.TrimSpace(m[1]); topic != "" {
				parameters["topic"] = topic
			}
		}
	}

	return parameters
}
