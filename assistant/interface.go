package assistant

import "interview-voice-assistant/intent"

// Interface is the inbound surface of the voice-command pipeline: Process
// interprets one utterance, Execute acts on the result.
type Interface interface {
	Process(utterance string) intent.Command
	Execute(command intent.Command) string
}
