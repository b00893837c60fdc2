package dispatch

import "interview-voice-assistant/intent"

type Interface interface {
	Execute(command intent.Command) string
}

// Session is the interview-control collaborator the dispatcher drives. The
// dispatcher holds a non-owning reference; the session owner is responsible
// for making the implementation safe under concurrent access, since both the
// foreground request path and the background listening loop may call in.
type Session interface {
	NextQuestion() (string, error)
	CurrentQuestion() (string, bool)
	End() error
	GenerateQuestions(topic string, count int) ([]string, error)
}

// Synthesizer speaks a response best-effort. Say must not block the caller
// past enqueueing the request.
type Synthesizer interface {
	Say(text string)
}
