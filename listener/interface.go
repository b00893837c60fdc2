package listener

import (
	"time"

	"interview-voice-assistant/intent"
)

type Interface interface {
	Start() error
	Stop()
	Results() <-chan Result
}

// Transcriber acquires one utterance from the audio front end. It returns an
// empty string when nothing was heard within the timeout; both timeouts and
// transient failures are expected and must not kill the loop.
type Transcriber interface {
	Transcribe(timeout, phraseLimit time.Duration) (string, error)
}

// Pipeline is the foreground interpretation surface the loop feeds.
type Pipeline interface {
	Process(utterance string) intent.Command
	Execute(command intent.Command) string
}

// Result is one interpreted utterance delivered on the loop's channel. The
// owner consumes these instead of handing the loop a callback, keeping
// backpressure and shutdown ordering on the owner's side.
type Result struct {
	Command  intent.Command
	Response string
}
