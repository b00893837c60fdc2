package voice_capture

import "time"

type Interface interface {
	// Record listens on the microphone until an utterance is heard and
	// finishes, and returns the path of the captured wav file. It returns an
	// empty path when no speech started within the timeout. phraseLimit
	// bounds the utterance itself once speech has started; zero means no
	// bound beyond the quiet-time cutoff.
	Record(timeout, phraseLimit time.Duration) (string, error)

	Close()
}
