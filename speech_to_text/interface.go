package speech_to_text

type Interface interface {
	// Transcribe runs the model over a captured wav file and returns the
	// recognized text, empty when the audio contained no usable speech.
	Transcribe(wavPath string) (string, error)
}
