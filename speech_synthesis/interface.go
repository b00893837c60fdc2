package speech_synthesis

type Interface interface {
	// Say enqueues text for speech output and returns immediately. Queued
	// phrases are spoken one at a time so outputs never overlap; when the
	// queue is full the phrase is dropped.
	Say(text string)

	// Close drains the queue and stops the worker.
	Close()
}
