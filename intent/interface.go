package intent

type Interface interface {
	Classify(text string) Command
}
