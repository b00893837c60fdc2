package features

type Interface interface {
	Extract(text string, audioData []byte) Set
	History() []Set
}
