package normalizer

type Interface interface {
	Normalize(text string) string
	ExtractKeywords(text string) []string
}
