package ring_buffer

// Buffer is a fixed-size circular buffer of audio samples. The capture layer
// keeps the most recent pre-detection audio in one so the first words of an
// utterance are not lost while voice activity is still being decided.
type Buffer struct {
	samples []int16
	head    int
}

func New(size int) *Buffer {
	return &Buffer{
		samples: make([]int16, size),
	}
}

// Add appends samples, overwriting the oldest ones once the buffer wraps.
func (b *Buffer) Add(samples []int16) {
	for _, s := range samples {
		b.samples[b.head] = s
		b.head = (b.head + 1) % len(b.samples)
	}
}

// Read returns the buffered samples in arrival order, oldest first.
func (b *Buffer) Read() []int16 {
	out := make([]int16, len(b.samples))
	for i := range out {
		out[i] = b.samples[(b.head+i)%len(b.samples)]
	}

	return out
}

// Clear zeroes the buffer in place.
func (b *Buffer) Clear() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}
