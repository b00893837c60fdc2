package ring_buffer

import "testing"

func TestBufferAdd(t *testing.T) {
	t.Run("fill ring buffer with digits until it loops, and test that it works", func(t *testing.T) {
		buffer := New(10)

		for i := 0; i < 20; i++ {
			buffer.Add([]int16{int16(i)})
		}

		expected := []int16{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
		actual := buffer.Read()

		for i := 0; i < 10; i++ {
			if expected[i] != actual[i] {
				t.Errorf("expected %d, got %d", expected[i], actual[i])
			}
		}
	})
}

func TestBufferClear(t *testing.T) {
	buffer := New(4)
	buffer.Add([]int16{1, 2, 3, 4})
	buffer.Clear()

	for i, s := range buffer.Read() {
		if s != 0 {
			t.Errorf("sample %d not cleared, got %d", i, s)
		}
	}
}
