package goaws

// Chunk splits s into consecutive slices of at most size elements, preserving
// order. The last slice holds the remainder. An empty s yields no slices.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		size = 1
	}
	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for size < len(s) {
		s, chunks = s[size:], append(chunks, s[:size:size])
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks
}
