package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Sequence replays a fixed list of numbers, each taken modulo n
// It is meant for tests that need predictable room codes or names
type Sequence struct {
	Values []int
	next   int
}

// NewSequence returns a Sequence over values
func NewSequence(values ...int) *Sequence {
	return &Sequence{Values: values}
}

// Intn returns the next value in the sequence, wrapping at the end
func (s *Sequence) Intn(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}

	v := s.Values[s.next%len(s.Values)] % n
	s.next++
	return v
}
