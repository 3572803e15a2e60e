package ducks

// Stack is the tower: the base duck at index 0 followed by landed ducks in
// landing order. It is never empty.
type Stack struct {
	ducks []*Duck
}

// NewStack creates a stack holding only the base duck.
func NewStack(base *Duck) *Stack {
	base.State = StateLanded
	return &Stack{ducks: []*Duck{base}}
}

// Base returns the base duck.
func (s *Stack) Base() *Duck {
	return s.ducks[0]
}

// Top returns the most recently landed duck, or the base.
func (s *Stack) Top() *Duck {
	return s.ducks[len(s.ducks)-1]
}

// Len returns the number of ducks including the base.
func (s *Stack) Len() int {
	return len(s.ducks)
}

// Stacked returns the number of ducks above the base.
func (s *Stack) Stacked() int {
	return len(s.ducks) - 1
}

// Ducks returns the ducks bottom to top. The slice must not be modified.
func (s *Stack) Ducks() []*Duck {
	return s.ducks
}

// Push appends a landed duck.
func (s *Stack) Push(d *Duck) {
	s.ducks = append(s.ducks, d)
}

// PopN removes up to n of the most recent stacked ducks. The base is never
// removed. Returns how many were removed.
func (s *Stack) PopN(n int) int {
	n = min(n, s.Stacked())
	if n <= 0 {
		return 0
	}
	for i := len(s.ducks) - n; i < len(s.ducks); i++ {
		s.ducks[i] = nil
	}
	s.ducks = s.ducks[:len(s.ducks)-n]
	return n
}

// CenterOfMassOffset returns the mean horizontal offset of the stacked ducks
// from the base. Zero with nothing stacked.
func (s *Stack) CenterOfMassOffset() float64 {
	if s.Stacked() == 0 {
		return 0
	}

	base := s.Base()
	var sum float64
	for _, d := range s.ducks[1:] {
		sum += d.X - base.X
	}
	return sum / float64(s.Stacked())
}
