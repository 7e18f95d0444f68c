package reactive

// arithmetic constrains the numeric kinds ArithSignal can wrap.
type arithmetic interface {
	~int | ~int64 | ~float64
}

// ArithSignal wraps Signal[T] with the arithmetic update helpers every
// numeric signal needs, so IntSignal/Int64Signal/Float64Signal don't each
// hand-roll the same four Update closures.
type ArithSignal[T arithmetic] struct {
	*Signal[T]
}

func newArithSignal[T arithmetic](initial T) *ArithSignal[T] {
	return &ArithSignal[T]{NewSignal(initial)}
}

// Add adds n to the current value.
func (s *ArithSignal[T]) Add(n T) {
	s.Update(func(v T) T { return v + n })
}

// Sub subtracts n from the current value.
func (s *ArithSignal[T]) Sub(n T) {
	s.Update(func(v T) T { return v - n })
}

// Mul multiplies the current value by n.
func (s *ArithSignal[T]) Mul(n T) {
	s.Update(func(v T) T { return v * n })
}

// Div divides the current value by n.
// For integer T, division truncates toward zero.
func (s *ArithSignal[T]) Div(n T) {
	s.Update(func(v T) T { return v / n })
}

// IntSignal wraps Signal[int] with convenience methods for integer operations.
type IntSignal struct {
	*ArithSignal[int]
}

// NewIntSignal creates a new IntSignal with the given initial value.
func NewIntSignal(initial int) *IntSignal {
	return &IntSignal{newArithSignal(initial)}
}

// Inc increments the value by 1.
func (s *IntSignal) Inc() {
	s.Update(func(n int) int { return n + 1 })
}

// Dec decrements the value by 1.
func (s *IntSignal) Dec() {
	s.Update(func(n int) int { return n - 1 })
}

// Int64Signal wraps Signal[int64] with convenience methods for integer operations.
type Int64Signal struct {
	*ArithSignal[int64]
}

// NewInt64Signal creates a new Int64Signal with the given initial value.
func NewInt64Signal(initial int64) *Int64Signal {
	return &Int64Signal{newArithSignal(initial)}
}

// Inc increments the value by 1.
func (s *Int64Signal) Inc() {
	s.Update(func(n int64) int64 { return n + 1 })
}

// Dec decrements the value by 1.
func (s *Int64Signal) Dec() {
	s.Update(func(n int64) int64 { return n - 1 })
}

// Float64Signal wraps Signal[float64] with convenience methods for float operations.
type Float64Signal struct {
	*ArithSignal[float64]
}

// NewFloat64Signal creates a new Float64Signal with the given initial value.
func NewFloat64Signal(initial float64) *Float64Signal {
	return &Float64Signal{newArithSignal(initial)}
}

// Multiply is an alias for Mul. Deprecated: use Mul instead.
func (s *Float64Signal) Multiply(n float64) {
	s.Mul(n)
}
