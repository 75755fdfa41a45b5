package vehicle

// ScriptedRandom replays fixed draws for deterministic tests.
// Float64 and IntN consume separate queues; an exhausted queue yields 0.
// IntN values are reduced modulo n.
type ScriptedRandom struct {
	Floats []float64
	Ints   []int
}

// Float64 returns the next scripted float
func (s *ScriptedRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// IntN returns the next scripted int in [0, n)
func (s *ScriptedRandom) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return ((v % n) + n) % n
}

// FixedRandom returns the same draws forever
type FixedRandom struct {
	F float64
	I int
}

// Float64 returns F
func (f FixedRandom) Float64() float64 { return f.F }

// IntN returns I reduced into [0, n)
func (f FixedRandom) IntN(n int) int { return ((f.I % n) + n) % n }
