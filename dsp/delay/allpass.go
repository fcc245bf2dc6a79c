package delay

// Allpass is a Schroeder allpass section. The coefficient is supplied on
// every call so diffusion can vary without touching filter state.
type Allpass struct {
	line *Line
}

// NewAllpass returns an allpass of the given length in samples.
func NewAllpass(length int) (*Allpass, error) {
	line, err := New(length)
	if err != nil {
		return nil, err
	}
	return &Allpass{line: line}, nil
}

// Len returns the allpass length in samples.
func (a *Allpass) Len() int { return a.line.Len() }

// Process runs one sample through the section with coefficient c.
func (a *Allpass) Process(x, c float64) float64 {
	y := a.line.Get()
	x += c * y
	a.line.Put(x)
	return y - c*x
}

// Reset clears the delay memory.
func (a *Allpass) Reset() { a.line.Reset() }

// Lattice is the lattice form of the allpass used for plate diffusion.
// Its delay memory can be tapped for output mixing.
type Lattice struct {
	line *Line
}

// NewLattice returns a lattice allpass of the given length in samples.
func NewLattice(length int) (*Lattice, error) {
	line, err := New(length)
	if err != nil {
		return nil, err
	}
	return &Lattice{line: line}, nil
}

// Len returns the lattice length in samples.
func (l *Lattice) Len() int { return l.line.Len() }

// Process runs one sample through the lattice with coefficient c.
func (l *Lattice) Process(x, c float64) float64 {
	y := l.line.Get()
	x -= c * y
	l.line.Put(x)
	return c*x + y
}

// At taps the internal delay memory, see Line.At.
func (l *Lattice) At(k int) float64 { return l.line.At(k) }

// Reset clears the delay memory.
func (l *Lattice) Reset() { l.line.Reset() }
