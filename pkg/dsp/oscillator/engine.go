package oscillator

// Type tags the active oscillator variant
type Type int

const (
	// TypeSuperSquare is the hard-sync square variant
	TypeSuperSquare Type = iota
	// TypeVariableSaw is the notched saw / triangle morph variant
	TypeVariableSaw
	// TypeStringSynth is the additive registration variant
	TypeStringSynth
)

// Params are the two generic controls the engine translates into
// variant-specific parameters
type Params struct {
	Shape float64
	Morph float64
}

// Engine owns one instance of each oscillator variant and drives
// exactly one of them. Switching the selected variant leaves the
// others paused with their phase intact; they resume where they
// stopped, not from zero.
type Engine struct {
	superSquare *SuperSquare
	variableSaw *VariableSaw
	stringSynth *StringSynth

	Selected Type
}

// NewEngine creates an engine with the super-square variant selected
func NewEngine() *Engine {
	return &Engine{
		superSquare: NewSuperSquare(),
		variableSaw: NewVariableSaw(),
		stringSynth: NewStringSynth(),
		Selected:    TypeSuperSquare,
	}
}

// PrepareBlock maps the generic shape and morph controls onto the
// selected variant's parameters and forwards the block update.
func (e *Engine) PrepareBlock(p Params, frequency, sampleRate float64) {
	switch e.Selected {
	case TypeSuperSquare:
		e.superSquare.PrepareBlock(p.Shape, frequency, sampleRate)

	case TypeVariableSaw:
		// Morph bends into pulse width, rising to center and folding
		// back past 0.5; shape gates the triangle blend in hard.
		sawPW := p.Morph + 0.5
		if p.Morph >= 0.5 {
			sawPW = 1.0 - (p.Morph-0.5)*2.0
		}
		sawPW = clamp(sawPW*1.1, 0.005, 1.0)
		sawShape := clamp(10.0-21.0*p.Shape, 0.0, 1.0)
		e.variableSaw.PrepareBlock(sawPW, sawShape, frequency, sampleRate)

	case TypeStringSynth:
		index := int(p.Morph * float64(len(RegistrationTable)-1))
		if index < 0 {
			index = 0
		}
		if index > len(RegistrationTable)-1 {
			index = len(RegistrationTable) - 1
		}
		e.stringSynth.PrepareBlock(&RegistrationTable[index], p.Shape, frequency, sampleRate)
	}
}

// Process renders one sample from the selected variant only.
func (e *Engine) Process(frequency, sampleRate float64) float64 {
	switch e.Selected {
	case TypeVariableSaw:
		return e.variableSaw.Process(frequency, sampleRate)
	case TypeStringSynth:
		return e.stringSynth.Process()
	}
	return e.superSquare.Process()
}
