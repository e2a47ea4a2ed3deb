package tone

import (
	"fmt"
	"math"
)

// ----- Generator ----- //

// GeneratorFunc returns the amplitude at position within a period of the
// given length. The result lies in [-volume, volume]. Implementations must
// be stateless.
type GeneratorFunc func(position, length, volume float64) float64

// Generator is a named waveform shape.
type Generator struct {
	Name string
	Func GeneratorFunc
}

// Custom wraps fn as a generator called name.
func Custom(name string, fn GeneratorFunc) Generator {
	return Generator{Name: name, Func: fn}
}

func (g Generator) String() string {
	return g.Name
}

func (g Generator) isZero() bool {
	return g.Func == nil
}

// Built-in generators.
var (
	Sine     = Generator{Name: "sine", Func: sine}
	Triangle = Generator{Name: "triangle", Func: triangle}
	Saw      = Generator{Name: "saw", Func: saw}
	Square   = Generator{Name: "square", Func: square}
)

// Generators is the registry of built-in generators by name.
var Generators = map[string]Generator{
	Sine.Name:     Sine,
	Triangle.Name: Triangle,
	Saw.Name:      Saw,
	Square.Name:   Square,
}

// GeneratorByName ...
func GeneratorByName(name string) (Generator, error) {
	g, ok := Generators[name]
	if !ok {
		return Generator{}, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return g, nil
}

func sine(position, length, volume float64) float64 {
	return volume * math.Sin((position/length)*math.Pi*2)
}

func triangle(position, length, volume float64) float64 {
	position = wrap(position, length)
	half := length / 2
	if position < half {
		return (volume*2)*(position/half) - volume
	}
	position -= half
	return -(volume*2)*(position/half) + volume
}

func saw(position, length, volume float64) float64 {
	position = wrap(position, length)
	return (volume*2)*(position/length) - volume
}

func square(position, length, volume float64) float64 {
	position = wrap(position, length)
	if position > length/2 {
		return volume
	}
	return -volume
}

// wrap folds positions from consecutive periods back into the first one.
func wrap(position, length float64) float64 {
	if position < length {
		return position
	}
	return math.Mod(position, length)
}
