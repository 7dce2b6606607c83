package orbital

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quantum holds the principal and azimuthal quantum numbers of an orbital.
type Quantum struct {
	Principal uint8
	Azimuthal uint8
}

// Predefined orbital kinds. QuantumNone marks an empty slot and contributes
// nothing to the density field.
var (
	QuantumNone = Quantum{0, 0}
	Quantum1s   = Quantum{1, 0}
	Quantum2s   = Quantum{2, 0}
	Quantum2p   = Quantum{2, 1}
	Quantum3s   = Quantum{3, 0}
	Quantum3p   = Quantum{3, 1}
	Quantum3d   = Quantum{3, 2}
)

// quantumNames lists every selectable orbital kind in editor order.
var quantumNames = []struct {
	name string
	q    Quantum
}{
	{"[-]", QuantumNone},
	{"1s", Quantum1s},
	{"2s", Quantum2s},
	{"2p", Quantum2p},
	{"3s", Quantum3s},
	{"3p", Quantum3p},
	{"3d", Quantum3d},
}

// Quantums returns the selectable orbital kinds in display order, starting
// with the empty slot.
func Quantums() []Quantum {
	out := make([]Quantum, len(quantumNames))
	for i, e := range quantumNames {
		out[i] = e.q
	}
	return out
}

// Name returns the spectroscopic name ("1s", "3d", ...) of q, "[-]" for the
// empty slot and "" for pairs outside the table.
func (q Quantum) Name() string {
	for _, e := range quantumNames {
		if e.q == q {
			return e.name
		}
	}
	return ""
}

// Valid reports whether q is one of the orbital shapes the evaluator knows.
// The empty slot is not valid.
func (q Quantum) Valid() bool {
	return q != QuantumNone && q.Name() != ""
}

// ParseQuantum looks up an orbital kind by name.
func ParseQuantum(name string) (Quantum, error) {
	for _, e := range quantumNames {
		if e.name == name {
			return e.q, nil
		}
	}
	return Quantum{}, fmt.Errorf("parse quantum %q: %w", name, ErrUnknownOrbital)
}

// Euler is an orientation in degrees, applied as roll, pitch, yaw.
// Components are kept in [0, 360).
type Euler struct {
	Roll, Pitch, Yaw float32
}

// WrapDegrees maps any angle onto [0, 360). Applying it twice gives the
// same result as applying it once.
func WrapDegrees(deg float32) float32 {
	if math.IsNaN(float64(deg)) || math.IsInf(float64(deg), 0) {
		return 0
	}
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	// -tiny % 360 + 360 rounds up to exactly 360 in float32.
	if w >= 360 {
		w = 0
	}
	return w
}

// Wrap returns e with every component wrapped onto [0, 360).
func (e Euler) Wrap() Euler {
	return Euler{WrapDegrees(e.Roll), WrapDegrees(e.Pitch), WrapDegrees(e.Yaw)}
}

// EulerToQuat derives the unit orientation quaternion from an Euler triple
// using the intrinsic roll-pitch-yaw composition.
func EulerToQuat(e Euler) mgl32.Quat {
	sr, cr := math.Sincos(float64(e.Roll) / 360 * math.Pi)
	sp, cp := math.Sincos(float64(e.Pitch) / 360 * math.Pi)
	sy, cy := math.Sincos(float64(e.Yaw) / 360 * math.Pi)

	w := cr*cp*cy + sr*sp*sy
	i := sr*cp*cy - cr*sp*sy
	j := cr*sp*cy + sr*cp*sy
	k := cr*cp*sy - sr*sp*cy
	return mgl32.Quat{W: float32(w), V: mgl32.Vec3{float32(i), float32(j), float32(k)}}
}

// Orbital is one hydrogen-like orbital placed in the scene.
//
// The Euler triple is the authority for orientation. The quaternion is
// derived from it and can only change through the methods that change the
// Euler triple, so the two never disagree.
type Orbital struct {
	// Position is the center offset in normalized length units. It is scaled
	// by the length scale at evaluation time.
	Position mgl32.Vec3
	Quantum  Quantum
	// Magnetic selects the d-orbital shape: 0 is z², anything else is the
	// four-lobed shape whose variants differ only by orientation.
	Magnetic int8
	// Phase is the lobe sign convention (true = positive).
	Phase bool

	euler       Euler
	orientation mgl32.Quat
}

// NewOrbital creates an orbital with the given placement and shape.
func NewOrbital(position mgl32.Vec3, euler Euler, q Quantum, magnetic int8, phase bool) Orbital {
	o := Orbital{Position: position, Quantum: q, Magnetic: magnetic, Phase: phase}
	o.SetEuler(euler)
	return o
}

// Euler returns the orbital's orientation in degrees.
func (o Orbital) Euler() Euler {
	return o.euler
}

// SetEuler wraps e onto [0, 360) and re-derives the orientation quaternion.
func (o *Orbital) SetEuler(e Euler) {
	o.euler = e.Wrap()
	o.orientation = EulerToQuat(o.euler)
}

// Rotate adds the given angles to the current Euler triple.
func (o *Orbital) Rotate(d Euler) {
	o.SetEuler(Euler{o.euler.Roll + d.Roll, o.euler.Pitch + d.Pitch, o.euler.Yaw + d.Yaw})
}

// Orientation returns the unit quaternion derived from the Euler triple.
// The zero Orbital reports the identity rotation.
func (o Orbital) Orientation() mgl32.Quat {
	if o.orientation == (mgl32.Quat{}) {
		return EulerToQuat(o.euler)
	}
	return o.orientation
}

// Preset is a named magnetic variant: a shape selector plus the orientation
// that produces it.
type Preset struct {
	Name     string
	Magnetic int8
	Euler    Euler
}

var (
	pPresets = []Preset{
		{"x", 0, Euler{0, 0, 0}},
		{"y", 0, Euler{0, 90, 0}},
		{"z", 0, Euler{90, 0, 0}},
	}
	dPresets = []Preset{
		{"z²", 0, Euler{0, 0, 0}},
		{"xy", 1, Euler{0, 0, 0}},
		{"xz", 1, Euler{90, 0, 90}},
		{"yz", 1, Euler{90, 90, 0}},
		{"x²-y²", 1, Euler{135, 0, 0}},
	}
)

// Presets returns the magnetic variants available for q. s orbitals have
// none. p presets only rotate; d presets also select the shape.
func Presets(q Quantum) []Preset {
	switch q.Azimuthal {
	case 1:
		return pPresets
	case 2:
		return dPresets
	}
	return nil
}

// ApplyPreset switches the orbital to the named magnetic variant.
func (o *Orbital) ApplyPreset(name string) error {
	for _, p := range Presets(o.Quantum) {
		if p.Name == name {
			if o.Quantum.Azimuthal == 2 {
				o.Magnetic = p.Magnetic
			}
			o.SetEuler(p.Euler)
			return nil
		}
	}
	return fmt.Errorf("apply preset %q to %s: %w", name, o.Quantum.Name(), ErrUnknownPreset)
}
