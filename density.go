package orbital

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Hand-tuned constants. None of them has a physical derivation.
const (
	// DensityCutoff zeroes the field where |Σψ·√normalization| falls at or
	// below it, removing long-range noise.
	DensityCutoff = 0.01
	// ReferenceRadius is the Bohr radius at which the density normalization
	// is 1 (the default size of 6 maps to a length scale of 0.75).
	ReferenceRadius = 0.75
)

// invSqrtPi is the 1/√π normalization shared by every shape.
var invSqrtPi = 1 / math.Sqrt(math.Pi)

// Shape prefactors for the (3,0), (3,1) and (3,2) m=0 rows.
var (
	k3s  = 2 / math.Sqrt(32)
	k3p  = 2 / math.Sqrt(4.5)
	k3dz = 2 / math.Sqrt(31)
)

// Normalization returns the density scale that keeps visual density
// comparable across size and resolution settings.
func Normalization(lengthScale float32, resolution int) float64 {
	ratio := float64(lengthScale) / ReferenceRadius
	return ratio * ratio * math.Sqrt(2/float64(resolution))
}

// Evaluate returns the combined probability density and lobe sign of the
// orbitals at point. Amplitudes are summed before squaring, so overlapping
// orbitals interfere. The result is deterministic for identical inputs.
//
// sign is +1 or -1 by the sign of the summed amplitude and 0 when the
// density is zero.
func Evaluate(point mgl32.Vec3, orbitals []Orbital, lengthScale float32, resolution int) (density, sign float32) {
	var sum float64
	for i := range orbitals {
		sum += amplitude(point, &orbitals[i], lengthScale)
	}

	norm := Normalization(lengthScale, resolution)
	if math.Abs(sum*math.Sqrt(norm)) <= DensityCutoff {
		return 0, 0
	}
	density = float32(sum * sum * norm)
	if sum > 0 {
		return density, 1
	}
	return density, -1
}

// amplitude evaluates one orbital's signed wavefunction at point.
func amplitude(point mgl32.Vec3, o *Orbital, lengthScale float32) float64 {
	q := o.Quantum
	if !q.Valid() {
		return 0
	}

	bohr := float64(lengthScale)
	cx := float64(o.Position[0]) * bohr
	cy := float64(o.Position[1]) * bohr
	cz := float64(o.Position[2]) * bohr
	dx := float64(point[0]) - cx
	dy := float64(point[1]) - cy
	dz := float64(point[2]) - cz
	r := math.Sqrt(dx*dx + dy*dy + dz*dz)

	// Direction cosines; the center itself has no direction.
	var xr, yr, zr float64
	if r > 0 {
		xr, yr, zr = dx/r, dy/r, dz/r
	}

	p := 1 / (bohr * float64(q.Principal))
	pr := p * r
	core := -phaseSign(o.Phase) * math.Pow(p, 1.5) * math.Exp(-pr)

	rot := o.Orientation()
	w := float64(rot.W)
	i := float64(rot.V[0])
	j := float64(rot.V[1])
	k := float64(rot.V[2])

	// Direction projected onto the orbital's local polar axis.
	polar := xr*(w*w-i*i-j*j+k*k) + 2*yr*(w*j-i*k) - 2*zr*(w*i+j*k)

	var shape float64
	switch q {
	case Quantum1s:
		shape = 1
	case Quantum2s:
		shape = 1 - pr
	case Quantum2p:
		shape = pr * polar
	case Quantum3s:
		shape = k3s * (6 - 12*pr + (2*pr)*(2*pr))
	case Quantum3p:
		shape = k3p * (2 - pr) * pr * polar
	case Quantum3d:
		if o.Magnetic == 0 {
			shape = k3dz * pr * pr * (3*polar*polar - 1)
		} else {
			azimuthal := zr*(w*w-i*i+j*j-k*k) - 2*yr*(w*k+i*j) + 2*xr*(w*i-j*k)
			shape = pr * pr * polar * azimuthal
		}
	default:
		return 0
	}
	return invSqrtPi * core * shape
}

// phaseSign is the factor that makes phase=true lobes come out positive.
func phaseSign(phase bool) float64 {
	if phase {
		return -1
	}
	return 1
}

// RadialDistribution returns the radial probability 4πx²ψ(x)² of the
// unscaled shape q at x Bohr radii. It backs the per-orbital graph and is
// zero for unknown kinds.
func RadialDistribution(q Quantum, x float64) float64 {
	var psi float64
	e := math.Exp(-x)
	switch q {
	case Quantum1s:
		psi = invSqrtPi * e
	case Quantum2s:
		psi = invSqrtPi * e * (1 - x)
	case Quantum2p:
		psi = 1 / math.Sqrt(4.5*math.Pi) * e * x
	case Quantum3s:
		psi = 1 / math.Sqrt(32*math.Pi) * e * (6 - 12*x + (2*x)*(2*x))
	case Quantum3p:
		psi = 1 / math.Sqrt(4.5*math.Pi) * e * x * (2 - x)
	case Quantum3d:
		psi = 1 / math.Sqrt(31*math.Pi) * e * x * x
	default:
		return 0
	}
	return psi * psi * 4 * math.Pi * x * x
}

// RadialSamples samples RadialDistribution at n+1 evenly spaced points on
// [0, maxX]. Each sample is an (x, y) pair.
func RadialSamples(q Quantum, n int, maxX float64) [][2]float64 {
	if n <= 0 {
		return nil
	}
	out := make([][2]float64, n+1)
	for i := 0; i <= n; i++ {
		x := maxX * float64(i) / float64(n)
		out[i] = [2]float64{x, RadialDistribution(q, x)}
	}
	return out
}
