package orbital

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one camera-facing quad: a world position, one of three fixed
// rotations and an RGBA color whose alpha is the voxel density.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Color    [4]float32
}

// InstanceRaw is the per-instance record uploaded for drawing: the color
// followed by the model matrix.
type InstanceRaw struct {
	Color [4]float32
	Model mgl32.Mat4
}

// Raw returns the instance as a color plus translation*rotation matrix.
func (i Instance) Raw() InstanceRaw {
	return InstanceRaw{
		Color: i.Color,
		Model: mgl32.Translate3D(i.Position[0], i.Position[1], i.Position[2]).Mul4(i.Rotation.Mat4()),
	}
}

// Face rotations. The unit quad lies in the XZ plane (normal +y), so y
// needs no rotation and x and z are a quarter turn away.
var faceRotations = [3]mgl32.Quat{
	mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1}),
	mgl32.QuatIdent(),
	mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0}),
}

// Instantiate emits the camera-facing faces of the voxel at idx. For each
// axis whose ignore flag is false, one quad is placed half a voxel from
// the center on the bias side with its normal along that axis, colored
// (sign, 0.7, -sign, density). It returns between 0 and 3 quads.
func Instantiate(resolution int, idx [3]int, density, sign float32, bias [3]float32, ignore [3]bool) []Instance {
	center := VoxelCenter(resolution, idx)
	offset := 0.5 / float32(resolution)
	color := [4]float32{sign, 0.7, -sign, density}

	faces := make([]Instance, 0, 3)
	for a := 0; a < 3; a++ {
		if ignore[a] {
			continue
		}
		pos := center
		pos[a] += bias[a] * offset
		faces = append(faces, Instance{Position: pos, Rotation: faceRotations[a], Color: color})
	}
	return faces
}
