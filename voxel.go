package orbital

import "github.com/go-gl/mathgl/mgl32"

// QuadIndices triangulates the four QuadVertices.
var QuadIndices = [6]uint16{
	0, 1, 2,
	1, 2, 3,
}

// QuadVertices returns the unit face shared by every instance: a square
// of side 1/resolution in the XZ plane, centered on the origin.
func QuadVertices(resolution int) [4]mgl32.Vec3 {
	res := float32(resolution)
	var verts [4]mgl32.Vec3
	i := 0
	for x := 0; x < 2; x++ {
		for z := 0; z < 2; z++ {
			verts[i] = mgl32.Vec3{float32(x)/res - 1/(res*2), 0, float32(z)/res - 1/(res*2)}
			i++
		}
	}
	return verts
}
