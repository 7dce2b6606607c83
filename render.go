package orbital

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixelImage is a 1x1 white image used as the source for untextured
// quads. Vertex colors carry the instance color.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Draw renders the committed quads onto screen through the scene camera.
// Quads are drawn in one DrawTriangles32 call. Queued screenshots are
// captured afterwards.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.buildBatch()
	if len(s.batchInds) > 0 {
		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		screen.DrawTriangles32(s.batchVerts, s.batchInds, ensureWhitePixel(), &op)
	}
	s.flushScreenshots(screen)
}

// buildBatch projects every committed quad into the vertex buffers. The
// scan emits quads nearest first, so walking the list backwards paints
// far quads before near ones.
func (s *Scene) buildBatch() {
	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]
	if len(s.committed) == 0 {
		return
	}
	vp := s.camera.ViewProjection()
	local := QuadVertices(s.committedRes)
	for i := len(s.committed) - 1; i >= 0; i-- {
		s.appendInstanceQuad(&s.committed[i], vp, &local)
	}
}

// appendInstanceQuad appends the four projected corners and six indices of
// one instance. Quads with a corner behind the near plane are skipped.
func (s *Scene) appendInstanceQuad(inst *InstanceRaw, vp mgl32.Mat4, local *[4]mgl32.Vec3) {
	mvp := vp.Mul4(inst.Model)

	var xs, ys [4]float32
	for i, p := range local {
		sx, sy, ok := s.camera.clipToScreen(mvp.Mul4x1(p.Vec4(1)))
		if !ok {
			return
		}
		xs[i], ys[i] = sx, sy
	}

	a := clamp32(inst.Color[3])
	r := clamp32(inst.Color[0]) * a
	g := clamp32(inst.Color[1]) * a
	b := clamp32(inst.Color[2]) * a

	base := uint32(len(s.batchVerts))
	for i := range 4 {
		s.batchVerts = append(s.batchVerts, ebiten.Vertex{
			DstX: xs[i], DstY: ys[i],
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for _, idx := range QuadIndices {
		s.batchInds = append(s.batchInds, base+uint32(idx))
	}
}

func clamp32(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
