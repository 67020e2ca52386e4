package ebitenview

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/journey"
)

// --- White pixel singleton (no sync.Once, ebiten draws on one goroutine) ---

var whitePixelImage *ebiten.Image

// whitePixel returns a lazily-initialized 1x1 white image used as the source
// for every untextured mesh.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// mesh is a reusable vertex/index buffer. Buffers grow to a high-water mark
// and are never shrunk.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

func (m *mesh) draw(dst *ebiten.Image) {
	if len(m.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	dst.DrawTriangles(m.verts, m.inds, whitePixel(), &op)
}

func vertex(p journey.Vec2, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// appendStroke appends a triangle strip of the given width along points.
// For N points: 2N vertices, 6(N-1) indices. Interior joins use the averaged
// normal, scaled to keep the width and clamped to 2x at sharp corners.
func (m *mesh) appendStroke(points []journey.Vec2, width float64, clr color.RGBA) {
	n := len(points)
	if n < 2 {
		return
	}
	base := uint16(len(m.verts))
	halfW := width / 2

	for i := 0; i < n; i++ {
		var nx, ny float64
		switch i {
		case 0:
			nx, ny = perpendicular(points[0], points[1])
		case n - 1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			if dot := nx0*nx + ny0*ny; dot > 0.1 {
				scale := min(1.0/dot, 2.0)
				nx *= scale
				ny *= scale
			}
		}
		p := points[i]
		m.verts = append(m.verts,
			vertex(journey.Vec2{X: p.X + nx*halfW, Y: p.Y + ny*halfW}, clr),
			vertex(journey.Vec2{X: p.X - nx*halfW, Y: p.Y - ny*halfW}, clr),
		)
	}

	for i := 0; i < n-1; i++ {
		v := base + uint16(i*2)
		m.inds = append(m.inds, v, v+1, v+2, v+1, v+3, v+2)
	}
}

// appendCircle appends a fan-triangulated filled circle.
// segments+1 vertices, 3*segments indices.
func (m *mesh) appendCircle(center journey.Vec2, radius float64, segments int, clr color.RGBA) {
	if radius <= 0 {
		return
	}
	if segments < 3 {
		segments = 3
	}
	base := uint16(len(m.verts))
	m.verts = append(m.verts, vertex(center, clr))
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		m.verts = append(m.verts, vertex(journey.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}, clr))
	}
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		m.inds = append(m.inds, base, base+uint16(i+1), base+uint16(next))
	}
}

// appendRect appends a filled axis-aligned rectangle.
func (m *mesh) appendRect(r journey.Rect, clr color.RGBA) {
	base := uint16(len(m.verts))
	m.verts = append(m.verts,
		vertex(journey.Vec2{X: r.X, Y: r.Y}, clr),
		vertex(journey.Vec2{X: r.X + r.Width, Y: r.Y}, clr),
		vertex(journey.Vec2{X: r.X + r.Width, Y: r.Y + r.Height}, clr),
		vertex(journey.Vec2{X: r.X, Y: r.Y + r.Height}, clr),
	)
	m.inds = append(m.inds, base, base+1, base+2, base, base+2, base+3)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b journey.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
