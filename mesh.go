package main

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type Triangle struct {
	Normal mgl32.Vec3
	V0     mgl32.Vec3
	V1     mgl32.Vec3
	V2     mgl32.Vec3
}

type Mesh []Triangle

func ConvertToMesh(img image.Image, meshWidth, thickness, contrast float32) (Mesh, error) {
	bounds := img.Bounds()
	if bounds.Dx() < 2 || bounds.Dy() < 2 {
		return nil, errors.Errorf("image must be at least 2x2 pixels, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	field := BuildHeightField(img, meshWidth, thickness, contrast)
	return BuildSolid(field, meshWidth), nil
}

// BuildSolid closes the height field into a solid: the relief surface on
// top, a flat cap at z=0, and four walls joining them. Walls and cap carry
// fixed outward normals; relief quads get a computed facet normal.
func BuildSolid(field *HeightField, meshWidth float32) Mesh {
	width, height := field.Width, field.Height

	mesh := make(Mesh, 0, 2*(width-1)*(height-1)+2+4*(width-1)+4*(height-1))

	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			mesh.addQuad(
				field.At(y, x),
				field.At(y, x+1),
				field.At(y+1, x+1),
				field.At(y+1, x),
			)
		}
	}

	maxX := pixelToMM(width-1, width, meshWidth)
	maxY := pixelToMM(height-1, width, meshWidth)

	mesh.addQuadWithNormal(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, maxY, 0},
		mgl32.Vec3{maxX, maxY, 0},
		mgl32.Vec3{maxX, 0, 0},
		mgl32.Vec3{0, 0, -1},
	)

	// Opposite walls traverse their edge in opposite directions so every
	// relief boundary edge is reversed by exactly one wall triangle.
	for x := 0; x < width-1; x++ {
		mesh.addWall(field.At(0, x+1), field.At(0, x), mgl32.Vec3{0, -1, 0})
		mesh.addWall(field.At(height-1, x), field.At(height-1, x+1), mgl32.Vec3{0, 1, 0})
	}
	for y := 0; y < height-1; y++ {
		mesh.addWall(field.At(y, 0), field.At(y+1, 0), mgl32.Vec3{-1, 0, 0})
		mesh.addWall(field.At(y+1, width-1), field.At(y, width-1), mgl32.Vec3{1, 0, 0})
	}

	return mesh
}

// addQuad splits the quad (v0,v1,v2,v3) along the v0-v2 diagonal, both
// triangles sharing one computed facet normal.
func (m *Mesh) addQuad(v0, v1, v2, v3 mgl32.Vec3) {
	m.addQuadWithNormal(v0, v1, v2, v3, faceNormal(v0, v1, v2))
}

func (m *Mesh) addQuadWithNormal(v0, v1, v2, v3, normal mgl32.Vec3) {
	*m = append(*m,
		Triangle{Normal: normal, V0: v0, V1: v1, V2: v2},
		Triangle{Normal: normal, V0: v0, V1: v2, V2: v3},
	)
}

// addWall drops the surface edge p->q down to the z=0 plane.
func (m *Mesh) addWall(p, q, normal mgl32.Vec3) {
	m.addQuadWithNormal(p, q, onBasePlane(q), onBasePlane(p), normal)
}

func faceNormal(v0, v1, v2 mgl32.Vec3) mgl32.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

func onBasePlane(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Y(), 0}
}
