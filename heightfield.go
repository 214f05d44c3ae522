package main

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightField maps every source pixel to a point in millimeter space.
// Row 0 is the visual bottom of the image: y increases upward here,
// while raster rows increase downward.
type HeightField struct {
	Width  int
	Height int
	points [][]mgl32.Vec3
}

func (f *HeightField) At(y, x int) mgl32.Vec3 {
	return f.points[y][x]
}

// Brightness is the ITU-R luma of an 8-bit RGB pixel, in [0, 1].
func Brightness(r, g, b uint8) float32 {
	return (0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)) / 255.0
}

func BuildHeightField(img image.Image, meshWidth, thickness, contrast float32) *HeightField {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	points := make([][]mgl32.Vec3, height)
	for y := 0; y < height; y++ {
		row := make([]mgl32.Vec3, width)
		for x := 0; x < width; x++ {
			r, g, b := rgbAt(img, x, height-y-1)
			z := thickness - Brightness(r, g, b)*contrast*thickness
			row[x] = mgl32.Vec3{
				pixelToMM(x, width, meshWidth),
				pixelToMM(y, width, meshWidth),
				z,
			}
		}
		points[y] = row
	}

	return &HeightField{Width: width, Height: height, points: points}
}

// pixelToMM scales a pixel coordinate into millimeters. The same scale
// applies to both axes, so pixels stay square and the model height in mm
// follows from the image aspect ratio.
func pixelToMM(v, imgWidth int, meshWidth float32) float32 {
	return float32(v) * meshWidth / float32(imgWidth)
}
