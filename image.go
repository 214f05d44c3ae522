package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func LoadImage(filePath string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "read input image")
	}

	var img image.Image
	switch ext {
	case ".svg":
		return loadSVG(data)
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tif", ".tiff":
		img, err = tiff.Decode(bytes.NewReader(data))
	default:
		return nil, errors.New("unsupported image format: " + ext)
	}

	if err != nil {
		return nil, errors.Wrap(err, "decode input image")
	}

	return img, nil
}

// loadSVG rasterizes the icon at its viewbox resolution onto a white
// background, turning vector input into the same pixel grid the raster
// formats provide.
func loadSVG(data []byte) (image.Image, error) {
	svgIcon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parse SVG")
	}

	viewBoxW := float64(svgIcon.ViewBox.W)
	viewBoxH := float64(svgIcon.ViewBox.H)

	svgIcon.SetTarget(0, 0, viewBoxW, viewBoxH)
	width := int(viewBoxW)
	height := int(viewBoxH)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	svgIcon.Draw(raster, 1.0)
	return img, nil
}

// rgbAt samples the pixel at (x, y) relative to the image origin as 8-bit
// channels, ignoring alpha.
func rgbAt(img image.Image, x, y int) (r, g, b uint8) {
	min := img.Bounds().Min
	rr, gg, bb, _ := img.At(min.X+x, min.Y+y).RGBA()
	return uint8(rr >> 8), uint8(gg >> 8), uint8(bb >> 8)
}
