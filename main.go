package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	inputFile := flag.String("input", "", "Path to the input image (PNG, JPEG, BMP, TIFF or SVG)")
	outputFile := flag.String("output", "", "Path to the output STL file")
	width := flag.Float64("width", 100.0, "Model width (mm); height follows the image aspect ratio")
	thickness := flag.Float64("thickness", 10.0, "Maximum model thickness (mm)")
	contrast := flag.Float64("contrast", 0.5, "How much of the thickness the relief uses (0-1)")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *width <= 0 {
		log.Fatalf("width must be positive, got %v", *width)
	}
	if *thickness <= 0 {
		log.Fatalf("thickness must be positive, got %v", *thickness)
	}
	if *contrast < 0 || *contrast > 1 {
		log.Fatalf("contrast must be between 0 and 1, got %v", *contrast)
	}

	img, err := LoadImage(*inputFile)
	if err != nil {
		log.Fatalf("failed to load image: %v", err)
	}

	fmt.Println("Generating mesh...")
	mesh, err := ConvertToMesh(img, float32(*width), float32(*thickness), float32(*contrast))
	if err != nil {
		log.Fatalf("failed to convert image to mesh: %v", err)
	}

	fmt.Println("Writing STL...")
	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("failed to create output file: %v", err)
	}
	if err = WriteSTL(f, mesh); err != nil {
		f.Close()
		log.Fatalf("failed to write STL: %v", err)
	}
	if err = f.Close(); err != nil {
		log.Fatalf("failed to close output file: %v", err)
	}

	fmt.Printf("STL with %d triangles successfully written to %s\n", len(mesh), *outputFile)
}
