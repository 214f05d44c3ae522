package main

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Binary STL layout: an 80-byte zeroed header, a little-endian uint32
// triangle count, then 50 bytes per triangle (normal, three vertices,
// two attribute bytes). Total size is always 84 + 50*len(mesh).
const stlHeaderSize = 84
const stlTriangleSize = 50

func WriteSTL(w io.Writer, mesh Mesh) error {
	var header [stlHeaderSize]byte
	binary.LittleEndian.PutUint32(header[80:], uint32(len(mesh)))
	if _, err := w.Write(header[:]); err != nil {
		return errors.Wrap(err, "write STL header")
	}

	var record [stlTriangleSize]byte
	for i, t := range mesh {
		putVec3(record[0:], t.Normal)
		putVec3(record[12:], t.V0)
		putVec3(record[24:], t.V1)
		putVec3(record[36:], t.V2)
		record[48] = 0
		record[49] = 0
		if _, err := w.Write(record[:]); err != nil {
			return errors.Wrapf(err, "write STL triangle %d", i)
		}
	}

	return nil
}

func putVec3(b []byte, v mgl32.Vec3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.X()))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y()))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z()))
}
