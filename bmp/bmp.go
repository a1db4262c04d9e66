// Package bmp serializes tone-mapped frames into 24-bit uncompressed
// windows bitmap files.
package bmp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	fileHeaderSize  = 14
	infoHeaderSize  = 40
	pixelDataOffset = fileHeaderSize + infoHeaderSize
)

// The 14-byte bitmap file header. All multi-byte fields are little-endian.
type fileHeader struct {
	Sig        [2]byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

// The 40-byte bitmap info header.
type infoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// Write serializes a frame of row-major RGB triplets (rows top to bottom)
// to the given writer. Rows are stored bottom to top with each pixel in
// blue-green-red order and every row zero-padded to a multiple of 4 bytes.
// A failed write leaves the output truncated; there is no recovery.
func Write(w io.Writer, width, height int, rgb []uint8) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bmp: invalid image dimensions %dx%d", width, height)
	}
	if len(rgb) != width*height*3 {
		return fmt.Errorf("bmp: pixel data length %d does not match a %dx%d frame", len(rgb), width, height)
	}

	// The file size field counts 3 bytes per pixel and excludes row
	// padding.
	hdr := fileHeader{
		Sig:        [2]byte{'B', 'M'},
		FileSize:   uint32(pixelDataOffset + width*height*3),
		DataOffset: pixelDataOffset,
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}

	info := infoHeader{
		HeaderSize:   infoHeaderSize,
		Width:        int32(width),
		Height:       int32(height),
		Planes:       1,
		BitsPerPixel: 24,
	}
	if err := binary.Write(w, binary.LittleEndian, &info); err != nil {
		return err
	}

	pad := make([]byte, RowPadding(width))
	row := make([]byte, width*3)
	for j := height - 1; j >= 0; j-- {
		src := rgb[j*width*3 : (j+1)*width*3]
		for i := 0; i < width; i++ {
			row[i*3+0] = src[i*3+2]
			row[i*3+1] = src[i*3+1]
			row[i*3+2] = src[i*3+0]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
		if len(pad) > 0 {
			if _, err := w.Write(pad); err != nil {
				return err
			}
		}
	}

	return nil
}

// Encode returns the serialized bitmap as a byte slice.
func Encode(width, height int, rgb []uint8) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, width, height, rgb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the encoded bitmap to a file.
func Save(path string, width, height int, rgb []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Write(bw, width, height, rgb); err != nil {
		return err
	}
	return bw.Flush()
}

// RowPadding returns the number of zero bytes appended to each pixel row.
func RowPadding(width int) int {
	return (4 - (width*3)%4) % 4
}
