// Package dataset loads MNIST-style digit data and prepares it for the
// network: IDX file parsing, pixel normalization, one-hot label encoding,
// and a small synthetic set for running without data files.
package dataset

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// IDX magic numbers.
const (
	ImageMagic = 2051 // 0x00000803: unsigned byte, 3 dimensions
	LabelMagic = 2049 // 0x00000801: unsigned byte, 1 dimension
)

// MaxImageSize bounds Rows*Cols of a single image.
const MaxImageSize = 1 << 24

// Images is the decoded content of an IDX3 image file.
type Images struct {
	Rows   int
	Cols   int
	Pixels [][]byte // one Rows*Cols slice per image, row-major
}

// Count returns the number of images.
func (im *Images) Count() int {
	return len(im.Pixels)
}

// ReadImages decodes an IDX image stream.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
//
// All header fields are big-endian.
func ReadImages(r io.Reader) (*Images, error) {
	br := bufio.NewReader(r)

	var header struct {
		Magic, Count, Rows, Cols uint32
	}
	if err := binary.Read(br, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if header.Magic != ImageMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, header.Magic, ImageMagic)
	}
	if header.Count == 0 || header.Rows == 0 || header.Cols == 0 {
		return nil, fmt.Errorf("%w: %d images of %dx%d", ErrInvalidHeader, header.Count, header.Rows, header.Cols)
	}

	if size := uint64(header.Rows) * uint64(header.Cols); size > MaxImageSize {
		return nil, fmt.Errorf("%w: %dx%d image exceeds %d pixels", ErrInvalidHeader, header.Rows, header.Cols, MaxImageSize)
	}

	imageSize := int(header.Rows) * int(header.Cols)
	images := &Images{Rows: int(header.Rows), Cols: int(header.Cols)}

	// Grow as images arrive so a corrupt count cannot force a huge allocation.
	for i := 0; i < int(header.Count); i++ {
		pixels := make([]byte, imageSize)
		if _, err := io.ReadFull(br, pixels); err != nil {
			return nil, fmt.Errorf("failed to read image %d of %d: %w", i, header.Count, unexpected(err))
		}
		images.Pixels = append(images.Pixels, pixels)
	}
	return images, nil
}

// ReadLabels decodes an IDX label stream.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
func ReadLabels(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)

	var header struct {
		Magic, Count uint32
	}
	if err := binary.Read(br, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read label header: %w", err)
	}
	if header.Magic != LabelMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, header.Magic, LabelMagic)
	}

	labels, err := io.ReadAll(io.LimitReader(br, int64(header.Count)))
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	if len(labels) != int(header.Count) {
		return nil, fmt.Errorf("failed to read labels: got %d of %d: %w", len(labels), header.Count, io.ErrUnexpectedEOF)
	}
	return labels, nil
}

// ReadImagesFile opens path and decodes it with ReadImages.
func ReadImagesFile(path string) (*Images, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	images, err := ReadImages(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return images, nil
}

// ReadLabelsFile opens path and decodes it with ReadLabels.
func ReadLabelsFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	labels, err := ReadLabels(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}

// unexpected maps a clean EOF in the middle of the payload to
// io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
