package dataset

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idxImages encodes images of rows×cols in IDX3 format.
func idxImages(t *testing.T, magic uint32, rows, cols int, images ...[]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	header := []uint32{magic, uint32(len(images)), uint32(rows), uint32(cols)}
	require.NoError(t, binary.Write(&buf, binary.BigEndian, header))
	for _, im := range images {
		buf.Write(im)
	}
	return buf.Bytes()
}

// idxHeader encodes a bare IDX3 header.
func idxHeader(t *testing.T, count, rows, cols uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, []uint32{ImageMagic, count, rows, cols}))
	return buf.Bytes()
}

// idxLabels encodes labels in IDX1 format.
func idxLabels(t *testing.T, magic uint32, labels ...byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, []uint32{magic, uint32(len(labels))}))
	buf.Write(labels)
	return buf.Bytes()
}

func TestReadImages(t *testing.T) {
	data := idxImages(t, ImageMagic, 2, 3,
		[]byte{0, 1, 2, 3, 4, 5},
		[]byte{255, 254, 253, 252, 251, 250},
	)

	images, err := ReadImages(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, images.Count())
	assert.Equal(t, 2, images.Rows)
	assert.Equal(t, 3, images.Cols)
	assert.Equal(t, []byte{255, 254, 253, 252, 251, 250}, images.Pixels[1])
}

func TestReadImages_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"bad magic", idxImages(t, LabelMagic, 1, 1, []byte{0}), ErrInvalidMagic},
		{"zero rows", idxImages(t, ImageMagic, 0, 3), ErrInvalidHeader},
		{"zero images", idxImages(t, ImageMagic, 2, 2), ErrInvalidHeader},
		{"truncated header", []byte{0, 0, 8}, io.ErrUnexpectedEOF},
		{"overflowing dimensions", idxHeader(t, 1, 0xFFFFFFFF, 0xFFFFFFFF), ErrInvalidHeader},
		{"oversized image", idxHeader(t, 1, 65535, 65535), ErrInvalidHeader},
		{"just over the cap", idxHeader(t, 1, 1<<12, 1<<12+1), ErrInvalidHeader},
		{"truncated pixels", idxImages(t, ImageMagic, 2, 2, []byte{1, 2, 3})[:16+3], io.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadImages(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadImages_MissingImages(t *testing.T) {
	// Header announces three images but carries one.
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, []uint32{ImageMagic, 3, 1, 2}))
	buf.Write([]byte{7, 8})

	_, err := ReadImages(&buf)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadLabels(t *testing.T) {
	labels, err := ReadLabels(bytes.NewReader(idxLabels(t, LabelMagic, 5, 0, 4, 1, 9)))
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 0, 4, 1, 9}, labels)
}

func TestReadLabels_Errors(t *testing.T) {
	_, err := ReadLabels(bytes.NewReader(idxLabels(t, ImageMagic, 1)))
	assert.ErrorIs(t, err, ErrInvalidMagic)

	truncated := idxLabels(t, LabelMagic, 1, 2, 3)
	_, err = ReadLabels(bytes.NewReader(truncated[:len(truncated)-1]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
