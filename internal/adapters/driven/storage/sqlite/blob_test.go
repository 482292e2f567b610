package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32BlobRoundTrip(t *testing.T) {
	original := []float32{0.1, -2.5, 3.14159, 0}

	data := float32SliceToBytes(original)
	assert.Len(t, data, len(original)*4)
	assert.Equal(t, original, bytesToFloat32Slice(data))
}

func TestFloat32BlobEmpty(t *testing.T) {
	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"scaled", []float32{1, 0}, []float32{5, 0}, 1.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
