package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float32
	}{
		{name: "coincident", a: Point{X: 2, Y: 3}, b: Point{X: 2, Y: 3}, expected: 0},
		{name: "unit x", a: Point{}, b: Point{X: 1}, expected: 1},
		{name: "unit y", a: Point{}, b: Point{Y: 1}, expected: 1},
		{name: "3-4-5 triangle", a: Point{}, b: Point{X: 3, Y: 4}, expected: 5},
		{name: "diagonal", a: Point{}, b: Point{X: 1, Y: 1}, expected: math32.Sqrt2},
		{name: "negative coordinates", a: Point{X: -1, Y: -1}, b: Point{X: 2, Y: 3}, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), 1e-6)
			assert.InDelta(t, tt.expected, Distance(tt.b, tt.a), 1e-6, "distance must be symmetric")
			assert.InDelta(t, tt.expected*tt.expected, SquaredDistance(tt.a, tt.b), 1e-5)
		})
	}
}

func TestMatrix(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 3, Y: 0},
		{X: 0, Y: 4},
	}

	m := NewMatrix(points)

	require.Equal(t, 3, m.Dim())

	for i := 0; i < 3; i++ {
		assert.Zero(t, m.At(i, i), "diagonal must be zero")

		for j := 0; j < 3; j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i), "matrix must be symmetric")
		}
	}

	assert.InDelta(t, 3, m.At(0, 1), 1e-6)
	assert.InDelta(t, 4, m.At(0, 2), 1e-6)
	assert.InDelta(t, 5, m.At(1, 2), 1e-6)

	row := m.Row(1)
	require.Len(t, row, 3)
	assert.Equal(t, m.At(1, 2), row[2])
}

func TestMatrix_MinPairwise(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 3, Y: 0},
		{X: 0, Y: 4},
		{X: 3, Y: 4},
	}

	m := NewMatrix(points)

	tests := []struct {
		name     string
		indices  []int
		expected float32
	}{
		{name: "all four corners", indices: []int{0, 1, 2, 3}, expected: 3},
		{name: "diagonal pair", indices: []int{0, 3}, expected: 5},
		{name: "vertical pair", indices: []int{0, 2}, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, m.MinPairwise(tt.indices), 1e-6)
		})
	}

	assert.True(t, math32.IsInf(m.MinPairwise([]int{2}), 1), "a single index has no pair")
	assert.True(t, math32.IsInf(m.MinPairwise(nil), 1))
}

func TestMatrix_Thresholds(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		m := NewMatrix([]Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}})

		assert.Equal(t, []float32{0, 3, 4, 5}, m.Thresholds())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		m := NewMatrix([]Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}})

		assert.Equal(t, []float32{0, 1}, m.Thresholds())
	})

	t.Run("empty input", func(t *testing.T) {
		m := NewMatrix(nil)

		assert.Empty(t, m.Thresholds())
	})

	t.Run("single point", func(t *testing.T) {
		m := NewMatrix([]Point{{X: 7, Y: 7}})

		assert.Equal(t, []float32{0}, m.Thresholds())
	})
}

func TestMatrix_AnchorThresholds(t *testing.T) {
	m := NewMatrix([]Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}, {X: 3, Y: 0}})

	// Row zero holds 0, 3, 4 and the duplicate 3 collapses.
	assert.Equal(t, []float32{0, 3, 4}, m.AnchorThresholds())

	assert.Nil(t, NewMatrix(nil).AnchorThresholds())
}

func BenchmarkNewMatrix(b *testing.B) {
	points := make([]Point, 256)
	for i := range points {
		points[i] = Point{X: float32(i % 16), Y: float32(i / 16)}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = NewMatrix(points)
	}
}
