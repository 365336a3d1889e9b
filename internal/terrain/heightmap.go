package terrain

import (
	"errors"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxSamples keeps every vertex addressable by a 16-bit index.
const MaxSamples = math.MaxUint16 + 1

var (
	ErrTerrainTooSmall = errors.New("terrain needs at least 2x2 samples")
	ErrTerrainTooLarge = errors.New("terrain exceeds 65536 samples")
)

// Vertex is a terrain mesh vertex with a grey shade derived from its height.
type Vertex struct {
	Position rl.Vector3
	Color    rl.Color
}

// CheckSize validates heightmap dimensions.
func CheckSize(width, height int) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrTerrainTooSmall)
	}
	if width*height > MaxSamples {
		return fmt.Errorf("%dx%d: %w", width, height, ErrTerrainTooLarge)
	}
	return nil
}

// HeightsFromColors converts row-major heightmap pixels into a height grid
// indexed [x][y]. Only the red channel is used: h = (R - 128) / 5.
func HeightsFromColors(colors []rl.Color, width, height int) ([][]float32, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	if len(colors) != width*height {
		return nil, fmt.Errorf("heightmap has %d pixels, want %d", len(colors), width*height)
	}

	heights := make([][]float32, width)
	for x := range heights {
		heights[x] = make([]float32, height)
		for y := 0; y < height; y++ {
			heights[x][y] = (float32(colors[x+y*width].R) - 128) / 5
		}
	}
	return heights, nil
}

// BuildVertices places one vertex per sample at (x, h, y), stored at index
// x + y*width.
func BuildVertices(heights [][]float32) []Vertex {
	width := len(heights)
	if width == 0 {
		return nil
	}
	height := len(heights[0])

	vertices := make([]Vertex, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			h := heights[x][y]
			shade := uint8(clamp(int(h*5)+128, 0, 255))
			vertices[x+y*width] = Vertex{
				Position: rl.Vector3{X: float32(x), Y: h, Z: float32(y)},
				Color:    rl.Color{R: shade, G: shade, B: shade, A: 255},
			}
		}
	}
	return vertices
}

// BuildIndices emits two triangles per grid cell.
func BuildIndices(width, height int) ([]uint16, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}

	indices := make([]uint16, 0, (width-1)*(height-1)*6)
	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			lowerLeft := uint16(x + y*width)
			lowerRight := uint16(x + 1 + y*width)
			topLeft := uint16(x + (y+1)*width)
			topRight := uint16(x + 1 + (y+1)*width)

			indices = append(indices,
				topLeft, lowerRight, lowerLeft,
				topLeft, topRight, lowerRight,
			)
		}
	}
	return indices, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GreyColors expands red-channel samples into opaque grey pixels.
func GreyColors(samples []uint8) []rl.Color {
	colors := make([]rl.Color, len(samples))
	for i, v := range samples {
		colors[i] = rl.Color{R: v, G: v, B: v, A: 255}
	}
	return colors
}
