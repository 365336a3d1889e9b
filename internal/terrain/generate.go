package terrain

import (
	"math"
	"math/rand/v2"
)

var (
	octaveScales     = []float64{1.0, 0.5, 0.25, 0.125, 0.0625}
	octaveAmplitudes = []float64{0.5, 0.25, 0.125, 0.0625, 0.03125}
)

const mountainCount = 5

type mountain struct {
	x, z, height, radius float64
}

// Generate produces a heightmap as one red-channel byte per sample, row
// major. The surface is fractal value noise with a few mountains, lowered
// towards the edges. onRow, if set, is called after each row.
func Generate(width, height int, seed uint64, onRow func(y int)) ([]uint8, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	offsetX := rng.Float64() * 1000
	offsetZ := rng.Float64() * 1000

	mountains := make([]mountain, mountainCount)
	for i := range mountains {
		mountains[i] = mountain{
			x:      (0.1 + 0.8*rng.Float64()) * float64(width),
			z:      (0.1 + 0.8*rng.Float64()) * float64(height),
			height: 0.5 + 0.5*rng.Float64(),
			radius: 5 + 15*rng.Float64(),
		}
	}

	centerX := float64(width) / 2
	centerZ := float64(height) / 2
	maxRadius := math.Min(centerX, centerZ) * 0.8
	edgeSpan := math.Max(centerX, centerZ) - maxRadius

	out := make([]uint8, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			nx := float64(i) / float64(width-1)
			nz := float64(j) / float64(height-1)

			noise := 0.0
			for layer, scale := range octaveScales {
				noise += smoothNoise(offsetX+nx*scale*10, offsetZ+nz*scale*10) * octaveAmplitudes[layer]
			}
			elevation := (noise + 0.5) * 0.5

			for _, m := range mountains {
				dx := float64(i) - m.x
				dz := float64(j) - m.z
				distance := math.Sqrt(dx*dx + dz*dz)
				if distance < m.radius {
					falloff := 1 - distance/m.radius
					elevation += m.height * falloff * falloff * 0.8
				}
			}

			fromCenter := math.Hypot(float64(i)-centerX, float64(j)-centerZ)
			if fromCenter > maxRadius && edgeSpan > 0 {
				edge := math.Min(1, (fromCenter-maxRadius)/edgeSpan)
				elevation -= edge * 0.5
			}

			out[i+j*width] = uint8(math.Round(math.Max(0, math.Min(1, elevation)) * 255))
		}
		if onRow != nil {
			onRow(j)
		}
	}
	return out, nil
}

// hashNoise maps a lattice point to [0, 1).
func hashNoise(x, y float64) float64 {
	s := math.Abs(math.Sin(x*12.9898+y*78.233) * 43758.5453)
	return s - math.Floor(s)
}

func smoothNoise(x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	sx := smoothstep(x - x0)
	sy := smoothstep(y - y0)

	n00 := hashNoise(x0, y0)
	n10 := hashNoise(x0+1, y0)
	n01 := hashNoise(x0, y0+1)
	n11 := hashNoise(x0+1, y0+1)

	return lerp(lerp(n00, n10, sx), lerp(n01, n11, sx), sy)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
