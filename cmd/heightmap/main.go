package main

import (
	"flag"
	"fmt"
	"os"

	"duckengine/internal/terrain"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/schollz/progressbar/v3"
)

type generator struct {
	width  int
	height int
	seed   uint64
	output string
}

func (g *generator) parse(args []string) error {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.IntVar(&g.width, "w", 128, "heightmap width in samples")
	fs.IntVar(&g.height, "h", 128, "heightmap height in samples")
	fs.Uint64Var(&g.seed, "seed", 1, "noise seed")
	fs.StringVar(&g.output, "o", "assets/heightmap.png", "output PNG path")
	return fs.Parse(args[1:])
}

func (g *generator) run() error {
	if err := terrain.CheckSize(g.width, g.height); err != nil {
		return err
	}

	pb := progressbar.Default(int64(g.height), "generating")
	defer pb.Close()

	samples, err := terrain.Generate(g.width, g.height, g.seed, func(int) {
		pb.Add(1)
	})
	if err != nil {
		return fmt.Errorf("failed to generate heightmap: %w", err)
	}

	img := rl.GenImageColor(g.width, g.height, rl.Black)
	defer rl.UnloadImage(img)
	for i, c := range terrain.GreyColors(samples) {
		rl.ImageDrawPixel(img, int32(i%g.width), int32(i/g.width), c)
	}

	if !rl.ExportImage(*img, g.output) {
		return fmt.Errorf("failed to write %s", g.output)
	}
	fmt.Printf("wrote %dx%d heightmap to %s\n", g.width, g.height, g.output)
	return nil
}

func main() {
	g := generator{}

	if err := g.parse(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "invalid arguments: %v\n", err)
		os.Exit(2)
	}
	if err := g.run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build heightmap: %v\n", err)
		os.Exit(1)
	}
}
