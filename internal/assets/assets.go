package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrNotFound = errors.New("asset not found")

// Cache loads models once per path and keeps them until Unload.
type Cache struct {
	models map[string]rl.Model
	failed map[string]error
	load   func(path string) (rl.Model, error)
}

func NewCache() *Cache {
	return &Cache{
		models: make(map[string]rl.Model),
		failed: make(map[string]error),
		load:   loadModel,
	}
}

// Model returns the cached model for path, loading it on first use. A path
// that failed once keeps failing without touching the disk again.
func (c *Cache) Model(path string) (rl.Model, error) {
	if model, exists := c.models[path]; exists {
		return model, nil
	}
	if err, failed := c.failed[path]; failed {
		return rl.Model{}, err
	}

	model, err := c.load(path)
	if err != nil {
		log.Printf("Assets: %v", err)
		c.failed[path] = err
		return rl.Model{}, err
	}
	log.Printf("Assets: loaded model %s (%d meshes)", path, model.MeshCount)
	c.models[path] = model
	return model, nil
}

func (c *Cache) Len() int {
	return len(c.models)
}

// Unload frees every cached model and forgets failures so the next request
// retries.
func (c *Cache) Unload() {
	for _, model := range c.models {
		rl.UnloadModel(model)
	}
	c.models = make(map[string]rl.Model)
	c.failed = make(map[string]error)
}

func loadModel(path string) (rl.Model, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return rl.Model{}, fmt.Errorf("model %s: %w", path, ErrNotFound)
	} else if err != nil {
		return rl.Model{}, fmt.Errorf("model %s: %w", path, err)
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("model %s: no meshes", path)
	}
	return model, nil
}
