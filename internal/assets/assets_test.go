package assets

import (
	"errors"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestModelIsLoadedOnce(t *testing.T) {
	c := NewCache()
	calls := 0
	c.load = func(path string) (rl.Model, error) {
		calls++
		return rl.Model{MeshCount: 2}, nil
	}

	for range 3 {
		m, err := c.Model("duck.glb")
		if err != nil {
			t.Fatal(err)
		}
		if m.MeshCount != 2 {
			t.Errorf("mesh count = %d", m.MeshCount)
		}
	}
	if calls != 1 {
		t.Errorf("loaded %d times, want 1", calls)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d", c.Len())
	}
}

func TestFailedModelIsRemembered(t *testing.T) {
	c := NewCache()
	calls := 0
	c.load = func(path string) (rl.Model, error) {
		calls++
		return rl.Model{}, errors.New("broken")
	}

	for range 2 {
		if _, err := c.Model("broken.obj"); err == nil {
			t.Fatal("expected an error")
		}
	}
	if calls != 1 {
		t.Errorf("loaded %d times, want 1", calls)
	}

	c.Unload()
	if _, err := c.Model("broken.obj"); err == nil || calls != 2 {
		t.Errorf("Unload should forget failures, calls = %d", calls)
	}
}

func TestMissingModel(t *testing.T) {
	c := NewCache()
	_, err := c.Model(filepath.Join(t.TempDir(), "missing.glb"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if c.Len() != 0 {
		t.Error("failed loads should not be cached as models")
	}
}
