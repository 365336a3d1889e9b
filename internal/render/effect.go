package render

import (
	"errors"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultVertexShader   = "assets/shaders/lighting.vs"
	DefaultFragmentShader = "assets/shaders/lighting.fs"
)

var ErrShaderUnavailable = errors.New("lighting shader unavailable")

type DirectionalLight struct {
	Enabled       bool
	Direction     rl.Vector3
	DiffuseColor  rl.Vector3
	SpecularColor rl.Vector3
}

// Effect is the shared draw state for primitives: world transform, diffuse
// colour, alpha and a single directional light. Colours other than the
// diffuse colour are linear 0..1 RGB.
type Effect struct {
	World              rl.Matrix
	DiffuseColor       rl.Color
	Alpha              float32
	LightingEnabled    bool
	VertexColorEnabled bool
	AmbientLightColor  rl.Vector3
	SpecularPower      float32
	Light              DirectionalLight
	ViewPosition       rl.Vector3

	material rl.Material
	shader   rl.Shader
	loaded   bool
	lit      bool
	locs     effectLocations
}

type effectLocations struct {
	lightingEnabled    int32
	vertexColorEnabled int32
	lightDir           int32
	lightColor         int32
	specularColor      int32
	specularPower      int32
	ambient            int32
	viewPos            int32
}

// NewEffect returns an effect with unlit white defaults. Call Load once a
// window exists before drawing with it.
func NewEffect() *Effect {
	return &Effect{
		World:        rl.MatrixIdentity(),
		DiffuseColor: rl.White,
		Alpha:        1,
	}
}

// SetupLighting restores the default lighting rig.
func (e *Effect) SetupLighting() {
	e.LightingEnabled = true
	e.AmbientLightColor = rl.Vector3{X: 0.2, Y: 0.2, Z: 0.2}
	e.SpecularPower = 5
	e.Alpha = 1
	e.Light = DirectionalLight{
		Enabled:       true,
		Direction:     rl.Vector3Scale(rl.Vector3Normalize(rl.Vector3{X: -1, Y: -3, Z: -2}), 0.9),
		DiffuseColor:  rl.Vector3{X: 1, Y: 1, Z: 1},
		SpecularColor: rl.Vector3{X: 0.1, Y: 0.1, Z: 0.1},
	}
}

// Load creates the GPU material and compiles the lighting shader. If the
// shader cannot be built the effect still draws, unlit, and the error is
// returned for the caller to report.
func (e *Effect) Load(vsPath, fsPath string) error {
	if e.loaded {
		return nil
	}
	e.loaded = true
	e.ensureMaterial()

	shader := rl.LoadShader(vsPath, fsPath)
	// raylib falls back to its default shader when compilation fails.
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() {
		return fmt.Errorf("load %s, %s: %w", vsPath, fsPath, ErrShaderUnavailable)
	}

	e.shader = shader
	e.material.Shader = shader
	e.lit = true
	e.locs = effectLocations{
		lightingEnabled:    rl.GetShaderLocation(shader, "lightingEnabled"),
		vertexColorEnabled: rl.GetShaderLocation(shader, "vertexColorEnabled"),
		lightDir:           rl.GetShaderLocation(shader, "lightDir"),
		lightColor:         rl.GetShaderLocation(shader, "lightColor"),
		specularColor:      rl.GetShaderLocation(shader, "specularColor"),
		specularPower:      rl.GetShaderLocation(shader, "specularPower"),
		ambient:            rl.GetShaderLocation(shader, "ambient"),
		viewPos:            rl.GetShaderLocation(shader, "viewPos"),
	}
	log.Printf("Render: lighting shader loaded (id %d)", shader.ID)
	return nil
}

// Lit reports whether the lighting shader is in use.
func (e *Effect) Lit() bool {
	return e.lit
}

// DiffuseWithAlpha is the diffuse colour with Alpha folded into its A channel.
func (e *Effect) DiffuseWithAlpha() rl.Color {
	c := e.DiffuseColor
	c.A = uint8(rl.Clamp(e.Alpha, 0, 1) * 255)
	return c
}

func (e *Effect) Transform() rl.Matrix {
	return e.World
}

// Material pushes the current state to the shader and returns the material
// to draw with. Before Load it is raylib's default material.
func (e *Effect) Material() rl.Material {
	e.ensureMaterial()
	e.apply()
	e.material.Maps.Color = e.DiffuseWithAlpha()
	return e.material
}

func (e *Effect) ensureMaterial() {
	if e.material.Maps == nil {
		e.material = rl.LoadMaterialDefault()
	}
}

// shaderForModel returns the shader loaded models should draw with after
// pushing the current state.
func (e *Effect) shaderForModel() (rl.Shader, bool) {
	e.apply()
	return e.shader, e.lit
}

func (e *Effect) apply() {
	if !e.lit {
		return
	}

	light := e.Light
	diffuse := light.DiffuseColor
	specular := light.SpecularColor
	if !light.Enabled {
		diffuse = rl.Vector3{}
		specular = rl.Vector3{}
	}

	rl.SetShaderValue(e.shader, e.locs.lightingEnabled, []float32{boolFloat(e.LightingEnabled)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(e.shader, e.locs.vertexColorEnabled, []float32{boolFloat(e.VertexColorEnabled)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(e.shader, e.locs.lightDir, []float32{light.Direction.X, light.Direction.Y, light.Direction.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(e.shader, e.locs.lightColor, []float32{diffuse.X, diffuse.Y, diffuse.Z, 1}, rl.ShaderUniformVec4)
	rl.SetShaderValue(e.shader, e.locs.specularColor, []float32{specular.X, specular.Y, specular.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(e.shader, e.locs.specularPower, []float32{e.SpecularPower}, rl.ShaderUniformFloat)
	rl.SetShaderValue(e.shader, e.locs.ambient, []float32{e.AmbientLightColor.X, e.AmbientLightColor.Y, e.AmbientLightColor.Z, 1}, rl.ShaderUniformVec4)
	rl.SetShaderValue(e.shader, e.locs.viewPos, []float32{e.ViewPosition.X, e.ViewPosition.Y, e.ViewPosition.Z}, rl.ShaderUniformVec3)
}

func (e *Effect) Unload() {
	if e.material.Maps != nil {
		// Frees the lighting shader too when it is attached.
		rl.UnloadMaterial(e.material)
	}
	e.material = rl.Material{}
	e.shader = rl.Shader{}
	e.loaded = false
	e.lit = false
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
