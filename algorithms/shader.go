package algorithms

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mandala"
)

// TimeStep is how far a shader algorithm's clock advances per draw, in
// seconds. The clock is private to the algorithm and independent of the
// session's phases.
const TimeStep = 0.016

// ShaderAlgorithm renders a full-canvas Kage shader. The shader is compiled
// on the first Draw; a compile failure panics since the source is static.
type ShaderAlgorithm struct {
	name   string
	src    string
	shader *ebiten.Shader

	time     float64
	uniforms map[string]any
	op       ebiten.DrawRectShaderOptions
}

// NewShader returns the kaleidoscopic noise shader algorithm.
func NewShader() *ShaderAlgorithm {
	return newShaderAlgorithm("shader", shaderSrc)
}

// NewFractal returns the fractal distance-field shader algorithm.
func NewFractal() *ShaderAlgorithm {
	return newShaderAlgorithm("fractal", fractalSrc)
}

func newShaderAlgorithm(name, src string) *ShaderAlgorithm {
	return &ShaderAlgorithm{
		name:     name,
		src:      src,
		uniforms: make(map[string]any, 7),
	}
}

// Time returns the shader clock in seconds.
func (a *ShaderAlgorithm) Time() float64 {
	return a.time
}

// Draw implements mandala.Algorithm.
func (a *ShaderAlgorithm) Draw(dst *ebiten.Image, fc *mandala.FrameContext) {
	a.time += TimeStep
	b := dst.Bounds()
	setUniforms(a.uniforms, fc, a.time, b.Dx(), b.Dy())
	a.op.Uniforms = a.uniforms
	dst.DrawRectShader(b.Dx(), b.Dy(), a.compiled(), &a.op)
}

func (a *ShaderAlgorithm) compiled() *ebiten.Shader {
	if a.shader == nil {
		s, err := ebiten.NewShader([]byte(a.src))
		if err != nil {
			panic("mandala: failed to compile " + a.name + " shader: " + err.Error())
		}
		a.shader = s
	}
	return a.shader
}

// setUniforms fills u from the frame: rotation from the angle, symmetry,
// complexity, pulse as 1 or 0, and the color mode index.
func setUniforms(u map[string]any, fc *mandala.FrameContext, t float64, w, h int) {
	cfg := fc.Config.Sanitized()
	pulse := float32(0)
	if cfg.PulseEffect {
		pulse = 1
	}
	mode := cfg.ColorMode.Index()
	if mode < 0 {
		mode = 0
	}
	u["Time"] = float32(t)
	u["Resolution"] = []float32{float32(w), float32(h)}
	u["Rotation"] = float32(fc.Angle)
	u["Symmetry"] = float32(cfg.Symmetry)
	u["Complexity"] = float32(cfg.Complexity)
	u["Pulse"] = pulse
	u["ColorMode"] = float32(mode)
}

const shaderSrc = `//kage:unit pixels
package main

var Time float
var Resolution vec2
var Rotation float
var Symmetry float
var Complexity float
var Pulse float
var ColorMode float

func rand2(n vec2) float {
	return fract(sin(dot(n, vec2(12.9898, 78.233))) * 43758.5453)
}

func noise2(st vec2) float {
	f := fract(st)
	i := floor(st)
	a := rand2(i)
	b := rand2(i + vec2(1.0, 0.0))
	c := rand2(i + vec2(0.0, 1.0))
	d := rand2(i + vec2(1.0, 1.0))
	u := f * f * (3.0 - 2.0*f)
	return mix(a, b, u.x) + (c-a)*u.y*(1.0-u.x) + (d-b)*u.x*u.y
}

func usin(x float) float {
	return 0.5 + 0.5*sin(x)
}

func color1() vec3 {
	k := usin(Time * 0.4)
	if ColorMode < 0.5 {
		return mix(vec3(1.0), vec3(0.7), k)
	} else if ColorMode < 1.5 {
		return mix(vec3(1.0, 0.0, 0.0), vec3(1.0, 1.0, 0.0), k)
	} else if ColorMode < 2.5 {
		return mix(vec3(1.0, 1.0, 0.0), vec3(0.0, 0.0, 1.0), k)
	} else if ColorMode < 3.5 {
		return mix(vec3(0.6, 0.4, 0.2), vec3(0.8, 0.6, 0.3), k)
	}
	return mix(vec3(0.0, 0.2, 0.5), vec3(0.0, 0.6, 0.8), k)
}

func color2() vec3 {
	k := usin(Time * 0.9)
	if ColorMode < 0.5 {
		return mix(vec3(0.0), vec3(0.3), k)
	} else if ColorMode < 1.5 {
		return mix(vec3(0.0), vec3(0.0, 0.0, 1.0), k)
	} else if ColorMode < 2.5 {
		return mix(vec3(0.0), vec3(1.0, 0.0, 0.0), k)
	} else if ColorMode < 3.5 {
		return mix(vec3(0.0), vec3(0.2, 0.4, 0.1), k)
	}
	return mix(vec3(0.0), vec3(39.0/255.0, 146.0/255.0, 195.0/255.0), k)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	frag := vec2(dstPos.x, Resolution.y-dstPos.y)
	uv0 := (frag*2.0 - Resolution) / min(Resolution.x, Resolution.y)
	uv := uv0

	t := 0.2*Time + Rotation
	pulse := 0.2 + Pulse*0.1*sin(Time*0.5)
	complexity := Complexity*1.5 + 0.5
	sym := max(3.0, Symmetry)

	for i := 0; i < 5; i++ {
		a := atan2(uv.x, uv.y)
		a *= sym / 6.283185307
		a = abs(fract(a*0.5-sym*0.5)*2.0 - 1.0)
		a *= 6.283185307 / sym
		uv = length(uv) * vec2(sin(a+t*0.7), cos(a+t*0.8))
		uv -= vec2(0.2+pulse*usin(Time*0.3), 0.0)
		uv = fract(uv)*2.0 - 1.0
	}

	v := noise2(uv * complexity)
	col := mix(color1(), color2(), v)
	col *= clamp(length(uv), 0.0, 1.0)
	col *= exp(-0.8 * length(uv0))
	col += 1.1 * usin(Time*0.4) * exp(-1.2*length(uv0))
	return vec4(clamp(col, 0.0, 1.0), 1.0)
}
`
