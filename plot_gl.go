package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Interactive 3D inspection of the sampled surface: the point cloud spins in
// an OpenGL window, shaded by the same normal-dot-light model the ASCII
// rasterizer uses. One-shot, outside the animation loop.

const (
	plotWidth  = 800
	plotHeight = 600
	plotTitle  = "donut3d surface plot"
)

var plotVertexShader = `
	#version 410
	in vec3 vp;
	in vec3 nrm;
	uniform mat4 mvp;
	uniform mat4 model;
	uniform vec3 light;
	out float lum;
	void main() {
		lum = max(dot(normalize(mat3(model) * nrm), light), 0.0);
		gl_PointSize = 3.0;
		gl_Position = mvp * vec4(vp, 1.0);
	}
` + "\x00"

var plotFragmentShader = `
	#version 410
	in float lum;
	out vec4 frag_colour;
	void main() {
		frag_colour = vec4(vec3(0.15 + 0.85 * lum), 1.0);
	}
` + "\x00"

// RunPlotWindow opens a window showing the surface as a rotating shaded point
// cloud and blocks until the window closes or ESC is pressed.
func RunPlotWindow(s *Surface, lightDir mgl64.Vec3, incX, incY float64) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(plotWidth, plotHeight, plotTitle, nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	if err := gl.Init(); err != nil {
		return err
	}

	program, err := newProgram(plotVertexShader, plotFragmentShader)
	if err != nil {
		return err
	}
	gl.UseProgram(program)

	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	modelUniform := gl.GetUniformLocation(program, gl.Str("model\x00"))
	lightUniform := gl.GetUniformLocation(program, gl.Str("light\x00"))

	// Interleaved position+normal buffer.
	verts := make([]float32, 0, s.Len()*6)
	for i := range s.Points {
		p, n := s.Points[i], s.Normals[i]
		verts = append(verts,
			float32(p.X()), float32(p.Y()), float32(p.Z()),
			float32(n.X()), float32(n.Y()), float32(n.Z()))
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 3, gl.FLOAT, false, 24, gl.PtrOffset(0))

	nrmAttrib := uint32(gl.GetAttribLocation(program, gl.Str("nrm\x00")))
	gl.EnableVertexAttribArray(nrmAttrib)
	gl.VertexAttribPointer(nrmAttrib, 3, gl.FLOAT, false, 24, gl.PtrOffset(12))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.05, 0.05, 0.08, 1.0)

	radius := float32(s.Major + s.Minor)
	projection := mgl32.Perspective(mgl32.DegToRad(45.0), float32(plotWidth)/float32(plotHeight), 0.1, 100.0)
	camera := mgl32.LookAtV(mgl32.Vec3{0, radius, radius * 2.5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	light := lightDir.Normalize()
	gl.Uniform3f(lightUniform, float32(light.X()), float32(light.Y()), float32(light.Z()))

	var angleX, angleY float64
	lastFrameTime := glfw.GetTime()

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(program)

		// Per-frame increments are radians per frame in the ASCII loop;
		// scale by a nominal 20 fps so both spins look alike.
		angleX = wrapAngle(angleX + incX*deltaTime*20)
		angleY = wrapAngle(angleY + incY*deltaTime*20)

		model := mgl32.HomogRotate3D(float32(angleY), mgl32.Vec3{0, 1, 0}).
			Mul4(mgl32.HomogRotate3D(float32(angleX), mgl32.Vec3{1, 0, 0}))
		mvp := projection.Mul4(camera).Mul4(model)
		gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
		gl.UniformMatrix4fv(modelUniform, 1, false, &model[0])

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.POINTS, 0, int32(s.Len()))

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
