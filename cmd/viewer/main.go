// Command viewer opens a window and draws the wireframe of a mesh file,
// a visual companion to the headless simplify CLI for eyeballing a
// before/after pair.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/donaldnguyen99/qmesh/ioformat"
	"github.com/donaldnguyen99/qmesh/mesh"
)

func init() {
	// GLFW and GL must run on the OS thread that created the context.
	runtime.LockOSThread()
}

const vertexShaderSrc = `
#version 410
layout (location = 0) in vec3 position;
uniform mat4 mvp;
void main() {
	gl_Position = mvp * vec4(position, 1.0);
}
` + "\x00"

const fragmentShaderSrc = `
#version 410
out vec4 fragColor;
void main() {
	fragColor = vec4(0.2, 0.9, 0.4, 1.0);
}
` + "\x00"

func main() {
	width := flag.Int("w", 1024, "window width")
	height := flag.Int("h", 768, "window height")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-w width] [-h height] meshfile\n", os.Args[0])
		return
	}

	m, err := ioformat.LoadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load %q: %v", flag.Arg(0), err)
	}
	log.Printf("loaded %d vertices, %d triangles", m.NumVertices(), m.NumTriangles())

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init failed: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, "qmesh viewer", nil, nil)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("gl init failed: %v", err)
	}

	program, err := newProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		log.Fatalf("shader program: %v", err)
	}

	edges := wireframeVertices(m)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(edges)*4, gl.Ptr(edges), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	mvpLoc := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

	gl.Enable(gl.DEPTH_TEST)
	for !window.ShouldClose() {
		gl.ClearColor(0.05, 0.05, 0.08, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		gl.UseProgram(program)
		gl.UniformMatrix4fv(mvpLoc, 1, false, &identity[0])
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.LINES, 0, int32(len(edges)/3))

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// wireframeVertices flattens every surviving triangle's three edges into
// a line-list vertex buffer (x,y,z per vertex, two vertices per edge).
func wireframeVertices(m *mesh.Mesh) []float32 {
	triangles := m.Triangles()
	out := make([]float32, 0, len(triangles)*3*2*3)
	for i := range triangles {
		t := &triangles[i]
		if t.Deleted {
			continue
		}
		for c := 0; c < 3; c++ {
			v0, _ := m.Vertex(t.V[c])
			v1, _ := m.Vertex(t.V[(c+1)%3])
			out = append(out,
				float32(v0.Position.X), float32(v0.Position.Y), float32(v0.Position.Z),
				float32(v1.Position.X), float32(v1.Position.Y), float32(v1.Position.Z),
			)
		}
	}
	return out
}

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
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
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
