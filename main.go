package main

import (
	_ "embed"
	"log"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/xiaochen0517/wgpu-test/common"
	"github.com/xiaochen0517/wgpu-test/engine"
	"github.com/xiaochen0517/wgpu-test/engine/camera"
	"github.com/xiaochen0517/wgpu-test/engine/renderer"
	"github.com/xiaochen0517/wgpu-test/engine/renderer/bind_group_provider"
	"github.com/xiaochen0517/wgpu-test/engine/renderer/pipeline"
	"github.com/xiaochen0517/wgpu-test/engine/window"
)

//go:embed assets/shader.wgsl
var shaderSource string

// vertex matches the VertexInput struct in assets/shader.wgsl.
type vertex struct {
	position [3]float32
	color    [3]float32
}

// Pentagon test geometry.
var (
	pentagonVertices = []vertex{
		{position: [3]float32{-0.0868241, 0.49240386, 0.0}, color: [3]float32{0.5, 0.0, 0.5}},
		{position: [3]float32{-0.49513406, 0.06958647, 0.0}, color: [3]float32{0.5, 0.0, 0.5}},
		{position: [3]float32{-0.21918549, -0.44939706, 0.0}, color: [3]float32{0.5, 0.0, 0.5}},
		{position: [3]float32{0.35966998, -0.3473291, 0.0}, color: [3]float32{0.5, 0.0, 0.5}},
		{position: [3]float32{0.44147372, 0.2347359, 0.0}, color: [3]float32{0.5, 0.0, 0.5}},
	}

	pentagonIndices = []uint32{
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
	}
)

func main() {
	// ── Engine + Window ─────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithTickRate(60),
		engine.WithWindow(window.NewWindow(
			window.WithTitle("wgpu-test"),
			window.WithWidth(800),
			window.WithHeight(600),
		)),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		eng.Window(),
		renderer.WithPresentMode(renderer.PresentModeVSync),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithEye(mgl32.Vec3{0, 1, 2}),
		camera.WithTarget(mgl32.Vec3{0, 0, 0}),
		camera.WithUp(mgl32.Vec3{0, 1, 0}),
		camera.WithAspect(float32(eng.Window().Width())/float32(eng.Window().Height())),
		camera.WithFovy(45),
		camera.WithNear(0.1),
		camera.WithFar(100),
	)
	controller := camera.NewCameraController(camera.WithSpeed(0.2))
	uniform := camera.NewGPUCameraUniform()

	// ── GPU resources ───────────────────────────────────────────────────
	cameraLayout := wgpu.BindGroupLayoutDescriptor{
		Label: "camera_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(uniform.Size()),
				},
			},
		},
	}

	cameraProvider := bind_group_provider.NewBindGroupProvider("camera")
	if err := r.InitBindGroup(cameraProvider, cameraLayout); err != nil {
		log.Fatalf("failed to init camera bind group: %v", err)
	}

	meshProvider := bind_group_provider.NewBindGroupProvider("pentagon")
	if err := r.InitMeshBuffers(
		meshProvider,
		common.SliceToBytes(pentagonVertices),
		common.SliceToBytes(pentagonIndices),
		len(pentagonIndices),
	); err != nil {
		log.Fatalf("failed to init mesh buffers: %v", err)
	}

	// ── Pipeline ────────────────────────────────────────────────────────
	p := pipeline.NewPipeline("pentagon",
		pipeline.WithShaderSource(camera.GPUCameraUniformSource+"\n"+shaderSource),
		pipeline.WithVertexLayout(wgpu.VertexBufferLayout{
			ArrayStride: uint64(unsafe.Sizeof(vertex{})),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(vertex{}.color)), ShaderLocation: 1},
			},
		}),
		pipeline.WithBindGroupLayout(cameraLayout),
	)
	if err := r.RegisterPipelines(p); err != nil {
		log.Fatalf("failed to register pipeline: %v", err)
	}

	// ── Input + resize wiring ───────────────────────────────────────────
	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		controller.HandleKey(keyCode, true)
	})
	eng.Window().SetKeyUpCallback(func(keyCode uint32) {
		controller.HandleKey(keyCode, false)
	})
	eng.Window().SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
		if height > 0 {
			cam.SetAspect(float32(width) / float32(height))
		}
	})

	// ── Frame callbacks ─────────────────────────────────────────────────
	eng.SetTickCallback(func(deltaTime float32) {
		controller.UpdateCamera(cam)
	})
	eng.SetRenderCallback(func(deltaTime float32) {
		uniform.UpdateViewProj(cam)
		r.WriteBuffers([]bind_group_provider.BufferWrite{
			{Provider: cameraProvider, Binding: 0, Data: uniform.Marshal()},
		})

		if err := r.BeginFrame(); err != nil {
			return
		}
		if err := r.DrawCall("pentagon", meshProvider, 1, []bind_group_provider.BindGroupProvider{cameraProvider}); err != nil {
			log.Printf("draw call failed: %v", err)
		}
		r.EndFrame()
		r.Present()
	})

	eng.Run()

	cameraProvider.Release()
	meshProvider.Release()
	if err := eng.Window().Close(); err != nil {
		log.Printf("failed to close window: %v", err)
	}
}
