package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// pipelineImpl is the unexported implementation of Pipeline.
type pipelineImpl struct {
	key string

	shaderSource  string
	vertexEntry   string
	fragmentEntry string

	vertexLayouts    []wgpu.VertexBufferLayout
	bindGroupLayouts []wgpu.BindGroupLayoutDescriptor

	topology  wgpu.PrimitiveTopology
	frontFace wgpu.FrontFace
	cullMode  wgpu.CullMode

	depthTestEnabled  bool
	depthWriteEnabled bool

	renderPipeline *wgpu.RenderPipeline
}

// Pipeline describes a render pipeline: the WGSL source, entry points, vertex
// buffer layouts, and bind group layouts, plus fixed-function state. The GPU
// pipeline object is created by the Renderer via RegisterPipelines and cached
// back onto the Pipeline.
type Pipeline interface {
	// PipelineKey returns the unique identifier used to cache this pipeline.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// ShaderSource returns the WGSL source containing both entry points.
	//
	// Returns:
	//   - string: the WGSL source code
	ShaderSource() string

	// VertexEntryPoint returns the name of the vertex shader entry point.
	//
	// Returns:
	//   - string: the entry point name (default "vs_main")
	VertexEntryPoint() string

	// FragmentEntryPoint returns the name of the fragment shader entry point.
	//
	// Returns:
	//   - string: the entry point name (default "fs_main")
	FragmentEntryPoint() string

	// VertexLayouts returns the vertex buffer layouts consumed by the vertex stage.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the vertex buffer layouts
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayouts returns the bind group layout descriptors, indexed by group.
	//
	// Returns:
	//   - []wgpu.BindGroupLayoutDescriptor: the bind group layout descriptors
	BindGroupLayouts() []wgpu.BindGroupLayoutDescriptor

	// Topology returns the primitive topology.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the topology (default TriangleList)
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the winding order considered front-facing.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding (default CCW)
	FrontFace() wgpu.FrontFace

	// CullMode returns the face culling mode.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode (default Back)
	CullMode() wgpu.CullMode

	// DepthTestEnabled reports whether depth testing is enabled.
	//
	// Returns:
	//   - bool: true if fragments are depth-tested
	DepthTestEnabled() bool

	// DepthWriteEnabled reports whether depth writes are enabled.
	//
	// Returns:
	//   - bool: true if fragments write depth
	DepthWriteEnabled() bool

	// RenderPipeline returns the created GPU pipeline, or nil if the pipeline
	// has not been registered with a Renderer yet.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the GPU pipeline object or nil
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the created GPU pipeline object.
	//
	// Parameters:
	//   - p: the GPU pipeline to store
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Pipeline = &pipelineImpl{}

// NewPipeline creates a new Pipeline description with the given cache key.
// Defaults: triangle-list topology, CCW front face, back-face culling, depth
// test and depth write enabled, "vs_main"/"fs_main" entry points.
//
// Parameters:
//   - key: the unique pipeline cache key
//   - options: functional options to configure the pipeline
//
// Returns:
//   - Pipeline: the newly created pipeline description
func NewPipeline(key string, options ...PipelineBuilderOption) Pipeline {
	p := &pipelineImpl{
		key:               key,
		vertexEntry:       "vs_main",
		fragmentEntry:     "fs_main",
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		cullMode:          wgpu.CullModeBack,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *pipelineImpl) PipelineKey() string {
	return p.key
}

func (p *pipelineImpl) ShaderSource() string {
	return p.shaderSource
}

func (p *pipelineImpl) VertexEntryPoint() string {
	return p.vertexEntry
}

func (p *pipelineImpl) FragmentEntryPoint() string {
	return p.fragmentEntry
}

func (p *pipelineImpl) VertexLayouts() []wgpu.VertexBufferLayout {
	return p.vertexLayouts
}

func (p *pipelineImpl) BindGroupLayouts() []wgpu.BindGroupLayoutDescriptor {
	return p.bindGroupLayouts
}

func (p *pipelineImpl) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipelineImpl) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipelineImpl) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipelineImpl) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipelineImpl) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipelineImpl) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipelineImpl) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}
