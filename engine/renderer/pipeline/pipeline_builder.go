package pipeline

import "github.com/cogentcore/webgpu/wgpu"

// PipelineBuilderOption is a functional option for configuring a Pipeline.
type PipelineBuilderOption func(*pipelineImpl)

// WithShaderSource sets the WGSL source containing both entry points.
//
// Parameters:
//   - source: the WGSL source code
//
// Returns:
//   - PipelineBuilderOption: functional option to set the shader source
func WithShaderSource(source string) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.shaderSource = source
	}
}

// WithVertexEntryPoint overrides the vertex shader entry point name.
//
// Parameters:
//   - entry: the entry point name
//
// Returns:
//   - PipelineBuilderOption: functional option to set the vertex entry point
func WithVertexEntryPoint(entry string) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.vertexEntry = entry
	}
}

// WithFragmentEntryPoint overrides the fragment shader entry point name.
//
// Parameters:
//   - entry: the entry point name
//
// Returns:
//   - PipelineBuilderOption: functional option to set the fragment entry point
func WithFragmentEntryPoint(entry string) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.fragmentEntry = entry
	}
}

// WithVertexLayout appends a vertex buffer layout consumed by the vertex stage.
// Layouts are bound in the order they are added.
//
// Parameters:
//   - layout: the vertex buffer layout
//
// Returns:
//   - PipelineBuilderOption: functional option to append the layout
func WithVertexLayout(layout wgpu.VertexBufferLayout) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.vertexLayouts = append(p.vertexLayouts, layout)
	}
}

// WithBindGroupLayout appends a bind group layout descriptor. Descriptors are
// assigned to groups in the order they are added (first call is group 0).
//
// Parameters:
//   - descriptor: the bind group layout descriptor
//
// Returns:
//   - PipelineBuilderOption: functional option to append the descriptor
func WithBindGroupLayout(descriptor wgpu.BindGroupLayoutDescriptor) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.bindGroupLayouts = append(p.bindGroupLayouts, descriptor)
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the primitive topology
//
// Returns:
//   - PipelineBuilderOption: functional option to set the topology
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.topology = topology
	}
}

// WithCullMode sets the face culling mode.
//
// Parameters:
//   - mode: the cull mode
//
// Returns:
//   - PipelineBuilderOption: functional option to set the cull mode
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.cullMode = mode
	}
}

// WithDepth enables or disables depth testing and depth writes together.
//
// Parameters:
//   - enabled: true to depth-test and write depth, false to disable both
//
// Returns:
//   - PipelineBuilderOption: functional option to set depth state
func WithDepth(enabled bool) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.depthTestEnabled = enabled
		p.depthWriteEnabled = enabled
	}
}
