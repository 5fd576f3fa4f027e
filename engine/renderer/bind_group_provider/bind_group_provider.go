package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label added for convenience.
	label string

	// The following fields are GPU allocated resources and must be released when
	// no longer needed. They are populated by the Renderer during initialization,
	// not by user-creation.

	// bindGroup is the GPU bind group created for this provider, or nil if not initialized with the Renderer.
	bindGroup *wgpu.BindGroup
	// bindGroupLayout is the GPU bind group layout created for this provider, or nil if not initialized with the Renderer.
	bindGroupLayout *wgpu.BindGroupLayout
	// buffers holds the GPU buffers created for this provider, keyed by binding index.
	buffers map[int]*wgpu.Buffer

	// vertexBuffer is the GPU vertex buffer created for this provider, or nil if not initialized with the Renderer.
	vertexBuffer *wgpu.Buffer
	// indexBuffer is the GPU index buffer created for this provider, or nil if not initialized with the Renderer.
	indexBuffer *wgpu.Buffer
	// indexCount is the number of indices for draw calls, used by the Renderer to issue drawIndexed calls for this provider.
	indexCount int
}

// BindGroupProvider defines the interface for components that require GPU bind
// group resources. Components (the camera uniform, mesh geometry) hold a
// BindGroupProvider describing their GPU binding requirements; the Renderer
// initializes and updates the GPU resources through it.
//
// Usage pattern:
//  1. Component creates a BindGroupProvider with a unique label
//  2. Renderer.InitBindGroup / Renderer.InitMeshBuffers create the GPU resources
//  3. Renderer.WriteBuffers streams uniform updates each frame
//  4. Renderer.DrawCall binds BindGroup() and the mesh buffers
type BindGroupProvider interface {
	// Release releases any GPU resources held by this provider.
	// All buffers and the bind group are released and cleared.
	Release()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the created bind group for shader binding.
	// Returns nil if GPU resources have not been initialized.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup() *wgpu.BindGroup

	// SetBindGroup stores the created bind group.
	//
	// Parameters:
	//   - bg: the bind group to store
	SetBindGroup(bg *wgpu.BindGroup)

	// BindGroupLayout returns the created bind group layout, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout or nil
	BindGroupLayout() *wgpu.BindGroupLayout

	// SetBindGroupLayout stores the created bind group layout.
	//
	// Parameters:
	//   - layout: the layout to store
	SetBindGroupLayout(layout *wgpu.BindGroupLayout)

	// Buffer returns the GPU buffer at the given binding index, or nil if none.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// SetBuffer stores a GPU buffer at the given binding index.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the buffer to store
	SetBuffer(binding int, buf *wgpu.Buffer)

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// SetVertexBuffer stores the GPU vertex buffer.
	//
	// Parameters:
	//   - buf: the buffer to store
	SetVertexBuffer(buf *wgpu.Buffer)

	// IndexBuffer returns the GPU index buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the index buffer or nil
	IndexBuffer() *wgpu.Buffer

	// SetIndexBuffer stores the GPU index buffer.
	//
	// Parameters:
	//   - buf: the buffer to store
	SetIndexBuffer(buf *wgpu.Buffer)

	// IndexCount returns the number of indices used for draw calls.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// SetIndexCount stores the number of indices used for draw calls.
	//
	// Parameters:
	//   - count: the index count
	SetIndexCount(count int)
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty provider with the given debug label.
// GPU resources are attached later by the Renderer.
//
// Parameters:
//   - label: debug label used for GPU object naming
//
// Returns:
//   - BindGroupProvider: the newly created provider
func NewBindGroupProvider(label string) BindGroupProvider {
	return &bindGroupProvider{
		label:   label,
		buffers: make(map[int]*wgpu.Buffer),
	}
}

func (b *bindGroupProvider) Release() {
	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	for binding, buf := range b.buffers {
		buf.Release()
		delete(b.buffers, binding)
	}
	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
	}
	if b.indexBuffer != nil {
		b.indexBuffer.Release()
		b.indexBuffer = nil
	}
	b.indexCount = 0
}

func (b *bindGroupProvider) Label() string {
	return b.label
}

func (b *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return b.bindGroup
}

func (b *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	b.bindGroup = bg
}

func (b *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return b.bindGroupLayout
}

func (b *bindGroupProvider) SetBindGroupLayout(layout *wgpu.BindGroupLayout) {
	b.bindGroupLayout = layout
}

func (b *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return b.buffers[binding]
}

func (b *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	b.buffers[binding] = buf
}

func (b *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return b.vertexBuffer
}

func (b *bindGroupProvider) SetVertexBuffer(buf *wgpu.Buffer) {
	b.vertexBuffer = buf
}

func (b *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return b.indexBuffer
}

func (b *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer) {
	b.indexBuffer = buf
}

func (b *bindGroupProvider) IndexCount() int {
	return b.indexCount
}

func (b *bindGroupProvider) SetIndexCount(count int) {
	b.indexCount = count
}
