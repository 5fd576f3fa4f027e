package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (64 bytes, one mat4x4<f32>).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 64 bytes, 16 packed column-major float32 values, no padding.
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset 0: combined view-projection matrix (mat4x4<f32>)
}

// NewGPUCameraUniform creates a camera uniform holding the identity matrix.
// It carries no state of its own beyond the last matrix written into it.
//
// Returns:
//   - *GPUCameraUniform: the newly created uniform
func NewGPUCameraUniform() *GPUCameraUniform {
	return &GPUCameraUniform{
		ViewProj: [16]float32{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		},
	}
}

// UpdateViewProj recomputes the stored matrix from the camera's current state.
// Always succeeds given a valid (non-degenerate) camera pose.
//
// Parameters:
//   - cam: the camera to read the view-projection matrix from
func (g *GPUCameraUniform) UpdateViewProj(cam Camera) {
	g.ViewProj = [16]float32(cam.BuildViewProjectionMatrix())
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	return buf
}
