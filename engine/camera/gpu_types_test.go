package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGPUCameraUniformIsIdentity(t *testing.T) {
	u := NewGPUCameraUniform()
	if mgl32.Mat4(u.ViewProj) != mgl32.Ident4() {
		t.Errorf("fresh uniform is not identity: %v", u.ViewProj)
	}
}

func TestGPUCameraUniformSize(t *testing.T) {
	u := NewGPUCameraUniform()
	if got := u.Size(); got != 64 {
		t.Errorf("Size() = %d, want 64", got)
	}
}

func TestUpdateViewProjMatchesCamera(t *testing.T) {
	cam := NewCamera(
		WithEye(mgl32.Vec3{0, 1, 2}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
		WithAspect(800.0/600.0),
	)

	u := NewGPUCameraUniform()
	u.UpdateViewProj(cam)

	want := cam.BuildViewProjectionMatrix()
	if mgl32.Mat4(u.ViewProj) != want {
		t.Errorf("uniform matrix:\ngot  %v\nwant %v", u.ViewProj, want)
	}
}

func TestMarshalLittleEndianLayout(t *testing.T) {
	u := NewGPUCameraUniform()
	for i := range 16 {
		u.ViewProj[i] = float32(i) + 0.5
	}

	buf := u.Marshal()
	if len(buf) != u.Size() {
		t.Fatalf("Marshal() length = %d, want %d", len(buf), u.Size())
	}

	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != u.ViewProj[i] {
			t.Errorf("element %d: got %v, want %v", i, got, u.ViewProj[i])
		}
	}
}

func TestMarshalColumnMajorOrder(t *testing.T) {
	cam := NewCamera(
		WithEye(mgl32.Vec3{3, 4, 5}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
	)
	m := cam.BuildViewProjectionMatrix()

	u := NewGPUCameraUniform()
	u.UpdateViewProj(cam)
	buf := u.Marshal()

	// mgl32.Mat4 is column-major; the buffer must carry the same order so the
	// WGSL mat4x4<f32> columns land correctly.
	for col := range 4 {
		for row := range 4 {
			idx := col*4 + row
			got := math.Float32frombits(binary.LittleEndian.Uint32(buf[idx*4:]))
			if got != m.At(row, col) {
				t.Errorf("column %d row %d: got %v, want %v", col, row, got, m.At(row, col))
			}
		}
	}
}
