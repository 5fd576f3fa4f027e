package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func vec3AlmostEqual(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, epsilon)
}

func matFinite(m mgl32.Mat4) bool {
	for i := range 16 {
		v := float64(m[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestBuildViewProjectionMatrixFiniteAndInvertible(t *testing.T) {
	cases := []struct {
		name string
		cam  Camera
	}{
		{
			name: "defaults",
			cam:  NewCamera(),
		},
		{
			name: "tutorial pose",
			cam: NewCamera(
				WithEye(mgl32.Vec3{0, 1, 2}),
				WithTarget(mgl32.Vec3{0, 0, 0}),
				WithAspect(800.0/600.0),
				WithFovy(45),
				WithNear(0.1),
				WithFar(100),
			),
		},
		{
			name: "wide fov far planes",
			cam: NewCamera(
				WithEye(mgl32.Vec3{100, 200, -300}),
				WithTarget(mgl32.Vec3{0, 0, 1000}),
				WithFovy(170),
				WithAspect(21.0/9.0),
				WithNear(0.001),
				WithFar(100000),
			),
		},
		{
			name: "narrow fov",
			cam: NewCamera(
				WithEye(mgl32.Vec3{-1, -2, -3}),
				WithTarget(mgl32.Vec3{4, 5, 6}),
				WithFovy(1),
				WithAspect(0.25),
			),
		},
	}

	for _, tc := range cases {
		m := tc.cam.BuildViewProjectionMatrix()
		if !matFinite(m) {
			t.Errorf("%s: matrix has non-finite entries: %v", tc.name, m)
		}
		if m.Det() == 0 {
			t.Errorf("%s: matrix is singular", tc.name)
		}
	}
}

func TestBuildViewProjectionMatrixIsPure(t *testing.T) {
	cam := NewCamera(
		WithEye(mgl32.Vec3{1, 2, 3}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
	)

	first := cam.BuildViewProjectionMatrix()
	second := cam.BuildViewProjectionMatrix()
	if first != second {
		t.Errorf("repeated calls returned different matrices:\n%v\n%v", first, second)
	}

	if eye := cam.Eye(); !vec3AlmostEqual(eye, mgl32.Vec3{1, 2, 3}) {
		t.Errorf("eye mutated by matrix build: %v", eye)
	}
	if target := cam.Target(); !vec3AlmostEqual(target, mgl32.Vec3{0, 0, 0}) {
		t.Errorf("target mutated by matrix build: %v", target)
	}
}

func TestBuildViewProjectionMatrixComposition(t *testing.T) {
	cam := NewCamera(
		WithEye(mgl32.Vec3{0, 1, 2}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
		WithUp(mgl32.Vec3{0, 1, 0}),
		WithAspect(4.0/3.0),
		WithFovy(45),
		WithNear(0.1),
		WithFar(100),
	)

	view := mgl32.LookAtV(mgl32.Vec3{0, 1, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	want := OpenGLToWGPUMatrix.Mul4(proj).Mul4(view)

	got := cam.BuildViewProjectionMatrix()
	if got != want {
		t.Errorf("matrix composition mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestOpenGLToWGPUMatrixDepthRemap(t *testing.T) {
	// GL clip-space z of -1 (near) must land at 0, +1 (far) at 1.
	near := OpenGLToWGPUMatrix.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	if math.Abs(float64(near.Z())) > epsilon {
		t.Errorf("near plane z: expected 0, got %v", near.Z())
	}

	far := OpenGLToWGPUMatrix.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	if math.Abs(float64(far.Z()-1)) > epsilon {
		t.Errorf("far plane z: expected 1, got %v", far.Z())
	}

	// X and Y pass through unchanged.
	pt := OpenGLToWGPUMatrix.Mul4x1(mgl32.Vec4{0.3, -0.7, 0, 1})
	if pt.X() != 0.3 || pt.Y() != -0.7 {
		t.Errorf("x/y not preserved: got (%v, %v)", pt.X(), pt.Y())
	}
}

func TestSetAspectAffectsProjection(t *testing.T) {
	cam := NewCamera(WithAspect(1))
	before := cam.BuildViewProjectionMatrix()

	cam.SetAspect(2)
	after := cam.BuildViewProjectionMatrix()

	if before == after {
		t.Error("aspect change did not affect the view-projection matrix")
	}
}
