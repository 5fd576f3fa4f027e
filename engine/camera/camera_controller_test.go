package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/xiaochen0517/wgpu-test/common"
)

func newTestCamera() Camera {
	return NewCamera(
		WithEye(mgl32.Vec3{0, 1, 2}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
		WithUp(mgl32.Vec3{0, 1, 0}),
	)
}

func TestHandleKeyRecognizedCodes(t *testing.T) {
	recognized := []uint32{
		common.KeyW, common.KeyS, common.KeyA, common.KeyD,
		common.KeyLeft, common.KeyRight, common.KeyUp, common.KeyDown,
		common.KeyE, common.KeyQ,
	}

	cc := NewCameraController()
	for _, code := range recognized {
		if !cc.HandleKey(code, true) {
			t.Errorf("key %d: expected handled, got unhandled", code)
		}
		if !cc.HandleKey(code, false) {
			t.Errorf("key %d release: expected handled, got unhandled", code)
		}
	}

	for _, code := range []uint32{common.KeySpace, common.KeyEsc, 90, 0} {
		if cc.HandleKey(code, true) {
			t.Errorf("key %d: expected unhandled, got handled", code)
		}
	}
}

func TestUpdateCameraNoIntentsIsFixedPoint(t *testing.T) {
	cc := NewCameraController()
	cam := newTestCamera()

	eyeBefore, targetBefore := cam.Pose()
	cc.UpdateCamera(cam)
	eyeAfter, targetAfter := cam.Pose()

	if eyeBefore != eyeAfter {
		t.Errorf("eye changed with no intents: %v -> %v", eyeBefore, eyeAfter)
	}
	if targetBefore != targetAfter {
		t.Errorf("target changed with no intents: %v -> %v", targetBefore, targetAfter)
	}
}

func TestForwardTranslation(t *testing.T) {
	const speed = 0.2
	cc := NewCameraController(WithSpeed(speed))
	cam := newTestCamera()
	cc.HandleKey(common.KeyW, true)

	eyeBefore, targetBefore := cam.Pose()
	forward := targetBefore.Sub(eyeBefore)
	wantDelta := forward.Normalize().Mul(speed * speedLimit)

	cc.UpdateCamera(cam)
	eyeAfter, targetAfter := cam.Pose()

	if !vec3AlmostEqual(eyeAfter.Sub(eyeBefore), wantDelta) {
		t.Errorf("eye delta: got %v, want %v", eyeAfter.Sub(eyeBefore), wantDelta)
	}
	if !vec3AlmostEqual(targetAfter.Sub(targetBefore), wantDelta) {
		t.Errorf("target delta: got %v, want %v", targetAfter.Sub(targetBefore), wantDelta)
	}

	// Translation, not scaling: forward direction and magnitude preserved.
	forwardAfter := targetAfter.Sub(eyeAfter)
	if math.Abs(float64(forwardAfter.Len()-forward.Len())) > epsilon {
		t.Errorf("forward magnitude changed: %v -> %v", forward.Len(), forwardAfter.Len())
	}
	if !vec3AlmostEqual(forwardAfter.Normalize(), forward.Normalize()) {
		t.Errorf("forward direction changed: %v -> %v", forward.Normalize(), forwardAfter.Normalize())
	}
}

func TestForwardGuardPreventsOvershoot(t *testing.T) {
	const speed = 0.2
	cc := NewCameraController(WithSpeed(speed))
	// Closer to the target than one speed step.
	cam := NewCamera(
		WithEye(mgl32.Vec3{0, 0, 0.1}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
	)
	cc.HandleKey(common.KeyW, true)

	eyeBefore, targetBefore := cam.Pose()
	cc.UpdateCamera(cam)
	eyeAfter, targetAfter := cam.Pose()

	if eyeBefore != eyeAfter || targetBefore != targetAfter {
		t.Errorf("guard failed: pose moved from (%v, %v) to (%v, %v)",
			eyeBefore, targetBefore, eyeAfter, targetAfter)
	}
}

func TestBackwardHasNoGuard(t *testing.T) {
	const speed = 0.2
	cc := NewCameraController(WithSpeed(speed))
	cam := NewCamera(
		WithEye(mgl32.Vec3{0, 0, 0.1}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
	)
	cc.HandleKey(common.KeyS, true)

	eyeBefore, _ := cam.Pose()
	cc.UpdateCamera(cam)
	eyeAfter, _ := cam.Pose()

	if eyeBefore == eyeAfter {
		t.Error("backward movement was blocked; it carries no overshoot guard")
	}
}

func TestYawLeftPivotsAroundEye(t *testing.T) {
	const speed = 0.2
	cc := NewCameraController(WithSpeed(speed))
	cam := newTestCamera()
	cc.HandleKey(common.KeyLeft, true)

	eyeBefore, targetBefore := cam.Pose()
	forward := targetBefore.Sub(eyeBefore)
	up := cam.Up()
	wantTarget := eyeBefore.Add(mgl32.QuatRotate(mgl32.DegToRad(speed), up).Rotate(forward))

	cc.UpdateCamera(cam)
	eyeAfter, targetAfter := cam.Pose()

	if eyeBefore != eyeAfter {
		t.Errorf("eye moved during yaw: %v -> %v", eyeBefore, eyeAfter)
	}
	if !vec3AlmostEqual(targetAfter, wantTarget) {
		t.Errorf("target: got %v, want %v", targetAfter, wantTarget)
	}

	// Rotation preserves the forward magnitude.
	gotMag := targetAfter.Sub(eyeAfter).Len()
	if math.Abs(float64(gotMag-forward.Len())) > epsilon {
		t.Errorf("forward magnitude changed by yaw: %v -> %v", forward.Len(), gotMag)
	}
}

func TestPitchUpUsesRightAxis(t *testing.T) {
	const speed = 0.2
	cc := NewCameraController(WithSpeed(speed))
	cam := newTestCamera()
	cc.HandleKey(common.KeyUp, true)

	eyeBefore, targetBefore := cam.Pose()
	forward := targetBefore.Sub(eyeBefore)
	right := forward.Normalize().Cross(cam.Up())
	wantTarget := eyeBefore.Add(mgl32.QuatRotate(mgl32.DegToRad(speed), right).Rotate(forward))

	cc.UpdateCamera(cam)
	eyeAfter, targetAfter := cam.Pose()

	if eyeBefore != eyeAfter {
		t.Errorf("eye moved during pitch: %v -> %v", eyeBefore, eyeAfter)
	}
	if !vec3AlmostEqual(targetAfter, wantTarget) {
		t.Errorf("target: got %v, want %v", targetAfter, wantTarget)
	}
}

func TestStrafeOppositesCancel(t *testing.T) {
	cc := NewCameraController(WithSpeed(0.2))
	cam := newTestCamera()
	cc.HandleKey(common.KeyA, true)
	cc.HandleKey(common.KeyD, true)

	eyeBefore, targetBefore := cam.Pose()
	cc.UpdateCamera(cam)
	eyeAfter, targetAfter := cam.Pose()

	// Both strafes read the same right vector, so they cancel exactly up to
	// float addition order.
	if !vec3AlmostEqual(eyeBefore, eyeAfter) {
		t.Errorf("eye drifted with opposing strafes: %v -> %v", eyeBefore, eyeAfter)
	}
	if !vec3AlmostEqual(targetBefore, targetAfter) {
		t.Errorf("target drifted with opposing strafes: %v -> %v", targetBefore, targetAfter)
	}
}

func TestReleaseStopsMotion(t *testing.T) {
	cc := NewCameraController(WithSpeed(0.2))
	cam := newTestCamera()

	cc.HandleKey(common.KeyW, true)
	cc.UpdateCamera(cam)
	eyeHeld, _ := cam.Pose()

	cc.HandleKey(common.KeyW, false)
	cc.UpdateCamera(cam)
	eyeReleased, _ := cam.Pose()

	if eyeHeld != eyeReleased {
		t.Errorf("motion continued after release: %v -> %v", eyeHeld, eyeReleased)
	}
}

func TestHeldIntentAppliesEveryFrame(t *testing.T) {
	const speed = 0.2
	cc := NewCameraController(WithSpeed(speed))
	cam := newTestCamera()
	cc.HandleKey(common.KeyQ, true)

	eyeStart, _ := cam.Pose()
	cc.UpdateCamera(cam)
	cc.UpdateCamera(cam)
	cc.UpdateCamera(cam)
	eyeEnd, _ := cam.Pose()

	wantDelta := cam.Up().Mul(-speed * speedLimit * 3)
	if !vec3AlmostEqual(eyeEnd.Sub(eyeStart), wantDelta) {
		t.Errorf("held move-down over 3 frames: got %v, want %v", eyeEnd.Sub(eyeStart), wantDelta)
	}
}

func TestRotationsDoNotCompoundWithinFrame(t *testing.T) {
	const speed = 0.2
	cc := NewCameraController(WithSpeed(speed))
	cam := newTestCamera()
	// Yaw then pitch held together: pitch rotates the frame-initial forward,
	// replacing the yawed target.
	cc.HandleKey(common.KeyLeft, true)
	cc.HandleKey(common.KeyUp, true)

	eyeBefore, targetBefore := cam.Pose()
	forward := targetBefore.Sub(eyeBefore)
	right := forward.Normalize().Cross(cam.Up())
	wantTarget := eyeBefore.Add(mgl32.QuatRotate(mgl32.DegToRad(speed), right).Rotate(forward))

	cc.UpdateCamera(cam)
	_, targetAfter := cam.Pose()

	if !vec3AlmostEqual(targetAfter, wantTarget) {
		t.Errorf("target: got %v, want %v (pitch should rotate the pre-yaw forward)", targetAfter, wantTarget)
	}
}

func TestRepeatedPressIsIdempotent(t *testing.T) {
	cc := NewCameraController(WithSpeed(0.2))
	camOnce := newTestCamera()
	camTwice := newTestCamera()

	ccTwice := NewCameraController(WithSpeed(0.2))
	ccTwice.HandleKey(common.KeyW, true)
	ccTwice.HandleKey(common.KeyW, true) // key-repeat delivers duplicates

	cc.HandleKey(common.KeyW, true)

	cc.UpdateCamera(camOnce)
	ccTwice.UpdateCamera(camTwice)

	if camOnce.Eye() != camTwice.Eye() {
		t.Errorf("duplicate press changed behavior: %v vs %v", camOnce.Eye(), camTwice.Eye())
	}
}
