package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/xiaochen0517/wgpu-test/common"
)

// speedLimit is a fixed damping constant applied to all linear (non-rotational)
// movements, independent of the configurable speed.
const speedLimit = 0.05

// action enumerates the camera intents a key can toggle. Using a closed
// enumeration keyed into a fixed-size array keeps the intent state exhaustive:
// adding an action extends the array automatically.
type action int

const (
	actionMoveForward action = iota
	actionMoveBackward
	actionStrafeLeft
	actionStrafeRight
	actionYawLeft
	actionYawRight
	actionPitchUp
	actionPitchDown
	actionMoveUp
	actionMoveDown

	actionCount
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	speed float32

	// held tracks which intents are currently active, indexed by action.
	held [actionCount]bool
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new keyboard camera controller.
// The default speed is 0.2; rotations advance speed degrees per frame and
// translations advance speed * 0.05 world units per frame.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:    &sync.Mutex{},
		speed: 0.2,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

// actionForKey maps a virtual key code to its camera intent.
// W/S/A/D translate, arrow keys rotate, E/Q move along the up axis.
//
// Parameters:
//   - keyCode: the virtual key code (GLFW convention)
//
// Returns:
//   - action: the mapped intent (valid only when ok is true)
//   - bool: false if the key is not bound
func actionForKey(keyCode uint32) (action, bool) {
	switch keyCode {
	case common.KeyW:
		return actionMoveForward, true
	case common.KeyS:
		return actionMoveBackward, true
	case common.KeyA:
		return actionStrafeLeft, true
	case common.KeyD:
		return actionStrafeRight, true
	case common.KeyLeft:
		return actionYawLeft, true
	case common.KeyRight:
		return actionYawRight, true
	case common.KeyUp:
		return actionPitchUp, true
	case common.KeyDown:
		return actionPitchDown, true
	case common.KeyE:
		return actionMoveUp, true
	case common.KeyQ:
		return actionMoveDown, true
	default:
		return 0, false
	}
}

func (cc *cameraControllerImpl) HandleKey(keyCode uint32, pressed bool) bool {
	a, ok := actionForKey(keyCode)
	if !ok {
		return false
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.held[a] = pressed
	return true
}

func (cc *cameraControllerImpl) Speed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.speed
}

// UpdateCamera applies the held intents in a fixed order. Two quirks of the
// observed motion model are kept on purpose:
//   - forward movement is guarded against overshooting the target point,
//     backward movement is not;
//   - yaw and pitch both rotate the forward vector captured before any
//     translation, so rotations never compound within one frame and strafing
//     does not skew the rotation axes.
func (cc *cameraControllerImpl) UpdateCamera(cam Camera) {
	cc.mu.Lock()
	held := cc.held
	speed := cc.speed
	cc.mu.Unlock()

	eye, target := cam.Pose()
	up := cam.Up()

	forward := target.Sub(eye)
	forwardNorm := forward.Normalize()
	forwardMag := forward.Len()

	step := forwardNorm.Mul(speed * speedLimit)

	// Guard keeps the eye from crossing the target point when moving forward.
	if held[actionMoveForward] && forwardMag > speed {
		eye = eye.Add(step)
		target = target.Add(step)
	}
	if held[actionMoveBackward] {
		eye = eye.Sub(step)
		target = target.Sub(step)
	}

	right := forwardNorm.Cross(up)
	strafe := right.Mul(speed * speedLimit)

	if held[actionStrafeLeft] {
		eye = eye.Sub(strafe)
		target = target.Sub(strafe)
	}
	if held[actionStrafeRight] {
		eye = eye.Add(strafe)
		target = target.Add(strafe)
	}

	// Rotations pivot around the (possibly translated) eye, rotating the
	// frame-initial forward vector. A later rotation replaces the target set by
	// an earlier one in the same frame.
	if held[actionYawLeft] {
		rotation := mgl32.QuatRotate(mgl32.DegToRad(speed), up)
		target = eye.Add(rotation.Rotate(forward))
	}
	if held[actionYawRight] {
		rotation := mgl32.QuatRotate(mgl32.DegToRad(-speed), up)
		target = eye.Add(rotation.Rotate(forward))
	}

	// Pitch axis from the frame-initial forward, not the yawed one.
	right = forwardNorm.Cross(up)

	if held[actionPitchUp] {
		rotation := mgl32.QuatRotate(mgl32.DegToRad(speed), right)
		target = eye.Add(rotation.Rotate(forward))
	}
	if held[actionPitchDown] {
		rotation := mgl32.QuatRotate(mgl32.DegToRad(-speed), right)
		target = eye.Add(rotation.Rotate(forward))
	}

	lift := up.Mul(speed * speedLimit)

	if held[actionMoveUp] {
		eye = eye.Add(lift)
		target = target.Add(lift)
	}
	if held[actionMoveDown] {
		eye = eye.Sub(lift)
		target = target.Sub(lift)
	}

	cam.SetPose(eye, target)
}
