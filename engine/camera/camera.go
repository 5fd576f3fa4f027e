package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// OpenGLToWGPUMatrix remaps OpenGL-convention clip space (z in [-1, 1]) to the
// WGPU depth range (z in [0, 1]). Stored column-major, applied on the left of
// the combined projection * view matrix.
var OpenGLToWGPUMatrix = mgl32.Mat4{
	1.0, 0.0, 0.0, 0.0,
	0.0, 1.0, 0.0, 0.0,
	0.0, 0.0, 0.5, 0.0,
	0.0, 0.0, 0.5, 1.0,
}

// cameraImpl is the single implementation of Camera.
type cameraImpl struct {
	mu *sync.Mutex

	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	aspect float32
	fovy   float32 // degrees
	znear  float32
	zfar   float32
}

// Camera defines the interface for the camera system.
// The camera holds a world-space pose (eye, target, up) and perspective
// settings, and computes the combined view-projection matrix on demand.
// The pose is typically mutated each frame by a CameraController.
//
// Degenerate poses (eye == target, or up parallel to target-eye) produce a
// singular or NaN view matrix. This is an unchecked precondition; callers must
// maintain separation.
type Camera interface {
	// Eye returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Target returns the world-space point the camera looks toward.
	//
	// Returns:
	//   - mgl32.Vec3: the look-at point
	Target() mgl32.Vec3

	// Up returns the camera's up reference vector. It is never renormalized by
	// the camera; callers must supply a valid up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Fovy returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fovy() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Pose returns the eye and target together under a single lock so a caller
	// observing both never sees a half-applied controller update.
	//
	// Returns:
	//   - eye, target: the current pose
	Pose() (eye, target mgl32.Vec3)

	// SetEye sets the camera's world-space position.
	//
	// Parameters:
	//   - eye: the new eye position
	SetEye(eye mgl32.Vec3)

	// SetTarget sets the look-at point.
	//
	// Parameters:
	//   - target: the new look-at point
	SetTarget(target mgl32.Vec3)

	// SetPose sets eye and target together under a single lock.
	//
	// Parameters:
	//   - eye, target: the new pose
	SetPose(eye, target mgl32.Vec3)

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl32.Vec3)

	// SetAspect sets the aspect ratio (width / height). Called by the host on
	// window resize; the other projection parameters are fixed at construction.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// BuildViewProjectionMatrix computes the combined view-projection matrix
	// from the current pose and projection parameters. Pure: no camera state is
	// mutated and repeated calls with the same state return the same matrix.
	//
	// The result is OpenGLToWGPUMatrix * Perspective * LookAt - the view is
	// applied first to world-space points, then the projection, then the
	// depth-range correction.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix (column-major)
	BuildViewProjectionMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default pose and perspective settings.
// Defaults: eye (0, 1, 2), target origin, up +Y, fovy 45 degrees, aspect 1,
// near 0.1, far 100.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		eye:    mgl32.Vec3{0, 1, 2},
		target: mgl32.Vec3{0, 0, 0},
		up:     mgl32.Vec3{0, 1, 0},
		aspect: 1.0,
		fovy:   45.0,
		znear:  0.1,
		zfar:   100.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Fovy() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovy
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.znear
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zfar
}

func (c *cameraImpl) Pose() (eye, target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye, c.target
}

func (c *cameraImpl) SetEye(eye mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = eye
}

func (c *cameraImpl) SetTarget(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

func (c *cameraImpl) SetPose(eye, target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = eye
	c.target = target
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) BuildViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := mgl32.LookAtV(c.eye, c.target, c.up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.fovy), c.aspect, c.znear, c.zfar)

	return OpenGLToWGPUMatrix.Mul4(proj).Mul4(view)
}
