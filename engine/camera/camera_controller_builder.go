package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithSpeed sets the controller's step size, shared by linear and angular
// motion: rotations advance speed degrees per frame, translations advance
// speed * 0.05 world units per frame.
//
// Parameters:
//   - speed: the step size
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}
