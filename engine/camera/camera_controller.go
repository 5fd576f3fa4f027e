package camera

// CameraController defines the interface for keyboard-driven camera control.
// The controller accumulates "held" intents from key down/up events and applies
// one frame's worth of motion to a Camera when UpdateCamera is called. Holding
// a key produces continuous motion: intents stay active until the matching
// release event arrives.
type CameraController interface {
	// HandleKey records a key press or release. Recognized keys each map to one
	// movement or rotation intent; repeated identical events simply overwrite
	// the intent with the same value.
	//
	// Parameters:
	//   - keyCode: the virtual key code (GLFW convention, see common key codes)
	//   - pressed: true on key down, false on key up
	//
	// Returns:
	//   - bool: true if the key maps to an intent, false if unrecognized (the
	//     caller may pass unrecognized keys to other handlers)
	HandleKey(keyCode uint32, pressed bool) bool

	// UpdateCamera applies all currently held intents to the camera's pose.
	// Call once per frame. With no intents held, the pose is left untouched.
	//
	// Translations accumulate sequentially onto eye and target; rotations pivot
	// around the eye and each rotate the forward vector captured at the start
	// of the update, so rotations do not compound within a single frame.
	//
	// Parameters:
	//   - cam: the camera whose pose is mutated
	UpdateCamera(cam Camera)

	// Speed returns the controller's step size. It is shared between linear and
	// angular motion: rotations advance speed degrees per frame, translations
	// advance speed * 0.05 world units per frame.
	//
	// Returns:
	//   - float32: the configured speed
	Speed() float32
}
