package core

// Input is an abstract player intent, decoupled from the device that produced it.
// Keyboards, touch screens and terminals all translate their raw events into
// one of these before the game sees them.
type Input int

const (
	InputNone     Input = iota
	InputJump           // Space, Up, single touch
	InputDuck           // Down, two-finger touch
	InputStopDuck       // Down released, touch ended
)

// String returns the canonical event name for the input.
func (i Input) String() string {
	switch i {
	case InputJump:
		return "jump"
	case InputDuck:
		return "duck"
	case InputStopDuck:
		return "stop-duck"
	default:
		return "none"
	}
}

// ParseInput maps an event name to an Input.
// Unrecognized names map to InputNone.
func ParseInput(name string) Input {
	switch name {
	case "jump":
		return InputJump
	case "duck":
		return InputDuck
	case "stop-duck":
		return InputStopDuck
	default:
		return InputNone
	}
}
