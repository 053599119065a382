package game

// Keys is the set of logical directions currently held. Frontends map each
// physical binding (letter and arrow) onto the same logical direction.
type Keys uint8

// Press returns k with h held.
func (k Keys) Press(h Heading) Keys {
	return k | 1<<uint(h)
}

// Held reports whether h is held.
func (k Keys) Held(h Heading) bool {
	return k&(1<<uint(h)) != 0
}

// Button is a menu action triggered by the player.
type Button int

const (
	ButtonNone Button = iota
	ButtonPlay
	ButtonQuit
)

// Input is everything a frontend forwards for one frame.
type Input struct {
	Held   Keys
	Button Button // button clicked this frame, if any
	Exit   bool   // exit key, honoured in every state
}

// resolveOrder is the fixed tie-break when several keys are held.
var resolveOrder = [...]Heading{Up, Left, Down, Right}

// Resolve picks the heading for this frame: the first of Up, Left, Down,
// Right that is held and is not the opposite of current. ok is false when
// nothing qualifies and the heading stays as it is.
func Resolve(current Heading, held Keys) (h Heading, ok bool) {
	for _, d := range resolveOrder {
		if held.Held(d) && d != current.Opposite() {
			return d, true
		}
	}
	return current, false
}
