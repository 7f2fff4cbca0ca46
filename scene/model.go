package scene

import (
	"github.com/lixenwraith/prize-wheel/vmath"
)

// ModelPrizeWheel is the name of the single model resource this experience
// loads
const ModelPrizeWheel = "prize_wheel"

// BuildWheelModel constructs the prize-wheel model: a static base and
// pointer, plus the rotating wheel disc. The root starts hidden; the
// placement sequencer reveals it once a position has been applied.
func BuildWheelModel() *Node {
	root := NewNode("PrizeWheelRoot")
	root.Visible = false

	base := NewNode("Base")
	base.Position = vmath.Vec3{Y: -0.05}
	root.AddChild(base)

	// Child name carries the "wheel" marker FindSpinner keys on
	disc := NewNode("Wheel_Spinner")
	root.AddChild(disc)

	pointer := NewNode("Pointer")
	pointer.Position = vmath.Vec3{Y: 0.55}
	root.AddChild(pointer)

	return root
}
