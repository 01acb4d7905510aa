package character

// Facing is the direction the character sprite looks toward.
type Facing int

const (
	Right Facing = iota
	Left
)

var facingSign = [...]float64{
	Right: 1,
	Left:  -1,
}

var facingNames = [...]string{
	Right: "right",
	Left:  "left",
}

// Sign returns the signed unit step for the facing: +1 right, -1 left.
func (f Facing) Sign() float64 {
	return facingSign[f]
}

func (f Facing) String() string {
	return facingNames[f]
}

// Turn returns the facing after moving with horizontal velocity vx.
// A zero velocity keeps the current facing.
func (f Facing) Turn(vx float64) Facing {
	switch {
	case vx < 0 && f == Right:
		return Left
	case vx > 0 && f == Left:
		return Right
	}
	return f
}
