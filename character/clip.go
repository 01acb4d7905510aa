package character

import "fmt"

// Category is an animation set of the character.
type Category int

const (
	Idle Category = iota
	Walk
	Jump
	Fall
	Climb
	AirAttack
	Attack1
	Attack2
	Attack3
	CategoryCount // Must be last - used for array sizing
)

var categoryNames = [...]string{
	Idle:      "idle",
	Walk:      "walk",
	Jump:      "jump",
	Fall:      "fall",
	Climb:     "climb",
	AirAttack: "air-attack",
	Attack1:   "attack1",
	Attack2:   "attack2",
	Attack3:   "attack3",
}

func (c Category) String() string {
	if c < 0 || c >= CategoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a manifest key back to its category.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("unknown animation category %q", name)
}

// AttackStage returns the ground combo category for stage 1..MaxStage.
func AttackStage(stage int) Category {
	return Attack1 + Category(stage-1)
}

// Clip is the timing of one category: Frames textures, each held for
// Divisor ticks.
type Clip struct {
	Frames  int
	Divisor int
}

// Index returns the looping texture index for counter.
func (c Clip) Index(counter int) int {
	if c.Frames <= 0 || c.Divisor <= 0 {
		return 0
	}
	return counter / c.Divisor % c.Frames
}

// Once returns the texture index for counter without looping, holding the
// last texture once the clip has played through.
func (c Clip) Once(counter int) int {
	if c.Frames <= 0 || c.Divisor <= 0 {
		return 0
	}
	i := counter / c.Divisor
	if i >= c.Frames {
		return c.Frames - 1
	}
	return i
}

// Budget is the number of ticks needed to play every texture once.
func (c Clip) Budget() int {
	return c.Frames * c.Divisor
}

// Clips holds the timing of every category.
type Clips [CategoryCount]Clip

// Frame identifies one texture of the character's sprite set.
type Frame struct {
	Category Category
	Index    int
	Facing   Facing
}
