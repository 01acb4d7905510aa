package character

// MaxStage is the last stage of the ground combo.
const MaxStage = 3

// Phase is the coarse state of the attack controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAirAttack
	PhaseGroundCombo
)

func (p Phase) String() string {
	switch p {
	case PhaseAirAttack:
		return "air-attack"
	case PhaseGroundCombo:
		return "ground-combo"
	}
	return "idle"
}

// AttackOutcome tells the animation selector what the attack did this tick.
type AttackOutcome int

const (
	// AttackNone means no attack is playing; lower priority branches run.
	AttackNone AttackOutcome = iota
	// AttackPlaying means the attack picked this tick's texture.
	AttackPlaying
	// AttackCancelled means a ground combo was interrupted by leaving the
	// ground. The previous texture stays on screen for this tick.
	AttackCancelled
)

// Attack is the combo controller state. Stage 0 with Active set is the
// air attack; stages 1..MaxStage are the ground combo.
type Attack struct {
	Active       bool
	Stage        int
	FrameCounter int
	QueuedNext   bool
	Airborne     bool
}

// Phase reports the controller state.
func (a *Attack) Phase() Phase {
	switch {
	case !a.Active:
		return PhaseIdle
	case a.Stage == 0:
		return PhaseAirAttack
	}
	return PhaseGroundCombo
}

// Locked reports whether horizontal movement is frozen by a ground combo.
func (a *Attack) Locked() bool {
	return a.Active && a.Stage > 0
}

// Reset returns the controller to idle.
func (a *Attack) Reset() {
	*a = Attack{}
}

// Press handles an attack button press and returns the horizontal
// displacement to apply to the character.
//
// Presses on a ladder or at the last combo stage are ignored. A press in the
// air lunges lunge pixels toward facing and restarts as an air attack, which
// also cancels any ground combo in progress. A press on the ground starts the
// combo or queues the next stage.
func (a *Attack) Press(grounded, onLadder bool, facing Facing, lunge float64) float64 {
	if onLadder || a.Stage >= MaxStage {
		return 0
	}

	a.Active = true
	a.QueuedNext = a.Stage != 0

	if !grounded {
		a.Stage = 0
		a.QueuedNext = false
		a.Airborne = true
		return facing.Sign() * lunge
	}

	if a.Stage == 0 {
		a.Stage = 1
		a.FrameCounter = 0
		a.Airborne = false
	}
	return 0
}

// Update advances an active attack by one tick and returns the texture to
// show. Each stage lasts its clip's budget; a queued press advances to the
// next stage only once the current one has finished.
func (a *Attack) Update(airborne bool, clips *Clips) (Category, int, AttackOutcome) {
	if !a.Active {
		return 0, 0, AttackNone
	}

	if airborne {
		if a.Stage != 0 {
			a.Reset()
			return 0, 0, AttackCancelled
		}
		clip := clips[AirAttack]
		index := clip.Once(a.FrameCounter)
		a.FrameCounter++
		if a.FrameCounter >= clip.Budget() {
			a.Reset()
		}
		return AirAttack, index, AttackPlaying
	}

	// Landed during an air attack.
	if a.Stage == 0 {
		a.Reset()
		return 0, 0, AttackNone
	}

	category := AttackStage(a.Stage)
	clip := clips[category]
	index := clip.Once(a.FrameCounter)
	a.FrameCounter++
	if a.FrameCounter >= clip.Budget() {
		a.FrameCounter = 0
		if a.QueuedNext && a.Stage < MaxStage {
			a.QueuedNext = false
			a.Stage++
		} else {
			a.Reset()
		}
	}
	return category, index, AttackPlaying
}
