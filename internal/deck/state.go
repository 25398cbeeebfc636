package deck

// State is the current state of a Session. The concrete types are
// Selecting, Loading, Viewing and Completed.
type State interface {
	isState()
}

// Selecting waits for a subject to be chosen.
type Selecting struct{}

// Loading fetches a batch of cards.
type Loading struct{}

// Viewing shows the card at Index; Flipped means its answer side is up.
type Viewing struct {
	Index   int
	Flipped bool
}

// Completed means the deck's target count has been reached.
type Completed struct{}

func (Selecting) isState() {}
func (Loading) isState()   {}
func (Viewing) isState()   {}
func (Completed) isState() {}

// StateName returns a stable lowercase name for s.
func StateName(s State) string {
	switch s.(type) {
	case Selecting:
		return "selecting"
	case Loading:
		return "loading"
	case Viewing:
		return "viewing"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}
