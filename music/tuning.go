package music

// Tuning is a named, ordered sequence of open-string pitches, low to high.
type Tuning struct {
	Name    string
	Pitches []Pitch
}

func pitches(p ...int) []Pitch {
	out := make([]Pitch, len(p))
	for i, v := range p {
		out[i] = Pitch(v)
	}
	return out
}

// Built-in tunings, preserved from the reference implementation's defaults.
var (
	StandardSix   = Tuning{Name: "Standard", Pitches: pitches(40, 45, 50, 55, 59, 64)}
	DropD         = Tuning{Name: "Drop D", Pitches: pitches(38, 45, 50, 55, 59, 64)}
	Baritone      = Tuning{Name: "Baritone", Pitches: pitches(35, 40, 45, 50, 54, 59)}
	StandardSeven = Tuning{Name: "Standard 7-String", Pitches: pitches(35, 40, 45, 50, 55, 59, 64)}
	StandardEight = Tuning{Name: "Standard 8-String", Pitches: pitches(28, 35, 40, 45, 50, 55, 59, 64)}
)

// Tunings lists all built-in tunings.
var Tunings = []Tuning{StandardSix, DropD, Baritone, StandardSeven, StandardEight}
