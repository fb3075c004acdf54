package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Wrap folds p back onto the grid, re-entering at the opposite edge.
func (s Size) Wrap(p Point) Point {
	if s.W <= 0 || s.H <= 0 {
		return Point{}
	}
	return Point{
		X: (p.X%s.W + s.W) % s.W,
		Y: (p.Y%s.H + s.H) % s.H,
	}
}

// InBounds reports whether p addresses a cell of a grid this size.
func (s Size) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.W && p.Y < s.H
}

// Point is a cell coordinate or a displacement between cells.
type Point struct {
	X, Y int
}

// Add returns p displaced by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Neg returns the opposite displacement.
func (p Point) Neg() Point { return Point{X: -p.X, Y: -p.Y} }

// Round status names reported in Scoreboard.Status.
const (
	StatusRunning     = "running"
	StatusPaused      = "paused"
	StatusJustDied    = "just died"
	StatusGameOver    = "game over"
	StatusStartScreen = "start screen"
)

// Scoreboard is the summary a harness shows next to the grid.
type Scoreboard struct {
	Score  int
	Length int
	Status string
	Ticks  uint64
}

// Sim defines the minimal contract a grid game must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Surface() Surface
}

// KeyHandler is implemented by sims that consume keyboard input.
type KeyHandler interface {
	HandleKey(k Key)
}

// ScoreboardProvider is implemented by sims that keep score.
type ScoreboardProvider interface {
	Scoreboard() Scoreboard
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
