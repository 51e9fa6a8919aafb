package pong

// Default game settings, in arena units and seconds.
const (
	DefaultPaddleSpeed  = 500.0 // Units per second while a key is held
	DefaultPaddleHeight = 100.0
	DefaultPaddleWidth  = 10.0
	DefaultBallSpeed    = 200.0 // Constant ball speed; only direction changes
	DefaultBallSize     = 10.0  // Drawn size only, collisions treat the ball as a point
	DefaultScoreSize    = 50.0
)

// Tuning holds the physical constants of a match.
type Tuning struct {
	PaddleSpeed  float64
	PaddleWidth  float64
	PaddleHeight float64
	BallSpeed    float64
	BallSize     float64
}

// DefaultTuning returns the standard constants.
func DefaultTuning() Tuning {
	return Tuning{
		PaddleSpeed:  DefaultPaddleSpeed,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		BallSpeed:    DefaultBallSpeed,
		BallSize:     DefaultBallSize,
	}
}
