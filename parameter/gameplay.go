package parameter

// Projectile Pool
const (
	// ShotCapacity is the fixed number of shot slots; firing on a full pool is dropped
	ShotCapacity = 16

	// ShotLifetime is the countdown in frames of a fresh shot
	// Counts frames, not wall time
	ShotLifetime = 256

	// ShotSpeedMultiplier scales the heading vector for shot velocity
	ShotSpeedMultiplier = 2
)

// Ship Physics (8.8 fixed point, per frame)
const (
	// VelocityCap bounds each velocity axis; |v| must stay strictly below it
	VelocityCap = 512

	// ThrustDivisor scales the heading vector down to a per-frame impulse
	ThrustDivisor = 32

	// FrictionStep is the per-axis decay toward zero when not thrusting
	FrictionStep = 1

	// TurnStep is the angle change per frame of held turn input
	TurnStep = 1
)

// Spawn
const (
	// Player0Angle faces player 0 toward +X
	Player0Angle = 64

	// Player1Angle faces player 1 toward -X (-64 wrapped)
	Player1Angle = 256 - 64
)

// Collision (8.8 fixed point)
const (
	// ShipRadius is used for the ship-vs-ship head-on test
	ShipRadius = 8 * 256

	// ShotRadius is the shot side of the shot-vs-ship test
	ShotRadius = 1 * 256

	// TargetRadius is the enlarged ship side of the shot-vs-ship test
	TargetRadius = 11 * 256
)

// Explosion
const (
	// ExplosionFrames is the length of the debris flourish
	ExplosionFrames = 400

	// DebrisSpan and DebrisOffset give the jitter Rand15()%span - offset
	DebrisSpan   = 0x1FFF
	DebrisOffset = 0x1000
)

// Score
const (
	// ScoreModulo wraps the two-digit counter
	ScoreModulo = 100
)
