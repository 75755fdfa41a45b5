package constants

// Canvas
const (
	// CanvasWidth is the logical drawing surface width in canvas pixels
	CanvasWidth = 800

	// CanvasHeight is the logical drawing surface height in canvas pixels
	CanvasHeight = 600
)

// Road Geometry
const (
	RoadWidth = 400
	LaneWidth = 100
	LaneCount = 4
)

// Player Vehicle
const (
	PlayerWidth  = 60
	PlayerHeight = 100

	// PlayerBottomMargin is the gap between the player's rear bumper and the canvas bottom
	PlayerBottomMargin = 50

	// PlayerSteerStep is the targetX nudge per tick while a steer intent is held
	PlayerSteerStep = 8

	// PlayerSmoothing is the fraction of the remaining gap to targetX closed each tick
	PlayerSmoothing = 0.15
)

// Traffic Vehicles
const (
	TrafficWidth    = 60
	TrafficHeight   = 100
	TrafficMinSpeed = 2.0
	TrafficMaxSpeed = 6.0

	// TrafficSpawnRate is the per-tick spawn probability at level 1
	TrafficSpawnRate = 0.02

	// TrafficSpawnClearance blocks a spawn while a car in the chosen lane is still above this y
	TrafficSpawnClearance = 100.0

	// TrafficPassBonus is awarded once per car that drops past the player
	TrafficPassBonus = 10
)

// Difficulty Curve
const (
	DifficultySpeedIncrease = 0.5
	DifficultySpawnIncrease = 0.005
	DifficultyLevelDistance = 1000.0

	// DifficultyMaxSpawnRate caps the spawn probability regardless of level
	DifficultyMaxSpawnRate = 0.1
)

// Session
const (
	// InitialGameSpeed is the global scroll speed at session start
	InitialGameSpeed = 3.0

	// DistanceFactor converts game speed into distance (and score) per tick
	DistanceFactor = 0.1

	// DisplaySpeedBase and DisplaySpeedScale map game speed onto the HUD speedometer
	DisplaySpeedBase  = 60
	DisplaySpeedScale = 10
)
