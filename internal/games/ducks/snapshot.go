package ducks

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// DuckSnapshot is the read-only view of one duck.
type DuckSnapshot struct {
	X              float64 `json:"x" jsonschema:"description=Centre x in design pixels"`
	Y              float64 `json:"y" jsonschema:"description=Centre y in design pixels (grows downward)"`
	W              float64 `json:"w"`
	H              float64 `json:"h"`
	State          string  `json:"state" jsonschema:"enum=hover,enum=dragged,enum=falling,enum=landed"`
	IsFalling      bool    `json:"isFalling"`
	IsStatic       bool    `json:"isStatic"`
	IsBeingDragged bool    `json:"isBeingDragged"`
	MergeLevel     int     `json:"mergeLevel" jsonschema:"description=Merges absorbed (base duck only),minimum=0"`
	SpawnX         float64 `json:"spawnX" jsonschema:"description=Seeded spawn position"`
	PrevY          float64 `json:"prevY"`
	Velocity       float64 `json:"velocity"`
}

// ParticleSnapshot is the read-only view of one particle.
type ParticleSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Life  int     `json:"life" jsonschema:"description=Ticks left,minimum=0"`
	Color string  `json:"color,omitempty"`
}

// WobbleSnapshot is the read-only view of the wobble physics.
type WobbleSnapshot struct {
	Angle              float64     `json:"angle" jsonschema:"description=Tower tilt in radians"`
	AngularVelocity    float64     `json:"angularVelocity"`
	Instability        float64     `json:"instability" jsonschema:"minimum=0,maximum=1"`
	CenterOfMassOffset float64     `json:"centerOfMassOffset"`
	Damping            float64     `json:"damping"`
	Restoring          float64     `json:"restoring"`
	MaxAngle           float64     `json:"maxAngle"`
	State              WobbleState `json:"state"`
}

// Snapshot is the complete observable game state. It holds only plain
// values, so it can be serialized, compared and hashed.
type Snapshot struct {
	Mode          string             `json:"mode" jsonschema:"enum=MENU,enum=PLAYING,enum=LEVELUP,enum=GAMEOVER,required"`
	Score         int                `json:"score" jsonschema:"description=Landings this run,minimum=0,required"`
	Level         int                `json:"level" jsonschema:"minimum=0,required"`
	MergeCount    int                `json:"mergeCount" jsonschema:"description=Landings since the last merge,minimum=0,required"`
	Seed          string             `json:"seed" jsonschema:"required"`
	Width         float64            `json:"width" jsonschema:"description=Design width in pixels,required"`
	Height        float64            `json:"height" jsonschema:"description=Design height in pixels,required"`
	Scale         float64            `json:"scale" jsonschema:"description=Screen pixels per design pixel,required"`
	GameOffsetX   float64            `json:"gameOffsetX" jsonschema:"required"`
	BaseY         float64            `json:"baseY" jsonschema:"required"`
	CameraY       float64            `json:"cameraY" jsonschema:"required"`
	TargetCameraY float64            `json:"targetCameraY" jsonschema:"required"`
	Ducks         []DuckSnapshot     `json:"ducks" jsonschema:"description=The tower bottom to top (base first),required"`
	CurrentDuck   *DuckSnapshot      `json:"currentDuck" jsonschema:"description=Active duck or null"`
	Particles     []ParticleSnapshot `json:"particles" jsonschema:"required"`
	WobblePhysics WobbleSnapshot     `json:"wobblePhysics" jsonschema:"required"`
	LevelConfigs  []LevelConfig      `json:"levelConfigs" jsonschema:"required"`
	IsDragging    bool               `json:"isDragging" jsonschema:"required"`
	Tick          uint64             `json:"tick" jsonschema:"required"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          string(g.mode),
		Score:         g.score,
		Level:         g.level,
		MergeCount:    g.mergeCount,
		Seed:          g.seed,
		Width:         g.view.DesignW,
		Height:        g.view.DesignH,
		Scale:         g.view.Scale,
		GameOffsetX:   g.view.OffsetX,
		BaseY:         g.baseY,
		CameraY:       g.camera.Y,
		TargetCameraY: g.camera.TargetY,
		Ducks:         []DuckSnapshot{},
		Particles:     make([]ParticleSnapshot, 0, g.particles.Len()),
		WobblePhysics: WobbleSnapshot{
			Angle:              g.wobble.Angle,
			AngularVelocity:    g.wobble.AngularVelocity,
			Instability:        g.wobble.Instability,
			CenterOfMassOffset: g.wobble.CenterOfMassOffset,
			Damping:            g.wobble.Damping,
			Restoring:          g.wobble.Restoring,
			MaxAngle:           g.wobble.MaxAngle,
			State:              g.wobble.State(),
		},
		LevelConfigs: []LevelConfig{},
		IsDragging:   g.dragging,
		Tick:         g.tick,
	}

	if g.stack != nil {
		for _, d := range g.stack.Ducks() {
			s.Ducks = append(s.Ducks, snapshotDuck(d))
		}
	}
	if g.current != nil {
		cur := snapshotDuck(g.current)
		s.CurrentDuck = &cur
	}
	for _, p := range g.particles.Particles() {
		s.Particles = append(s.Particles, ParticleSnapshot{
			X: p.X, Y: p.Y, VX: p.VX, VY: p.VY, Life: p.Life, Color: string(p.Color),
		})
	}
	if g.levels != nil {
		s.LevelConfigs = append(s.LevelConfigs, g.levels.Levels()...)
	}

	return s
}

func snapshotDuck(d *Duck) DuckSnapshot {
	return DuckSnapshot{
		X:              d.X,
		Y:              d.Y,
		W:              d.W,
		H:              d.H,
		State:          d.State.String(),
		IsFalling:      d.IsFalling(),
		IsStatic:       d.IsStatic(),
		IsBeingDragged: d.IsBeingDragged(),
		MergeLevel:     d.MergeLevel,
		SpawnX:         d.SpawnX,
		PrevY:          d.PrevY,
		Velocity:       d.Velocity,
	}
}

// Hash returns a hex digest of the snapshot's JSON form. Equal hashes mean
// equal states.
func (s Snapshot) Hash() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// State returns the current snapshot.
func (g *Game) State() Snapshot {
	return g.Snapshot()
}
