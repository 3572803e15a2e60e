package ducks

import (
	"fmt"

	"github.com/vovakirdan/duck-tower/internal/core"
)

// LevelConfig is the look of one level.
type LevelConfig struct {
	Color          core.Color `json:"color" jsonschema:"description=Primary duck color"`
	SecondaryColor core.Color `json:"secondaryColor" jsonschema:"description=Accent color"`
	Name           string     `json:"name"`
}

// palette is one candidate look for a level.
type palette struct {
	color     core.Color
	secondary core.Color
	name      string
}

var palettes = []palette{
	{"#F7D54A", "#E8A33D", "Sunny Pond"},
	{"#FFFFFF", "#F2B134", "Snow Lake"},
	{"#7BC96F", "#3E7D3A", "Reed Marsh"},
	{"#6EC6FF", "#2A78C2", "Blue Lagoon"},
	{"#FF8A65", "#C2543A", "Sunset Bay"},
	{"#B39DDB", "#6A4FA3", "Lavender Creek"},
	{"#F48FB1", "#B0476F", "Flamingo Shore"},
	{"#FFD180", "#A87B2F", "Sandy Delta"},
	{"#80CBC4", "#3B8F87", "Mint Fjord"},
	{"#E0E0E0", "#8E8E8E", "Foggy Harbor"},
}

// initialLevels is how many levels are generated when a run starts.
const initialLevels = 10

// LevelBook derives level looks from a seed. Each level has its own
// stream, so level n looks the same however many levels came before it.
type LevelBook struct {
	base   uint32
	levels []LevelConfig
}

// NewLevelBook generates the first levels for a seed.
func NewLevelBook(seed string) *LevelBook {
	b := &LevelBook{base: HashSeed(seed)}
	b.Ensure(initialLevels - 1)
	return b
}

// Ensure generates levels up to and including index level.
func (b *LevelBook) Ensure(level int) {
	for i := len(b.levels); i <= level; i++ {
		b.levels = append(b.levels, b.generate(i))
	}
}

// Level returns the look of a level, generating it when needed.
func (b *LevelBook) Level(level int) LevelConfig {
	level = max(level, 0)
	b.Ensure(level)
	return b.levels[level]
}

// Levels returns every generated level. The slice must not be modified.
func (b *LevelBook) Levels() []LevelConfig {
	return b.levels
}

func (b *LevelBook) generate(level int) LevelConfig {
	rng := &RNG{state: LevelSeed(b.base, level)}
	p := palettes[rng.Intn(len(palettes))]
	return LevelConfig{
		Color:          p.color,
		SecondaryColor: p.secondary,
		Name:           fmt.Sprintf("%s %d", p.name, level+1),
	}
}
