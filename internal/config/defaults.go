package config

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaultLevels embed.FS

// DefaultLevel is the level used when none is requested.
const DefaultLevel = "frogger"

// DefaultFroggerConfig returns the reference level: an 8x6 grid of 100-unit
// cells, three single-row obstacle sets, spawn on the bottom row.
func DefaultFroggerConfig() FroggerConfig {
	row := func(name, color string, r int) ObstacleConfig {
		return ObstacleConfig{
			Name:    name,
			Color:   color,
			Speed:   100,
			Rows:    []int{r},
			Count:   3,
			StartX:  0,
			Spacing: 200,
			Width:   100,
			Height:  100,
		}
	}

	return FroggerConfig{
		Name: "Frogger",
		Grid: GridConfig{
			Cols:     8,
			Rows:     6,
			CellSize: 100,
		},
		Player: PlayerConfig{
			Spawn:  CellRef{Col: 3, Row: 5},
			Radius: 25,
			Color:  "aqua",
		},
		SafeRow: 2,
		Obstacles: []ObstacleConfig{
			row("lower", "orange", 4),
			row("middle", "orange", 3),
			row("upper", "olive", 1),
		},
	}
}

// GetDefaultYAML returns the embedded YAML for a built-in level, or nil.
func GetDefaultYAML(level string) []byte {
	data, err := defaultLevels.ReadFile(path.Join("defaults", level+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// BuiltinLevels returns the IDs of all embedded levels, sorted.
func BuiltinLevels() []string {
	entries, err := defaultLevels.ReadDir("defaults")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids
}
