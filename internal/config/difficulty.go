package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// SpeedScale returns the obstacle speed multiplier for a preset.
func SpeedScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyFroggerPreset scales every obstacle set speed once. Speeds stay
// constant during play.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	scale := SpeedScale(preset)
	if scale == 1.0 {
		return
	}
	// Copy so presets never write through to a shared slice.
	sets := make([]ObstacleConfig, len(cfg.Obstacles))
	copy(sets, cfg.Obstacles)
	for i := range sets {
		sets[i].Speed *= scale
	}
	cfg.Obstacles = sets
}
