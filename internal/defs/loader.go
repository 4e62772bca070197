package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

//go:embed stage.json
var defaultStage []byte

// ErrEmptyStage is returned for a stage without playable waves.
var ErrEmptyStage = errors.New("stage has no waves")

// LoadStage reads a stage definition file. An empty path loads the built-in stage.
func LoadStage(path string) (*StageDefinition, error) {
	data := defaultStage
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read stage file: %w", err)
		}
		data = file
	}

	stage, err := ParseStage(data)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded stage %q with %d waves", stage.ID, len(stage.Waves))
	return stage, nil
}

// ParseStage decodes and validates a stage definition.
func ParseStage(data []byte) (*StageDefinition, error) {
	var stage StageDefinition
	if err := json.Unmarshal(data, &stage); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stage: %w", err)
	}
	if len(stage.Waves) == 0 {
		return nil, fmt.Errorf("stage %q: %w", stage.ID, ErrEmptyStage)
	}
	if stage.SpawnMargin < 0 {
		return nil, fmt.Errorf("stage %q: spawn_margin must not be negative", stage.ID)
	}
	for i, w := range stage.Waves {
		if w.Count <= 0 || w.SpawnInterval <= 0 || w.EnemyLife <= 0 {
			return nil, fmt.Errorf("stage %q wave %d: count, spawn_interval and enemy_life must be positive", stage.ID, i)
		}
		if w.Pause < 0 || w.EnemySpeed < 0 {
			return nil, fmt.Errorf("stage %q wave %d: pause and enemy_speed must not be negative", stage.ID, i)
		}
	}
	return &stage, nil
}
