// internal/defs/stage.go
package defs

// WaveDefinition describes one burst of enemies.
type WaveDefinition struct {
	Count         int     `json:"count"`          // enemies in the wave
	SpawnInterval int     `json:"spawn_interval"` // ticks between two enemies
	EnemyLife     int     `json:"enemy_life"`
	EnemySpeed    float64 `json:"enemy_speed"`
	Pause         int     `json:"pause"` // ticks of quiet after the wave
}

// StageDefinition is the enemy script of a stage. Waves repeat in order
// once the last one is done.
type StageDefinition struct {
	ID          string           `json:"id"`
	SpawnMargin float64          `json:"spawn_margin"` // min distance from the side edges
	Waves       []WaveDefinition `json:"waves"`
}
