// internal/event/types.go
package event

const (
	PlayerReady    EventType = "PlayerReady"    // entrance finished, player has control
	EnemySpawned   EventType = "EnemySpawned"   // Data: *entity.Enemy
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: *entity.Enemy
	WaveStarted    EventType = "WaveStarted"    // Data: wave index
)
