// internal/component/game_state.go
package component

// GamePhase — фаза игровой сессии
type GamePhase int

const (
	PhaseRunning GamePhase = iota
	PhaseOver              // база разрушена
)

// GameStats counts what happened during a session.
type GameStats struct {
	Kills          int
	Spawned        int
	TowersBuilt    int
	GoldSpent      uint32
	GoldCollected  uint32
	BaseDamage     float64
	ElapsedSeconds float64
}
