// internal/component/player.go
package component

// Player хранит экономику и здоровье базы игрока.
type Player struct {
	Health float64
	Gold   uint32
}

func (p *Player) CanAfford(cost uint32) bool {
	return p.Gold >= cost
}

// Spend deducts cost if the player can afford it and reports whether it did.
func (p *Player) Spend(cost uint32) bool {
	if !p.CanAfford(cost) {
		return false
	}
	p.Gold -= cost
	return true
}

func (p *Player) Earn(amount uint32) {
	p.Gold += amount
}

// TakeDamage lowers health, clamping at zero, and returns how much health
// was actually lost.
func (p *Player) TakeDamage(amount float64) float64 {
	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	return amount
}

func (p *Player) Alive() bool {
	return p.Health > 0
}
