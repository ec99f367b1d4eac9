// internal/component/visual.go
package component

import (
	"image/color"

	"tower-of-derp/internal/types"
	"tower-of-derp/internal/utils"
)

// Laser — короткая вспышка луча от башни к цели.
type Laser struct {
	TowerID  types.EntityID
	From, To utils.Vec
	Color    color.Color
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Done reports whether the flash has run its course.
func (l *Laser) Done() bool {
	return l.Timer >= l.Duration
}

// Alpha fades linearly from 1 to 0 over the flash duration.
func (l *Laser) Alpha() float32 {
	if l.Duration <= 0 {
		return 0
	}
	return utils.Lerp(1, 0, float32(l.Timer/l.Duration))
}
