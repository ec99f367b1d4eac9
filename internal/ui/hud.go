// internal/ui/hud.go
package ui

import (
	"fmt"

	"tower-of-derp/internal/component"
	"tower-of-derp/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 120
	healthBarHeight = 8
)

// HUD рисует нижнюю панель: золото, здоровье базы и статистику.
type HUD struct {
	face      font.Face
	maxHealth float64
	sessionID string
}

func NewHUD(face font.Face, maxHealth float64, sessionID string) *HUD {
	return &HUD{face: face, maxHealth: maxHealth, sessionID: sessionID}
}

func (h *HUD) Draw(screen *ebiten.Image, player component.Player, stats component.GameStats, speed float64) {
	top := float32(config.ScreenHeight - config.UIHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.UIHeight, config.UIBackgroundColor, false)

	x, y := config.GoldX, config.ScreenHeight-config.UIHeight+config.GoldY
	text.Draw(screen, fmt.Sprintf("GOLD: %d", player.Gold), h.face, x, y, config.GoldColor)

	x, y = config.HPX, config.ScreenHeight-config.UIHeight+config.HPY
	text.Draw(screen, fmt.Sprintf("HP: %.0f", player.Health), h.face, x, y, config.TextLightColor)

	// Полоска здоровья под надписью
	ratio := float32(0)
	if h.maxHealth > 0 {
		ratio = float32(player.Health / h.maxHealth)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y+6), healthBarWidth, healthBarHeight, config.MonsterColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(y+6), healthBarWidth*ratio, healthBarHeight, config.BaseColor, false)

	lines := []string{
		fmt.Sprintf("kills %d / spawned %d  base damage %.0f", stats.Kills, stats.Spawned, stats.BaseDamage),
		fmt.Sprintf("time %.0fs  speed x%.0f", stats.ElapsedSeconds, speed),
		"session " + shortID(h.sessionID),
	}
	for i, l := range lines {
		text.Draw(screen, l, h.face, config.GoldX, config.ScreenHeight-config.UIHeight+config.HPY+40+i*16, config.TextLightColor)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
