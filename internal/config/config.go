// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60   // Фиксированная частота тиков симуляции
	MaxDeltaTime = 0.06 // Ограничение шага таймеров (секунды)
	WindowTitle  = "PD Invaders"

	PlayerSpeed         = 5  // Пикселей за тик
	PlayerLives         = 3
	PlayerBottomOffset  = 50 // Игрок стартует на ScreenHeight - 50
	PlayerBlinkDuration = 1.0
	PlayerBlinkPeriod   = 0.1

	FormationRows          = 4
	FormationColumns       = 8
	FormationSpeed         = 2  // Горизонтальный шаг строя за тик
	FormationDescentStep   = 10 // Шаг спуска при смене направления
	FormationHSpacing      = 50
	FormationVSpacing      = 50
	FormationCenterOffsetX = 185 // Строй начинается с ScreenWidth/2 - 185
	FormationStartY        = 50
	PointsPerRow           = 10 // Верхний ряд стоит дороже всех

	MissileSpeed    = -8 // Ракета игрока летит вверх
	BombSpeed       = 4  // Бомбы падают вниз
	MaxBombs        = 5
	BombSpawnChance = 1.0 // 1.0 - каждый живой монстр бросает бомбу, пока не достигнут лимит

	AssetsDir = "assets"
)

// Размеры спрайтов по умолчанию. Реальные размеры берутся из загруженных картинок.
const (
	DefaultPlayerWidth   = 40
	DefaultPlayerHeight  = 24
	DefaultMonsterWidth  = 32
	DefaultMonsterHeight = 32
	DefaultMissileWidth  = 4
	DefaultMissileHeight = 12
	DefaultBombWidth     = 6
	DefaultBombHeight    = 12
)

var (
	BackgroundColor = color.RGBA{10, 10, 25, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextAccentColor = color.RGBA{255, 215, 0, 255}
	WinColor        = color.RGBA{50, 205, 50, 255}
	LossColor       = color.RGBA{220, 60, 60, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	BlinkColor      = color.RGBA{255, 80, 80, 255}
)
