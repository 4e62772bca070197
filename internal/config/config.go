package config

import "image/color"

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TPS          = 60
	MaxDeltaTime = 0.06

	PlayerWidth        = 64
	PlayerHeight       = 64
	PlayerLife         = 1
	PlayerSpeed        = 3.0
	PlayerShotInterval = 10 // ticks between shots while fire is held

	// Entrance choreography: the ship rises from below the screen at a
	// constant rate until it reaches the end anchor.
	EntryRisePerSecond = 50.0
	EntryBlinkPeriodMs = 100
	EntryBlinkOnMs     = 50
	EntryAlpha         = 0.5
	EntryStartOffsetY  = 100 // below the bottom edge
	EntryEndOffsetY    = 100 // above the bottom edge

	EnemyWidth  = 48
	EnemyHeight = 48
	EnemySpeed  = 3.0
	EnemyLife   = 1

	ShotWidth       = 32
	ShotHeight      = 32
	ShotSpeed       = 7.0
	ShotPower       = 1
	ShotMaxCount    = 10
	SingleShotCount = 20 // must be even: spawned in pairs

	EnemyMaxCount = 10

	// Dual shots fan out 10 degrees either side of straight up (270°).
	DualShotAngleCW  = 280.0
	DualShotAngleCCW = 260.0

	HUDLineHeight = 16
	HUDMarginX    = 8
	HUDMarginY    = 16
)

const (
	SpriteViper SpriteID = iota
	SpriteEnemy
	SpriteShot
	SpriteSingleShot
)

// SpriteID identifies a sprite in the asset cache.
type SpriteID int

// SpritePaths maps every sprite to the file it is loaded from.
var SpritePaths = map[SpriteID]string{
	SpriteViper:      "assets/images/viper.png",
	SpriteEnemy:      "assets/images/enemy_small.png",
	SpriteShot:       "assets/images/viper_shot.png",
	SpriteSingleShot: "assets/images/viper_single_shot.png",
}

var (
	BackgroundColor = color.RGBA{238, 238, 238, 255}
	DimColor        = color.RGBA{0, 0, 0, 128}
	TextColor       = color.RGBA{30, 30, 40, 255}
	WarningColor    = color.RGBA{220, 60, 60, 255}
)
