// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 640 // поле + HUD сверху
	FieldWidth   = 800
	FieldHeight  = 600
	HUDHeight    = ScreenHeight - FieldHeight
	MaxDeltaTime = 0.06

	MinTargetSize     = 10.0
	MaxTargetSize     = 50.0
	MinTargetSpeed    = 1.0 // px за тик
	MaxTargetSpeed    = 3.0
	MinTargetLifetime = 5000 * time.Millisecond
	MaxTargetLifetime = 10000 * time.Millisecond
	TargetFadeStart   = 0.5 // доля жизни, после которой мишень начинает гаснуть
	PointsNumerator   = 100.0

	HitEffectLifetime  = 1000 * time.Millisecond
	MissEffectLifetime = 500 * time.Millisecond
	HitFloatSpeed      = 1.0 // px за тик вверх
	MissMarkMinSize    = 5.0 // полуразмер крестика промаха в начале
	MissMarkMaxSize    = 20.0

	ScopeZoom        = 2.0
	ScopeSpeedFactor = 0.25
	ScopeRadius      = 150.0
	CrosshairWidth   = 1.5

	CountdownInterval = time.Second

	StartButtonWidth  = 120
	StartButtonHeight = 28
	DialogWidth       = 360
	DialogHeight      = 150
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	HUDColor          = color.RGBA{35, 40, 55, 255}
	HUDBorderColor    = color.RGBA{70, 130, 180, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDimColor      = color.RGBA{120, 120, 130, 255}
	TargetStrokeColor = color.RGBA{255, 255, 255, 255}
	MissColor         = color.RGBA{220, 60, 60, 255}
	HitTextColor      = color.RGBA{255, 215, 0, 255}
	CrosshairColor    = color.RGBA{220, 40, 40, 255}
	ScopeRimColor     = color.RGBA{30, 30, 30, 255}
	ButtonColor       = color.RGBA{70, 130, 180, 255}
	ButtonDisabled    = color.RGBA{60, 60, 70, 255}
	DialogColor       = color.RGBA{25, 35, 45, 240}
	ShadeColor        = color.RGBA{0, 0, 0, 150}
)
