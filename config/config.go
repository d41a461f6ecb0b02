// Package config gathers the constants shared by the scene engine and its hosts.
package config

import "time"

// Canvas
const (
	CanvasWidth     = 850
	CanvasHeight    = 600
	BackgroundColor = "white"
	TicksPerSecond  = 60
)

// Animation cadence and iteration counts.
const (
	RotateIterations   = 36
	RotateStep         = 10.0 // degrees per iteration
	MoveIterations     = 25
	MoveStep           = 10.0 // model units per iteration
	ExpandIterations   = 15
	ExpandFactor       = 1.05
	ContractIterations = 15
	ContractFactor     = 0.95
	BlinkIterations    = 10

	HueStep         = 3.0 // degrees per colour cycle tick
	ColorCycleDelay = 20 * time.Millisecond
)

// Defaults applied to records missing optional fields.
const (
	DefaultShapeSize    = 50.0
	DefaultPenColor     = "black"
	DefaultPenThickness = 2
	DefaultPatternColor = "blue"

	MandalaDotRadius = 5.0
)
