package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the sidebar is not drawn.
	LayoutCompactWidth = 80

	// SidebarWidth is the width of the sidebar panel.
	SidebarWidth = 24
)

// Player steps.
const (
	VolumeStep = 0.05
	SpeedStep  = 0.25
	MinSpeed   = 0.25
	MaxSpeed   = 4.0
)

// Qualities lists the selectable renditions, lowest first.
var Qualities = []int{240, 360, 480, 720, 1080, 1440, 2160}

// Timing constants.
const (
	// DefaultNotificationTTL is how long a notification stays on screen.
	DefaultNotificationTTL = 4 * time.Second

	// PredictTimeout bounds a single prediction request.
	PredictTimeout = 2 * time.Second
)
