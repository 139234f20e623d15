package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// SpinnerFrames is the rotating ring used by busy indicators: one quarter
// turn per frame, a full revolution every 400ms.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// SpinnerKeyframesID names the rotation keyframes in a stage stylesheet.
const SpinnerKeyframesID = "loading-spin"
