// Package ui holds the shared terminal palette, status symbols, and spinner
// keyframes used across imgdeck.
//
// # Color Scheme
//
// Status colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//
// Surface colors come in light/dark pairs (ColorMaskLight/ColorMaskDark,
// ColorTextLight/ColorTextDark, ...). Pick chooses one from the current
// theme signal:
//
//	fg := ui.Pick(dark, ui.ColorTextLight, ui.ColorTextDark)
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Spinner
//
// SpinnerFrames is a bubbles spinner definition. The loading package
// injects it once per stage under SpinnerKeyframesID and advances a single
// shared frame counter, so every overlay spins in step.
package ui
