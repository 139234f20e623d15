// Package app is the interactive gallery shell: a header, an album sidebar,
// and a thumbnail grid with busy overlays, toasts, and a theme switch.
//
// Keys trigger simulated work so each overlay style can be seen:
// fullscreen refresh, pane-local loads, and stacked anchored uploads.
package app
