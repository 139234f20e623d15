package loading

import (
	"github.com/rileyhilliard/imgdeck/internal/ui"
)

// factory builds visuals for one stage.
type factory struct {
	stage  *Stage
	styles StyleTable
}

// build creates the visual tree for cfg. The stage keyframes are injected
// on first use. The result starts hidden and detached.
func (f *factory) build(cfg Config, dark bool) *Visual {
	f.stage.InjectKeyframes(ui.SpinnerKeyframesID, ui.SpinnerFrames)

	rootNames := []StyleName{StyleBase}
	if cfg.stacks() {
		if cfg.Mask {
			rootNames = append(rootNames, StyleMask)
		}
		rootNames = append(rootNames, StyleAnchored)
	} else {
		rootNames = append(rootNames, StyleFullscreen)
		if cfg.Mask {
			rootNames = append(rootNames, StyleMask)
		}
	}

	spinnerNames := []StyleName{StyleSpinner}
	textNames := []StyleName{StyleText}
	if cfg.Mask {
		spinnerNames = []StyleName{StyleMask, StyleSpinner}
		textNames = []StyleName{StyleMask, StyleText}
	}

	v := &Visual{
		container:  cfg.Container,
		fullscreen: cfg.Fullscreen,
		anchor:     cfg.Anchor,
		zIndex:     cfg.ZIndex,
		mask:       cfg.Mask,
		root:       f.styles.Apply(dark, rootNames...),
		leaving:    f.styles.Apply(dark, StyleLeaving),
		spinner:    node{style: f.styles.Apply(dark, spinnerNames...)},
		text:       node{style: f.styles.Apply(dark, textNames...), text: cfg.Text},
	}
	if cfg.Color != "" {
		v.setColor(cfg.Color)
	}
	return v
}
