package loading

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/imgdeck/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleTable_Apply(t *testing.T) {
	table := StyleTable{
		"a": both(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)),
		"b": both(lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Padding(0, 3)),
		"c": {
			Light: lipgloss.NewStyle().Italic(true),
			Dark:  lipgloss.NewStyle().Underline(true),
		},
	}

	s := table.Apply(false, "a", "b")
	assert.Equal(t, lipgloss.Color("2"), s.GetForeground(), "later set wins")
	assert.True(t, s.GetBold(), "earlier properties carry over")
	assert.Equal(t, 3, s.GetPaddingLeft())

	s = table.Apply(false, "b", "a")
	assert.Equal(t, lipgloss.Color("1"), s.GetForeground())
	assert.Equal(t, 0, s.GetPaddingLeft(), "padding is not carried across sets")

	assert.True(t, table.Apply(false, "c").GetItalic())
	assert.True(t, table.Apply(true, "c").GetUnderline())
	assert.False(t, table.Apply(true, "c").GetItalic())

	assert.Equal(t, lipgloss.NewStyle().GetForeground(), table.Apply(false, "missing").GetForeground())
}

func TestFactory_BuildInjectsKeyframesOnce(t *testing.T) {
	stage := NewStage(20, 10)
	f := factory{stage: stage, styles: DefaultStyles()}

	f.build(DefaultConfig(), false)
	first, ok := stage.Keyframes(ui.SpinnerKeyframesID)
	require.True(t, ok)

	f.build(DefaultConfig(), true)
	second, _ := stage.Keyframes(ui.SpinnerKeyframesID)
	assert.Equal(t, first.Frames, second.Frames)
	assert.Equal(t, 0, stage.Len(), "build does not attach")
}

func TestFactory_Build(t *testing.T) {
	pane := NewPane("p", Rect{Width: 20, Height: 10})
	tests := []struct {
		name     string
		cfg      Config
		dark     bool
		anchored bool
		maskBg   lipgloss.TerminalColor
		textFg   lipgloss.Color
	}{
		{
			name:   "fullscreen masked light",
			cfg:    Config{Text: "a", Mask: true, Fullscreen: true, Container: pane},
			maskBg: ui.ColorMaskLight,
			textFg: ui.ColorTextLight,
		},
		{
			name:   "fullscreen masked dark",
			cfg:    Config{Text: "a", Mask: true, Fullscreen: true, Container: pane},
			dark:   true,
			maskBg: ui.ColorMaskDark,
			textFg: ui.ColorTextDark,
		},
		{
			name:     "anchored unmasked",
			cfg:      Config{Text: "a", Container: pane, Anchor: AnchorTopLeft},
			anchored: true,
			maskBg:   lipgloss.NoColor{},
			textFg:   ui.ColorTextLight,
		},
		{
			name:   "fullscreen anchor is ignored",
			cfg:    Config{Text: "a", Fullscreen: true, Container: pane, Anchor: AnchorTopLeft},
			maskBg: lipgloss.NoColor{},
			textFg: ui.ColorTextLight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := factory{stage: NewStage(20, 10), styles: DefaultStyles()}
			v := f.build(tt.cfg, tt.dark)

			assert.Equal(t, tt.anchored, v.anchored())
			assert.Equal(t, tt.maskBg, v.root.GetBackground())
			assert.Equal(t, tt.textFg, v.text.style.GetForeground())
			assert.Equal(t, tt.cfg.Text, v.Text())
			assert.False(t, v.Shown())
			assert.False(t, v.Attached())
		})
	}
}

func TestFactory_AccentColor(t *testing.T) {
	f := factory{stage: NewStage(20, 10), styles: DefaultStyles()}

	v := f.build(Config{Color: "#1677ff"}, false)
	assert.Equal(t, lipgloss.Color("#1677ff"), v.Accent())

	v = f.build(Config{}, false)
	assert.Equal(t, ui.ColorBorderLight, v.Accent(), "track color without an accent")
}

func TestVisual_AnchoredBoxMeasures(t *testing.T) {
	f := factory{stage: NewStage(20, 10), styles: DefaultStyles()}
	v := f.build(Config{Text: "Loading...", Anchor: AnchorTopRight}, false)

	// border + spinner row + label row + border
	assert.Equal(t, 4, v.Height())
	// border + padding + label + padding + border
	assert.Equal(t, 14, v.Width())

	v.setText("two\nlines")
	assert.Equal(t, 5, v.Height())
}
