package render

import "github.com/gdamore/tcell/v2"

// Night vision palette
var (
	RgbBackground = tcell.NewHexColor(0x112119) // Near-black green
	RgbText       = tcell.NewHexColor(0xacecb5) // Phosphor green
	RgbPrimary    = tcell.NewHexColor(0x13531c) // Button fill
	RgbDanger     = tcell.NewHexColor(0x661821) // Muted indicator

	RgbTextDim     = tcell.NewHexColor(0x5d7d62) // Disabled labels
	RgbButtonDim   = tcell.NewHexColor(0x1c3323) // Disabled button fill
	RgbRule        = tcell.NewHexColor(0x2f5a37) // Header underline
	RgbStatusBar   = tcell.NewHexColor(0x0b1510) // Bottom bar fill
	RgbAudioActive = tcell.NewHexColor(0x2e8b3d) // Sound on indicator
)

// Styles derived from the palette
var (
	StyleBase       = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleBold       = StyleBase.Bold(true)
	StyleDim        = StyleBase.Foreground(RgbTextDim)
	StyleRule       = StyleBase.Foreground(RgbRule)
	StyleButton     = tcell.StyleDefault.Background(RgbPrimary).Foreground(RgbText).Bold(true)
	StyleButtonOff  = tcell.StyleDefault.Background(RgbButtonDim).Foreground(RgbTextDim)
	StyleStatus     = tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbTextDim)
	StyleAudioOn    = tcell.StyleDefault.Background(RgbAudioActive).Foreground(tcell.ColorBlack)
	StyleAudioMuted = tcell.StyleDefault.Background(RgbDanger).Foreground(RgbText)
)
