package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background   tcell.Color
	Foreground   tcell.Color
	DirectoryFg  tcell.Color
	ExecutableFg tcell.Color
	SymlinkFg    tcell.Color
	FileFg       tcell.Color
	IndexFg      tcell.Color
	MessageFg    tcell.Color
	InfoBg       tcell.Color
	InfoFg       tcell.Color
	FooterBg     tcell.Color
	FooterFg     tcell.Color
	DialogBg     tcell.Color
	DialogFg     tcell.Color
	DialogBorder tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:   tcell.ColorDefault,
		Foreground:   tcell.ColorDefault,
		DirectoryFg:  tcell.Color33,
		ExecutableFg: tcell.ColorGreen,
		SymlinkFg:    tcell.Color51,
		FileFg:       tcell.ColorDefault,
		IndexFg:      tcell.ColorLightSlateGray,
		MessageFg:    tcell.ColorYellow,
		InfoBg:       tcell.ColorDefault,
		InfoFg:       tcell.ColorDefault,
		FooterBg:     tcell.ColorDefault,
		FooterFg:     tcell.ColorLightSlateGray,
		DialogBg:     tcell.ColorDefault,
		DialogFg:     tcell.ColorDefault,
		DialogBorder: tcell.Color33,
	}
}
