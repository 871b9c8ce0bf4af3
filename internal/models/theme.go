package models

import (
	"slices"

	"github.com/julianstephens/daynotes/internal/constants"
)

// Theme identifies a color scheme.
type Theme string

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return slices.Contains(constants.Themes, name)
}

// NextTheme returns the theme after current in display order, wrapping
// around. Unknown themes advance to the first one.
func NextTheme(current Theme) Theme {
	i := slices.Index(constants.Themes, string(current))
	return Theme(constants.Themes[(i+1)%len(constants.Themes)])
}
