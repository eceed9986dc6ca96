package res

import (
	"embed"

	"fyne.io/fyne/v2"
)

//go:embed translations
var Translations embed.FS

//go:embed themes/default.toml
var defaultThemeToml []byte

//go:embed icons/chefhat.svg
var chefHatSvg []byte

//go:embed icons/sun.svg
var sunSvg []byte

//go:embed icons/moon.svg
var moonSvg []byte

var (
	ResDefaultToml = fyne.NewStaticResource("default.toml", defaultThemeToml)
	ResChefHatSvg  = fyne.NewStaticResource("chefhat.svg", chefHatSvg)
	ResSunSvg      = fyne.NewStaticResource("sun.svg", sunSvg)
	ResMoonSvg     = fyne.NewStaticResource("moon.svg", moonSvg)
)
