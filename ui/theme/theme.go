package theme

import (
	"bytes"
	"image/color"
	"log"
	"path/filepath"

	"github.com/chefolio/chefolio/backend"
	"github.com/chefolio/chefolio/res"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	ColorNamePageBackground    fyne.ThemeColorName = "PageBackground"
	ColorNamePageHeader        fyne.ThemeColorName = "PageHeader"
	ColorNameCard              fyne.ThemeColorName = "Card"
	ColorNameTag               fyne.ThemeColorName = "Tag"
	ColorNameIndicator         fyne.ThemeColorName = "Indicator"
	ColorNameIconButton        fyne.ThemeColorName = "IconButton"
	ColorNameHoveredIconButton fyne.ThemeColorName = "HoveredIconButton"
	ColorNameNavButton         fyne.ThemeColorName = "NavButton"
	ColorNameModalBackdrop     fyne.ThemeColorName = "ModalBackdrop"

	SizeNameHeroText    fyne.ThemeSizeName = "heroText"    // the chef's name in the hero
	SizeNameSectionText fyne.ThemeSizeName = "sectionText" // cuisine titles
	SizeNameSubText     fyne.ThemeSizeName = "subText"     // in between Text and Caption
	SizeNameTagText     fyne.ThemeSizeName = "tagText"
	SizeNameCardRadius  fyne.ThemeSizeName = "cardRadius"
)

var (
	AppIcon   fyne.Resource = res.ResChefHatSvg
	LightIcon fyne.Resource = theme.NewThemedResource(res.ResSunSvg)
	DarkIcon  fyne.Resource = theme.NewThemedResource(res.ResMoonSvg)
)

type MyTheme struct {
	config       *backend.ThemeConfig
	appearance   func() string
	themeFileDir string

	loadedThemeFilename string
	loadedThemeFile     *ThemeFile
	defaultThemeFile    *ThemeFile
}

var _ fyne.Theme = (*MyTheme)(nil)

// NewMyTheme creates the app theme. appearance reports the appearance
// in effect (Light, Dark or Auto), which may differ from the config
// when overridden on the command line.
func NewMyTheme(config *backend.ThemeConfig, themeFileDir string, appearance func() string) *MyTheme {
	m := &MyTheme{config: config, themeFileDir: themeFileDir, appearance: appearance}
	var err error
	if m.defaultThemeFile, err = DecodeThemeFile(bytes.NewReader(res.ResDefaultToml.StaticContent)); err != nil {
		log.Fatalf("Failed to load builtin theme: %v", err.Error())
	}
	return m
}

func (m *MyTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	// load theme file if necessary
	if m.loadedThemeFile == nil || m.config.ThemeFile != m.loadedThemeFilename {
		m.loadedThemeFile = m.defaultThemeFile
		if m.config.ThemeFile != "" {
			if t, err := ReadThemeFile(filepath.Join(m.themeFileDir, m.config.ThemeFile)); err == nil {
				m.loadedThemeFile = t
			} else {
				log.Printf("failed to load theme file %q: %s", m.config.ThemeFile, err.Error())
			}
		}
		m.loadedThemeFilename = m.config.ThemeFile
	}

	variant := m.Variant()
	thFile := m.loadedThemeFile
	if !thFile.SupportsVariant(variant) {
		thFile = m.defaultThemeFile
	}
	colors := thFile.DarkColors
	defColors := m.defaultThemeFile.DarkColors
	if variant == theme.VariantLight {
		colors = thFile.LightColors
		defColors = m.defaultThemeFile.LightColors
	}
	switch name {
	case ColorNameHoveredIconButton:
		return colorOrDefault(colors.Primary, defColors.Primary, theme.ColorNamePrimary, variant)
	case ColorNameIconButton:
		foreground := colorOrDefault(colors.Foreground, defColors.Foreground, theme.ColorNameForeground, variant)
		if variant == theme.VariantDark {
			return darkenColor(foreground, 0.05)
		}
		return brightenColor(foreground, 0.2)
	case ColorNameNavButton:
		card := colorOrDefault(colors.Card, defColors.Card, ColorNameCard, variant)
		return withAlpha(card, 230)
	case ColorNameModalBackdrop:
		if variant == theme.VariantDark {
			return color.NRGBA{A: 200}
		}
		return color.NRGBA{A: 150}
	case ColorNamePageBackground:
		return colorOrDefault(colors.PageBackground, defColors.PageBackground, name, variant)
	case ColorNamePageHeader:
		return colorOrDefault(colors.PageHeader, defColors.PageHeader, name, variant)
	case ColorNameCard:
		return colorOrDefault(colors.Card, defColors.Card, name, variant)
	case ColorNameTag:
		return colorOrDefault(colors.Tag, defColors.Tag, name, variant)
	case ColorNameIndicator:
		return colorOrDefault(colors.Indicator, defColors.Indicator, name, variant)
	case theme.ColorNameBackground:
		return colorOrDefault(colors.Background, defColors.Background, name, variant)
	case theme.ColorNameButton:
		return colorOrDefault(colors.Button, defColors.Button, name, variant)
	case theme.ColorNameDisabled:
		return colorOrDefault(colors.Disabled, defColors.Disabled, name, variant)
	case theme.ColorNameDisabledButton:
		return colorOrDefault(colors.DisabledButton, defColors.DisabledButton, name, variant)
	case theme.ColorNameError:
		return colorOrDefault(colors.Error, defColors.Error, name, variant)
	case theme.ColorNameFocus:
		return colorOrDefault(colors.Focus, defColors.Focus, name, variant)
	case theme.ColorNameForeground:
		return colorOrDefault(colors.Foreground, defColors.Foreground, name, variant)
	case theme.ColorNameHover:
		return colorOrDefault(colors.Hover, defColors.Hover, name, variant)
	case theme.ColorNameHyperlink:
		return colorOrDefault(colors.Hyperlink, defColors.Hyperlink, name, variant)
	case theme.ColorNameInputBackground:
		return colorOrDefault(colors.InputBackground, defColors.InputBackground, name, variant)
	case theme.ColorNameInputBorder:
		return colorOrDefault(colors.InputBorder, defColors.InputBorder, name, variant)
	case theme.ColorNameMenuBackground:
		return colorOrDefault(colors.MenuBackground, defColors.MenuBackground, name, variant)
	case theme.ColorNameOverlayBackground:
		return colorOrDefault(colors.OverlayBackground, defColors.OverlayBackground, name, variant)
	case theme.ColorNamePlaceHolder:
		return colorOrDefault(colors.Placeholder, defColors.Placeholder, name, variant)
	case theme.ColorNamePressed:
		return colorOrDefault(colors.Pressed, defColors.Pressed, name, variant)
	case theme.ColorNamePrimary:
		return colorOrDefault(colors.Primary, defColors.Primary, name, variant)
	case theme.ColorNameScrollBar:
		return colorOrDefault(colors.ScrollBar, defColors.ScrollBar, name, variant)
	case theme.ColorNameSelection:
		return colorOrDefault(colors.Selection, defColors.Selection, name, variant)
	case theme.ColorNameSeparator:
		return colorOrDefault(colors.Separator, defColors.Separator, name, variant)
	case theme.ColorNameShadow:
		return colorOrDefault(colors.Shadow, defColors.Shadow, name, variant)
	case theme.ColorNameSuccess:
		return colorOrDefault(colors.Success, defColors.Success, name, variant)
	case theme.ColorNameWarning:
		return colorOrDefault(colors.Warning, defColors.Warning, name, variant)
	default:
		return colorOrDefault("", "", name, variant)
	}
}

func colorOrDefault(colorStr, defColorStr string, name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, err := ColorStringToColor(colorStr); err == nil {
		return c
	}
	if c, err := ColorStringToColor(defColorStr); err == nil {
		return c
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (m *MyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m *MyTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m *MyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNameHeroText:
		return 34
	case SizeNameSectionText:
		return 24
	case SizeNameSubText:
		return 13
	case SizeNameTagText:
		return 11
	case SizeNameCardRadius:
		return 12
	}
	return theme.DefaultTheme().Size(name)
}

// Variant resolves the configured appearance to a concrete variant.
// Auto follows the operating system.
func (m *MyTheme) Variant() fyne.ThemeVariant {
	return ResolveVariant(m.appearance(), fyne.CurrentApp().Settings().ThemeVariant())
}

// ResolveVariant maps an appearance setting to a theme variant,
// using osVariant for Auto and for unrecognized settings.
func ResolveVariant(appearance string, osVariant fyne.ThemeVariant) fyne.ThemeVariant {
	switch appearance {
	case backend.AppearanceDark:
		return theme.VariantDark
	case backend.AppearanceLight:
		return theme.VariantLight
	}
	return osVariant
}

// ToggledAppearance is the appearance a light/dark toggle switches to
// from the given variant.
func ToggledAppearance(current fyne.ThemeVariant) string {
	if current == theme.VariantDark {
		return backend.AppearanceLight
	}
	return backend.AppearanceDark
}

func BlendColors(a, b color.Color, fractionA float64) color.Color {
	ra, ga, ba, aa := a.RGBA()
	rb, gb, bb, ab := b.RGBA()

	fractionB := 1 - fractionA
	rAvg := uint8(float64(ra/257)*fractionA + float64(rb/257)*fractionB)
	gAvg := uint8(float64(ga/257)*fractionA + float64(gb/257)*fractionB)
	bAvg := uint8(float64(ba/257)*fractionA + float64(bb/257)*fractionB)
	aAvg := uint8(float64(aa/257)*fractionA + float64(ab/257)*fractionB)
	return color.RGBA{R: rAvg, G: gAvg, B: bAvg, A: aAvg}
}

// OverlayTint derives the card title overlay color from a dish image's
// dominant color: darkened so white text stays readable, and translucent.
// A nil dominant color gives a neutral dark overlay.
func OverlayTint(dominant color.Color) color.Color {
	if dominant == nil {
		dominant = color.Black
	}
	return withAlpha(darkenColor(dominant, 0.55), 210)
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

func brightenColor(c color.Color, fraction float64) color.Color {
	r, g, b, a := c.RGBA()
	r, g, b = brightenComponent(r, fraction), brightenComponent(g, fraction), brightenComponent(b, fraction)
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func darkenColor(c color.Color, fraction float64) color.Color {
	r, g, b, a := c.RGBA()
	r, g, b = darkenComponent(r, fraction), darkenComponent(g, fraction), darkenComponent(b, fraction)
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func brightenComponent(component uint32, fraction float64) uint32 {
	brightened := component + uint32(float64(component)*fraction)
	if brightened > 0xffff {
		brightened = 0xffff
	}
	return brightened
}

func darkenComponent(component uint32, fraction float64) uint32 {
	i := uint32(float64(component) * fraction)
	if i > component {
		return 0
	}
	return component - i
}
