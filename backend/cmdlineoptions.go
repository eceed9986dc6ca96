package backend

import (
	"flag"
	"fmt"
	"strings"
)

var (
	DataSourceCLIArg string
	ThemeCLIArg      string

	FlagVersion = flag.Bool("version", false, "print app version and exit")
	FlagHelp    = flag.Bool("help", false, "print command line options and exit")
)

func init() {
	flag.Func("data", "path or http(s) URL of the portfolio JSON to show for this run", func(s string) error {
		src := NormalizeDataSource(s)
		if src == "" {
			return fmt.Errorf("data source must not be empty")
		}
		DataSourceCLIArg = src
		return nil
	})
	flag.Func("theme", "appearance for this run (light, dark or auto)", func(s string) error {
		a, ok := ParseAppearance(s)
		if !ok {
			return fmt.Errorf("unknown appearance %q", s)
		}
		ThemeCLIArg = a
		return nil
	})
}

// ParseAppearance maps a case-insensitive appearance name to its config value.
func ParseAppearance(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return AppearanceLight, true
	case "dark":
		return AppearanceDark, true
	case "auto":
		return AppearanceAuto, true
	}
	return "", false
}

func HaveCommandLineOptions() bool {
	visitedAny := false
	flag.Visit(func(*flag.Flag) {
		visitedAny = true
	})
	return visitedAny
}
