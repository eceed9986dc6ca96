package res

const (
	AppName       = "chefolio"
	DisplayName   = "Chefolio"
	AppVersion    = "0.3.0"
	AppVersionTag = "v" + AppVersion
	ConfigFile    = "config.toml"
	Copyright     = "Copyright © 2025–2026 the Chefolio authors"
)
