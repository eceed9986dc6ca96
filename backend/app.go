package backend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/20after4/configdir"
	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/backend/util"
)

const (
	configFile  = "config.toml"
	portableDir = "chefolio_portable"
	themesDir   = "themes"

	dataReloadDelay = 250 * time.Millisecond
	dataLoadTimeout = 30 * time.Second

	// how often changed settings are saved so an abnormal exit won't lose them
	configWriteInterval = 2 * time.Minute
)

var ErrNotWatchable = errors.New("data source cannot be watched")

type App struct {
	Config       *Config
	ImageManager *ImageManager
	Loader       *portfolio.Loader

	appName       string
	appVersionTag string
	configDir     string
	cacheDir      string
	portableMode  bool

	// overrides from the command line, not persisted
	dataSourceOverride string
	appearanceOverride string

	isFirstLaunch bool // set by config file reader
	bgrndCtx      context.Context
	cancel        context.CancelFunc

	// cfgLock guards Config writes and the periodic writer's reads
	cfgLock        sync.Mutex
	lastWrittenCfg Config
	writeInterval  time.Duration
}

func (a *App) VersionTag() string {
	return a.appVersionTag
}

func StartupApp(appName, appVersionTag string) (*App, error) {
	var confDir, cacheDir string
	portableMode := false
	if p := checkPortablePath(); p != "" {
		confDir = path.Join(p, "config")
		cacheDir = path.Join(p, "cache")
		portableMode = true
	} else {
		confDir = configdir.LocalConfig(appName)
		cacheDir = configdir.LocalCache(appName)
	}
	// ensure config and cache dirs exist
	if err := configdir.MakePath(confDir); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	configdir.MakePath(cacheDir)

	log.Printf("Starting %s...", appName)
	log.Printf("Using config dir: %s", confDir)
	log.Printf("Using cache dir: %s", cacheDir)
	if HaveCommandLineOptions() {
		log.Printf("Command line overrides: data=%q theme=%q", DataSourceCLIArg, ThemeCLIArg)
	}

	a := &App{
		appName:            appName,
		appVersionTag:      appVersionTag,
		configDir:          confDir,
		cacheDir:           cacheDir,
		portableMode:       portableMode,
		dataSourceOverride: DataSourceCLIArg,
		appearanceOverride: ThemeCLIArg,
	}
	a.bgrndCtx, a.cancel = context.WithCancel(context.Background())
	a.readConfig()
	a.lastWrittenCfg = *a.Config
	a.writeInterval = configWriteInterval
	a.startConfigWriter(a.bgrndCtx)

	a.ImageManager = NewImageManager(a.bgrndCtx, cacheDir, a.Config.Application.RemoteImageRetries)
	a.ImageManager.SetMaxOnDiskCacheSizeBytes(int64(a.Config.Application.MaxImageCacheSizeMB) * 1_048_576)
	// a failed data load is shown to the user rather than retried
	a.Loader = &portfolio.Loader{HTTPClient: util.NewHTTPClient(0, dataLoadTimeout)}

	return a, nil
}

func (a *App) IsFirstLaunch() bool {
	return a.isFirstLaunch
}

func (a *App) IsPortableMode() bool {
	return a.portableMode
}

func (a *App) ThemesDir() string {
	return filepath.Join(a.configDir, themesDir)
}

// DataSource is the path or URL of the portfolio document shown this run.
func (a *App) DataSource() string {
	if a.dataSourceOverride != "" {
		return a.dataSourceOverride
	}
	return a.Config.Application.DataSource
}

// LoadPortfolio loads the portfolio document from DataSource.
// Errors wrap portfolio.ErrDataUnavailable.
func (a *App) LoadPortfolio(ctx context.Context) (*portfolio.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, dataLoadTimeout)
	defer cancel()
	p, err := a.Loader.Load(ctx, a.DataSource())
	if err != nil {
		log.Printf("error loading portfolio: %v", err)
		return nil, err
	}
	log.Printf("loaded portfolio for %s: %d cuisines, %d dishes", p.Chef.Name, len(p.Cuisines), p.NumDishes())
	return p, nil
}

// WatchDataSource calls onChange (from a background goroutine) whenever the
// local data file changes. Remote sources, and configs with watching turned
// off, return ErrNotWatchable.
func (a *App) WatchDataSource(onChange func()) error {
	src := a.DataSource()
	if !a.Config.Application.WatchDataFile || util.IsRemote(src) {
		return ErrNotWatchable
	}
	w, err := NewDataWatcher(src, dataReloadDelay)
	if err != nil {
		return err
	}
	w.OnChange = func() {
		log.Printf("data file %s changed, reloading", src)
		a.ImageManager.ClearMemoryCache()
		onChange()
	}
	w.Start(a.bgrndCtx)
	return nil
}

// Appearance is the theme appearance in effect for this run.
func (a *App) Appearance() string {
	if a.appearanceOverride != "" {
		return a.appearanceOverride
	}
	return a.Config.Theme.Appearance
}

// SetAppearance changes the theme appearance and persists it immediately.
func (a *App) SetAppearance(appearance string) {
	a.cfgLock.Lock()
	defer a.cfgLock.Unlock()
	a.appearanceOverride = ""
	a.Config.Theme.Appearance = appearance
	a.saveConfigFile()
}

// SetWindowSize records the window size to restore on the next launch.
func (a *App) SetWindowSize(width, height int) {
	a.cfgLock.Lock()
	defer a.cfgLock.Unlock()
	a.Config.Application.WindowWidth = width
	a.Config.Application.WindowHeight = height
}

func (a *App) SaveConfigFile() {
	a.cfgLock.Lock()
	defer a.cfgLock.Unlock()
	a.saveConfigFile()
}

func (a *App) saveConfigFile() {
	if err := a.Config.WriteConfigFile(a.configFilePath()); err != nil {
		log.Printf("error writing config file: %v", err)
		return
	}
	a.lastWrittenCfg = *a.Config
}

func (a *App) Shutdown() {
	a.cancel()
	a.SaveConfigFile()
}

func checkPortablePath() string {
	if p, err := os.Executable(); err == nil {
		pdirPath := path.Join(filepath.Dir(p), portableDir)
		if s, err := os.Stat(pdirPath); err == nil && s.IsDir() {
			return pdirPath
		}
	}
	return ""
}

func (a *App) readConfig() {
	cfgPath := a.configFilePath()
	var cfgExists bool
	if _, err := os.Stat(cfgPath); err == nil {
		cfgExists = true
	}
	a.isFirstLaunch = !cfgExists
	cfg, err := ReadConfigFile(cfgPath)
	if err != nil {
		if cfgExists {
			log.Printf("Error reading app config file: %v", err)
		}
		cfg = DefaultConfig()
		if cfgExists {
			backupCfgName := fmt.Sprintf("%s.bak", configFile)
			log.Printf("Config file may be malformed: copying to %s", backupCfgName)
			_ = util.CopyFile(cfgPath, path.Join(a.configDir, backupCfgName))
		}
	}
	cfg.Application.LastLaunchedVersion = a.appVersionTag
	a.Config = cfg
}

func (a *App) startConfigWriter(ctx context.Context) {
	tick := time.NewTicker(a.writeInterval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				tick.Stop()
				return
			case <-tick.C:
				a.cfgLock.Lock()
				if a.lastWrittenCfg != *a.Config {
					a.saveConfigFile()
				}
				a.cfgLock.Unlock()
			}
		}
	}()
}

func (a *App) configFilePath() string {
	return path.Join(a.configDir, configFile)
}
