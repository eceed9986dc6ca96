package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/chefolio/chefolio/backend"
	"github.com/chefolio/chefolio/res"
	"github.com/chefolio/chefolio/ui"
	"github.com/chefolio/chefolio/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/lang"
)

func main() {
	flag.Parse()
	if *backend.FlagVersion {
		fmt.Println(res.AppVersion)
		return
	}
	if *backend.FlagHelp {
		flag.Usage()
		return
	}

	myApp, err := backend.StartupApp(res.AppName, res.AppVersionTag)
	if err != nil {
		log.Fatalf("fatal startup error: %v", err.Error())
	}

	if err := lang.AddTranslationsFS(res.Translations, "translations"); err != nil {
		log.Printf("error loading translations: %v", err)
	}

	fyneApp := app.NewWithID("io.github.chefolio")
	fyneApp.SetIcon(theme.AppIcon)

	w := float32(myApp.Config.Application.WindowWidth)
	if w <= 1 {
		w = 1280
	}
	h := float32(myApp.Config.Application.WindowHeight)
	if h <= 1 {
		h = 800
	}
	mainWindow := ui.NewMainWindow(fyneApp, res.DisplayName, res.AppVersion, myApp, fyne.NewSize(w, h))

	go func() {
		// give the window manager time to finish mapping the window
		// before the first page is laid out
		if runtime.GOOS == "linux" {
			time.Sleep(250 * time.Millisecond)
		}
		fyne.Do(func() {
			mainWindow.LoadPortfolio()
			mainWindow.WatchDataSource()
		})
	}()

	mainWindow.Show()
	mainWindow.Window.SetCloseIntercept(mainWindow.Quit)
	fyneApp.Run()

	log.Println("Running shutdown tasks...")
	myApp.Shutdown()
}
