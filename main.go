package main

import (
	"log"

	"fyne.io/fyne/v2/app"
	"github.com/barishamil/mysimpleapp/internal/ui"
)

func main() {
	cfg := ui.DefaultConfig()

	a := ui.NewApp(app.NewWithID(cfg.AppID), cfg)

	log.Printf("%s started with ID %s\n", cfg.Title, cfg.AppID)
	a.Run()
}
