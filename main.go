package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/micahco/musicdb/api"
	"github.com/micahco/musicdb/config"
	"github.com/micahco/musicdb/ui"
)

const (
	APP_NAME = "musicdb"
	APP_ID   = "io.github.micahco.musicdb"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("app", APP_NAME).
		Logger()

	prefs, err := config.Load(APP_NAME)
	if err != nil {
		log.Fatal().Err(err).Msg("loading preferences")
	}
	if prefs.Debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	err = config.LoadEnvFile(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("loading .env")
	}

	dbConf := config.NewDBConfig()

	fmt.Println("Starting Music Database GUI...")
	fmt.Printf("Database config: host=%s, dbname=%s\n", dbConf.Host, dbConf.DBName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.NewWithID(APP_ID)
	w := a.NewWindow(ui.WindowTitle)
	w.Resize(fyne.NewSize(prefs.WindowWidth, prefs.WindowHeight))

	v := ui.New(ctx, api.New(log), dbConf, log)
	w.SetContent(v.Content())
	w.ShowAndRun()
}
