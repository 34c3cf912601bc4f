// Folio opens the portfolio in a window: a loading screen, then the page
// over the ambient point field with a spring-smoothed custom cursor.
//
// Usage:
//
//	folio [--config folio.yaml] [--env .env] [--script walk.yaml [--exit]] [--fps]
//
// Scroll with the mouse wheel; keys 1-5 jump to sections.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/folio"
)

const (
	screenW = 1280
	screenH = 720
	tps     = 60
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", ".env", "dotenv file with FOLIO_* overrides")
	scriptPath := flag.String("script", "", "YAML input script to replay")
	exit := flag.Bool("exit", false, "exit once the input script has finished")
	showFPS := flag.Bool("fps", false, "show FPS and the current section")
	debug := flag.Bool("debug", false, "log input and section changes to stderr")
	flag.Parse()

	cfg := folio.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = folio.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Debug = true
	}

	app, err := folio.NewApp(cfg, screenW, screenH, tps)
	if err != nil {
		log.Fatal(err)
	}

	if *scriptPath != "" {
		script, err := folio.LoadScript(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := app.SetScript(script); err != nil {
			log.Fatal(err)
		}
	}

	if err := folio.Run(app, folio.RunConfig{
		Title:              cfg.Title,
		Width:              screenW,
		Height:             screenH,
		ShowFPS:            *showFPS,
		ExitWhenScriptDone: *exit,
	}); err != nil {
		log.Fatal(err)
	}

	if sc := app.Script(); sc != nil && len(sc.Failures()) > 0 {
		for _, f := range sc.Failures() {
			log.Print(f)
		}
		os.Exit(1)
	}
}
