// Package main is a one-screen tour of five UI state primitives, each shown
// as an interactive card.
package main

import (
	_ "embed"
	"log"

	"github.com/go-drift/drift/pkg/drift"

	"github.com/go-drift/hooksdemo/internal/config"
)

//go:embed drift.yaml
var projectConfig []byte

func main() {
	cfg := config.Must(projectConfig)
	log.Printf("starting %s (%s) from %s", cfg.AppName, cfg.AppID, cfg.ModulePath)
	drift.NewApp(App(cfg)).Run()
}
