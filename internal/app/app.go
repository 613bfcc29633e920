// Package app wires the command-line shell: it parses the subcommand,
// constructs the catalog, engine, run log and renderers, and dispatches.
package app

import (
	"fmt"
	"log"
	"os"

	"healthscreen/internal/catalog"
	"healthscreen/internal/config"
	"healthscreen/internal/engine"
	"healthscreen/internal/i18n"
	"healthscreen/internal/runlog"
)

const usage = `usage: healthscreen <command> [flags]

commands:
  analyze      run a health analysis and optionally render reports
  feedback     attach a rating or confirmed diagnosis to a past run
  stats        print run-log statistics
  export       export the run log to a spreadsheet
  autoexport   run the scheduled run-log exporter (blocks)
  sample-data  write example input files
`

func Main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadConfig()

	cat := catalog.Default()
	if cfg.CatalogOverlay != "" {
		overlay, err := catalog.LoadOverlay(cfg.CatalogOverlay)
		if err != nil {
			log.Fatalf("Failed to load catalog overlay: %v", err)
		}
		cat.Apply(overlay)
		log.Printf("Catalog overlay applied from %s (%d diseases total)", cfg.CatalogOverlay, len(cat.Diseases))
	}

	labels, err := i18n.Load(cfg.LanguageDir, cfg.Language)
	if err != nil {
		log.Fatalf("Failed to load language store: %v", err)
	}

	db, err := runlog.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init run log database: %v", err)
	}
	defer db.Close()

	eng := engine.New(cat)
	args := os.Args[2:]

	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(cfg, eng, labels, db, args)
	case "feedback":
		err = runFeedback(db, args)
	case "stats":
		err = runStats(db, args)
	case "export":
		err = runExport(cfg, db, args)
	case "autoexport":
		err = runAutoExport(cfg, db)
	case "sample-data":
		err = runSampleData(cfg, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}
