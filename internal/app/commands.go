package app

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"healthscreen/internal/config"
	"healthscreen/internal/ingest"
	"healthscreen/internal/report"
	"healthscreen/internal/runlog"
)

func runFeedback(db *sql.DB, args []string) error {
	fs := flag.NewFlagSet("feedback", flag.ExitOnError)
	runID := fs.String("run", "", "run id the feedback belongs to")
	rating := fs.Int("rating", 0, "rating 1-5 (0 = no rating)")
	actual := fs.String("actual", "", "confirmed diagnosis, if known")
	comment := fs.String("comment", "", "free-form comment")
	fs.Parse(args)

	if *runID == "" {
		return errors.New("missing -run")
	}
	if *rating < 0 || *rating > 5 {
		return fmt.Errorf("rating %d out of range 1-5", *rating)
	}

	run, err := runlog.GetRun(db, *runID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("no run with id %s", *runID)
	}
	if err != nil {
		return err
	}

	f := runlog.Feedback{
		RunID:           run.ID,
		ActualDiagnosis: strings.TrimSpace(*actual),
		FeedbackText:    *comment,
	}
	if *rating > 0 {
		f.UserRating = sql.NullInt64{Int64: int64(*rating), Valid: true}
	}
	if err := runlog.InsertFeedback(db, f); err != nil {
		return err
	}

	// A confirmed diagnosis becomes a verified mapping the stats view can
	// score future runs against.
	if f.ActualDiagnosis != "" {
		if err := runlog.InsertMappings(db, []runlog.Mapping{{
			Symptoms:   run.Symptoms,
			Diagnosis:  f.ActualDiagnosis,
			Confidence: 100,
			Verified:   true,
			Source:     "user",
		}}); err != nil {
			return err
		}
	}
	log.Printf("Feedback recorded for run %s", run.ID)
	return nil
}

func runStats(db *sql.DB, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	days := fs.Int("days", 30, "look-back window in days")
	fs.Parse(args)

	since := time.Now().AddDate(0, 0, -*days)
	s, err := runlog.GetStats(db, since)
	if err != nil {
		return err
	}

	fmt.Printf("Runs (last %d days): %d\n", *days, s.TotalRuns)
	fmt.Printf("Average confidence:  %.1f%%\n", s.AvgConfidence)
	fmt.Printf("Confidence buckets:  <40%%: %d  40-70%%: %d  >70%%: %d\n",
		s.BucketBelow40, s.Bucket40to70, s.Bucket70Plus)
	fmt.Printf("Feedback entries:    %d\n", s.TotalFeedback)
	if s.TotalFeedback > 0 {
		fmt.Printf("Average rating:      %.1f/5\n", s.AverageRating)
	}
	if s.WithActual > 0 {
		fmt.Printf("Confirmed outcomes:  %d (accuracy %.0f%%)\n", s.WithActual, s.Accuracy*100)
	}
	return nil
}

func runExport(cfg config.Config, db *sql.DB, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "output path (default: run_log_<timestamp>.xlsx in the report dir)")
	fs.Parse(args)

	path := *out
	if path == "" {
		var err error
		path, err = report.OutputPath(cfg.ReportOutputDir, "xlsx", time.Now().In(cfg.Location))
		if err != nil {
			return err
		}
		path = strings.Replace(path, "health_report_", "run_log_", 1)
	}
	if err := runlog.ExportXLSX(db, path); err != nil {
		return err
	}
	log.Printf("Run log exported to %s", path)
	return nil
}

// runAutoExport blocks, exporting the run log on the configured schedule
// until interrupted.
func runAutoExport(cfg config.Config, db *sql.DB) error {
	c := cron.New(cron.WithLocation(cfg.Location))
	_, err := c.AddFunc(cfg.ExportSchedule, func() {
		path, err := report.OutputPath(cfg.ReportOutputDir, "xlsx", time.Now().In(cfg.Location))
		if err != nil {
			log.Printf("Scheduled export failed: %v", err)
			return
		}
		path = strings.Replace(path, "health_report_", "run_log_", 1)
		if err := runlog.ExportXLSX(db, path); err != nil {
			log.Printf("Scheduled export failed: %v", err)
			return
		}
		log.Printf("Scheduled export written to %s", path)
	})
	if err != nil {
		return fmt.Errorf("invalid export schedule %q: %w", cfg.ExportSchedule, err)
	}

	c.Start()
	log.Printf("Auto-export scheduler running (schedule %q, timezone %s)", cfg.ExportSchedule, cfg.Timezone)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx := c.Stop()
	<-ctx.Done()
	return nil
}

func runSampleData(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("sample-data", flag.ExitOnError)
	dir := fs.String("dir", cfg.DataDir, "directory to write the sample files into")
	fs.Parse(args)

	paths, err := ingest.WriteSampleData(*dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Printf("Sample file written: %s", p)
	}
	return nil
}
