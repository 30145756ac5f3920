package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"BurnLab/internal/config"
	"BurnLab/internal/engine"
	"BurnLab/internal/export"
	"BurnLab/internal/recorder"
	"BurnLab/internal/report"
	"BurnLab/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BurnLab starting...")

	// Local overrides from .env, if present
	_ = godotenv.Load()

	scenarioPath := flag.String("scenario", "configs/scenario.yaml", "path to a scenario YAML file")
	sweepDir := flag.String("sweep", "", "directory of scenario files to run as a batch")
	watch := flag.Bool("watch", false, "re-run the scenario on the scenario's watch cron spec")
	flag.Parse()

	if v := os.Getenv("SCENARIO_PATH"); v != "" {
		*scenarioPath = v
	}

	if *sweepDir != "" {
		if err := runSweep(*sweepDir); err != nil {
			log.Fatalf("[FATAL] sweep: %v", err)
		}
		return
	}

	if *watch {
		runWatch(*scenarioPath)
		return
	}

	if err := runScenario(*scenarioPath); err != nil {
		log.Fatalf("[FATAL] run scenario: %v", err)
	}
}

// runScenario executes one full simulation: load and resolve the
// scenario, drive the engine to a terminal state, then report, export
// and record the finished run.
func runScenario(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	params, err := cfg.Resolve()
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(params)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	status, err := eng.Run()
	if err != nil {
		// An aborted run still has a partial history worth reporting.
		log.Printf("[ERROR] run aborted: %v", err)
	}
	snap := eng.Snapshot()
	log.Printf("[INFO] scenario %q finished: %s after %d month(s)", cfg.Scenario.Name, status, snap.State.Month)

	fmt.Print(report.FormatRunReport(cfg.Scenario.Name, snap))

	if cfg.Output.CSVPath != "" {
		if err := export.WriteCSV(cfg.Output.CSVPath, snap); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		log.Printf("[INFO] history written to %s", cfg.Output.CSVPath)
	}
	if cfg.Output.JSONPath != "" {
		if err := export.WriteJSON(cfg.Output.JSONPath, snap); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		log.Printf("[INFO] snapshot written to %s", cfg.Output.JSONPath)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Output.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Output.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		} else {
			rec = sr
			defer sr.Close()
		}
	}
	run := recorder.NewRunSummary(cfg.Scenario.Name, params.Variant, snap, startedAt)
	if err := rec.RecordRun(run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if err := rec.RecordHistory(run.ID, snap.History); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	if err := rec.RecordAnnual(run.ID, snap.Annual); err != nil {
		return fmt.Errorf("record annual ratios: %w", err)
	}
	return nil
}

// runSweep runs every scenario file in a directory, each with its own
// isolated engine. A failing scenario does not stop the batch.
func runSweep(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read sweep dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return fmt.Errorf("no scenario files in %s", dir)
	}

	log.Printf("[INFO] sweeping %d scenario(s) in %s", len(paths), dir)
	for _, path := range paths {
		if err := runScenario(path); err != nil {
			log.Printf("[ERROR] scenario %s: %v", path, err)
		}
	}
	return nil
}

// runWatch re-runs the scenario on its cron spec until interrupted.
func runWatch(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load scenario: %v", err)
	}
	spec := cfg.Watch.Cron
	if spec == "" {
		spec = "0 */5 * * * *" // every five minutes
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, func() {
		if err := runScenario(path); err != nil {
			log.Printf("[ERROR] watch run: %v", err)
		}
	})
	if err := sched.Register(spec); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	sched.RunNow()
	log.Printf("[INFO] watching %s on %q. Press Ctrl+C to stop.", path, spec)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] BurnLab stopped")
}
