package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"apptendo/lib/pipeline"
	"apptendo/lib/restyutil"
	"apptendo/lib/timeline"
	"apptendo/lib/util/serviceutil"
)

func runScrape(ctx context.Context, cfg Config) {
	opts := timeline.ClientOptions{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout(),
	}
	if cfg.Debug && cfg.DumpHttp != "" {
		out, err := restyutil.NewFilesystemOutput(cfg.DumpHttp)
		if err != nil {
			slog.Warn("failed to prepare http dump directory", "dir", cfg.DumpHttp, "err", err)
		} else {
			opts.Output = out
		}
	}
	client := timeline.NewClient(opts)

	mirror, closeDB := openMirror(cfg)
	defer closeDB()

	t1 := time.Now()
	res, err := pipeline.Run(ctx, client, mirror, pipeline.Options{
		URL:       cfg.Url,
		CachePath: cfg.JsonFile,
		Limit:     cfg.Limit,
	})
	if err != nil {
		closeDB()
		serviceutil.Fatal("run failed", err)
	}
	t2 := time.Now()

	slog.Debug("scraping time", "seconds", t2.Sub(t1).Seconds())
	fmt.Printf("Added %d entries to the database and JSON.\n", res.Added)
}
