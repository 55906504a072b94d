package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"apptendo/lib/catalog"
	"apptendo/lib/productstore"
	"apptendo/lib/timeline"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("apptendo.lib.pipeline")
var meter = otel.Meter("apptendo.lib.pipeline")

var addedCounter, _ = meter.Int64Counter(
	"apptendo.records.added",
	metric.WithDescription("records added to the product cache"),
)
var insertedCounter, _ = meter.Int64Counter(
	"apptendo.products.inserted",
	metric.WithDescription("rows inserted into the products table"),
)

type Fetcher interface {
	Fetch(ctx context.Context, link string) (*goquery.Document, error)
}

type Mirror interface {
	EnsureSchema(ctx context.Context) error
	Mirror(ctx context.Context, records []catalog.NamedRecord) (int, error)
}

type Options struct {
	URL       string
	CachePath string
	Limit     int
}

type Result struct {
	// new records found on the page this run
	Added int
	// rows inserted into the products table this run
	Inserted int
	// records in the cache after this run
	Total int
	// the fetch error, if any. a failed fetch does not fail the run.
	FetchErr error
}

// Run loads the cache, merges at most opts.Limit new records from the
// page, writes the cache back and mirrors it into the database.
func Run(ctx context.Context, fetcher Fetcher, mirror Mirror, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	store := productstore.Load(opts.CachePath)
	result := Result{}

	doc, err := fetcher.Fetch(ctx, opts.URL)
	if err != nil {
		slog.ErrorContext(ctx, "unable to fetch timeline, continuing with cached records", "url", opts.URL, "err", err)
		result.FetchErr = err
	} else {
		added, err := timeline.Normalize(ctx, doc.Selection, store, timeline.Options{Limit: opts.Limit})
		if err != nil {
			return result, fmt.Errorf("normalize timeline: %w", err)
		}
		result.Added = added
	}

	err = store.Write(opts.CachePath)
	if err != nil {
		return result, err
	}
	result.Total = store.Len()

	err = mirror.EnsureSchema(ctx)
	if err != nil {
		return result, fmt.Errorf("ensure schema: %w", err)
	}
	inserted, err := mirror.Mirror(ctx, store.Records())
	if err != nil {
		return result, fmt.Errorf("mirror products: %w", err)
	}
	result.Inserted = inserted

	addedCounter.Add(ctx, int64(result.Added))
	insertedCounter.Add(ctx, int64(result.Inserted))
	span.SetAttributes(
		attribute.Int("added", result.Added),
		attribute.Int("inserted", result.Inserted),
		attribute.Int("total", result.Total),
	)
	slog.InfoContext(
		ctx, "run finished",
		"added", result.Added,
		"inserted", result.Inserted,
		"total", result.Total,
	)
	return result, nil
}
