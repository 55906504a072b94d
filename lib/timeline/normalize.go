package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"apptendo/lib/catalog"
	"apptendo/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultLimit caps how many new records a single run may add.
const DefaultLimit = 25

var ErrMissingName = errors.New("row has no product link")
var ErrInvalidRowspan = errors.New("invalid rowspan")

// Store is what Normalize writes into. Add must not overwrite an existing
// name and reports whether the record was added.
type Store interface {
	Has(name string) bool
	Add(name string, record catalog.Record) bool
}

type Options struct {
	// lowers the cap below DefaultLimit, it can never raise it.
	// zero or negative means DefaultLimit.
	Limit int
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return min(o.Limit, DefaultLimit)
}

// spanState carries a rowspan date cell over the rows it covers.
type spanState struct {
	remaining int
	date      string
}

// step advances the state over a row whose first cell is `cell` and
// returns the release date for that row.
func (s spanState) step(cell *goquery.Selection) (spanState, string, error) {
	if raw, ok := cell.Attr("rowspan"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			return s, "", fmt.Errorf("%w: %q", ErrInvalidRowspan, raw)
		}
		s = spanState{
			remaining: n,
			date:      htmlutil.SelectionText(cell),
		}
	}

	if s.remaining > 0 {
		date := s.date
		s.remaining--
		return s, date, nil
	}
	return s, htmlutil.SelectionText(cell), nil
}

// Normalize walks every <tr bgcolor> under doc in order and adds a record
// per product to store until opts.Limit new records have been added.
// Records added before an error is returned stay in the store.
func Normalize(ctx context.Context, doc *goquery.Selection, store Store, opts Options) (int, error) {
	ctx, span := tracer.Start(ctx, "Normalize")
	defer span.End()

	limit := opts.limit()
	rows := doc.Find("tr[bgcolor]")
	span.SetAttributes(attribute.Int("rows", rows.Length()))

	state := spanState{}
	added := 0
	for i := range rows.Nodes {
		if added >= limit {
			slog.DebugContext(ctx, "new record limit reached", "limit", limit, "row", i)
			break
		}

		row := rows.Eq(i)
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			continue
		}

		category := catalog.LookupColor(row.AttrOr("bgcolor", ""))
		if category == catalog.Unknown {
			slog.WarnContext(ctx, "row has unknown category color", "row", i, "bgcolor", row.AttrOr("bgcolor", ""))
		}

		var date string
		var err error
		state, date, err = state.step(cell)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return added, fmt.Errorf("row %d: %w", i, err)
		}

		anchor, ok := htmlutil.FirstAnchor(ctx, row)
		if !ok || anchor.Name == "" {
			err := fmt.Errorf("row %d: %w", i, ErrMissingName)
			span.SetStatus(codes.Error, err.Error())
			return added, err
		}

		if store.Has(anchor.Name) {
			continue
		}
		if store.Add(anchor.Name, catalog.Record{
			ReleaseDate: date,
			Category:    category,
		}) {
			added++
		}
	}

	span.SetAttributes(attribute.Int("added", added))
	return added, nil
}
