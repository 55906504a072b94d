package timeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"apptendo/lib/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultURL = "https://en.wikipedia.org/wiki/Timeline_of_Apple_Inc._products"
const DefaultUserAgent = "apptendo/1.0 (timeline scraper; +https://en.wikipedia.org/wiki/Timeline_of_Apple_Inc._products)"

type ClientOptions struct {
	UserAgent string
	// zero means no timeout
	Timeout time.Duration
	// if set, every request/response pair is dumped here when debug
	// logging is on
	Output restyutil.InstrumentOutput
}

// Client downloads timeline pages. It never retries.
type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	restyutil.InstrumentClient(client, tracer, opts.Output)

	return &Client{http: client}
}

// Fetch issues a single GET against link and parses the body as HTML.
func (c *Client) Fetch(ctx context.Context, link string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("fetch %s: %w", link, err)
	}
	if res.IsError() {
		err := fmt.Errorf("fetch %s: unexpected status %s", link, res.Status())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, fmt.Errorf("parse %s: %w", link, err)
	}
	return doc, nil
}
