// Package parser implements the extraction, normalization, validation and
// aggregation pipeline for Acuity customs invoices.
package parser

import (
	"context"
	"fmt"
	"time"

	"acuity/internal"
	"acuity/internal/source"
)

// Options tunes one Parser instance. The zero value gives the Acuity layout
// with validation on and no item cap.
type Options struct {
	Schema         *Schema
	HeaderSchema   *HeaderSchema
	MaxItems       int
	SkipValidation bool
}

// Parser runs the whole pipeline for one tabular source per call. Instances
// hold no per-parse state and are safe for concurrent use.
type Parser struct {
	schema Schema
	header HeaderSchema
	opts   Options
}

func New(opts Options) *Parser {
	p := &Parser{schema: AcuitySchema, header: AcuityHeaderSchema, opts: opts}
	if opts.Schema != nil {
		p.schema = *opts.Schema
	}
	if opts.HeaderSchema != nil {
		p.header = *opts.HeaderSchema
	}
	return p
}

// Parse materializes the source and runs extract → validate → (aggregate) →
// summarize. A source-level failure aborts the parse and yields a failure
// envelope; row and field irregularities are accumulated in the result
// instead.
func (p *Parser) Parse(src source.Source, aggregate bool) internal.ParseResult {
	rows, err := src.Rows()
	if err != nil {
		return failure(err)
	}

	meta := internal.InvoiceMetadata{}
	if len(rows) > 0 {
		meta = ExtractMetadata(rows[0], p.header)
	}

	ext := NewExtractor(p.schema)
	items := make([]internal.LineItem, 0, len(rows))
	issues := make([]internal.ValidationIssue, 0)

	for idx, row := range rows {
		if p.opts.MaxItems > 0 && len(items) >= p.opts.MaxItems {
			break
		}
		item, err := extractRow(ext, row, idx)
		if err != nil {
			issues = append(issues, internal.ValidationIssue{
				LineNumber: idx + 1,
				Kind:       internal.IssueRowError,
				Detail:     err.Error(),
			})
			continue
		}
		if item == nil {
			continue
		}
		if !p.opts.SkipValidation {
			issues = append(issues, Validate(*item)...)
		}
		items = append(items, *item)
	}

	if aggregate {
		items = Aggregate(items)
	}

	return internal.ParseResult{
		Success:    true,
		Items:      items,
		Metadata:   meta,
		Summary:    Summarize(items),
		Errors:     issues,
		Aggregated: aggregate,
		Timestamp:  timestamp(),
	}
}

// ParseFile picks a source by extension and parses it.
func (p *Parser) ParseFile(path string, aggregate bool) internal.ParseResult {
	src, err := source.Open(path)
	if err != nil {
		return failure(err)
	}
	return p.Parse(src, aggregate)
}

// ParseFileAsync runs ParseFile on its own goroutine and delivers the whole
// result on the returned channel. There are no partial results; cancelling
// the context abandons the parse outcome.
func (p *Parser) ParseFileAsync(ctx context.Context, path string, aggregate bool) <-chan internal.ParseResult {
	out := make(chan internal.ParseResult, 1)
	go func() {
		defer close(out)
		result := p.ParseFile(path, aggregate)
		select {
		case out <- result:
		case <-ctx.Done():
		}
	}()
	return out
}

// extractRow isolates a structurally broken row: a panic while reading it
// becomes a row-level error and the parse moves on.
func extractRow(ext *Extractor, row source.Row, idx int) (item *internal.LineItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot extract row: %v", r)
		}
	}()
	return ext.Extract(row, idx), nil
}

func failure(err error) internal.ParseResult {
	return internal.ParseResult{Success: false, Error: err.Error(), Timestamp: timestamp()}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
