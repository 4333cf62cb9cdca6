// Package batch fans a set of independent documents out across parse
// workers and collects one result per input, in input order. Failures stay
// scoped to their document.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qiwei-han/invoice-extract/internal/parser"
)

// Document is one unit of work: a stable key plus its raw page-ordered text.
type Document struct {
	Key  string
	Text string
}

// Result pairs a document key with its extracted record. Err carries the
// failure reason when the parse blew up or timed out; the (possibly empty)
// record is still present, so every input yields exactly one output.
type Result struct {
	Key    string
	Record parser.InvoiceRecord
	Err    string
}

// DocumentParser is the single dependency the runner drives.
type DocumentParser interface {
	Parse(ctx context.Context, text string) parser.InvoiceRecord
}

// ErrNoRecords reports a batch in which no document produced a single
// populated field. The per-document results are still returned with it.
var ErrNoRecords = errors.New("no records extracted from batch")

type Runner struct {
	parser  DocumentParser
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*Runner)

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithParseTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewRunner(p DocumentParser, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		parser:  p,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run parses every document and returns one result per input, in input
// order. Documents share no state, so they are parsed concurrently; a
// panic or timeout inside one document is recorded on its result and never
// aborts the batch.
func (r *Runner) Run(ctx context.Context, docs []Document) ([]Result, error) {
	batchID := uuid.New()
	start := time.Now()
	r.logger.Info("batch.start", "batch_id", batchID.String(), "documents", len(docs))

	results := make([]Result, len(docs))

	workers := r.workers
	if workers > len(docs) {
		workers = len(docs)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.parseOne(ctx, docs[i])
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	extracted := 0
	failed := 0
	for _, res := range results {
		if res.Err != "" {
			failed++
		}
		if !res.Record.IsEmpty() {
			extracted++
		}
	}
	r.logger.Info("batch.done",
		"batch_id", batchID.String(),
		"documents", len(docs),
		"extracted", extracted,
		"failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if len(docs) > 0 && extracted == 0 {
		return results, ErrNoRecords
	}
	return results, nil
}

// parseOne isolates a single document: its own timeout, and a recover so a
// scanning panic becomes a failure marker instead of taking down the batch.
func (r *Runner) parseOne(ctx context.Context, doc Document) (res Result) {
	res.Key = doc.Key
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Sprintf("parse panic: %v", p)
			r.logger.Error("batch.doc.panic", "key", doc.Key, "panic", p)
		}
	}()

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res.Record = r.parser.Parse(cctx, doc.Text)
	if err := cctx.Err(); err != nil {
		res.Err = err.Error()
		r.logger.Warn("batch.doc.cancelled", "key", doc.Key, "error", err)
	}
	return res
}
