package founder

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bornholm/founderfinder/pkg/report"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Looker resolves the founders of a single company.
type Looker interface {
	Lookup(ctx context.Context, company string) (string, error)
}

var _ Looker = &Finder{}

type BatchOptions struct {
	Skip []glob.Glob
}

type BatchOptionFunc func(opts *BatchOptions)

// WithSkip ignores the companies whose name matches one of the patterns.
func WithSkip(patterns ...glob.Glob) BatchOptionFunc {
	return func(opts *BatchOptions) {
		opts.Skip = append(opts.Skip, patterns...)
	}
}

// ProcessFile runs Process on the CSV file at path.
func ProcessFile(ctx context.Context, path string, looker Looker, out io.Writer, funcs ...BatchOptionFunc) ([]report.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer file.Close()

	return Process(ctx, file, looker, out, funcs...)
}

// Process reads company names from the first column of the CSV document,
// skipping its header row, and prints the founders of each one to out.
//
// Companies are processed one after the other in input order. The first
// error aborts the whole batch; the entries processed so far are returned
// along with it.
func Process(ctx context.Context, r io.Reader, looker Looker, out io.Writer, funcs ...BatchOptionFunc) ([]report.Entry, error) {
	opts := &BatchOptions{}
	for _, fn := range funcs {
		fn(opts)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	entries := make([]report.Entry, 0)

	// Header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return entries, nil
		}

		return entries, errors.WithStack(err)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}

		if err != nil {
			return entries, errors.WithStack(err)
		}

		if err := ctx.Err(); err != nil {
			return entries, errors.WithStack(err)
		}

		company := strings.TrimSpace(record[0])
		if company == "" {
			continue
		}

		if skipped(company, opts.Skip) {
			slog.DebugContext(ctx, "skipping company", slog.String("company", company))
			continue
		}

		if _, err := fmt.Fprintf(out, "\nSearching for %s...\n", company); err != nil {
			return entries, errors.WithStack(err)
		}

		result, err := looker.Lookup(ctx, company)
		if err != nil {
			return entries, errors.Wrapf(err, "could not look up '%s'", company)
		}

		if _, err := fmt.Fprintf(out, "Founder of %s: %s\n", company, result); err != nil {
			return entries, errors.WithStack(err)
		}

		entries = append(entries, report.Entry{
			Company: company,
			Result:  result,
			Found:   !IsSentinel(result),
		})
	}
}

func skipped(company string, patterns []glob.Glob) bool {
	for _, p := range patterns {
		if p.Match(company) {
			return true
		}
	}

	return false
}
