// Package batch validates many IBANs concurrently and produces report records.
package batch

import (
	"context"
	"runtime"

	"fjacquet/iban-check/internal/iban"
	"fjacquet/iban-check/internal/ibanformat"
	"fjacquet/iban-check/internal/logging"
	"fjacquet/iban-check/internal/mistranscription"
	"fjacquet/iban-check/internal/report"

	"golang.org/x/sync/errgroup"
)

// sequentialThreshold is the input count below which goroutines are not
// worth their overhead.
const sequentialThreshold = 100

// Processor turns inputs into report records using a bounded worker pool.
type Processor struct {
	validator *iban.Validator
	engine    *mistranscription.Engine
	logger    logging.Logger
	workers   int
}

// NewProcessor creates a processor. A nil engine disables suggestions and a
// non-positive worker count selects runtime.NumCPU().
func NewProcessor(validator *iban.Validator, engine *mistranscription.Engine, workers int, logger logging.Logger) *Processor {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Processor{
		validator: validator,
		engine:    engine,
		logger:    logger,
		workers:   workers,
	}
}

// Workers returns the concurrency limit.
func (p *Processor) Workers() int {
	return p.workers
}

// Validate builds the record for a single input.
func (p *Processor) Validate(input report.Input) report.Record {
	machine := ibanformat.ToMachine(input.IBAN)
	record := report.Record{
		Reference:  input.Reference,
		Input:      input.IBAN,
		Machine:    machine,
		Human:      ibanformat.ToHuman(machine),
		Obfuscated: ibanformat.ToObfuscated(machine),
		Country:    iban.CountryPart(machine),
		Valid:      p.validator.Verify(machine, true),
		National:   p.validator.VerifyNationalChecksum(machine).String(),
	}
	if !record.Valid && p.engine != nil {
		record.Suggestions = report.JoinSuggestions(p.engine.Suggest(machine))
	}
	return record
}

// Process validates inputs and returns one record per input in input order.
// It stops early and returns the context error if ctx is cancelled.
func (p *Processor) Process(ctx context.Context, inputs []report.Input) ([]report.Record, error) {
	records := make([]report.Record, len(inputs))

	if len(inputs) < sequentialThreshold {
		for i := range inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			records[i] = p.Validate(inputs[i])
		}
		p.logSummary(records, 1)
		return records, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns a distinct index.
			records[i] = p.Validate(inputs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logSummary(records, p.workers)
	return records, nil
}

func (p *Processor) logSummary(records []report.Record, workers int) {
	valid := 0
	for _, r := range records {
		if r.Valid {
			valid++
		}
	}
	p.logger.Debug("Batch validation completed",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: "valid", Value: valid},
		logging.Field{Key: logging.FieldWorkers, Value: workers})
}
