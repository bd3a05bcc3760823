// Package outcomedemo runs a small asynchronous validation pipeline over a
// list of inputs and prints one line per input.
package outcomedemo

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ib-77/outcome/internal/platform/config"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/grpcx"
	"github.com/ib-77/outcome/pkg/rop/mass"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Config holds demo settings.
type Config struct {
	Inputs  []string      `env:"OUTCOME_DEMO_INPUTS" envDefault:"1,2,bad,,5,-3" envSeparator:","`
	Timeout time.Duration `env:"OUTCOME_DEMO_TIMEOUT" envDefault:"2s"`
	Delay   time.Duration `env:"OUTCOME_DEMO_DELAY" envDefault:"10ms"`
	// Status prints the gRPC status of every failure as JSON.
	Status bool `env:"OUTCOME_DEMO_STATUS"`
}

// ParseConfig reads env defaults and then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	var inputs string
	fs.StringVar(&inputs, "inputs", strings.Join(cfg.Inputs, ","), "comma-separated values to process")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "deadline for the whole run")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "simulated latency of the async step")
	fs.BoolVar(&cfg.Status, "status", cfg.Status, "print failures as gRPC status JSON")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Inputs = strings.Split(inputs, ",")
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

func validationError(msg string) *rop.Error {
	return rop.NewError(msg).WithTag(rop.TagErrorType, grpcx.ErrorTypeValidation)
}

// Run processes every input concurrently and writes the results in input
// order.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	pending := make([]<-chan rop.Result[line], 0, len(cfg.Inputs))
	for in := range core.ToChanMany(context.WithoutCancel(ctx), cfg.Inputs) {
		pending = append(pending, process(ctx, in, cfg))
	}

	results, err := core.Collect(context.WithoutCancel(ctx), pending...)
	if err != nil {
		return fmt.Errorf("collect results: %w", err)
	}

	failed := 0
	for i, r := range results {
		r.Repanic()
		l := r.ValueOr(line{text: "no result: " + r.Err().Error()})
		if !l.ok {
			failed++
		}
		if _, err := fmt.Fprintf(out, "%q -> %s\n", cfg.Inputs[i], l.text); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	log.Printf("processed %d inputs: %d ok, %d failed", len(results), len(results)-failed, failed)
	return nil
}

type line struct {
	text string
	ok   bool
}

func process(ctx context.Context, in string, cfg Config) <-chan rop.Result[line] {
	p := mass.EnsureAll(ctx, mass.FromValue(in),
		solo.NewCheck(func(_ context.Context, s string) bool { return strings.TrimSpace(s) != "" },
			validationError("input is empty")))
	n := mass.Try(ctx, p, parse)
	n = mass.Ensure(ctx, n, func(_ context.Context, v int) bool { return v > 0 },
		validationError("value must be positive"))
	sq := mass.MapAsync(ctx, n, func(ctx context.Context, v int) <-chan int {
		return square(ctx, v, cfg.Delay)
	})

	return mass.Match(ctx, sq,
		func(_ context.Context, v int) line {
			return line{text: "val:" + strconv.Itoa(v), ok: true}
		},
		func(_ context.Context, errs []rop.ErrorReason) line {
			return line{text: describe(rop.Failure(errs...), cfg.Status)}
		})
}

func parse(_ context.Context, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, validationError(fmt.Sprintf("not a number: %q", s)).
			CausedBy(rop.NewExceptionError(err))
	}
	return n, nil
}

func square(ctx context.Context, v int, delay time.Duration) <-chan int {
	out := make(chan int, 1)
	go func() {
		defer close(out)
		select {
		case <-time.After(delay):
			out <- v * v
		case <-ctx.Done():
		}
	}()
	return out
}

func describe(o rop.Outcome, withStatus bool) string {
	msgs := make([]string, 0, len(o.Errors()))
	for _, e := range o.Errors() {
		msgs = append(msgs, e.Message())
	}
	text := grpcx.Code(o).String() + ": " + strings.Join(msgs, "; ")
	if !withStatus {
		return text
	}

	b, err := grpcx.Describe(o)
	if err != nil {
		return text + " (status unavailable: " + err.Error() + ")"
	}
	return text + " " + string(b)
}
