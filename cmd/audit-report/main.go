// Command audit-report writes the tamper-evident compliance report of one
// matter, or verifies a report written earlier.
//
// Usage:
//
//	audit-report --matter=<uuid> [--out=report.jsonl]
//	audit-report --verify=report.jsonl
//
// Verification needs neither configuration nor a database.
//
// Exit codes: 0 = success, 1 = error, 2 = report failed verification.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/LawUtilities/ADMS.API-sub014/internal/app"
	"github.com/LawUtilities/ADMS.API-sub014/internal/config"
	"github.com/LawUtilities/ADMS.API-sub014/internal/service/report"
	"github.com/LawUtilities/ADMS.API-sub014/pkg/ctxutil"
)

func main() {
	matterFlag := flag.String("matter", "", "id of the matter to report on")
	outFlag := flag.String("out", "", "output file (default: stdout)")
	verifyFlag := flag.String("verify", "", "verify the report in this file instead of writing one")
	flag.Parse()

	if *verifyFlag != "" {
		os.Exit(verify(*verifyFlag))
	}

	matterID, err := uuid.Parse(*matterFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: audit-report --matter=<uuid> [--out=report.jsonl] | --verify=report.jsonl")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger, matterID, *outFlag); err != nil {
		logger.Error("report failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, matterID uuid.UUID, out string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()
	ctx = ctxutil.EnsureCorrelationID(ctx)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if out == "" {
		sum, err := a.Reports.WriteMatterReport(ctx, matterID, os.Stdout)
		if err != nil {
			return err
		}
		logComplete(ctx, logger, matterID, sum)
		return nil
	}

	sum, err := writeFile(out, func(w io.Writer) (report.Summary, error) {
		return a.Reports.WriteMatterReport(ctx, matterID, w)
	})
	if err != nil {
		return err
	}
	logComplete(ctx, logger, matterID, sum)
	return nil
}

// writeFile creates path, runs write against it and closes it. A failed
// close is reported since the report may not be fully on disk.
func writeFile(path string, write func(io.Writer) (report.Summary, error)) (sum report.Summary, err error) {
	f, err := os.Create(path)
	if err != nil {
		return report.Summary{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

func logComplete(ctx context.Context, logger *slog.Logger, matterID uuid.UUID, sum report.Summary) {
	logger.InfoContext(ctx, "report complete",
		slog.String("matter_id", matterID.String()),
		slog.Int("lines", sum.Lines),
		slog.String("digest", sum.Digest),
	)
}

func verify(path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
		return 1
	}
	defer f.Close()

	sum, err := report.Verify(f)
	switch {
	case errors.Is(err, report.ErrDigestMismatch):
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return 2
	case err != nil:
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return 1
	}

	fmt.Printf("%s: %d lines, digest %s\n", path, sum.Lines, sum.Digest)
	return 0
}
