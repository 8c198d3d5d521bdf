package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"idverify/internal/config"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/verification"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type verifyLine struct {
	identity string
	result   *verification.Result
	err      error
}

// readIdentities returns the non-empty, non-comment lines of r.
func readIdentities(r io.Reader) ([]string, error) {
	var ids []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read identities: %w", err)
	}

	return ids, nil
}

// verifyAll verifies every identity with at most concurrency calls in flight.
// Provider failures are reported per line; only context cancellation aborts
// the batch.
func verifyAll(ctx context.Context, v verification.Verifier, ids []string, concurrency int) ([]verifyLine, error) {
	lines := make([]verifyLine, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))
	for i, id := range ids {
		g.Go(func() error {
			res, err := v.Verify(gctx, id)
			lines[i] = verifyLine{identity: id, result: res, err: err}
			if err != nil && ctx.Err() != nil {
				return ctx.Err() //nolint: wrapcheck
			}

			return nil
		})
	}

	return lines, g.Wait() //nolint: wrapcheck
}

func printLines(w io.Writer, lines []verifyLine) (failed int) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "IDENTITY\tSTATUS\tDETAIL")
	for _, l := range lines {
		if l.err != nil {
			failed++
			code, msg := string(verification.CodeInvalidResponse), l.err.Error()
			var verr *verification.Error
			if errors.As(l.err, &verr) {
				code, msg = string(verr.Code), verr.Message
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", logger.Mask(l.identity), code, msg)

			continue
		}

		detail := l.result.Provider
		switch {
		case l.result.Person != nil:
			detail = strings.Join([]string{l.result.Person.FirstName, l.result.Person.LastName}, " ")
		case l.result.Company != nil:
			detail = l.result.Company.Name
		}
		_, _ = fmt.Fprintf(tw, "%s\tVERIFIED\t%s (%d attempts)\n", logger.Mask(l.identity), detail, l.result.Attempts)
	}
	_ = tw.Flush()

	return failed
}

func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [identity...]",
		Short: "Verifies identity numbers against the configured providers",
		Long: "Verifies the given identity numbers, or one per line from --file (\"-\" reads stdin),\n" +
			"and prints one result per identity. Nothing is stored.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rawType, _ := cmd.Flags().GetString("type")
			file, _ := cmd.Flags().GetString("file")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			t, ok := domain.ParseIdentityType(rawType)
			if !ok {
				logger.Fatal(ctx, "unknown identity type", zap.String("type", rawType))
			}

			ids := slices.Clone(args)
			if file != "" {
				in := io.Reader(os.Stdin)
				if file != "-" {
					f, err := os.Open(file)
					if err != nil {
						logger.Fatal(ctx, "could not open identities file", zap.Error(err))
					}
					defer f.Close()
					in = f
				}
				fromFile, err := readIdentities(in)
				if err != nil {
					logger.Fatal(ctx, "could not read identities file", zap.Error(err))
				}
				ids = append(ids, fromFile...)
			}
			if len(ids) == 0 {
				logger.Fatal(ctx, "no identities given")
			}

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()
			v, ok := getProviders(ctx, cfg, rdb).verifiers[t]
			if !ok {
				logger.Fatal(ctx, "no provider verifies this identity type", zap.String("type", string(t)))
			}

			lines, err := verifyAll(ctx, v, ids, concurrency)
			if err != nil {
				logger.Error(ctx, "verification interrupted", zap.Error(err))
			}
			failed := printLines(cmd.OutOrStdout(), lines)
			logger.Info(ctx, "verification finished",
				zap.String("provider", v.Name()), zap.Int("total", len(ids)), zap.Int("failed", failed))
		},
	}

	cmd.Flags().String("type", string(domain.IdentityTypeNIN), "identity type: nin or cac")
	cmd.Flags().String("file", "", "file with one identity per line, \"-\" for stdin")
	cmd.Flags().Int("concurrency", 4, "maximum concurrent provider calls")

	return cmd
}
