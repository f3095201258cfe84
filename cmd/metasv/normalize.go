package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/robrollback/metasv/internal/breakdancer"
	"github.com/robrollback/metasv/internal/duckdb"
	"github.com/robrollback/metasv/internal/pindel"
	"github.com/robrollback/metasv/internal/reference"
	"github.com/robrollback/metasv/internal/sv"
)

func newNormalizeCmd() *cobra.Command {
	var (
		format    string
		inPath    string
		outPath   string
		storePath string
		fastaPath string
	)

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize caller output into unified SV intervals",
		Long: `Reads a BreakDancer or Pindel report and converts each call into the
unified interval representation. Intervals are written as TSV and can
additionally be appended to a DuckDB store for downstream merging.
Calls whose SV type has no unified representation are skipped.`,
		Example: `  metasv normalize --format breakdancer --in calls.ctx
  metasv normalize --format pindel --in calls_D --reference GRCh38.fa --duckdb intervals.duckdb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, err := collectIntervals(format, inPath, fastaPath)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outPath != "" {
				out, err = os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer out.Close()
			}
			if err := writeIntervalTSV(out, intervals); err != nil {
				return err
			}

			if storePath != "" {
				store, err := duckdb.Open(storePath)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.WriteIntervals(intervals); err != nil {
					return err
				}
				logger.Info("intervals stored",
					zap.String("path", storePath),
					zap.Int("count", len(intervals)))
			}

			logger.Info("normalization complete",
				zap.String("format", format),
				zap.Int("intervals", len(intervals)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: breakdancer or pindel (required)")
	cmd.Flags().StringVar(&inPath, "in", "-", "Caller report (default: stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "Interval TSV output (default: stdout)")
	cmd.Flags().StringVar(&storePath, "duckdb", "", "DuckDB store to append intervals to")
	cmd.Flags().StringVar(&fastaPath, "reference", "", "Indexed reference FASTA (pindel only)")
	cmd.MarkFlagRequired("format")

	return cmd
}

// collectIntervals reads the whole report and normalizes every
// convertible call.
func collectIntervals(format, inPath, fastaPath string) ([]*sv.Interval, error) {
	var intervals []*sv.Interval

	switch format {
	case "breakdancer":
		reader, err := breakdancer.NewReader(inPath)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		reader.SetLogger(logger)

		for {
			rec, err := reader.Next()
			if err != nil {
				return nil, err
			}
			if rec == nil {
				break
			}
			if iv := rec.ToSVInterval(); iv != nil {
				intervals = append(intervals, iv)
			}
		}

	case "pindel":
		if fastaPath == "" {
			fastaPath = viper.GetString("reference.fasta")
		}
		var ref reference.Fetcher
		if fastaPath != "" {
			fetcher, err := reference.NewFaidxFetcher(fastaPath)
			if err != nil {
				return nil, err
			}
			defer fetcher.Close()
			ref = fetcher
		}

		reader, err := pindel.NewReader(inPath, ref)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		reader.SetLogger(logger)

		for {
			rec, err := reader.Next()
			if err != nil {
				return nil, err
			}
			if rec == nil {
				break
			}
			if iv := rec.ToSVInterval(); iv != nil {
				intervals = append(intervals, iv)
			}
		}

	default:
		return nil, fmt.Errorf("unknown format %q (expected breakdancer or pindel)", format)
	}

	return intervals, nil
}

// writeIntervalTSV writes intervals as a tab-separated table.
func writeIntervalTSV(out io.Writer, intervals []*sv.Interval) error {
	w := bufio.NewWriter(out)
	if _, err := w.WriteString("chrom\tstart\tend\tsv_type\tlength\tsources\tcipos\twiggle\tgenotype\n"); err != nil {
		return err
	}

	for _, iv := range intervals {
		cipos := "."
		if iv.CIPos != nil {
			cipos = fmt.Sprintf("%d,%d", iv.CIPos.Lower, iv.CIPos.Upper)
		}
		genotype := iv.Genotype
		if genotype == "" {
			genotype = "."
		}

		line := strings.Join([]string{
			iv.Chrom,
			strconv.FormatInt(iv.Start, 10),
			strconv.FormatInt(iv.End, 10),
			string(iv.Type),
			strconv.FormatInt(iv.Length, 10),
			strings.Join(iv.Sources, ","),
			cipos,
			strconv.FormatInt(iv.Wiggle, 10),
			genotype,
		}, "\t")
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return w.Flush()
}
