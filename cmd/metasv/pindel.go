package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/robrollback/metasv/internal/output"
	"github.com/robrollback/metasv/internal/pindel"
	"github.com/robrollback/metasv/internal/reference"
)

func newPindel2VCFCmd() *cobra.Command {
	var (
		pindelIn  string
		vcfOut    string
		sample    string
		fastaPath string
	)

	cmd := &cobra.Command{
		Use:   "pindel2vcf",
		Short: "Convert a Pindel output file to VCF",
		Example: `  metasv pindel2vcf --pindel_in calls_D --sample tumor --reference GRCh38.fa
  cat calls_LI | metasv pindel2vcf --sample tumor --vcf_out out.vcf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sample == "" {
				sample = viper.GetString("sample")
			}
			if sample == "" {
				return fmt.Errorf("--sample is required")
			}
			if fastaPath == "" {
				fastaPath = viper.GetString("reference.fasta")
			}

			var ref reference.Fetcher
			if fastaPath != "" {
				fetcher, err := reference.NewFaidxFetcher(fastaPath)
				if err != nil {
					return err
				}
				defer fetcher.Close()
				ref = fetcher
			}

			reader, err := pindel.NewReader(pindelIn, ref)
			if err != nil {
				return err
			}
			defer reader.Close()
			reader.SetLogger(logger)

			out := os.Stdout
			if vcfOut != "" {
				out, err = os.Create(vcfOut)
				if err != nil {
					return fmt.Errorf("create output vcf: %w", err)
				}
				defer out.Close()
			}

			writer := output.NewWriter(out)
			if err := writer.WriteHeader(sample); err != nil {
				return fmt.Errorf("write vcf header: %w", err)
			}

			var converted, skipped int
			for {
				rec, err := reader.Next()
				if err != nil {
					return err
				}
				if rec == nil {
					break
				}

				vcfRec := rec.ToVCFRecord()
				if vcfRec == nil {
					skipped++
					continue
				}
				if err := writer.WriteRecord(vcfRec); err != nil {
					return fmt.Errorf("write vcf record: %w", err)
				}
				converted++
			}

			if err := writer.Flush(); err != nil {
				return fmt.Errorf("flush vcf: %w", err)
			}

			logger.Info("pindel conversion complete",
				zap.Int("converted", converted),
				zap.Int("skipped", skipped))
			return nil
		},
	}

	cmd.Flags().StringVar(&pindelIn, "pindel_in", "-", "Pindel output file (default: stdin)")
	cmd.Flags().StringVar(&vcfOut, "vcf_out", "", "Output VCF to create (default: stdout)")
	cmd.Flags().StringVar(&sample, "sample", "", "Sample name (falls back to config key 'sample')")
	cmd.Flags().StringVar(&fastaPath, "reference", "", "Indexed reference FASTA for homology lookup (falls back to config key 'reference.fasta')")

	return cmd
}
