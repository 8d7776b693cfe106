package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yumyai/protparam/logger"
	"github.com/yumyai/protparam/pkg/fasta"
	"github.com/yumyai/protparam/pkg/model"
	"github.com/yumyai/protparam/pkg/protparam"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRecords is returned after reporting when at least one input
// sequence could not be analysed.
var ErrInvalidRecords = errors.New("one or more sequences are invalid")

// Report is one analysed input as printed by the analyze command.
type Report struct {
	model.RecordResult `yaml:",inline"`
	NetCharge          *float64 `json:"net_charge,omitempty" yaml:"net_charge,omitempty"`
}

type analyzeOptions struct {
	fastaPath string
	chargeAt  float64
}

func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	opts := &analyzeOptions{}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [SEQUENCE...]",
		Short: "Analyse protein sequences given as arguments or FASTA",
		Long: `Analyse one or more protein sequences. Sequences can be passed as
arguments or read from a FASTA file with --fasta ("-" reads stdin).
Lowercase letters, whitespace and digits are ignored.

Every record is reported; the exit status is 1 when any of them is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var chargeAt *float64
			if cmd.Flags().Changed("charge-at") {
				chargeAt = &opts.chargeAt
			}
			return runAnalyze(cmd, args, opts.fastaPath, v.GetString("format"), chargeAt)
		},
	}

	analyzeCmd.Flags().StringVar(&opts.fastaPath, "fasta", "", `FASTA file to analyse, "-" for stdin`)
	analyzeCmd.Flags().Float64Var(&opts.chargeAt, "charge-at", 7.0, "also report the net charge at this pH")

	return analyzeCmd
}

func runAnalyze(cmd *cobra.Command, args []string, fastaPath, format string, chargeAt *float64) error {
	records, err := collectRecords(cmd.InOrStdin(), args, fastaPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("no sequence given: pass sequences as arguments or use --fasta")
	}
	if chargeAt != nil && (*chargeAt < 0 || *chargeAt > 14) {
		return fmt.Errorf("--charge-at must be within 0 and 14, got %g", *chargeAt)
	}

	reports := buildReports(records, chargeAt)

	failed := 0
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
	}
	logger.Debug("Analysed records", zap.Int("records", len(reports)), zap.Int("failed", failed))

	if err := writeReports(cmd.OutOrStdout(), reports, format); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", ErrInvalidRecords, failed, len(reports))
	}
	return nil
}

// collectRecords turns arguments into headerless records and appends the
// records of the FASTA input, if any.
func collectRecords(stdin io.Reader, args []string, fastaPath string) ([]fasta.Record, error) {
	records := make([]fasta.Record, 0, len(args))
	for _, arg := range args {
		records = append(records, fasta.Record{Sequence: arg})
	}

	if fastaPath == "" {
		return records, nil
	}

	var r io.Reader = stdin
	if fastaPath != "-" {
		f, err := os.Open(fastaPath)
		if err != nil {
			return nil, fmt.Errorf("opening fasta: %w", err)
		}
		defer f.Close()
		r = f
	}

	parsed, err := fasta.Parse(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("Read FASTA", zap.String("path", fastaPath), zap.Int("records", len(parsed)))
	return append(records, parsed...), nil
}

func buildReports(records []fasta.Record, chargeAt *float64) []Report {
	results := model.AnalyzeRecords(records)
	reports := make([]Report, 0, len(results))
	for _, r := range results {
		rep := Report{RecordResult: *r}
		if r.Result != nil && chargeAt != nil {
			charge := protparam.NetCharge(*chargeAt, r.Result.Composition)
			rep.NetCharge = &charge
		}
		reports = append(reports, rep)
	}
	return reports
}

func writeReports(w io.Writer, reports []Report, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return writeText(w, reports)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: use text, json or yaml", format)
	}
}
