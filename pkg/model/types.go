package model

import (
	"time"

	"github.com/yumyai/protparam/pkg/protparam"
)

// Stored analysis with its full result
type AnalysisRecord struct {
	ID        string            `json:"id" yaml:"id"`
	Label     string            `json:"label" yaml:"label"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
	Result    *protparam.Result `json:"result" yaml:"result"`
}

// Row of the history listing
type AnalysisSummary struct {
	ID               string    `json:"id" yaml:"id"`
	Label            string    `json:"label" yaml:"label"`
	Sequence         string    `json:"sequence" yaml:"sequence"`
	Length           int       `json:"length" yaml:"length"`
	MolecularWeight  float64   `json:"molecular_weight" yaml:"molecular_weight"`
	IsoelectricPoint float64   `json:"isoelectric_point" yaml:"isoelectric_point"`
	CreatedAt        time.Time `json:"created_at" yaml:"created_at"`
}

// One FASTA record after analysis. Exactly one of Result and Error is set.
type RecordResult struct {
	Header string            `json:"header" yaml:"header"`
	Result *protparam.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string            `json:"error,omitempty" yaml:"error,omitempty"`
}
