// Model for running analyses and keeping their history

package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yumyai/protparam/logger"
	"github.com/yumyai/protparam/pkg/fasta"
	"github.com/yumyai/protparam/pkg/protparam"
	"go.uber.org/zap"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// SaveAnalysis stores result under a fresh id.
func SaveAnalysis(ctx context.Context, db *sql.DB, label string, result *protparam.Result) (*AnalysisRecord, error) {
	if result == nil {
		return nil, errors.New("SaveAnalysis: nil result")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("SaveAnalysis: encode result: %w", err)
	}

	rec := &AnalysisRecord{
		ID:        uuid.New().String(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
		Result:    result,
	}

	const q = `INSERT INTO analyses
		(id, label, sequence, length, molecular_weight, isoelectric_point, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = db.ExecContext(ctx, q,
		rec.ID, rec.Label, result.Sequence, result.Length,
		result.MolecularWeight, result.IsoelectricPoint,
		string(payload), rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("SaveAnalysis: insert failed: %w", err)
	}

	logger.Debug("Saved analysis", zap.String("id", rec.ID), zap.Int("length", result.Length))
	return rec, nil
}

// GetAnalysis loads one stored analysis.
func GetAnalysis(ctx context.Context, db *sql.DB, id string) (*AnalysisRecord, error) {
	const q = `SELECT id, label, result_json, created_at FROM analyses WHERE id = ?`

	var (
		rec     AnalysisRecord
		payload string
		created int64
	)

	err := db.QueryRowContext(ctx, q, id).Scan(&rec.ID, &rec.Label, &payload, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("GetAnalysis: query failed: %w", err)
	}

	var result protparam.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("GetAnalysis: decode result: %w", err)
	}

	rec.Result = &result
	rec.CreatedAt = time.Unix(0, created).UTC()
	return &rec, nil
}

// ListAnalyses returns summaries, newest first.
func ListAnalyses(ctx context.Context, db *sql.DB, limit, offset int) ([]*AnalysisSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT id, label, sequence, length, molecular_weight, isoelectric_point, created_at
		FROM analyses
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`

	rows, err := db.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListAnalyses: query failed: %w", err)
	}
	defer rows.Close()

	results := make([]*AnalysisSummary, 0, limit)

	for rows.Next() {
		var (
			s       AnalysisSummary
			created int64
		)
		if err := rows.Scan(&s.ID, &s.Label, &s.Sequence, &s.Length, &s.MolecularWeight, &s.IsoelectricPoint, &created); err != nil {
			return nil, fmt.Errorf("ListAnalyses: scan failed: %w", err)
		}
		s.CreatedAt = time.Unix(0, created).UTC()
		results = append(results, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAnalyses: %w", err)
	}
	return results, nil
}

// DeleteAnalysis removes a stored analysis.
func DeleteAnalysis(ctx context.Context, db *sql.DB, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("DeleteAnalysis: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteAnalysis: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
	}
	return nil
}

// AnalyzeRecords runs the engine over every FASTA record. A bad record
// fills in Error and does not stop the others.
func AnalyzeRecords(records []fasta.Record) []*RecordResult {
	out := make([]*RecordResult, 0, len(records))
	for _, rec := range records {
		r := &RecordResult{Header: rec.Header}
		res, err := protparam.Analyze(rec.Sequence)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Result = res
		}
		out = append(out, r)
	}
	return out
}
