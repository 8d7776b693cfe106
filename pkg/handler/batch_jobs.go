package handler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yumyai/protparam/logger"
	"github.com/yumyai/protparam/pkg/fasta"
	"github.com/yumyai/protparam/pkg/model"
	"github.com/yumyai/protparam/pkg/protparam"
	"go.uber.org/zap"
)

// BatchJobStatus follows the analysis lifecycle: idle while queued,
// analyzing while records are processed, then done or failed.
type BatchJobStatus = protparam.Stage

const (
	BatchJobQueued    BatchJobStatus = protparam.StageIdle
	BatchJobRunning   BatchJobStatus = protparam.StageAnalyzing
	BatchJobCompleted BatchJobStatus = protparam.StageDone
	BatchJobFailed    BatchJobStatus = protparam.StageFailed
)

// BatchJob tracks the analysis of one FASTA submission.
type BatchJob struct {
	ID        string                `json:"id"`
	Status    BatchJobStatus        `json:"status"`
	Records   int                   `json:"records"`
	Processed int                   `json:"processed"`
	Failed    int                   `json:"failed"`
	Results   []*model.RecordResult `json:"results,omitempty"`
	Error     string                `json:"error,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// BatchJobManager stores batch job states indexed by job ID.
type BatchJobManager struct {
	mu   sync.RWMutex
	jobs map[string]*BatchJob
	ttl  time.Duration
}

// NewBatchJobManager constructs a job manager with no jobs. Finished jobs
// older than ttl are dropped when new jobs arrive; ttl <= 0 keeps them forever.
func NewBatchJobManager(ttl time.Duration) *BatchJobManager {
	return &BatchJobManager{
		jobs: make(map[string]*BatchJob),
		ttl:  ttl,
	}
}

// NewJob registers a queued job for the given number of records.
func (m *BatchJobManager) NewJob(records int) *BatchJob {
	now := time.Now()
	job := &BatchJob{
		ID:        uuid.New().String(),
		Status:    BatchJobQueued,
		Records:   records,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.pruneLocked(now)
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// SetRunning marks the job as running.
func (m *BatchJobManager) SetRunning(jobID string) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Status = BatchJobRunning
	})
}

// AddResult appends one analysed record.
func (m *BatchJobManager) AddResult(jobID string, r *model.RecordResult) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Results = append(job.Results, r)
		job.Processed++
		if r.Error != "" {
			job.Failed++
		}
	})
}

// CompleteJob marks the job complete.
func (m *BatchJobManager) CompleteJob(jobID string) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Status = BatchJobCompleted
	})
}

// FailJob records a failure and attaches a user-facing error message.
func (m *BatchJobManager) FailJob(jobID string, err error) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Status = BatchJobFailed
		job.Error = err.Error()
	})
}

// GetJob returns a snapshot of the job.
func (m *BatchJobManager) GetJob(jobID string) (*BatchJob, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, false
	}
	snapshot := *job
	snapshot.Results = append([]*model.RecordResult(nil), job.Results...)
	return &snapshot, true
}

// Run analyses records for jobID, stopping early when ctx is cancelled.
func (m *BatchJobManager) Run(ctx context.Context, jobID string, records []fasta.Record) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("Batch job panicked", zap.String("job_id", jobID), zap.Any("panic", p))
			m.FailJob(jobID, fmt.Errorf("internal error"))
		}
	}()

	m.SetRunning(jobID)
	start := time.Now()

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			m.FailJob(jobID, fmt.Errorf("batch cancelled: %w", err))
			return
		}
		for _, r := range model.AnalyzeRecords([]fasta.Record{rec}) {
			m.AddResult(jobID, r)
		}
	}

	m.CompleteJob(jobID)
	logger.Info("Batch job finished",
		zap.String("job_id", jobID),
		zap.Int("records", len(records)),
		zap.Duration("duration", time.Since(start)),
	)
}

func (m *BatchJobManager) updateJob(jobID string, update func(job *BatchJob)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}

	update(job)
	job.UpdatedAt = time.Now()
}

func (m *BatchJobManager) pruneLocked(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, job := range m.jobs {
		finished := job.Status == BatchJobCompleted || job.Status == BatchJobFailed
		if finished && now.Sub(job.UpdatedAt) > m.ttl {
			delete(m.jobs, id)
		}
	}
}
