package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yumyai/protparam/logger"
	"github.com/yumyai/protparam/pkg/fasta"
	"github.com/yumyai/protparam/pkg/handler/request"
	"go.uber.org/zap"
)

const maxBatchRecords = 1000

// Payload of an accepted batch
type BatchAccepted struct {
	JobID   string `json:"job_id"`
	Records int    `json:"records"`
	Status  string `json:"status"`
}

func (dbctx *DBContext) SubmitBatchAPI(w http.ResponseWriter, r *http.Request) {

	var req request.BatchRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	records, err := fasta.ParseString(req.Fasta)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusBadRequest, "FASTA contains no records")
		return
	}
	if len(records) > maxBatchRecords {
		writeError(w, http.StatusRequestEntityTooLarge, "Too many records in one batch")
		return
	}

	job := dbctx.BatchJobs.NewJob(len(records))
	logger.Info("Batch job queued", zap.String("job_id", job.ID), zap.Int("records", len(records)))

	// The job outlives the request.
	go dbctx.BatchJobs.Run(context.WithoutCancel(r.Context()), job.ID, records)

	w.Header().Set("Location", "/api/v1/batch/"+job.ID)
	writeOK(w, http.StatusAccepted, BatchAccepted{
		JobID:   job.ID,
		Records: len(records),
		Status:  string(BatchJobQueued),
	})
}

func (dbctx *DBContext) GetBatchAPI(w http.ResponseWriter, r *http.Request) {
	job, ok := dbctx.BatchJobs.GetJob(r.PathValue("job_id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Job not found")
		return
	}
	writeOK(w, http.StatusOK, job)
}
