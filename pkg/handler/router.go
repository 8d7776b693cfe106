package handler

import (
	"net/http"
)

func NewRouter(dbctx *DBContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /{$}", dbctx.MainPage)
	mux.HandleFunc("POST /analyze", dbctx.AnalyzePage)
	mux.HandleFunc("GET /analysis/{analysis_id}", dbctx.AnalysisViewPage)

	// API routes
	mux.HandleFunc("GET /api/v1/health", dbctx.HealthCheck)
	mux.HandleFunc("POST /api/v1/analyze", dbctx.AnalyzeAPI)
	mux.HandleFunc("GET /api/v1/analysis", dbctx.ListAnalysesAPI)
	mux.HandleFunc("GET /api/v1/analysis/{analysis_id}", dbctx.GetAnalysisAPI)
	mux.HandleFunc("DELETE /api/v1/analysis/{analysis_id}", dbctx.DeleteAnalysisAPI)

	// Batch FASTA
	mux.HandleFunc("POST /api/v1/batch", dbctx.SubmitBatchAPI)
	mux.HandleFunc("GET /api/v1/batch/{job_id}", dbctx.GetBatchAPI)

	return mux
}
