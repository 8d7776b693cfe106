package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/yumyai/protparam/logger"
	"github.com/yumyai/protparam/pkg/fasta"
	"github.com/yumyai/protparam/pkg/handler/request"
	"github.com/yumyai/protparam/pkg/model"
	"github.com/yumyai/protparam/pkg/protparam"
	"github.com/yumyai/protparam/pkg/render"
	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20

// Payload of a successful POST /api/v1/analyze
type AnalyzePayload struct {
	ID     string            `json:"id,omitempty"`
	Label  string            `json:"label,omitempty"`
	Result *protparam.Result `json:"result"`
}

// Form page
func (dbctx *DBContext) MainPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render.RenderMainPage(w, render.MainPageData{})
}

// Form submit, answers with the HTML result page
func (dbctx *DBContext) AnalyzePage(w http.ResponseWriter, r *http.Request) {

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	raw := r.PostFormValue("sequence")
	label := strings.TrimSpace(r.PostFormValue("label"))
	save, _ := strconv.ParseBool(r.PostFormValue("save"))

	result, err := protparam.Analyze(fasta.StripHeaders(raw))
	if err != nil {
		logger.Debug("Rejected sequence", zap.Error(err))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		render.RenderMainPage(w, render.MainPageData{
			Sequence:     raw,
			Label:        label,
			ErrorMessage: err.Error(),
		})
		return
	}

	data := render.AnalysisPageData{Label: label, Result: result}

	if save && dbctx.historyEnabled() {
		rec, err := model.SaveAnalysis(r.Context(), dbctx.DB, label, result)
		if err != nil {
			logger.Error("Cannot save analysis", zap.Error(err))
		} else {
			data.ID = rec.ID
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.RenderAnalysisPage(w, data); err != nil {
		logger.Error("Cannot render analysis page", zap.Error(err))
	}
}

// Show a stored analysis as HTML
func (dbctx *DBContext) AnalysisViewPage(w http.ResponseWriter, r *http.Request) {
	if !dbctx.historyEnabled() {
		http.Error(w, "History is disabled", http.StatusNotFound)
		return
	}

	rec, err := model.GetAnalysis(r.Context(), dbctx.DB, r.PathValue("analysis_id"))
	if errors.Is(err, model.ErrAnalysisNotFound) {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Cannot load analysis", zap.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render.RenderAnalysisPage(w, render.AnalysisPageData{ID: rec.ID, Label: rec.Label, Result: rec.Result})
}

func (dbctx *DBContext) AnalyzeAPI(w http.ResponseWriter, r *http.Request) {

	var req request.AnalyzeRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Debug("Bad analyze body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := protparam.Analyze(fasta.StripHeaders(req.Sequence))
	if err != nil {
		// Only InvalidSequenceError comes out of Analyze.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload := AnalyzePayload{Label: req.Label, Result: result}

	if req.Save {
		if !dbctx.historyEnabled() {
			writeError(w, http.StatusConflict, "History is disabled on this server")
			return
		}
		rec, err := model.SaveAnalysis(r.Context(), dbctx.DB, req.Label, result)
		if err != nil {
			logger.Error("Cannot save analysis", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Cannot save analysis")
			return
		}
		payload.ID = rec.ID
	}

	writeOK(w, http.StatusOK, payload)
}

func (dbctx *DBContext) ListAnalysesAPI(w http.ResponseWriter, r *http.Request) {
	if !dbctx.historyEnabled() {
		writeError(w, http.StatusNotFound, "History is disabled on this server")
		return
	}

	q := r.URL.Query()
	req := request.ParseListRequest(q.Get("limit"), q.Get("offset"))

	summaries, err := model.ListAnalyses(r.Context(), dbctx.DB, req.Limit, req.Offset)
	if err != nil {
		logger.Error("Cannot list analyses", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Cannot list analyses")
		return
	}

	writeOK(w, http.StatusOK, summaries)
}

func (dbctx *DBContext) GetAnalysisAPI(w http.ResponseWriter, r *http.Request) {
	if !dbctx.historyEnabled() {
		writeError(w, http.StatusNotFound, "History is disabled on this server")
		return
	}

	rec, err := model.GetAnalysis(r.Context(), dbctx.DB, r.PathValue("analysis_id"))
	if errors.Is(err, model.ErrAnalysisNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logger.Error("Cannot load analysis", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Cannot load analysis")
		return
	}

	writeOK(w, http.StatusOK, rec)
}

func (dbctx *DBContext) DeleteAnalysisAPI(w http.ResponseWriter, r *http.Request) {
	if !dbctx.historyEnabled() {
		writeError(w, http.StatusNotFound, "History is disabled on this server")
		return
	}

	err := model.DeleteAnalysis(r.Context(), dbctx.DB, r.PathValue("analysis_id"))
	if errors.Is(err, model.ErrAnalysisNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logger.Error("Cannot delete analysis", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Cannot delete analysis")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
