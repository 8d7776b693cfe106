package request

// Body of POST /api/v1/analyze
type AnalyzeRequest struct {
	Sequence string `json:"sequence"` // raw text, FASTA headers allowed
	Label    string `json:"label"`
	Save     bool   `json:"save"` // keep the result in history
}

// Body of POST /api/v1/batch
type BatchRequest struct {
	Fasta string `json:"fasta"`
}

// Paging for GET /api/v1/analysis
type ListRequest struct {
	Limit  int
	Offset int
}
