package recommend

import (
	"time"

	"github.com/google/uuid"
)

// RetrievalLimit bounds every retrieval mode. The orchestrated steps may ask
// for fewer rows but never more.
const RetrievalLimit = 10

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Recommendation is a transient response value, never persisted. Records that
// fail validation are dropped, not coerced.
type Recommendation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ContentType   string   `json:"content_type"`
	Modality      string   `json:"modality"`
	Level         string   `json:"level,omitempty"`
	Seats         *int     `json:"seats,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	DurationHours *int     `json:"duration_hours,omitempty"`
	Status        string   `json:"status"`
	Relevance     *float64 `json:"relevance,omitempty"`
	MatchReasons  []string `json:"match_reasons"`
}

type PipelineResult struct {
	Status          string           `json:"status"`
	Timestamp       string           `json:"timestamp"`
	UserID          uuid.UUID        `json:"user_id"`
	TotalCount      int              `json:"total_count"`
	Recommendations []Recommendation `json:"recommendations"`
	Error           string           `json:"error,omitempty"`
}

func NewSuccessResult(userID uuid.UUID, recs []Recommendation) PipelineResult {
	if recs == nil {
		recs = []Recommendation{}
	}
	return PipelineResult{
		Status:          StatusSuccess,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		UserID:          userID,
		TotalCount:      len(recs),
		Recommendations: recs,
	}
}

func NewErrorResult(userID uuid.UUID, msg string) PipelineResult {
	return PipelineResult{
		Status:          StatusError,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		UserID:          userID,
		TotalCount:      0,
		Recommendations: []Recommendation{},
		Error:           msg,
	}
}

// SchemaDescription is the introspector's structured output. It is consumed
// for self-description and diagnostics only; a failed introspection fills
// Error instead of aborting the caller.
type SchemaDescription struct {
	Tables map[string]TableSchema `json:"tables,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

type TableSchema struct {
	Columns  []ColumnSchema `json:"columns"`
	RowCount int64          `json:"row_count"`
	Error    string         `json:"error,omitempty"`
}

type ColumnSchema struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Nullable    bool    `json:"nullable"`
	PrimaryKey  bool    `json:"primary_key"`
	SampleValue *string `json:"sample_value"`
}
