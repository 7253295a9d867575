package types

import (
	"errors"
	"strings"
)

// DataSource tags where a QueryResult came from
type DataSource string

const (
	DataSourceRemote          DataSource = "remote"
	DataSourceFallbackArgo    DataSource = "fallback-argo"
	DataSourceFallbackGeneric DataSource = "fallback-generic"
	DataSourceError           DataSource = "error"
)

// QueryResult is the uniform answer to a query, whichever path produced it.
// JSON names follow the remote /query contract.
type QueryResult struct {
	OK              bool             `json:"ok"`
	Answer          string           `json:"answer"`
	DataSource      DataSource       `json:"data_source"`
	StructuredQuery *StructuredQuery `json:"structured_query,omitempty"`
	DatasetSummary  *DatasetSummary  `json:"erddap_data,omitempty"`
}

// StructuredQuery holds the fields inferred from the query text
type StructuredQuery struct {
	Variable          *string `json:"variable"`
	Location          *string `json:"location"`
	TimePeriod        string  `json:"time_period,omitempty"`
	AdditionalContext string  `json:"additional_context,omitempty"`
}

// DatasetSummary describes the dataset an answer refers to
type DatasetSummary struct {
	DatasetID    string     `json:"dataset_id"`
	DatasetTitle string     `json:"dataset_title"`
	Variable     string     `json:"variable"`
	TotalRows    int        `json:"total_rows"`
	TimeRange    *TimeRange `json:"time_range,omitempty"`
}

// TimeRange is an inclusive date range
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var (
	ErrEmptyAnswer      = errors.New("ok result has empty answer")
	ErrErrorWithDataset = errors.New("error result carries a dataset summary")
)

// Validate checks the invariants every produced result must hold
func (r QueryResult) Validate() error {
	if r.OK && strings.TrimSpace(r.Answer) == "" {
		return ErrEmptyAnswer
	}
	if r.DataSource == DataSourceError && r.DatasetSummary != nil {
		return ErrErrorWithDataset
	}
	return nil
}

// ErrorResult is returned when no resolver could produce a valid answer
func ErrorResult(query string) QueryResult {
	return QueryResult{
		OK:         false,
		Answer:     "I apologize, but I encountered an issue processing your oceanographic query. Please try rephrasing your question about a specific oceanographic parameter like temperature, salinity, or chlorophyll concentrations.",
		DataSource: DataSourceError,
		StructuredQuery: &StructuredQuery{
			AdditionalContext: query,
		},
	}
}

// String returns a pointer to s, for nullable fields
func String(s string) *string {
	return &s
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
