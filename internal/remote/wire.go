package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vokinneberg/ocean-query/internal/types"
)

// QueryReq is the body sent to the remote /query endpoint
type QueryReq struct {
	Query string `json:"query"`
}

// response is the remote /query body. Unknown keys are ignored.
type response struct {
	OK              *bool                  `json:"ok"`
	Answer          string                 `json:"answer"`
	DataSource      string                 `json:"data_source"`
	StructuredQuery *types.StructuredQuery `json:"structured_query"`
	ERDDAPData      *types.DatasetSummary  `json:"erddap_data"`
}

// Decode normalizes a remote response body into a QueryResult.
// Any failure is returned as *ParseError.
func Decode(body []byte) (types.QueryResult, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return types.QueryResult{}, &ParseError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	ok := true
	if resp.OK != nil {
		ok = *resp.OK
	}

	if ok && strings.TrimSpace(resp.Answer) == "" {
		return types.QueryResult{}, &ParseError{Err: errors.New("response has no answer")}
	}

	source := types.DataSource(resp.DataSource)
	if source == "" {
		source = types.DataSourceRemote
		if !ok {
			source = types.DataSourceError
		}
	}

	result := types.QueryResult{
		OK:              ok,
		Answer:          resp.Answer,
		DataSource:      source,
		StructuredQuery: resp.StructuredQuery,
		DatasetSummary:  resp.ERDDAPData,
	}
	if source == types.DataSourceError {
		result.DatasetSummary = nil
	}

	if err := result.Validate(); err != nil {
		return types.QueryResult{}, &ParseError{Err: err}
	}
	return result, nil
}
