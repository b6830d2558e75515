package resources

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/carebridge/navigator-console/pkg/types"
)

// rawEnvelope matches the backend's preferred response wrapper. Older
// endpoints still answer with a bare array or object; both shapes are
// normalized here so no service ever branches on envelope shape again.
type rawEnvelope struct {
	Status     string            `json:"status"`
	Data       json.RawMessage   `json:"data"`
	Pagination *types.Pagination `json:"pagination"`
	Message    string            `json:"message"`
}

// decodeList normalizes a list response into Result[[]T], whether the
// backend answered {status,data,pagination} or a bare array.
func decodeList[T any](body []byte) (*types.Result[[]T], error) {
	result := &types.Result[[]T]{Status: types.StatusSuccess}

	if len(body) == 0 {
		result.Data = []T{}
		return result, nil
	}

	var envelope rawEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		var items []T
		if err := json.Unmarshal(envelope.Data, &items); err != nil {
			return nil, types.NewServerError(0, "Unexpected response from the server.")
		}
		if items == nil {
			items = []T{}
		}
		result.Data = items
		result.Pagination = envelope.Pagination
		return result, nil
	}

	// Bare array fallback
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, types.NewServerError(0, "Unexpected response from the server.")
	}
	if items == nil {
		items = []T{}
	}
	result.Data = items
	return result, nil
}

// decodeOne normalizes a single-entity response into Result[*T],
// whether the backend answered {status,data} or the bare object.
func decodeOne[T any](body []byte) (*types.Result[*T], error) {
	result := &types.Result[*T]{Status: types.StatusSuccess}

	if len(body) == 0 {
		return result, nil
	}

	var envelope rawEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		var item T
		if err := json.Unmarshal(envelope.Data, &item); err != nil {
			return nil, types.NewServerError(0, "Unexpected response from the server.")
		}
		result.Data = &item
		return result, nil
	}

	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, types.NewServerError(0, "Unexpected response from the server.")
	}
	result.Data = &item
	return result, nil
}

// listQueryValues converts the shared list parameters into query
// values. Zero values are omitted rather than sent as empty-string
// matches.
func listQueryValues(q *types.ListQuery) url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	setInt(values, "page", q.Page)
	setInt(values, "limit", q.Limit)
	setString(values, "search", q.Search)
	setString(values, "sortBy", q.SortBy)
	setString(values, "sortOrder", q.SortOrder)
	return values
}

// setString sets a query key only when the value is non-empty
func setString(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

// setInt sets a query key only when the value is positive
func setInt(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}

// setBool sets a query key only when the pointer is non-nil, so an
// unset tri-state filter is omitted entirely
func setBool(values url.Values, key string, value *bool) {
	if value != nil {
		values.Set(key, strconv.FormatBool(*value))
	}
}
