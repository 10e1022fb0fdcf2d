package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/folioview/backend/internal/domain"
)

const maxPatchBody = 64 << 10

// decodeFilterPatch reads a PATCH body into a domain.FilterPatch. JSON is
// the wrong shape for the patch's tri-state range fields (absent / null /
// object), so the body is decoded key by key: absent keys leave the field
// untouched, "valueRange": null clears the constraint, and explicit null is
// rejected everywhere else.
func decodeFilterPatch(r *http.Request) (domain.FilterPatch, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPatchBody))
	if err != nil {
		return domain.FilterPatch{}, fmt.Errorf("read body: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.FilterPatch{}, domain.NewValidationError("body", "must be a JSON object")
	}

	var (
		patch domain.FilterPatch
		errs  []domain.FieldError
	)

	addErr := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	for key, value := range raw {
		switch domain.Field(key) {
		case domain.FieldSearchQuery:
			decodeScalar(value, key, &patch.SearchQuery, addErr)
		case domain.FieldTokenTypes:
			decodeSet(value, key, &patch.TokenTypes, addErr)
		case domain.FieldProtocols:
			decodeSet(value, key, &patch.Protocols, addErr)
		case domain.FieldChains:
			decodeSet(value, key, &patch.Chains, addErr)
		case domain.FieldPositionTypes:
			decodeSet(value, key, &patch.PositionTypes, addErr)
		case domain.FieldValueRange:
			decodeRange(value, key, &patch.ValueRange, addErr)
		case domain.FieldAPYRange:
			decodeRange(value, key, &patch.APYRange, addErr)
		case domain.FieldHideSmallBalances:
			decodeScalarBool(value, key, &patch.HideSmallBalances, addErr)
		case domain.FieldHideZeroBalances:
			decodeScalarBool(value, key, &patch.HideZeroBalances, addErr)
		case domain.FieldShowOnlyStaked:
			decodeScalarBool(value, key, &patch.ShowOnlyStaked, addErr)
		case domain.FieldShowOnlyActive:
			decodeScalarBool(value, key, &patch.ShowOnlyActive, addErr)
		case domain.FieldSortBy:
			decodeScalar(value, key, &patch.SortBy, addErr)
		case domain.FieldSortOrder:
			decodeScalar(value, key, &patch.SortOrder, addErr)
		case domain.FieldViewMode:
			decodeScalar(value, key, &patch.ViewMode, addErr)
		case domain.FieldGroupBy:
			decodeScalar(value, key, &patch.GroupBy, addErr)
		default:
			addErr(key, "unknown field")
		}
	}

	if len(errs) > 0 {
		return domain.FilterPatch{}, &domain.ValidationError{Errors: errs}
	}

	return patch, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeScalar decodes a string-backed value into a pointer patch field.
// Explicit null is rejected: omission is the only way to leave it untouched.
func decodeScalar[T ~string](raw json.RawMessage, key string, dst **T, addErr func(field, msg string)) {
	if isJSONNull(raw) {
		addErr(key, "must not be null")
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		addErr(key, "must be a string")
		return
	}
	*dst = &v
}

func decodeScalarBool(raw json.RawMessage, key string, dst **bool, addErr func(field, msg string)) {
	if isJSONNull(raw) {
		addErr(key, "must not be null")
		return
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		addErr(key, "must be a boolean")
		return
	}
	*dst = &v
}

// decodeSet decodes a category array. An empty array clears the set; null is
// rejected to keep "clear" explicit.
func decodeSet[T ~string](raw json.RawMessage, key string, dst *[]T, addErr func(field, msg string)) {
	if isJSONNull(raw) {
		addErr(key, "must be an array")
		return
	}
	var v []T
	if err := json.Unmarshal(raw, &v); err != nil {
		addErr(key, "must be an array of strings")
		return
	}
	if v == nil {
		v = []T{}
	}
	*dst = v
}

// decodeRange decodes a nullable range: null clears the constraint, an
// object with min/max sets it.
func decodeRange(raw json.RawMessage, key string, dst **domain.RangeUpdate, addErr func(field, msg string)) {
	if isJSONNull(raw) {
		*dst = domain.ClearRange()
		return
	}
	var v domain.Range
	if err := json.Unmarshal(raw, &v); err != nil {
		addErr(key, "must be null or an object with min and max")
		return
	}
	*dst = &domain.RangeUpdate{Range: &v}
}
