package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"
	"villadesk/shared"
	"villadesk/shared/constant"
	"villadesk/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name    string `db:"name"`
		Price   *int64 `db:"price"`
		Skipped string
	}

	price := int64(0)
	req := updateRequest{
		Name:    "Villa Thalassa",
		Price:   &price,
		Skipped: "no db tag",
	}

	result := shared.TransformFields(req, "admin")

	if result["name"] != "Villa Thalassa" {
		t.Errorf("expected name to be set, got %v", result["name"])
	}

	// A pointer to a zero value is not itself a zero value.
	if result["price"] != req.Price {
		t.Errorf("expected price pointer to be kept, got %v", result["price"])
	}

	if _, exists := result["Skipped"]; exists {
		t.Error("expected untagged field to be skipped")
	}

	if result[constant.FieldModifiedBy] != "admin" {
		t.Errorf("expected modified_by to be admin, got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "villa_id", "villas")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "villa_id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
				Table:    "villas",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("reservation:get"); key != "reservation:get" {
		t.Errorf("expected bare prefix, got %s", key)
	}

	if key := shared.BuildCacheKey("villa", "abc", "def"); key != "villa:abc:def" {
		t.Errorf("expected joined key, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "desc"}
	filter := shared.FilterByID("123", "villa_id", "villas")

	first := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)

	if first != second {
		t.Errorf("expected a stable key, got %s and %s", first, second)
	}

	if !strings.HasPrefix(first, "reservation:gets:2:10:created_at:desc:") {
		t.Errorf("unexpected key shape %s", first)
	}

	other := shared.BuildCacheKeyWithQuery("reservation:gets", params, shared.FilterByID("456", "villa_id", "villas"))
	if first == other {
		t.Error("expected different filters to produce different keys")
	}
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "numeric false",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "maybe",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
				return
			}

			if result == nil || *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, result)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
