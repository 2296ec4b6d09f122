package shared_test

import (
	"reflect"
	"testing"
	"time"

	"pawsit/shared"
	"pawsit/shared/constant"
	"pawsit/shared/dto"
)

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
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
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
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

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
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
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
	type TestStruct struct {
		ID      string `db:"id"`
		Status  string `db:"status"`
		Empty   string `db:"note"`
		NoDBTag string
	}

	data := TestStruct{
		ID:      "booking-1",
		Status:  "approved",
		Empty:   "",
		NoDBTag: "ignored",
	}

	result := shared.TransformFields(data, "client-1")

	if result[constant.FieldModifiedBy] != "client-1" {
		t.Errorf("expected modified_by to be client-1, got %v", result[constant.FieldModifiedBy])
	}
	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
	if result["id"] != "booking-1" {
		t.Errorf("expected id to be booking-1, got %v", result["id"])
	}
	if result["status"] != "approved" {
		t.Errorf("expected status to be approved, got %v", result["status"])
	}
	if _, exists := result["note"]; exists {
		t.Error("expected zero-valued field to be omitted")
	}
}

func TestFilterByID(t *testing.T) {
	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "booking-1",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	result := shared.FilterByID("booking-1", "id", "bookings")

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"booking:get"},
			expected: "booking:get",
		},
		{
			name:     "prefix and id",
			parts:    []string{"booking:get", "booking-1"},
			expected: "booking:get:booking-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc}

	first := shared.BuildCacheKeyWithQuery("booking:get_all", params, dto.FilterGroup{})
	second := shared.BuildCacheKeyWithQuery("booking:get_all", params, dto.FilterGroup{})

	if first != second {
		t.Errorf("expected identical inputs to produce identical keys, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("booking:get_all", dto.QueryParams{Page: 3, Limit: 10}, dto.FilterGroup{})
	if first == other {
		t.Error("expected different query params to produce different keys")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
