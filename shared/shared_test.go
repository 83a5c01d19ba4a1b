package shared_test

import (
	"loungepass/shared"
	"loungepass/shared/constant"
	"loungepass/shared/dto"
	"reflect"
	"strings"
	"testing"
	"time"
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
		Terminal string `db:"terminal"`
		Name     string `db:"name"`
		Rating   int    `db:"rating"`
		NoDBTag  string
	}

	data := TestStruct{
		Terminal: "T5",
		Name:     "Aspire Lounge",
		NoDBTag:  "ignored",
	}

	result := shared.TransformFields(data, "ops-user")

	if result["terminal"] != "T5" {
		t.Errorf("expected terminal to be T5, got %v", result["terminal"])
	}
	if result["name"] != "Aspire Lounge" {
		t.Errorf("expected name to be Aspire Lounge, got %v", result["name"])
	}
	if _, exists := result["rating"]; exists {
		t.Error("expected zero-valued rating to be omitted")
	}
	if result[constant.FieldModifiedBy] != "ops-user" {
		t.Errorf("expected modified_by to be ops-user, got %v", result[constant.FieldModifiedBy])
	}
	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "lounges")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "lounges",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []any
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "airport:list",
			parts:    nil,
			expected: "airport:list",
		},
		{
			name:     "prefix with string part",
			prefix:   "lounge:get",
			parts:    []any{"abc-123"},
			expected: "lounge:get:abc-123",
		},
		{
			name:     "prefix with multiple parts",
			prefix:   "ratelimit",
			parts:    []any{"10.0.0.1", "curl/8.0"},
			expected: "ratelimit:10.0.0.1:curl/8.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "name", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "airport_id", Value: "lhr", Operator: dto.FilterOperatorEq},
		},
	}

	key1 := shared.BuildCacheKeyWithQuery("lounge:list", params, filter)
	key2 := shared.BuildCacheKeyWithQuery("lounge:list", params, filter)

	if key1 != key2 {
		t.Errorf("expected deterministic keys, got %s and %s", key1, key2)
	}

	if !strings.HasPrefix(key1, "lounge:list:") {
		t.Errorf("expected key to carry the prefix, got %s", key1)
	}

	otherParams := dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: "ASC"}
	key3 := shared.BuildCacheKeyWithQuery("lounge:list", otherParams, filter)

	if key1 == key3 {
		t.Error("expected different pages to produce different keys")
	}
}
