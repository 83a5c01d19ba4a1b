package dto_test

import (
	"loungepass/shared/dto"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "airport_id",
				Value:    "lhr",
				Operator: dto.FilterOperatorEq,
				Table:    "lounges",
			},
			expectedWhere: "lounges.airport_id = :airport_id",
			expectedArgs:  map[string]any{"airport_id": "lhr"},
		},
		{
			name: "like operator",
			filter: dto.Filter{
				Field:    "name",
				Value:    "heathrow",
				Operator: dto.FilterOperatorLike,
			},
			expectedWhere: "LOWER(name) LIKE LOWER(:name) ",
			expectedArgs:  map[string]any{"name": "%heathrow%"},
		},
		{
			name: "eq with custom arg name",
			filter: dto.Filter{
				ArgName:  "ref",
				Field:    "reference",
				Value:    "LNG-ABCD2345",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "reference = :ref",
			expectedArgs:  map[string]any{"ref": "LNG-ABCD2345"},
		},
		{
			name: "in operator with slice",
			filter: dto.Filter{
				Field:    "terminal",
				Value:    []string{"T2", "T5"},
				Operator: dto.FilterOperatorIn,
			},
			expectedWhere: "terminal IN (:terminal_0, :terminal_1) ",
			expectedArgs:  map[string]any{"terminal_0": "T2", "terminal_1": "T5"},
		},
		{
			name: "unknown operator",
			filter: dto.Filter{
				Field:    "name",
				Value:    "x",
				Operator: "bogus",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Errorf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "airport_id", Value: "jfk", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "terminal", Value: "T4", Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	if !strings.Contains(where, "airport_id = :airport_id") || !strings.Contains(where, "terminal = :terminal") {
		t.Errorf("expected both clauses in %q", where)
	}
	if !strings.Contains(where, " AND ") {
		t.Errorf("expected AND joiner in %q", where)
	}
	if args["airport_id"] != "jfk" || args["terminal"] != "T4" {
		t.Errorf("unexpected args %+v", args)
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %+v", args)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all params present",
			url:            "/lounges?page=2&limit=5&sort_by=name&sort_dir=asc",
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 5, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			url:            "/lounges",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:           "invalid values ignored",
			url:            "/lounges?page=abc&limit=-1&sort_dir=sideways",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)

			q := dto.QueryParams{}
			q.FromRequest(req, tt.defaultRequest)

			if q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, q)
			}
		})
	}
}
