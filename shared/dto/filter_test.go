package dto_test

import (
	"reflect"
	"testing"

	"pawsit/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			expectedWhere: "bookings.status = :status",
			expectedArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "booking-1",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "id = :id",
			expectedArgs:  map[string]any{"id": "booking-1"},
		},
		{
			name: "in expands slice values to named args",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "approved"},
				Operator: dto.FilterOperatorIn,
				Table:    "bookings",
			},
			expectedWhere: "bookings.status IN (:status_0, :status_1) ",
			expectedArgs:  map[string]any{"status_0": "pending", "status_1": "approved"},
		},
		{
			name: "is not null has no args",
			filter: dto.Filter{
				Field:    "assigned_at",
				Operator: dto.FilterIsNotNull,
				Table:    "bookings",
			},
			expectedWhere: "bookings.assigned_at IS NOT NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "is null has no args",
			filter: dto.Filter{
				Field:    "sitter_id",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
			expectedWhere: "bookings.sitter_id IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "booking_status",
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "status = :booking_status",
			expectedArgs:  map[string]any{"booking_status": "pending"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: "between",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause %q, got %q", tt.expectedWhere, where)
			}
			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %+v, got %+v", tt.expectedArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		if where != "" {
			t.Errorf("expected empty where clause, got %q", where)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %+v", args)
		}
	})

	t.Run("filters joined by the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "id",
					Value:    "booking-1",
					Operator: dto.FilterOperatorEq,
					Table:    "bookings",
				},
				dto.Filter{
					Field:    "status",
					Value:    "pending",
					Operator: dto.FilterOperatorEq,
					Table:    "bookings",
				},
			},
		}

		where, args := group.GetWhereClause()

		expectedWhere := "(bookings.id = :id AND bookings.status = :status)"
		if where != expectedWhere {
			t.Errorf("expected where clause %q, got %q", expectedWhere, where)
		}

		expectedArgs := map[string]any{"id": "booking-1", "status": "pending"}
		if !reflect.DeepEqual(args, expectedArgs) {
			t.Errorf("expected args %+v, got %+v", expectedArgs, args)
		}
	})

	t.Run("nested groups are parenthesized", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "active",
					Value:    true,
					Operator: dto.FilterOperatorEq,
				},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{
							Field:    "status",
							Value:    "pending",
							Operator: dto.FilterOperatorEq,
						},
						dto.Filter{
							ArgName:  "status_alt",
							Field:    "status",
							Value:    "approved",
							Operator: dto.FilterOperatorEq,
						},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		expectedWhere := "(active = :active AND (status = :status OR status = :status_alt))"
		if where != expectedWhere {
			t.Errorf("expected where clause %q, got %q", expectedWhere, where)
		}
		if len(args) != 3 {
			t.Errorf("expected 3 args, got %+v", args)
		}
	})
}
