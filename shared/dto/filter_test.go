package dto_test

import (
	"testing"
	"villadesk/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		where    string
		argName  string
		argValue any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "villa_id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
			where:    "reservations.villa_id = :villa_id",
			argName:  "villa_id",
			argValue: "123",
		},
		{
			name: "not_eq",
			filter: dto.Filter{
				Field:    "status",
				Value:    "CANCELLED",
				Operator: dto.FilterOperatorNotEq,
				Table:    "reservations",
			},
			where:    "reservations.status != :status",
			argName:  "status",
			argValue: "CANCELLED",
		},
		{
			name: "less with an explicit arg name",
			filter: dto.Filter{
				ArgName:  "stay_end",
				Field:    "start_date",
				Value:    "2025-07-15",
				Operator: dto.FilterOperatorLess,
				Table:    "reservations",
			},
			where:    "reservations.start_date < :stay_end",
			argName:  "stay_end",
			argValue: "2025-07-15",
		},
		{
			name: "greater_eq",
			filter: dto.Filter{
				Field:    "day",
				Value:    "2025-07-01",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "calendar_days",
			},
			where:    "calendar_days.day >= :day",
			argName:  "day",
			argValue: "2025-07-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.where {
				t.Errorf("expected where %q, got %q", tt.where, where)
			}

			if args[tt.argName] != tt.argValue {
				t.Errorf("expected arg %s to be %v, got %v", tt.argName, tt.argValue, args[tt.argName])
			}
		})
	}
}

func TestFilter_GetWhereClauseIn(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"PENDING", "CONFIRMED"},
		Operator: dto.FilterOperatorIn,
		Table:    "reservations",
	}

	where, args := filter.GetWhereClause()

	if where != "reservations.status IN (:status_0, :status_1) " {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["status_0"] != "PENDING" || args["status_1"] != "CONFIRMED" {
		t.Errorf("unexpected args %+v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()
		if where != "" {
			t.Errorf("expected empty where clause, got %q", where)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %+v", args)
		}
	})

	t.Run("distinct arg names do not collide", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					ArgName:  "day_from",
					Field:    "day",
					Value:    "2025-07-01",
					Operator: dto.FilterOperatorGreaterEq,
					Table:    "calendar_days",
				},
				dto.Filter{
					ArgName:  "day_to",
					Field:    "day",
					Value:    "2025-07-31",
					Operator: dto.FilterOperatorLessEq,
					Table:    "calendar_days",
				},
			},
		}

		where, args := group.GetWhereClause()

		expected := "(calendar_days.day >= :day_from AND calendar_days.day <= :day_to)"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}

		if args["day_from"] != "2025-07-01" || args["day_to"] != "2025-07-31" {
			t.Errorf("unexpected args %+v", args)
		}
	})

	t.Run("nested group with or", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "villa_id",
					Value:    "123",
					Operator: dto.FilterOperatorEq,
					Table:    "reservations",
				},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{
							Field:    "status",
							Value:    "PENDING",
							Operator: dto.FilterOperatorEq,
							Table:    "reservations",
						},
						dto.Filter{
							ArgName:  "other_status",
							Field:    "status",
							Value:    "CONFIRMED",
							Operator: dto.FilterOperatorEq,
							Table:    "reservations",
						},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		expected := "(reservations.villa_id = :villa_id AND (reservations.status = :status OR reservations.status = :other_status))"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}

		if len(args) != 3 {
			t.Errorf("expected 3 args, got %+v", args)
		}
	})
}
