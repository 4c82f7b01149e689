package handler

import (
	"context"
	"testing"

	"geo-attendance-backend/internal/dto"
	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"
)

func TestHolidayLifecycle(t *testing.T) {
	e := newEnv(t)
	natal := map[string]any{"holiday_date": "2026-12-25", "holiday_name": "Natal"}

	status, _ := e.do(t, "POST", "/api/holidays", "", natal)
	if status != 403 {
		t.Fatalf("employee create status = %d, want 403", status)
	}
	if list, _ := e.holidays.GetAll(context.Background(), repository.HolidayFilter{}); len(list) != 0 {
		t.Fatal("forbidden create stored a holiday")
	}

	status, body := e.do(t, "POST", "/api/holidays", "admin", natal)
	if status != 201 {
		t.Fatalf("create status = %d (%s)", status, body.Message)
	}
	created := decode[dto.HolidayResponse](t, body.Data)
	if created.HolidayType != model.HolidayTypeNational || created.Source != model.HolidaySourceManual {
		t.Fatalf("defaults not applied: %+v", created)
	}
	if created.CreatedBy == nil || *created.CreatedBy != 1 {
		t.Fatalf("created_by = %v, want 1", created.CreatedBy)
	}

	status, body = e.do(t, "PUT", "/api/holidays/1", "admin", map[string]any{"holiday_name": "Hari Raya Natal"})
	if status != 200 {
		t.Fatalf("update status = %d (%s)", status, body.Message)
	}
	updated := decode[dto.HolidayResponse](t, body.Data)
	if updated.HolidayName != "Hari Raya Natal" || updated.HolidayDate != "2026-12-25" || updated.HolidayType != model.HolidayTypeNational {
		t.Fatalf("partial update = %+v", updated)
	}

	if status, _ := e.do(t, "DELETE", "/api/holidays/1", "", nil); status != 403 {
		t.Fatalf("employee delete status = %d, want 403", status)
	}
	if status, _ := e.do(t, "DELETE", "/api/holidays/1", "admin", nil); status != 200 {
		t.Fatalf("delete status = %d", status)
	}
	status, body = e.do(t, "GET", "/api/holidays", "", nil)
	if status != 200 || len(decode[[]dto.HolidayResponse](t, body.Data)) != 0 {
		t.Fatalf("list after delete = %d %s", status, body.Data)
	}
}

func TestHolidayUnknownID(t *testing.T) {
	e := newEnv(t)
	tests := []struct {
		method, path string
		body         any
		want         int
	}{
		{"PUT", "/api/holidays/99", map[string]any{"holiday_name": "X"}, 404},
		{"DELETE", "/api/holidays/99", nil, 404},
		{"PUT", "/api/holidays/abc", map[string]any{"holiday_name": "X"}, 400},
		{"DELETE", "/api/holidays/0", nil, 400},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if status, _ := e.do(t, tt.method, tt.path, "admin", tt.body); status != tt.want {
				t.Fatalf("status = %d, want %d", status, tt.want)
			}
		})
	}
}

func TestHolidayValidation(t *testing.T) {
	e := newEnv(t)
	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing name", map[string]any{"holiday_date": "2026-12-25"}, "holiday_name"},
		{"bad date", map[string]any{"holiday_date": "25-12-2026", "holiday_name": "Natal"}, "holiday_date"},
		{"bad type", map[string]any{"holiday_date": "2026-12-25", "holiday_name": "Natal", "holiday_type": "regional"}, "holiday_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := e.do(t, "POST", "/api/holidays", "admin", tt.body)
			if status != 422 || len(body.Errors[tt.field]) == 0 {
				t.Fatalf("status = %d, errors = %v; want 422 on %s", status, body.Errors, tt.field)
			}
		})
	}
}

func TestHolidayListFilter(t *testing.T) {
	e := newEnv(t)
	for _, h := range []map[string]any{
		{"holiday_date": "2026-12-25", "holiday_name": "Natal"},
		{"holiday_date": "2026-08-17", "holiday_name": "Kemerdekaan"},
		{"holiday_date": "2027-01-01", "holiday_name": "Tahun Baru"},
		{"holiday_date": "2026-12-31", "holiday_name": "Cuti Bersama", "holiday_type": "company"},
	} {
		if status, body := e.do(t, "POST", "/api/holidays", "admin", h); status != 201 {
			t.Fatalf("seed %v: %d (%s)", h["holiday_name"], status, body.Message)
		}
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Kemerdekaan", "Natal", "Cuti Bersama", "Tahun Baru"}},
		{"?year=2026", []string{"Kemerdekaan", "Natal", "Cuti Bersama"}},
		{"?year=2026&month=12", []string{"Natal", "Cuti Bersama"}},
		{"?month=1", []string{"Tahun Baru"}},
		{"?year=2030", nil},
	}
	for _, tt := range tests {
		t.Run("filter"+tt.query, func(t *testing.T) {
			status, body := e.do(t, "GET", "/api/holidays"+tt.query, "", nil)
			if status != 200 {
				t.Fatalf("status = %d", status)
			}
			list := decode[[]dto.HolidayResponse](t, body.Data)
			if len(list) != len(tt.want) {
				t.Fatalf("got %d holidays, want %v", len(list), tt.want)
			}
			for i, name := range tt.want {
				if list[i].HolidayName != name {
					t.Errorf("[%d] = %s, want %s", i, list[i].HolidayName, name)
				}
			}
		})
	}

	for _, q := range []string{"?month=13", "?month=-1"} {
		status, body := e.do(t, "GET", "/api/holidays"+q, "", nil)
		if status != 422 || len(body.Errors["month"]) == 0 {
			t.Fatalf("%s: status = %d, errors = %v", q, status, body.Errors)
		}
	}
}
