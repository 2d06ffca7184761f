package pagination

import "testing"

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		params      PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"zero values get defaults", PaginationParams{}, 1, 15},
		{"negative page resets", PaginationParams{Page: -3, PerPage: 20}, 1, 20},
		{"per page capped at hundred", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
		{"valid params untouched", PaginationParams{Page: 4, PerPage: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			if tt.params.Page != tt.wantPage || tt.params.PerPage != tt.wantPerPage {
				t.Errorf("after Validate() = page %d per_page %d, want %d and %d",
					tt.params.Page, tt.params.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)
	if pag.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pag.TotalPages)
	}
	if !pag.HasNext || !pag.HasPrev {
		t.Errorf("HasNext = %v HasPrev = %v, want both true on a middle page", pag.HasNext, pag.HasPrev)
	}

	last := NewPagination(3, 15, 31)
	if last.HasNext {
		t.Error("last page should not report a next page")
	}
}
