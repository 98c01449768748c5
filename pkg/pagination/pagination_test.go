package pagination

import "testing"

func TestSortColumn(t *testing.T) {
	allowed := []string{"name", "created_at", "total_amount"}

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"allowed column passes through", "name", "name"},
		{"empty request falls back", "", "created_at"},
		{"unknown column falls back", "id; DROP TABLE orders", "created_at"},
		{"case mismatch falls back", "Name", "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortColumn(tt.requested, "created_at", allowed...); got != tt.want {
				t.Errorf("SortColumn(%q) = %q, want %q", tt.requested, got, tt.want)
			}
		})
	}
}

func TestValidate_ClampsOutOfRangeValues(t *testing.T) {
	p := &PaginationParams{Page: -3, PerPage: 500}
	p.Validate()
	if p.Page != 1 {
		t.Errorf("page = %d, want 1", p.Page)
	}
	if p.PerPage != 100 {
		t.Errorf("per page = %d, want 100", p.PerPage)
	}
}
