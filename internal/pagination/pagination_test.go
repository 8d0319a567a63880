package pagination

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"empty request", PageRequest{}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{"keeps explicit values", PageRequest{Page: 3, PageSize: 50}, PageRequest{Page: 3, PageSize: 50}},
		{"clamps oversized pages", PageRequest{Page: 2, PageSize: 500}, PageRequest{Page: 2, PageSize: MaxPageSize}},
		{"repairs negative values", PageRequest{Page: -1, PageSize: -5}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Defaults()
			if got != tt.want {
				t.Errorf("Defaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	tests := []struct {
		name      string
		req       PageRequest
		total     int64
		wantPages int
		wantMore  bool
	}{
		{"no rows", PageRequest{Page: 1, PageSize: 20}, 0, 0, false},
		{"exact fit", PageRequest{Page: 1, PageSize: 10}, 20, 2, true},
		{"partial last page", PageRequest{Page: 2, PageSize: 10}, 21, 3, true},
		{"last page", PageRequest{Page: 3, PageSize: 10}, 21, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPageResponse([]int(nil), tt.req, tt.total)
			if resp.TotalPages != tt.wantPages || resp.HasMore != tt.wantMore {
				t.Errorf("got pages=%d more=%v, want pages=%d more=%v", resp.TotalPages, resp.HasMore, tt.wantPages, tt.wantMore)
			}
			if resp.Data == nil {
				t.Error("expected an empty slice, got nil")
			}
		})
	}
}
