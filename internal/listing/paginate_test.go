package listing

import (
	"slices"
	"testing"
)

func TestPaginateReconstructsList(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 20; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for size := 1; size <= 7; size++ {
			first := Paginate(items, 1, size)
			wantPages := (n + size - 1) / size
			if first.TotalPages != wantPages {
				t.Fatalf("n=%d size=%d TotalPages = %d, want %d", n, size, first.TotalPages, wantPages)
			}
			var joined []int
			for page := 1; page <= first.TotalPages; page++ {
				got := Paginate(items, page, size)
				if len(got.Items) > size {
					t.Fatalf("n=%d size=%d page=%d has %d items", n, size, page, len(got.Items))
				}
				joined = append(joined, got.Items...)
			}
			if len(joined) != n || (n > 0 && !slices.Equal(joined, items)) {
				t.Fatalf("n=%d size=%d pages joined = %v", n, size, joined)
			}
		}
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	tests := []struct {
		name   string
		page   int
		want   int
		items  []string
		start  int
		end    int
		hasPre bool
		hasNxt bool
	}{
		{name: "zero", page: 0, want: 1, items: items[:6], start: 1, end: 6, hasNxt: true},
		{name: "negative", page: -3, want: 1, items: items[:6], start: 1, end: 6, hasNxt: true},
		{name: "last", page: 2, want: 2, items: items[6:], start: 7, end: 8, hasPre: true},
		{name: "past end", page: 9, want: 2, items: items[6:], start: 7, end: 8, hasPre: true},
	}
	for _, tc := range tests {
		got := Paginate(items, tc.page, 6)
		if got.Number != tc.want || !slices.Equal(got.Items, tc.items) {
			t.Fatalf("%s: page %d items %v, want page %d items %v", tc.name, got.Number, got.Items, tc.want, tc.items)
		}
		if got.Start != tc.start || got.End != tc.end {
			t.Fatalf("%s: bounds %d-%d, want %d-%d", tc.name, got.Start, got.End, tc.start, tc.end)
		}
		if got.HasPrev() != tc.hasPre || got.HasNext() != tc.hasNxt {
			t.Fatalf("%s: prev/next = %v/%v", tc.name, got.HasPrev(), got.HasNext())
		}
	}
}

func TestPaginateEmptyAndDefaultSize(t *testing.T) {
	t.Parallel()

	empty := Paginate([]int{}, 4, 6)
	if empty.Number != 1 || empty.TotalPages != 0 || len(empty.Items) != 0 || empty.Start != 0 || empty.End != 0 {
		t.Fatalf("empty page = %+v", empty)
	}
	if empty.HasPrev() || empty.HasNext() {
		t.Fatal("empty page has neighbours")
	}

	got := Paginate(make([]int, 13), 1, 0)
	if got.Size != DefaultPageSize || got.TotalPages != 3 {
		t.Fatalf("default size page = %+v", got)
	}
}

func TestPaginateItemsDoNotGrowIntoNextPage(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4}
	page := Paginate(items, 1, 2)
	_ = append(page.Items, 99)
	if items[2] != 3 {
		t.Fatal("appending to a page overwrote the next page")
	}
}
