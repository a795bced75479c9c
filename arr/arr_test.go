package arr_test

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-typed-collections/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slice mismatch (-want +got):\n%s", diff)
	}
}

var letters = []string{"A", "B", "C", "D"}

// ─── Index / Window ───────────────────────────────────────────────────────────

func TestIndex(t *testing.T) {
	tests := []struct {
		index int
		want  int
		ok    bool
	}{
		{0, 0, true},
		{3, 3, true},
		{4, 0, false},
		{-1, 3, true},
		{-4, 0, true},
		{-5, 0, false},
	}
	for _, tt := range tests {
		got, ok := arr.Index(4, tt.index)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Index(4, %d) = %d, %v; want %d, %v", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		length     []int
		start, end int
	}{
		{"offset only", 2, nil, 2, 4},
		{"negative offset", -3, []int{2}, 1, 3},
		{"negative offset clamped", -10, nil, 0, 4},
		{"offset past end", 9, nil, 4, 4},
		{"length clamped", 1, []int{99}, 1, 4},
		{"negative length", 0, []int{-1}, 0, 3},
		{"inverted window", 3, []int{-2}, 3, 3},
		{"zero length", 1, []int{0}, 1, 1},
		{"max length", 1, []int{math.MaxInt}, 1, 4},
		{"min length", 1, []int{math.MinInt}, 1, 1},
		{"max offset", math.MaxInt, []int{math.MaxInt}, 4, 4},
		{"min offset", math.MinInt, []int{math.MaxInt}, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := arr.Window(4, tt.offset, tt.length...)
			if start != tt.start || end != tt.end {
				t.Fatalf("Window = [%d, %d); want [%d, %d)", start, end, tt.start, tt.end)
			}
		})
	}
}

// ─── Search ───────────────────────────────────────────────────────────────────

func TestIndexFunc(t *testing.T) {
	if i := arr.IndexFunc(letters, func(s string) bool { return s == "C" }); i != 2 {
		t.Fatalf("IndexFunc = %d; want 2", i)
	}
	if i := arr.IndexFunc(letters, func(s string) bool { return s == "Z" }); i != -1 {
		t.Fatalf("IndexFunc missing = %d; want -1", i)
	}
}

// ─── Transformation ───────────────────────────────────────────────────────────

func TestClone(t *testing.T) {
	src := []int{1, 2, 3}
	out := arr.Clone(src)
	src[0] = 99
	assertSlice(t, out, []int{1, 2, 3})

	if arr.Clone[int](nil) == nil {
		t.Fatal("Clone(nil) should return an empty, non-nil slice")
	}
}

func TestFilter(t *testing.T) {
	got := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, got, []int{2, 4})
}

func TestMap(t *testing.T) {
	got := arr.Map([]string{"A", "B"}, func(s string, i int) string { return "_" + s + "_" })
	assertSlice(t, got, []string{"_A_", "_B_"})
}

func TestReduce(t *testing.T) {
	sum := arr.Reduce([]int{1, 2, 3, 4}, func(acc, n, _ int) int { return acc + n }, 0)
	if sum != 10 {
		t.Fatalf("Reduce = %d; want 10", sum)
	}
}

// ─── Slice / Splice / Pad ─────────────────────────────────────────────────────

func TestSlice(t *testing.T) {
	assertSlice(t, arr.Slice(letters, 2), []string{"C", "D"})
	assertSlice(t, arr.Slice(letters, -3, 2), []string{"B", "C"})
	assertSlice(t, arr.Slice(letters, 0, -1), []string{"A", "B", "C"})
	assertSlice(t, arr.Slice(letters, 10), []string{})
	assertSlice(t, arr.Slice(letters, 1, math.MaxInt), []string{"B", "C", "D"})
}

func TestSliceDoesNotAlias(t *testing.T) {
	src := []int{1, 2, 3}
	out := arr.Slice(src, 0)
	out[0] = 99
	if src[0] != 1 {
		t.Fatal("Slice must return a copy")
	}
}

func TestSplice(t *testing.T) {
	out, removed := arr.Splice(letters, 1, 2, "E", "F")
	assertSlice(t, out, []string{"A", "E", "F", "D"})
	assertSlice(t, removed, []string{"B", "C"})
	assertSlice(t, letters, []string{"A", "B", "C", "D"})
}

func TestSpliceEdges(t *testing.T) {
	tests := []struct {
		name        string
		offset, del int
		repl        []string
		out, rem    []string
	}{
		{"insert only", 2, 0, []string{"X"}, []string{"A", "B", "X", "C", "D"}, []string{}},
		{"negative offset", -1, 1, nil, []string{"A", "B", "C"}, []string{"D"}},
		{"offset past end appends", 10, 3, []string{"X"}, []string{"A", "B", "C", "D", "X"}, []string{}},
		{"negative delete count keeps tail", 1, -1, []string{"X"}, []string{"A", "X", "D"}, []string{"B", "C"}},
		{"oversized delete count", 2, 50, nil, []string{"A", "B"}, []string{"C", "D"}},
		{"max delete count", 1, math.MaxInt, []string{"X"}, []string{"A", "X"}, []string{"B", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, removed := arr.Splice(letters, tt.offset, tt.del, tt.repl...)
			assertSlice(t, out, tt.out)
			assertSlice(t, removed, tt.rem)
		})
	}
}

func TestPad(t *testing.T) {
	ab := []string{"A", "B"}
	assertSlice(t, arr.Pad(ab, 4, "C"), []string{"A", "B", "C", "C"})
	assertSlice(t, arr.Pad(ab, -4, "C"), []string{"C", "C", "A", "B"})
	assertSlice(t, arr.Pad(ab, 2, "C"), []string{"A", "B"})
	assertSlice(t, arr.Pad(ab, -1, "C"), []string{"A", "B"})
}

func TestPadLen(t *testing.T) {
	for _, tt := range []struct{ size, want int }{
		{4, 4},
		{-4, 4},
		{0, 0},
		{math.MaxInt, math.MaxInt},
		{math.MinInt, math.MaxInt},
	} {
		if got := arr.PadLen(tt.size); got != tt.want {
			t.Errorf("PadLen(%d) = %d; want %d", tt.size, got, tt.want)
		}
	}
}

func TestReverse(t *testing.T) {
	assertSlice(t, arr.Reverse(letters), []string{"D", "C", "B", "A"})
}

func TestPrepend(t *testing.T) {
	assertSlice(t, arr.Prepend([]int{3, 4}, 1, 2), []int{1, 2, 3, 4})
}

// ─── Sorting & Randomisation ──────────────────────────────────────────────────

func TestSortStable(t *testing.T) {
	type pair struct {
		key string
		pos int
	}
	in := []pair{{"b", 0}, {"a", 1}, {"b", 2}, {"a", 3}}
	got := arr.SortStable(in, func(x, y pair) int {
		switch {
		case x.key < y.key:
			return -1
		case x.key > y.key:
			return 1
		}
		return 0
	})
	want := []pair{{"a", 1}, {"a", 3}, {"b", 0}, {"b", 2}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(pair{})); diff != "" {
		t.Fatalf("SortStable mismatch (-want +got):\n%s", diff)
	}
}

func TestShuffle(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := arr.Shuffle(in)
	slices.Sort(got)
	assertSlice(t, got, in)
}
