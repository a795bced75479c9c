package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-typed-collections/arr"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"data": map[string]any{
			"items": []any{"A", "B", "C"},
			"meta":  map[any]any{"count": 3},
		},
		"name": "letters",
	}
}

func TestGet(t *testing.T) {
	doc := sampleDoc()
	if got := arr.Get(doc, "name"); got != "letters" {
		t.Fatalf("Get(name) = %v", got)
	}
	items, ok := arr.Get(doc, "data.items").([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("Get(data.items) = %v", arr.Get(doc, "data.items"))
	}
	if got := arr.Get(doc, "data.meta.count"); got != 3 {
		t.Fatalf("Get through map[any]any = %v; want 3", got)
	}
}

func TestGetListIndex(t *testing.T) {
	doc := sampleDoc()
	if got := arr.Get(doc, "data.items.0"); got != "A" {
		t.Fatalf("Get(data.items.0) = %v; want A", got)
	}
	if got := arr.Get(doc, "data.items.-1"); got != "C" {
		t.Fatalf("Get(data.items.-1) = %v; want C", got)
	}
	if got := arr.Get(doc, "data.items.x"); got != nil {
		t.Fatalf("Get with non-numeric list segment = %v; want nil", got)
	}
}

func TestGetDefault(t *testing.T) {
	if got := arr.Get(sampleDoc(), "data.missing", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %v", got)
	}
	if got := arr.Get(sampleDoc(), "name.deeper"); got != nil {
		t.Fatalf("Get through scalar = %v; want nil", got)
	}
}

func TestGetEmptyPath(t *testing.T) {
	list := []any{1, 2}
	got, ok := arr.Get(list, "").([]any)
	if !ok || len(got) != 2 {
		t.Fatalf("Get(\"\") = %v; want the document itself", got)
	}
}

func TestHas(t *testing.T) {
	doc := sampleDoc()
	if !arr.Has(doc, "data.items") || !arr.Has(doc, "data.items.2") {
		t.Fatal("Has should be true for existing paths")
	}
	if arr.Has(doc, "data.items.3") || arr.Has(doc, "nope") {
		t.Fatal("Has should be false for missing paths")
	}
}
