package normalizer

import (
	"errors"
	"testing"

	"zexplorer/internal/config"
	"zexplorer/internal/jsonval"
	"zexplorer/internal/logger"
)

const sampleInput = `[
	{"zpid": 1, "price": 300000, "bedrooms": 2, "address": {"city": "Albany"}},
	{"zpid": 2, "price": {"value": 500000}, "beds": "4", "address": {"city": "Buffalo"}},
	{"zpid": 3, "listPrice": 750000, "bedrooms": 5, "address": {"city": "Utica"}},
	{"zpid": 4, "bedrooms": 6},
	{"price": 420000}
]`

func decode(t *testing.T, doc string) jsonval.Value {
	t.Helper()

	v, err := jsonval.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}

	return v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func zpids(recs []*jsonval.Object) []int64 {
	ids := make([]int64, 0, len(recs))
	for _, rec := range recs {
		id, _ := rec.At("zpid").Int64()
		ids = append(ids, id)
	}

	return ids
}

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(config.DefaultSettings(), logger.Discard())
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process_Defaults(t *testing.T) {
	p := NewProcessor(config.DefaultSettings(), logger.Discard())

	out, err := p.Process(decode(t, sampleInput))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	// zpid 4 has no price and the identifier-less record is dropped.
	got := zpids(out)
	want := []int64{1, 2, 3}

	if len(got) != len(want) {
		t.Fatalf("zpids = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("zpids = %v, want %v", got, want)
			break
		}
	}

	// Cleansing removed null and empty fields.
	if out[0].Has("bathrooms") || out[0].Has("walkScore") || out[0].Has("photos") {
		t.Errorf("expected empty fields stripped, got keys %v", out[0].Keys())
	}
}

func TestProcessor_Process_FilterSortProject(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Filters.MinPrice = int64Ptr(400000)
	settings.Filters.MinBedrooms = int64Ptr(3)
	settings.Filters.Order = "desc"
	settings.Transform.IncludeFields = []string{"zpid", "price", "address.city"}
	settings.Transform.FieldMapping = config.FieldMapping{{From: "price", To: "listPrice"}}

	p := NewProcessor(settings, logger.Discard())

	out, err := p.Process(decode(t, sampleInput))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}

	got, err := jsonval.Marshal(jsonval.ArrayOf([]jsonval.Value{jsonval.ObjectOf(out[0]), jsonval.ObjectOf(out[1])}))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Renamed keys move to the end.
	want := `[{"zpid":3,"address":{"city":"Utica"},"listPrice":{"value":750000}},` +
		`{"zpid":2,"address":{"city":"Buffalo"},"listPrice":{"value":500000}}]`
	if string(got) != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestProcessor_Process_Limit(t *testing.T) {
	settings := config.DefaultSettings()
	limit := 1
	settings.Filters.Limit = &limit

	out, err := NewProcessor(settings, logger.Discard()).Process(decode(t, sampleInput))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}

	if id, _ := out[0].At("zpid").Int64(); id != 1 {
		t.Errorf("zpid = %d, want 1", id)
	}
}

func TestProcessor_Process_NoStrip(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Transform.StripEmpty = false

	out, err := NewProcessor(settings, logger.Discard()).Process(decode(t, `[{"zpid": 9, "price": 10}]`))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if len(out) != 1 || !out[0].Has("walkScore") || !out[0].At("walkScore").IsNull() {
		t.Errorf("expected null walkScore kept, got %v", out)
	}
}

func TestProcessor_Process_InputNotArray(t *testing.T) {
	p := NewProcessor(config.DefaultSettings(), logger.Discard())

	out, err := p.Process(decode(t, `{"zpid": 1}`))
	if !errors.Is(err, ErrInputNotArray) {
		t.Errorf("Process error = %v, want ErrInputNotArray", err)
	}

	if out != nil {
		t.Errorf("Process result = %v, want nil", out)
	}
}

func TestProcessor_Process_Empty(t *testing.T) {
	out, err := NewProcessor(config.DefaultSettings(), logger.Discard()).Process(decode(t, `[]`))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}
