package utils

import "testing"

type decodeTarget struct {
	Name       string  `json:"name"`
	CapacityMW float64 `json:"capacity_mw"`
}

func TestDecodeLenientJSON(t *testing.T) {
	var got decodeTarget
	err := DecodeLenient([]byte(`{"name": "Alpha", "capacity_mw": 100}`), &got)
	if err != nil {
		t.Fatalf("DecodeLenient failed: %v", err)
	}
	if got.Name != "Alpha" || got.CapacityMW != 100 {
		t.Errorf("unexpected decode result: %+v", got)
	}
}

func TestDecodeLenientHJSON(t *testing.T) {
	input := `{
  # project under review
  name: Alpha
  capacity_mw: 100
}`
	var got decodeTarget
	if err := DecodeLenient([]byte(input), &got); err != nil {
		t.Fatalf("DecodeLenient failed on hjson: %v", err)
	}
	if got.Name != "Alpha" || got.CapacityMW != 100 {
		t.Errorf("unexpected decode result: %+v", got)
	}
}

func TestDecodeLenientGarbage(t *testing.T) {
	var got decodeTarget
	if err := DecodeLenient([]byte("[[[:::"), &got); err == nil {
		t.Error("expected error for unparseable input")
	}
}
