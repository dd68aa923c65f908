package codec_test

import (
	"testing"

	"cssb/codec"
	"cssb/geom"
)

func TestEncode(t *testing.T) {
	got, err := codec.Encode(geom.NewRectangle(4, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"width":4,"height":5}` {
		t.Errorf("got %q", got)
	}
}

func TestDecode_OverlaysTemplate(t *testing.T) {
	template := geom.NewRectangle(1, 2)

	r, err := codec.Decode(template, `{"width":10}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Width != 10 {
		t.Errorf("decoded field lost: %+v", r)
	}
	if r.Height != 2 {
		t.Errorf("template field not preserved: %+v", r)
	}
	// behavior comes from the template type
	if got := r.Area(); got != 20 {
		t.Errorf("Area() = %v, want 20", got)
	}
	if template.Width != 1 {
		t.Errorf("template mutated: %+v", template)
	}
}

func TestDecode_BadInput(t *testing.T) {
	if _, err := codec.Decode(geom.Rectangle{}, "not json"); err == nil {
		t.Error("expected decode error")
	}
}

func TestRoundTrip(t *testing.T) {
	value := geom.NewRectangle(3, 7)

	text, err := codec.Encode(value)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := codec.Decode(geom.Rectangle{}, text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	again, err := codec.Encode(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if again != text {
		t.Errorf("round trip not stable: %q vs %q", again, text)
	}
	if decoded != value {
		t.Errorf("fields not reproduced: %+v vs %+v", decoded, value)
	}
}
