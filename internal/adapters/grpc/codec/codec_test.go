package codec

import (
	"testing"

	"google.golang.org/grpc/encoding"
)

type sample struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Bonus *float64 `json:"bonus,omitempty"`
}

func TestJSON_Registered(t *testing.T) {
	t.Parallel()

	if encoding.GetCodec(Name) == nil {
		t.Fatalf("codec %q is not registered", Name)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	bonus := 5000.0
	b, err := JSON{}.Marshal(&sample{ID: 7, Name: "Sarah Wilson", Bonus: &bonus})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(b) != `{"id":7,"name":"Sarah Wilson","bonus":5000}` {
		t.Fatalf("unexpected payload: %s", b)
	}

	var got sample
	if err := (JSON{}).Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if got.ID != 7 || got.Bonus == nil || *got.Bonus != 5000 {
		t.Fatalf("unexpected decoded value: %+v", got)
	}
}

func TestJSON_EmptyPayload(t *testing.T) {
	t.Parallel()

	got := sample{ID: 1}
	if err := (JSON{}).Unmarshal(nil, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("expected value untouched, got %+v", got)
	}
}

func TestJSON_InvalidPayload(t *testing.T) {
	t.Parallel()

	var got sample
	if err := (JSON{}).Unmarshal([]byte(`{"id":"x"}`), &got); err == nil {
		t.Fatal("expected error for mismatched type")
	}
}
