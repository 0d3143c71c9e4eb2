package events

import (
	"encoding/json"
	"testing"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish("hello")
	select {
	case got := <-ch:
		if got != "hello" {
			t.Errorf("got %q", got)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// fill the buffer past capacity; Publish must never block
	for i := 0; i < 100; i++ {
		h.Publish("evt")
	}
	if n := len(ch); n != cap(ch) {
		t.Errorf("buffered = %d, want %d", n, cap(ch))
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)
	h.Publish("evt") // must not panic on the closed channel
}

func TestMakeEvent(t *testing.T) {
	s := MakeEvent("req-1", TypeRecordStored, 1, map[string]any{"source": "linkedin"})

	var e Event
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		t.Fatal(err)
	}
	if e.Type != TypeRecordStored || e.Version != 1 || e.RequestID != "req-1" {
		t.Errorf("event = %+v", e)
	}
	var data map[string]string
	if err := json.Unmarshal(e.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data["source"] != "linkedin" {
		t.Errorf("data = %v", data)
	}
}
