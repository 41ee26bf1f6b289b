package observability

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/gridboard/pkg/core/grid"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	b := NoopBoardHooks{}
	ev := BoxEvent{BoardID: "main", BoxID: "left", Rect: grid.Rect{Width: 4, Height: 4}}
	b.OnBoxCreated(ev)
	b.OnBoxResized(ev)
	b.OnBoxMoved(ev)
	b.OnBoxTransferred(ev)
	b.OnBoxDestroyed(ev)

	s := NoopStoreHooks{}
	s.OnLoad(ctx, "file", true, time.Millisecond)
	s.OnSave(ctx, "file", 1024, time.Millisecond, nil)
	s.OnDelete(ctx, "file", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Board().(NoopBoardHooks); !ok {
		t.Error("Board() should return NoopBoardHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	customBoard := &recordingHooks{}
	SetBoardHooks(customBoard)
	if Board() != customBoard {
		t.Error("SetBoardHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	Reset()
	if _, ok := Board().(NoopBoardHooks); !ok {
		t.Error("Reset() should restore NoopBoardHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &recordingHooks{}
	SetBoardHooks(custom)
	SetBoardHooks(nil)

	if Board() != custom {
		t.Error("SetBoardHooks(nil) should be ignored")
	}
}

func TestMultiBoardHooks(t *testing.T) {
	a, b := &recordingHooks{}, &recordingHooks{}
	m := MultiBoardHooks{a, b}

	m.OnBoxCreated(BoxEvent{BoxID: "x"})
	m.OnBoxResized(BoxEvent{BoxID: "x"})
	m.OnBoxMoved(BoxEvent{BoxID: "x"})
	m.OnBoxTransferred(BoxEvent{BoxID: "x"})
	m.OnBoxDestroyed(BoxEvent{BoxID: "x"})

	want := []string{"created", "resized", "moved", "transferred", "destroyed"}
	for _, r := range []*recordingHooks{a, b} {
		if len(r.events) != len(want) {
			t.Fatalf("got %d events, want %d", len(r.events), len(want))
		}
		for i, e := range want {
			if r.events[i] != e {
				t.Errorf("event %d = %q, want %q", i, r.events[i], e)
			}
		}
	}
}

type recordingHooks struct {
	events []string
}

func (r *recordingHooks) OnBoxCreated(BoxEvent)     { r.events = append(r.events, "created") }
func (r *recordingHooks) OnBoxResized(BoxEvent)     { r.events = append(r.events, "resized") }
func (r *recordingHooks) OnBoxMoved(BoxEvent)       { r.events = append(r.events, "moved") }
func (r *recordingHooks) OnBoxTransferred(BoxEvent) { r.events = append(r.events, "transferred") }
func (r *recordingHooks) OnBoxDestroyed(BoxEvent)   { r.events = append(r.events, "destroyed") }

type testStoreHooks struct{ NoopStoreHooks }
