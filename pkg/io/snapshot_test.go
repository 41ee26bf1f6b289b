package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

func TestJSONRoundTrip(t *testing.T) {
	def, err := ImportTOML("testdata/dashboard.toml")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(def, testEngine())
	if err != nil {
		t.Fatal(err)
	}
	want := b.Snapshot()

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	if !strings.Contains(buf.String(), `"default_pallete": "tray"`) {
		t.Errorf("output missing default pallete:\n%s", buf.String())
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
	if _, err := board.Restore(got); err != nil {
		t.Errorf("Restore error: %v", err)
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	b, _ := board.New(board.BoardConfig{ID: "empty"})
	if err := ExportJSON(b.Snapshot(), path); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}
	snap, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if snap.Board.ID != "empty" || len(snap.Boxes) != 0 {
		t.Errorf("snapshot = %+v", snap)
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON of missing file should fail")
	}
	if _, err := ReadJSON(strings.NewReader("{")); err == nil {
		t.Error("ReadJSON of truncated input should fail")
	}
}
