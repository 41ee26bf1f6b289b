package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	info := Get()
	if info.Version != "v9.9.9" {
		t.Errorf("Get().Version = %q, want %q", info.Version, "v9.9.9")
	}
	if s := String(); !strings.HasPrefix(s, "gridboard v9.9.9") {
		t.Errorf("String() = %q, want gridboard v9.9.9 prefix", s)
	}
	if tpl := Template(); !strings.Contains(tpl, "v9.9.9") {
		t.Errorf("Template() = %q, missing version", tpl)
	}
}
