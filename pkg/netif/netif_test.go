package netif

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeIface(t *testing.T, root, name, address string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if address == "" {
		return
	}
	if err := os.WriteFile(filepath.Join(dir, "address"), []byte(address), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestEnumerate(t *testing.T) {
	root := t.TempDir()
	writeIface(t, root, "lo", "00:00:00:00:00:00\n")
	writeIface(t, root, "eth0", "d8:3a:dd:01:02:03\n")
	writeIface(t, root, "wlan0", "D8:3A:DD:01:02:04")
	writeIface(t, root, "bonding_masters", "")

	got, err := Enumerate(root)
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}

	want := map[string]string{
		"eth0":  "D8:3A:DD:01:02:03",
		"wlan0": "D8:3A:DD:01:02:04",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d interfaces (%v), want %d", len(got), got, len(want))
	}
	for name, mac := range want {
		if got[name] != mac {
			t.Errorf("%s = %q, want %q", name, got[name], mac)
		}
	}
}

func TestEnumerateEmpty(t *testing.T) {
	got, err := Enumerate(t.TempDir())
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no interfaces, got %v", got)
	}
}

func TestEnumerateMissingRoot(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
