// Package netif enumerates network interface hardware addresses from a
// sysfs-style directory tree.
package netif

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is the Linux sysfs network class directory.
const DefaultPath = "/sys/class/net"

const zeroMAC = "00:00:00:00:00:00"

// ErrNotFound is returned when the interface directory does not exist.
var ErrNotFound = errors.New("network interface source not found")

// Enumerate maps interface name to upper-case MAC address for every entry
// under root that has an address file. Interfaces reporting the all-zero
// address, such as loopback, are skipped.
func Enumerate(root string) (map[string]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name())
		if name == "" {
			continue
		}
		mac, ok := readAddress(filepath.Join(root, name, "address"))
		if !ok || mac == zeroMAC {
			continue
		}
		out[name] = mac
	}
	return out, nil
}

func readAddress(path string) (string, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(string(raw))), true
}
