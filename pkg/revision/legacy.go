package revision

import "sort"

// legacyEntry is one row of the old-style revision table.
type legacyEntry struct {
	Model         ModelType
	BoardRevision string
	MemoryMB      int
	Manufacturer  Manufacturer
}

// legacyTable holds every known old-style revision code. Rows are free-form;
// adding a board means adding a row.
var legacyTable = map[uint32]legacyEntry{
	0x0000: {ModelUnknown, "0.0", 0, ManufacturerUnknown},
	0x0002: {ModelB, "1.0", 256, Egoman},
	0x0003: {ModelB, "1.0", 256, Egoman},
	0x0004: {ModelB, "2.0", 256, SonyUK},
	0x0005: {ModelB, "2.0", 256, Egoman},
	0x0006: {ModelB, "2.0", 256, Egoman},
	0x0007: {ModelA, "2.0", 256, Egoman},
	0x0008: {ModelA, "2.0", 256, SonyUK},
	0x0009: {ModelA, "2.0", 256, Qisda},
	0x000D: {ModelB, "2.0", 512, Egoman},
	0x000E: {ModelB, "2.0", 512, SonyUK},
	0x000F: {ModelB, "2.0", 512, Egoman},
	0x0010: {ModelBPlus, "1.2", 512, SonyUK},
	0x0011: {ModelCM1, "1.0", 512, SonyUK},
	0x0012: {ModelAPlus, "1.1", 256, SonyUK},
	0x0013: {ModelBPlus, "1.2", 512, Embest},
	0x0014: {ModelCM1, "1.0", 512, Embest},
	0x0015: {ModelAPlus, "1.1", 512, Embest},
}

// LegacyCodes returns every old-style code in ascending order.
func LegacyCodes() []uint32 {
	codes := make([]uint32, 0, len(legacyTable))
	for code := range legacyTable {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
