package revision

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestDecodeOldStyle(t *testing.T) {
	tests := []struct {
		code         string
		model        ModelType
		revision     string
		memory       int
		manufacturer Manufacturer
	}{
		{"0005", ModelB, "2.0", 256, Egoman},
		{"0015", ModelAPlus, "1.1", 512, Embest},
		{"0x0010", ModelBPlus, "1.2", 512, SonyUK},
		{"0009", ModelA, "2.0", 256, Qisda},
		{"0000", ModelUnknown, "0.0", 0, ManufacturerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			d, err := Decode(tt.code)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.code, err)
			}
			if d.ModelType != tt.model {
				t.Errorf("model = %v, want %v", d.ModelType, tt.model)
			}
			if d.BoardRevision != tt.revision {
				t.Errorf("revision = %q, want %q", d.BoardRevision, tt.revision)
			}
			if d.MemoryMB != tt.memory {
				t.Errorf("memory = %d, want %d", d.MemoryMB, tt.memory)
			}
			if d.Manufacturer != tt.manufacturer {
				t.Errorf("manufacturer = %v, want %v", d.Manufacturer, tt.manufacturer)
			}
			if d.Processor != ProcessorUnknown {
				t.Errorf("processor = %v, want UNKNOWN for old-style code", d.Processor)
			}
			if d.Overvoltage || d.OTPProgram || d.OTPRead {
				t.Errorf("old-style code must not set flags: %+v", d)
			}
		})
	}
}

func TestDecodeLegacyTable(t *testing.T) {
	tests := []struct {
		code         uint32
		model        ModelType
		revision     string
		memory       int
		manufacturer Manufacturer
	}{
		{0x0000, ModelUnknown, "0.0", 0, ManufacturerUnknown},
		{0x0002, ModelB, "1.0", 256, Egoman},
		{0x0003, ModelB, "1.0", 256, Egoman},
		{0x0004, ModelB, "2.0", 256, SonyUK},
		{0x0005, ModelB, "2.0", 256, Egoman},
		{0x0006, ModelB, "2.0", 256, Egoman},
		{0x0007, ModelA, "2.0", 256, Egoman},
		{0x0008, ModelA, "2.0", 256, SonyUK},
		{0x0009, ModelA, "2.0", 256, Qisda},
		{0x000D, ModelB, "2.0", 512, Egoman},
		{0x000E, ModelB, "2.0", 512, SonyUK},
		{0x000F, ModelB, "2.0", 512, Egoman},
		{0x0010, ModelBPlus, "1.2", 512, SonyUK},
		{0x0011, ModelCM1, "1.0", 512, SonyUK},
		{0x0012, ModelAPlus, "1.1", 256, SonyUK},
		{0x0013, ModelBPlus, "1.2", 512, Embest},
		{0x0014, ModelCM1, "1.0", 512, Embest},
		{0x0015, ModelAPlus, "1.1", 512, Embest},
	}

	if len(tests) != len(LegacyCodes()) {
		t.Fatalf("table has %d rows, expected %d", len(LegacyCodes()), len(tests))
	}

	for _, tt := range tests {
		d, err := DecodeUint32(tt.code)
		if err != nil {
			t.Fatalf("DecodeUint32(0x%04X) failed: %v", tt.code, err)
		}
		want := Descriptor{
			RevisionCode:  fmt.Sprintf("%04x", tt.code),
			ModelType:     tt.model,
			Processor:     ProcessorUnknown,
			Manufacturer:  tt.manufacturer,
			MemoryMB:      tt.memory,
			BoardRevision: tt.revision,
		}
		if !reflect.DeepEqual(d, want) {
			t.Errorf("0x%04X decoded to %+v, want %+v", tt.code, d, want)
		}
	}
}

func TestDecodeUint32RevisionCode(t *testing.T) {
	tests := []struct {
		raw  uint32
		want string
	}{
		{0x0005, "0005"},
		{0x0015, "0015"},
		{0xa020d3, "a020d3"},
	}
	for _, tt := range tests {
		d, err := DecodeUint32(tt.raw)
		if err != nil {
			t.Fatalf("DecodeUint32(0x%X) failed: %v", tt.raw, err)
		}
		if d.RevisionCode != tt.want {
			t.Errorf("DecodeUint32(0x%X).RevisionCode = %q, want %q", tt.raw, d.RevisionCode, tt.want)
		}
	}

	// Integer and string entry points agree on old-style codes.
	fromString, _ := Decode("0005")
	fromInt, _ := DecodeUint32(5)
	if !reflect.DeepEqual(fromString, fromInt) {
		t.Errorf("Decode(\"0005\") = %+v, DecodeUint32(5) = %+v", fromString, fromInt)
	}
}

func TestLegacyCodesSorted(t *testing.T) {
	codes := LegacyCodes()
	if len(codes) != len(legacyTable) {
		t.Fatalf("got %d codes, want %d", len(codes), len(legacyTable))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not ascending at %d: 0x%X >= 0x%X", i, codes[i-1], codes[i])
		}
	}
}

func TestDecodeNewStyle(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Descriptor
	}{
		{
			name: "3B+",
			code: "a020d3",
			want: Descriptor{
				RevisionCode:  "a020d3",
				ModelType:     Model3BPlus,
				Processor:     BCM2837,
				Manufacturer:  SonyUK,
				MemoryMB:      1024,
				BoardRevision: "1.3",
			},
		},
		{
			name: "5",
			code: "d04170",
			want: Descriptor{
				RevisionCode:  "d04170",
				ModelType:     Model5,
				Processor:     BCM2712,
				Manufacturer:  SonyUK,
				MemoryMB:      8192,
				BoardRevision: "1.0",
			},
		},
		{
			name: "4B with prefix and upper case",
			code: "0xC03114",
			want: Descriptor{
				RevisionCode:  "c03114",
				ModelType:     Model4B,
				Processor:     BCM2711,
				Manufacturer:  SonyUK,
				MemoryMB:      4096,
				BoardRevision: "1.4",
			},
		},
		{
			name: "Zero 2 W",
			code: "902120",
			want: Descriptor{
				RevisionCode:  "902120",
				ModelType:     ModelZero2W,
				Processor:     BCM2837,
				Manufacturer:  SonyUK,
				MemoryMB:      512,
				BoardRevision: "1.0",
			},
		},
		{
			name: "CM4 from Embest",
			code: "b23140",
			want: Descriptor{
				RevisionCode:  "b23140",
				ModelType:     ModelCM4,
				Processor:     BCM2711,
				Manufacturer:  Embest,
				MemoryMB:      2048,
				BoardRevision: "1.0",
			},
		},
		{
			name: "flag bits",
			code: "e0a02082",
			want: Descriptor{
				RevisionCode:  "e0a02082",
				ModelType:     Model3B,
				Processor:     BCM2837,
				Manufacturer:  SonyUK,
				MemoryMB:      1024,
				BoardRevision: "1.2",
				Overvoltage:   true,
				OTPProgram:    true,
				OTPRead:       true,
			},
		},
		{
			name: "only OTP read",
			code: "20a02082",
			want: Descriptor{
				RevisionCode:  "20a02082",
				ModelType:     Model3B,
				Processor:     BCM2837,
				Manufacturer:  SonyUK,
				MemoryMB:      1024,
				BoardRevision: "1.2",
				OTPRead:       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.code)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDecodeReservedModelTypes(t *testing.T) {
	for _, code := range []string{"a02070", "a020b0", "a020f0", "a02160", "a02ff0"} {
		d, err := Decode(code)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", code, err)
		}
		if d.ModelType != ModelUnknown {
			t.Errorf("Decode(%q) model = %v, want UNKNOWN", code, d.ModelType)
		}
		if d.MemoryMB != 1024 {
			t.Errorf("Decode(%q) memory = %d, want 1024", code, d.MemoryMB)
		}
	}
}

func TestDecodeUnmappedProcessorAndManufacturer(t *testing.T) {
	// processor 0xF, manufacturer 0xE
	d, err := Decode("aef0d3")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if d.Processor != ProcessorUnknown {
		t.Errorf("processor = %v, want UNKNOWN", d.Processor)
	}
	if d.Manufacturer != ManufacturerUnknown {
		t.Errorf("manufacturer = %v, want UNKNOWN", d.Manufacturer)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"zzzz", ErrMalformedInput},
		{"", ErrMalformedInput},
		{"0x", ErrMalformedInput},
		{" a020d3", ErrMalformedInput},
		{"1a020d3ff", ErrMalformedInput},
		{"00ff", ErrUnknownLegacyCode},
		{"0001", ErrUnknownLegacyCode},
		{"f020d3", ErrInvalidMemoryField},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			d, err := Decode(tt.code)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode(%q) error = %v, want %v", tt.code, err, tt.want)
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error %T is not a *DecodeError", err)
			}
			if d != (Descriptor{}) {
				t.Errorf("Decode(%q) returned partial descriptor %+v", tt.code, d)
			}
		})
	}
}

func TestDecodeIdempotent(t *testing.T) {
	for _, code := range []string{"0005", "a020d3", "d04170", "00ff"} {
		first, err1 := Decode(code)
		second, err2 := Decode(code)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Decode(%q) not deterministic: %+v vs %+v", code, first, second)
		}
		if (err1 == nil) != (err2 == nil) {
			t.Errorf("Decode(%q) errors differ: %v vs %v", code, err1, err2)
		}
	}
}

func TestIsNewStyle(t *testing.T) {
	if IsNewStyle(0x0015) {
		t.Error("0x0015 reported as new-style")
	}
	if !IsNewStyle(0xa020d3) {
		t.Error("0xa020d3 not reported as new-style")
	}
}

func TestUnknown(t *testing.T) {
	d := Unknown()
	if d.ModelType != ModelUnknown || d.Processor != ProcessorUnknown || d.Manufacturer != ManufacturerUnknown {
		t.Errorf("Unknown() has known enum values: %+v", d)
	}
	if d.BoardRevision != "0.0" || d.MemoryMB != 0 {
		t.Errorf("Unknown() = %+v", d)
	}
}
