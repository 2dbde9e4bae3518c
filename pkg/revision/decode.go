package revision

import (
	"fmt"
	"strconv"
	"strings"
)

// Bit layout of a new-style revision code (NOQuuuWuFMMMCCCCPPPPTTTTTTTTRRRR).
const (
	newStyleBit = 23

	revisionMask      = 0xF
	typeShift         = 4
	typeMask          = 0xFF
	processorShift    = 12
	processorMask     = 0xF
	manufacturerShift = 16
	manufacturerMask  = 0xF
	memoryShift       = 20
	memoryMask        = 0x7

	// Each flag bit is decoded into its own field.
	otpReadBit     = 29
	otpProgramBit  = 30
	overvoltageBit = 31
)

// memoryTable maps the 3-bit memory field to megabytes. Index 7 is unused.
var memoryTable = [...]int{256, 512, 1024, 2048, 4096, 8192, 16384}

// Decode parses a hexadecimal revision code, with or without a 0x prefix,
// and returns the hardware it describes. The caller trims whitespace.
func Decode(code string) (Descriptor, error) {
	canonical := canonicalize(code)
	raw, err := strconv.ParseUint(canonical, 16, 32)
	if err != nil {
		return Descriptor{}, &DecodeError{Code: code, Err: ErrMalformedInput}
	}
	return decode(canonical, uint32(raw))
}

// DecodeUint32 decodes a revision code already held as an integer.
// Old-style codes are echoed with four digits, as the board reports them.
func DecodeUint32(raw uint32) (Descriptor, error) {
	canonical := strconv.FormatUint(uint64(raw), 16)
	if !IsNewStyle(raw) {
		canonical = fmt.Sprintf("%04x", raw)
	}
	return decode(canonical, raw)
}

// IsNewStyle reports whether raw uses the packed bit-field encoding.
func IsNewStyle(raw uint32) bool {
	return (raw>>newStyleBit)&1 == 1
}

func decode(canonical string, raw uint32) (Descriptor, error) {
	if IsNewStyle(raw) {
		return decodeNewStyle(canonical, raw)
	}
	return decodeOldStyle(canonical, raw)
}

func decodeNewStyle(canonical string, raw uint32) (Descriptor, error) {
	memIndex := (raw >> memoryShift) & memoryMask
	if int(memIndex) >= len(memoryTable) {
		return Descriptor{}, &DecodeError{Code: canonical, Err: ErrInvalidMemoryField}
	}

	return Descriptor{
		RevisionCode:  canonical,
		ModelType:     ModelTypeFromCode((raw >> typeShift) & typeMask),
		Processor:     ProcessorFromCode((raw >> processorShift) & processorMask),
		Manufacturer:  ManufacturerFromCode((raw >> manufacturerShift) & manufacturerMask),
		MemoryMB:      memoryTable[memIndex],
		BoardRevision: "1." + strconv.FormatUint(uint64(raw&revisionMask), 10),
		Overvoltage:   bit(raw, overvoltageBit),
		OTPProgram:    bit(raw, otpProgramBit),
		OTPRead:       bit(raw, otpReadBit),
	}, nil
}

func decodeOldStyle(canonical string, raw uint32) (Descriptor, error) {
	entry, ok := legacyTable[raw]
	if !ok {
		return Descriptor{}, &DecodeError{Code: canonical, Err: ErrUnknownLegacyCode}
	}
	return Descriptor{
		RevisionCode:  canonical,
		ModelType:     entry.Model,
		Processor:     ProcessorUnknown,
		Manufacturer:  entry.Manufacturer,
		MemoryMB:      entry.MemoryMB,
		BoardRevision: entry.BoardRevision,
	}, nil
}

func bit(raw uint32, n uint) bool {
	return (raw>>n)&1 == 1
}

func canonicalize(code string) string {
	code = strings.ToLower(code)
	return strings.TrimPrefix(code, "0x")
}
