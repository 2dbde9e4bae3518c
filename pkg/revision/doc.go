// Package revision decodes board revision codes into a hardware Descriptor.
//
// Two encodings exist. New-style codes (bit 23 set) pack the board type,
// processor, memory size, manufacturer and revision into bit fields:
//
//	NOQu uuWu FMMM CCCC PPPP TTTT TTTT RRRR
//
// Old-style codes predate the layout and are looked up in a fixed table.
// Decoding is pure and safe for concurrent use.
package revision
