package revision

import "fmt"

// unknownValue is the numeric value shared by every UNKNOWN variant.
const unknownValue = -100

// ModelType identifies the board family.
type ModelType int

const (
	ModelUnknown ModelType = unknownValue
	ModelA       ModelType = 0x00
	ModelB       ModelType = 0x01
	ModelAPlus   ModelType = 0x02
	ModelBPlus   ModelType = 0x03
	Model2B      ModelType = 0x04
	ModelAlpha   ModelType = 0x05
	ModelCM1     ModelType = 0x06
	Model3B      ModelType = 0x08
	ModelZero    ModelType = 0x09
	ModelCM3     ModelType = 0x0A
	ModelZeroW   ModelType = 0x0C
	Model3BPlus  ModelType = 0x0D
	Model3APlus  ModelType = 0x0E
	ModelCM3Plus ModelType = 0x10
	Model4B      ModelType = 0x11
	ModelZero2W  ModelType = 0x12
	Model400     ModelType = 0x13
	ModelCM4     ModelType = 0x14
	ModelCM4S    ModelType = 0x15
	Model5       ModelType = 0x17
	ModelCM5     ModelType = 0x18
	ModelCM5Lite ModelType = 0x19
)

// 0x07 and 0x0B are unassigned, 0x0F and 0x16 are internal use only.
var modelNames = map[ModelType]string{
	ModelUnknown: "UNKNOWN",
	ModelA:       "A",
	ModelB:       "B",
	ModelAPlus:   "A+",
	ModelBPlus:   "B+",
	Model2B:      "2B",
	ModelAlpha:   "Alpha",
	ModelCM1:     "CM1",
	Model3B:      "3B",
	ModelZero:    "Zero",
	ModelCM3:     "CM3",
	ModelZeroW:   "Zero W",
	Model3BPlus:  "3B+",
	Model3APlus:  "3A+",
	ModelCM3Plus: "CM3+",
	Model4B:      "4B",
	ModelZero2W:  "Zero 2 W",
	Model400:     "400",
	ModelCM4:     "CM4",
	ModelCM4S:    "CM4S",
	Model5:       "5",
	ModelCM5:     "CM5",
	ModelCM5Lite: "CM5 Lite",
}

// ModelTypeFromCode maps the new-style type field to a ModelType.
// Reserved and future codes map to ModelUnknown.
func ModelTypeFromCode(code uint32) ModelType {
	m := ModelType(code)
	if _, ok := modelNames[m]; ok {
		return m
	}
	return ModelUnknown
}

func (m ModelType) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ModelType(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m ModelType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Processor identifies the SoC.
type Processor int

const (
	ProcessorUnknown Processor = unknownValue
	BCM2835          Processor = 0
	BCM2836          Processor = 1
	BCM2837          Processor = 2
	BCM2711          Processor = 3
	BCM2712          Processor = 4
)

var processorNames = map[Processor]string{
	ProcessorUnknown: "UNKNOWN",
	BCM2835:          "BCM2835",
	BCM2836:          "BCM2836",
	BCM2837:          "BCM2837",
	BCM2711:          "BCM2711",
	BCM2712:          "BCM2712",
}

// ProcessorFromCode maps the new-style processor field to a Processor.
func ProcessorFromCode(code uint32) Processor {
	p := Processor(code)
	if _, ok := processorNames[p]; ok {
		return p
	}
	return ProcessorUnknown
}

func (p Processor) String() string {
	if name, ok := processorNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Processor(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Processor) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Manufacturer identifies the fabrication site.
type Manufacturer int

const (
	ManufacturerUnknown Manufacturer = unknownValue
	// Qisda only appears in old-style codes and has no new-style field value.
	Qisda     Manufacturer = -10
	SonyUK    Manufacturer = 0
	Egoman    Manufacturer = 1
	Embest    Manufacturer = 2
	SonyJapan Manufacturer = 3
	Embest2   Manufacturer = 4
	Stadium   Manufacturer = 5
)

var manufacturerNames = map[Manufacturer]string{
	ManufacturerUnknown: "UNKNOWN",
	Qisda:               "Qisda",
	SonyUK:              "Sony UK",
	Egoman:              "Egoman",
	Embest:              "Embest",
	SonyJapan:           "Sony Japan",
	Embest2:             "Embest2",
	Stadium:             "Stadium",
}

// ManufacturerFromCode maps the new-style manufacturer field to a
// Manufacturer. Only non-negative values appear in the field.
func ManufacturerFromCode(code uint32) Manufacturer {
	m := Manufacturer(code)
	if _, ok := manufacturerNames[m]; ok && m >= 0 {
		return m
	}
	return ManufacturerUnknown
}

func (m Manufacturer) String() string {
	if name, ok := manufacturerNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Manufacturer(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Manufacturer) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
