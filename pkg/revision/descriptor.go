package revision

// Descriptor is the decoded hardware identity of one revision code.
type Descriptor struct {
	RevisionCode  string       `json:"revision_code"`
	ModelType     ModelType    `json:"model_type"`
	Processor     Processor    `json:"processor"`
	Manufacturer  Manufacturer `json:"manufacturer"`
	MemoryMB      int          `json:"memory_mb"`
	BoardRevision string       `json:"board_revision"`

	// The three flags are only carried by new-style codes.
	Overvoltage bool `json:"overvoltage"`
	OTPProgram  bool `json:"otp_program"`
	OTPRead     bool `json:"otp_read"`
}

// Unknown returns the descriptor used when no revision code is available.
func Unknown() Descriptor {
	return Descriptor{
		RevisionCode:  "0",
		ModelType:     ModelUnknown,
		Processor:     ProcessorUnknown,
		Manufacturer:  ManufacturerUnknown,
		BoardRevision: "0.0",
	}
}
