package diag

import (
	"fmt"
)

type Code uint16

// Codes are banded by category: 1xxx structure, 2xxx naming, 3xxx type,
// 4xxx value, 5xxx reference. The band is the category reported to consumers.
const (
	UnknownCode Code = 0

	// Structure: document shape problems.
	StructInfo         Code = 1000
	StructEmptyInput   Code = 1001
	StructInvalidJSON  Code = 1002
	StructBadRoot      Code = 1003
	StructMissingValue Code = 1004

	// Naming: illegal characters in keys.
	NameInfo        Code = 2000
	NameInvalidChar Code = 2001

	// Type: unknown or undeterminable $type.
	TypeInfo            Code = 3000
	TypeUnknown         Code = 3001
	TypeUndeterminable  Code = 3002

	// Value: type-specific shape/range violations.
	ValueInfo   Code = 4000
	ValueShape  Code = 4001
	ValueRange  Code = 4002
	ValueFormat Code = 4003

	// Reference: resolution failures.
	RefInfo    Code = 5000
	RefMissing Code = 5001
	RefCycle   Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:        "Unknown diagnostic",
	StructInfo:         "Structure information",
	StructEmptyInput:   "Empty input",
	StructInvalidJSON:  "Invalid JSON input",
	StructBadRoot:      "Root is not an object",
	StructMissingValue: "Token is missing $value",
	NameInfo:           "Naming information",
	NameInvalidChar:    "Invalid character in token name",
	TypeInfo:           "Type information",
	TypeUnknown:        "Unknown $type",
	TypeUndeterminable: "No determinable type",
	ValueInfo:          "Value information",
	ValueShape:         "Value has wrong shape",
	ValueRange:         "Value out of range",
	ValueFormat:        "Value format not recognized",
	RefInfo:            "Reference information",
	RefMissing:         "Reference target missing",
	RefCycle:           "Circular reference",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("REF%04d", ic)
	}
	return "E0000"
}

// Category returns the category name used by the explanation layer.
func (c Code) Category() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return "structure"
	case ic >= 2000 && ic < 3000:
		return "naming"
	case ic >= 3000 && ic < 4000:
		return "type"
	case ic >= 4000 && ic < 5000:
		return "value"
	case ic >= 5000 && ic < 6000:
		return "reference"
	}
	return "structure"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
