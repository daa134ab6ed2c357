package propbag

import "strings"

// Mode selects the side effects of Bag.Set. Flags combine freely.
type Mode uint8

const (
	// FixCasing resolves the name to its declared casing before use.
	FixCasing Mode = 1 << iota
	// SetAsOriginal also records the value as already accepted.
	SetAsOriginal
	// RaiseChangedEvent raises changing before and changed after the write,
	// plus changed for every calculated property depending on the name.
	RaiseChangedEvent
	// UpdateIsChangedProperty marks the bag locally changed.
	UpdateIsChangedProperty
	// ValidateProperty raises RevalidateProperty after the write.
	ValidateProperty
	// ValidateObject raises RevalidateObject after the write.
	ValidateObject
)

// Default is the mode used for ordinary edits.
const Default = RaiseChangedEvent | UpdateIsChangedProperty | ValidateProperty | ValidateObject

// Initialize is the mode used while constructing an object: the value counts
// as accepted and nobody is told.
const Initialize = FixCasing | SetAsOriginal

var modeNames = []string{
	"FixCasing",
	"SetAsOriginal",
	"RaiseChangedEvent",
	"UpdateIsChangedProperty",
	"ValidateProperty",
	"ValidateObject",
}

// Has reports whether every flag in f is set.
func (m Mode) Has(f Mode) bool { return m&f == f }

func (m Mode) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	for i, name := range modeNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
