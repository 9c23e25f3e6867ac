package asset

// Kind selects the validation rules applied to a slot's uploads.
type Kind int

const (
	KindImage Kind = iota
	KindDocument
)

// Slot describes one asset-bearing field of a record: which storage
// bucket its objects live in, what content is accepted, and how many
// files it may hold.
type Slot struct {
	Field    string
	Bucket   string
	Kind     Kind
	MaxFiles int // 0 means single-file
}

// Multi reports whether the slot holds more than one file.
func (s Slot) Multi() bool {
	return s.MaxFiles > 1
}

// Schema is the ordered set of asset slots an entity type carries.
type Schema []Slot

// Slot returns the slot for a field name.
func (s Schema) Slot(field string) (Slot, bool) {
	for _, slot := range s {
		if slot.Field == field {
			return slot, true
		}
	}
	return Slot{}, false
}
