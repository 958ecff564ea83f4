package domain

// NoteCategory distinguishes credit notes from debit notes.
type NoteCategory string

const (
	NoteCategoryCredit NoteCategory = "CREDIT"
	NoteCategoryDebit  NoteCategory = "DEBIT"
)

// Note type codes with special composition behavior. C01 (full annulment) and
// D02 (increase in value) start from the referenced sale's items; C01
// additionally forbids editing them.
const (
	NoteTypeAnnulment       = "C01"
	NoteTypeIncreaseInValue = "D02"
)

// NoteType is one entry of the credit/debit note type catalog.
type NoteType struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Category NoteCategory `json:"noteCategory"`
	IsActive bool         `json:"isActive"`
}

// AutoPopulatesItems reports whether selecting this note type loads the
// referenced sale's items into the note.
func (t NoteType) AutoPopulatesItems() bool {
	return t.Code == NoteTypeAnnulment || t.Code == NoteTypeIncreaseInValue
}

// LocksItems reports whether the note's items must mirror the referenced sale
// verbatim and cannot be edited. Only full-annulment notes lock items.
func (t NoteType) LocksItems() bool {
	return t.Code == NoteTypeAnnulment
}

// DocumentTypeCode returns the fiscal document type the note is issued as.
func (t NoteType) DocumentTypeCode() string {
	if t.Category == NoteCategoryCredit {
		return DocumentTypeCreditNote
	}
	return DocumentTypeDebitNote
}
