package document

// View selects a slice of the documents a caller can see.
type View string

const (
	// ViewAll is every document the caller uploaded or that was shared with them.
	ViewAll View = "all"
	// ViewPersonal is the caller's own documents flagged personal.
	ViewPersonal View = "personal"
	// ViewOffice is the caller's own documents not flagged personal.
	ViewOffice View = "office"
	// ViewShared is documents other users shared with the caller.
	ViewShared View = "shared"
	// ViewArchived is the caller's own archived documents.
	ViewArchived View = "archived"
)

func (v View) Valid() bool {
	switch v {
	case ViewAll, ViewPersonal, ViewOffice, ViewShared, ViewArchived:
		return true
	}
	return false
}
