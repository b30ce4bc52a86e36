package models

// Page is offset pagination applied after ordering.
type Page struct {
	From uint
	Size uint
}

func DefaultPage() Page {
	return Page{From: 0, Size: 20}
}
