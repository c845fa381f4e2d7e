package model

// Step is one recorded page range read during a single timer cycle.
// Steps are append-only: once written they are never updated or deleted.
type Step struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Date      string `json:"date"` // YYYY-MM-DD
	Book      string `json:"book"`
	StartPage int    `json:"startPage"`
	EndPage   int    `json:"endPage"`
	PagesRead int    `json:"pagesRead"`
	Timestamp int64  `json:"timestamp"` // ms since epoch
}

// PagesRead derives the page count for a range, clamped at zero.
func PagesRead(startPage, endPage int) int {
	if n := endPage - startPage + 1; n > 0 {
		return n
	}
	return 0
}
