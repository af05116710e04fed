package repositories

// pageWindow normalizes page/limit query values and returns the SQL offset.
// Page numbers start at 1; a non-positive limit falls back to 10.
func pageWindow(page, limit int) (offset, normalized int) {
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}
