package util

// Window turns a 1-based page and a page size into an offset and a limit.
// A non-positive size means no limit, and the page is ignored. Sizes above
// maxSize are clamped.
func Window(page, size, maxSize int) (offset, limit int) {
	if size <= 0 {
		return 0, 0
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * size, size
}
