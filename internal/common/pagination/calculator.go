package pagination

// CalculateOffset converts a 1-based page number to a database OFFSET:
// page 1 maps to offset 0.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total/limit), with a floor of one page
// so an empty result set still renders as page 1 of 1.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
