package request

import "strconv"

const (
	defaultLimit  = 50
	defaultOffset = 0
)

// ParseListRequest reads limit and offset query values, falling back to
// defaults on anything that is not a non-negative integer.
func ParseListRequest(limit, offset string) ListRequest {
	return ListRequest{
		Limit:  parsePositiveIntFallback(limit, defaultLimit),
		Offset: parseNonNegativeIntFallback(offset, defaultOffset),
	}
}

func parsePositiveIntFallback(v string, fallback int) int {
	num, err := strconv.Atoi(v)
	if err != nil || num <= 0 {
		return fallback
	}
	return num
}

func parseNonNegativeIntFallback(v string, fallback int) int {
	num, err := strconv.Atoi(v)
	if err != nil || num < 0 {
		return fallback
	}
	return num
}
