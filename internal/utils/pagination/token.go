package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const tokenPrefix = "entry"

// EncodeEntryToken creates an opaque token pointing after the given entry number.
func EncodeEntryToken(entryNumber int64) string {
	tokenStr := fmt.Sprintf("%s|%d", tokenPrefix, entryNumber)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeEntryToken parses a token produced by EncodeEntryToken.
func DecodeEntryToken(token string) (int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != tokenPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	n, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid pagination token format (entry number parse): %q", parts[1])
	}
	return n, nil
}

// ClampLimit bounds a requested page size to [1, max], using def when unset.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
