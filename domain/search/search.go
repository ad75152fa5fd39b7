package search

import (
	"strconv"
	"strings"
)

const defaultLimit = 10

// Query represents the structured parameters for a transcript search.
// It decouples the raw input from the index engine requirements.
type Query struct {
	RawInput string // The original input from the operator
	Terms    string // The actual text to search in the index
	Session  int64  // Restrict the search to one session (0 = all)
	Limit    int    // Pagination: number of results
}

// NewQuery parses a raw string to extract command-line style arguments.
// Example: /find "refund" --session 12 --limit 5
func NewQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --session 12 or --limit 5
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "session":
				if id, err := strconv.ParseInt(val, 10, 64); err == nil {
					query.Session = id
				}
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		// If it's not a flag, it's a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, strings.Trim(part, `"`))
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
