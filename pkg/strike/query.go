package strike

import (
	"net/url"
	"strconv"
	"strings"
)

// Query holds the optional OData-style parameters accepted by list endpoints.
// They are passed through to the API untouched apart from percent-encoding.
type Query struct {
	Filter *string
	Order  *string
	Skip   *uint32
	Top    *uint32
}

// Encode renders the present parameters in filter, order, skip, top order as a
// query string with a leading "?", or returns an empty string if none are set.
func (q Query) Encode() string {
	var options []string

	if q.Filter != nil {
		options = append(options, "filter="+escapeQueryValue(*q.Filter))
	}
	if q.Order != nil {
		options = append(options, "order="+escapeQueryValue(*q.Order))
	}
	if q.Skip != nil {
		options = append(options, "skip="+strconv.FormatUint(uint64(*q.Skip), 10))
	}
	if q.Top != nil {
		options = append(options, "top="+strconv.FormatUint(uint64(*q.Top), 10))
	}

	if len(options) == 0 {
		return ""
	}
	return "?" + strings.Join(options, "&")
}

// escapeQueryValue percent-encodes spaces as %20 rather than "+".
func escapeQueryValue(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
