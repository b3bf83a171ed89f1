package render

import "strings"

const csvSpecials = "\",\r\n\t"

// CSVEscape quotes a value that contains a comma, double quote, tab, CR or LF,
// doubling any quotes inside it. Other values are returned unchanged.
func CSVEscape(value string) string {
	if !strings.ContainsAny(value, csvSpecials) {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// CSVLine escapes and joins values into one row without a line terminator.
func CSVLine(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = CSVEscape(v)
	}
	return strings.Join(escaped, ",")
}
