package filtering

// Criteria holds the filter flags. Each dimension is either inclusive (an
// allow-list) or exclusive (a deny-list); Validate rejects mixing the two.
type Criteria struct {
	Device        []string
	ExcludeDevice []string
	App           []string
	ExcludeApp    []string
	Name          []string
	ExcludeName   []string
	Level         []string
	ExcludeLevel  []string

	// Where is an optional CEL expression ANDed with the other dimensions.
	Where string
}

// Format selects how records are written.
type Format struct {
	Raw bool
	CSV bool
}

// Empty reports whether no filter is set.
func (c Criteria) Empty() bool {
	return len(c.Device) == 0 && len(c.ExcludeDevice) == 0 &&
		len(c.App) == 0 && len(c.ExcludeApp) == 0 &&
		len(c.Name) == 0 && len(c.ExcludeName) == 0 &&
		len(c.Level) == 0 && len(c.ExcludeLevel) == 0 &&
		c.Where == ""
}

var LogLevels = []string{"error", "warn", "info", "debug", "trace"}
