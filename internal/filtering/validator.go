package filtering

import (
	"slices"
	"strconv"
	"strings"

	"helog/internal/stream"
	"helog/pkg/errors"
)

// Validate checks criteria and format against the stream before connecting.
// Every failure is a VALIDATION_ERROR carrying the message shown to the user.
func Validate(kind stream.Kind, c Criteria, format Format) error {
	if format.Raw {
		if format.CSV {
			return errors.Validation("--raw and --csv cannot be used together")
		}
		if err := validateRaw(c); err != nil {
			return err
		}
	}

	sourceInclusive := len(c.Device) > 0 || len(c.App) > 0
	sourceExclusive := len(c.ExcludeDevice) > 0 || len(c.ExcludeApp) > 0
	if sourceInclusive && sourceExclusive {
		return errors.Validation("--device or --app cannot be used with --xdevice or --xapp")
	}
	if len(c.Name) > 0 && len(c.ExcludeName) > 0 {
		return errors.Validation("--name and --xname cannot be used together")
	}
	if len(c.Level) > 0 && len(c.ExcludeLevel) > 0 {
		return errors.Validation("--level and --xlevel cannot be used together")
	}

	if !kind.SupportsEventName() {
		if len(c.Name) > 0 {
			return errors.Validation("--name cannot be used with %s", kind)
		}
		if len(c.ExcludeName) > 0 {
			return errors.Validation("--xname cannot be used with %s", kind)
		}
	}

	if !kind.SupportsLogLevel() {
		if len(c.Level) > 0 {
			return errors.Validation("--level cannot be used with %s", kind)
		}
		if len(c.ExcludeLevel) > 0 {
			return errors.Validation("--xlevel cannot be used with %s", kind)
		}
	}

	if !kind.AppByNameAllowed() {
		if !allIntegers(c.App) || !allIntegers(c.ExcludeApp) {
			return errors.Validation("Events cannot be filtered by app name. Use the numeric id instead.")
		}
	}

	for _, level := range append(slices.Clone(c.Level), c.ExcludeLevel...) {
		if !slices.Contains(LogLevels, level) {
			return errors.Validation("Invalid log level '%s': should be one of %s", level, strings.Join(LogLevels, ", "))
		}
	}

	return nil
}

func validateRaw(c Criteria) error {
	flags := []struct {
		name   string
		values []string
	}{
		{"--device", c.Device},
		{"--xdevice", c.ExcludeDevice},
		{"--app", c.App},
		{"--xapp", c.ExcludeApp},
		{"--name", c.Name},
		{"--xname", c.ExcludeName},
		{"--level", c.Level},
		{"--xlevel", c.ExcludeLevel},
	}
	for _, f := range flags {
		if len(f.values) > 0 {
			return errors.Validation("%s cannot be used with --raw", f.name)
		}
	}
	if c.Where != "" {
		return errors.Validation("--where cannot be used with --raw")
	}
	return nil
}

// allIntegers mirrors a 32-bit integer parse: optional sign, decimal digits.
func allIntegers(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseInt(v, 10, 32); err != nil {
			return false
		}
	}
	return true
}
