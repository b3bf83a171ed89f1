package filtering

import (
	"helog/internal/stream"
	"helog/pkg/errors"
	"helog/pkg/models"
)

// Predicate tests one decoded record.
type Predicate func(models.Record) bool

func always(models.Record) bool { return true }

func (p Predicate) and(q Predicate) Predicate {
	return func(r models.Record) bool { return p(r) && q(r) }
}

func (p Predicate) or(q Predicate) Predicate {
	return func(r models.Record) bool { return p(r) || q(r) }
}

// anyOf matches records for which match holds for at least one value. An empty
// list matches nothing.
func anyOf(values []string, match func(string) Predicate) Predicate {
	p := Predicate(func(models.Record) bool { return false })
	for _, v := range values {
		p = p.or(match(v))
	}
	return p
}

// noneOf matches records for which match holds for no value. An empty list
// matches everything.
func noneOf(values []string, match func(string) Predicate) Predicate {
	p := Predicate(always)
	for _, v := range values {
		m := match(v)
		p = p.and(func(r models.Record) bool { return !m(r) })
	}
	return p
}

func device(v string) Predicate {
	return func(r models.Record) bool { return r.MatchesDevice(v) }
}

func app(v string) Predicate {
	return func(r models.Record) bool { return r.MatchesApp(v) }
}

func eventName(v string) Predicate {
	return func(r models.Record) bool {
		named, ok := r.(models.Named)
		return ok && named.EventName() == v
	}
}

func logLevel(v string) Predicate {
	return func(r models.Record) bool {
		leveled, ok := r.(models.Leveled)
		return ok && leveled.LogLevel() == v
	}
}

// Build composes source AND name AND level. Name and level dimensions on a
// stream that lacks them fail here, before any record is seen.
func Build(kind stream.Kind, c Criteria) (Predicate, error) {
	if (len(c.Name) > 0 || len(c.ExcludeName) > 0) && !kind.SupportsEventName() {
		return nil, errors.Validation("%s records have no event name", kind)
	}
	if (len(c.Level) > 0 || len(c.ExcludeLevel) > 0) && !kind.SupportsLogLevel() {
		return nil, errors.Validation("%s records have no log level", kind)
	}

	return sourcePredicate(c).
		and(dimension(c.Name, c.ExcludeName, eventName)).
		and(dimension(c.Level, c.ExcludeLevel, logLevel)), nil
}

// sourcePredicate treats device and app as one dimension: inclusive lists are
// ORed together, exclusive lists are ANDed.
func sourcePredicate(c Criteria) Predicate {
	if len(c.Device) > 0 || len(c.App) > 0 {
		return anyOf(c.Device, device).or(anyOf(c.App, app))
	}
	if len(c.ExcludeDevice) > 0 || len(c.ExcludeApp) > 0 {
		return noneOf(c.ExcludeDevice, device).and(noneOf(c.ExcludeApp, app))
	}
	return always
}

func dimension(include, exclude []string, match func(string) Predicate) Predicate {
	if len(include) > 0 {
		return anyOf(include, match)
	}
	if len(exclude) > 0 {
		return noneOf(exclude, match)
	}
	return always
}
