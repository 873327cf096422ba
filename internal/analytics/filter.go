package analytics

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// referenceTZ is the single timezone used to derive calendar dates and
// hour-of-day from order timestamps, in both filtering and bucketing.
var referenceTZ = time.UTC

const dateLayout = "2006-01-02"

// FilterCriteria carries raw, caller-supplied query values. An empty string
// means the caller did not provide the field.
type FilterCriteria struct {
	From      string
	To        string
	Search    string
	Cuisine   string
	Location  string
	MinAmount string
	MaxAmount string
	StartHour string
	EndHour   string
}

// FilterSpec is a validated, normalized filter bundle. Optional numeric
// bounds are pointers: nil means unconstrained, while a non-nil zero is a
// real bound (min_amount=0 still excludes nothing but is not "unset").
type FilterSpec struct {
	From      time.Time
	To        time.Time // widened to the last instant of the "to" date
	Search    string
	Cuisine   string
	Location  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	StartHour *int
	EndHour   *int
}

// BuildFilterSpec validates raw criteria and normalizes them into a
// FilterSpec. It fails on the first invalid field and never returns a
// partially valid spec.
func BuildFilterSpec(c FilterCriteria) (FilterSpec, error) {
	var spec FilterSpec

	if c.From == "" {
		return spec, &ValidationError{Field: "from", Reason: "date range is required"}
	}
	from, err := time.ParseInLocation(dateLayout, c.From, referenceTZ)
	if err != nil {
		return spec, &ValidationError{Field: "from", Reason: "must be a YYYY-MM-DD date"}
	}

	if c.To == "" {
		return spec, &ValidationError{Field: "to", Reason: "date range is required"}
	}
	to, err := time.ParseInLocation(dateLayout, c.To, referenceTZ)
	if err != nil {
		return spec, &ValidationError{Field: "to", Reason: "must be a YYYY-MM-DD date"}
	}

	spec.From = from
	// Widen "to" so the entire calendar day falls inside the range.
	spec.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	spec.Search = c.Search
	spec.Cuisine = c.Cuisine
	spec.Location = c.Location

	if c.MinAmount != "" {
		min, err := decimal.NewFromString(c.MinAmount)
		if err != nil {
			return spec, &ValidationError{Field: "min_amount", Reason: "must be a decimal number"}
		}
		spec.MinAmount = &min
	}

	if c.MaxAmount != "" {
		max, err := decimal.NewFromString(c.MaxAmount)
		if err != nil {
			return spec, &ValidationError{Field: "max_amount", Reason: "must be a decimal number"}
		}
		spec.MaxAmount = &max
	}

	if c.StartHour != "" {
		h, ok := parseHour(c.StartHour)
		if !ok {
			return spec, &ValidationError{Field: "start_hour", Reason: "must be an integer between 0 and 23"}
		}
		spec.StartHour = &h
	}

	if c.EndHour != "" {
		h, ok := parseHour(c.EndHour)
		if !ok {
			return spec, &ValidationError{Field: "end_hour", Reason: "must be an integer between 0 and 23"}
		}
		spec.EndHour = &h
	}

	return spec, nil
}

func parseHour(s string) (int, bool) {
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
