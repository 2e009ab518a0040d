// Package ledger implements the period-based aggregation engine of the cash book:
// period resolution, range filtering, running balances, category breakdowns,
// profit and loss figures and payroll net pay. Everything here is pure and
// operates on values already loaded from storage.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// DateLayout is the wire layout of calendar dates.
const DateLayout = "2006-01-02"

// PeriodKind names a calendar window used to scope reports.
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

var periodAliases = map[string]PeriodKind{
	"day":     PeriodDay,
	"daily":   PeriodDay,
	"week":    PeriodWeek,
	"weekly":  PeriodWeek,
	"month":   PeriodMonth,
	"monthly": PeriodMonth,
	"year":    PeriodYear,
	"yearly":  PeriodYear,
}

// ParsePeriodKind parses a period name. The adverbial forms (daily, weekly,
// monthly, yearly) are accepted as aliases.
func ParsePeriodKind(s string) (PeriodKind, error) {
	kind, ok := periodAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriodKind,
			fmt.Sprintf("unknown period %q", s),
			domainerror.ErrInvalidPeriodKind,
		)
	}
	return kind, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil || !d.IsValid() {
		return civil.Date{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReferenceDate,
			fmt.Sprintf("invalid date %q", s),
			domainerror.ErrInvalidReferenceDate,
		)
	}
	return d, nil
}

// ParseWeekday parses an English weekday name such as "sunday" or "Mon".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || (len(name) >= 3 && strings.HasPrefix(full, name)) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start civil.Date
	End   civil.Date
}

// Contains reports whether d lies within the range, both ends included.
func (r DateRange) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Label renders the range for report headers.
func (r DateRange) Label() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return r.Start.String() + " to " + r.End.String()
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	return r.End.DaysSince(r.Start) + 1
}

// ResolvePeriod computes the inclusive range of the given kind that contains ref.
// Weeks begin on weekStart.
func ResolvePeriod(kind PeriodKind, ref civil.Date, weekStart time.Weekday) (DateRange, error) {
	if !ref.IsValid() {
		return DateRange{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReferenceDate,
			fmt.Sprintf("invalid reference date %s", ref),
			domainerror.ErrInvalidReferenceDate,
		)
	}

	switch kind {
	case PeriodDay:
		return DateRange{Start: ref, End: ref}, nil
	case PeriodWeek:
		weekday := ref.In(time.UTC).Weekday()
		back := (int(weekday) - int(weekStart) + 7) % 7
		start := ref.AddDays(-back)
		return DateRange{Start: start, End: start.AddDays(6)}, nil
	case PeriodMonth:
		start := civil.Date{Year: ref.Year, Month: ref.Month, Day: 1}
		end := civil.Date{Year: ref.Year, Month: ref.Month, Day: daysIn(ref.Year, ref.Month)}
		return DateRange{Start: start, End: end}, nil
	case PeriodYear:
		return DateRange{
			Start: civil.Date{Year: ref.Year, Month: time.January, Day: 1},
			End:   civil.Date{Year: ref.Year, Month: time.December, Day: 31},
		}, nil
	default:
		return DateRange{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriodKind,
			fmt.Sprintf("unknown period %q", kind),
			domainerror.ErrInvalidPeriodKind,
		)
	}
}

// daysIn returns the length of the month, leap years included.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
