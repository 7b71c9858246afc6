package calendar

import "time"

// Gregorian is a CivilCalendar using the proleptic Gregorian calendar with a
// configurable fiscal year start month.
type Gregorian struct {
	loc        *time.Location
	fiscalFrom time.Month
	now        Clock
}

// NewGregorian creates a Gregorian calendar.
func NewGregorian(loc *time.Location, fiscalStartMonth time.Month, clock Clock) *Gregorian {
	return &Gregorian{loc: loc, fiscalFrom: fiscalStartMonth, now: clock}
}

var _ CivilCalendar = (*Gregorian)(nil)

func (g *Gregorian) Today() time.Time {
	return civilDay(g.now(), g.loc)
}

func (g *Gregorian) DaysAgo(n int) time.Time {
	return g.Today().AddDate(0, 0, -n)
}

func (g *Gregorian) FiscalYearStart() time.Time {
	today := g.Today()
	year := today.Year()
	if today.Month() < g.fiscalFrom {
		year--
	}
	return time.Date(year, g.fiscalFrom, 1, 0, 0, 0, 0, g.loc)
}

func (g *Gregorian) StartOfDay(t time.Time) time.Time {
	return dateOnly(t, g.loc)
}

func (g *Gregorian) Format(t time.Time) string {
	return t.Format("2006/01/02")
}

func (g *Gregorian) System() System {
	return SystemGregorian
}
