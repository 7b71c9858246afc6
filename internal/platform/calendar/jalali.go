package calendar

import (
	"fmt"
	"time"
)

// Jalali is a CivilCalendar over the Solar Hijri (Jalali) calendar. The fiscal
// year starts on 1 Farvardin. Conversions are exact for Jalali years -61..3177.
type Jalali struct {
	loc *time.Location
	now Clock
}

// NewJalali creates a Jalali calendar.
func NewJalali(loc *time.Location, clock Clock) *Jalali {
	return &Jalali{loc: loc, now: clock}
}

var _ CivilCalendar = (*Jalali)(nil)

func (j *Jalali) Today() time.Time {
	return civilDay(j.now(), j.loc)
}

// DaysAgo walks back n days on the Jalali day count and converts the result.
func (j *Jalali) DaysAgo(n int) time.Time {
	jy, jm, jd := ToJalali(j.Today())
	y, m, d := jalaliFromDay(jalaliToDay(jy, jm, jd) - n)
	return FromJalali(y, m, d, j.loc)
}

func (j *Jalali) FiscalYearStart() time.Time {
	jy, _, _ := ToJalali(j.Today())
	return FromJalali(jy, 1, 1, j.loc)
}

func (j *Jalali) StartOfDay(t time.Time) time.Time {
	return dateOnly(t, j.loc)
}

func (j *Jalali) Format(t time.Time) string {
	jy, jm, jd := ToJalali(t)
	return fmt.Sprintf("%04d/%02d/%02d", jy, jm, jd)
}

func (j *Jalali) System() System {
	return SystemJalali
}

// ToJalali converts the calendar date of t (in t's own location) to a Jalali date.
func ToJalali(t time.Time) (year, month, day int) {
	return jalaliFromDay(epochDay(t.Year(), t.Month(), t.Day()))
}

// FromJalali returns midnight in loc of the given Jalali date.
func FromJalali(year, month, day int, loc *time.Location) time.Time {
	gy, gm, gd := fromEpochDay(jalaliToDay(year, month, day))
	return time.Date(gy, gm, gd, 0, 0, 0, 0, loc)
}

// IsJalaliLeap reports whether Esfand of the given year has 30 days.
func IsJalaliLeap(year int) bool {
	return jalaliYear(year).leap == 0
}

var jalaliBreaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181,
	1210, 1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

type jalaliYearInfo struct {
	leap  int // years since the last leap year, 0 when this year is leap
	gy    int // Gregorian year in which this Jalali year starts
	march int // March day of 1 Farvardin
}

// jalaliYear locates a Jalali year within the 33-year leap cycles.
func jalaliYear(jy int) jalaliYearInfo {
	gy := jy + 621
	leapJ := -14
	jp := jalaliBreaks[0]
	jump := 0
	for i := 1; i < len(jalaliBreaks); i++ {
		jm := jalaliBreaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + (jump%33)/4
		jp = jm
	}
	n := jy - jp

	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}
	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return jalaliYearInfo{leap: leap, gy: gy, march: march}
}

// jalaliToDay converts a Jalali date to a day count since 1970-01-01.
func jalaliToDay(jy, jm, jd int) int {
	info := jalaliYear(jy)
	return epochDay(info.gy, time.March, info.march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1
}

// jalaliFromDay converts a day count since 1970-01-01 to a Jalali date.
func jalaliFromDay(day int) (int, int, int) {
	gy, _, _ := fromEpochDay(day)
	jy := gy - 621
	info := jalaliYear(jy)
	k := day - epochDay(gy, time.March, info.march)
	if k >= 0 {
		if k <= 185 {
			return jy, 1 + k/31, k%31 + 1
		}
		k -= 186
	} else {
		jy--
		k += 179
		if info.leap == 1 {
			k++
		}
	}
	return jy, 7 + k/30, k%30 + 1
}
