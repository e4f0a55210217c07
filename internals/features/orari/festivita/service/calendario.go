package service

import (
	"time"

	"giuaschool_backend/internals/helpers/dbtime"
)

// Calendario answers "is there school on this day" for one school year.
type Calendario struct {
	Inizio time.Time
	Fine   time.Time

	// Festivi holds holiday dates as yyyy-mm-dd.
	Festivi map[string]bool
	// Riposo holds the weekly rest days, 0 = Sunday.
	Riposo map[int]bool
	// Attivita, when not nil, restricts the walk to days with class activity.
	Attivita map[string]bool
}

func chiave(d time.Time) string { return d.Format(dbtime.LayoutISOData) }

// NelPeriodo reports whether d falls within the school year bounds.
func (c *Calendario) NelPeriodo(d time.Time) bool {
	d = dbtime.TruncDay(d)
	if !c.Inizio.IsZero() && d.Before(dbtime.TruncDay(c.Inizio)) {
		return false
	}
	if !c.Fine.IsZero() && d.After(dbtime.TruncDay(c.Fine)) {
		return false
	}
	return true
}

// GiornoFestivo is true for holidays, rest weekdays and days outside the year.
func (c *Calendario) GiornoFestivo(d time.Time) bool {
	if !c.NelPeriodo(d) {
		return true
	}
	if c.Riposo[int(d.Weekday())] {
		return true
	}
	return c.Festivi[chiave(d)]
}

func (c *Calendario) valido(d time.Time) bool {
	if c.GiornoFestivo(d) {
		return false
	}
	return c.Attivita == nil || c.Attivita[chiave(d)]
}

// GiornoSuccessivo returns the next school day after d, false past the end of the year.
func (c *Calendario) GiornoSuccessivo(d time.Time) (time.Time, bool) {
	return c.cammina(d, 1)
}

// GiornoPrecedente returns the previous school day before d, false before the start of the year.
func (c *Calendario) GiornoPrecedente(d time.Time) (time.Time, bool) {
	return c.cammina(d, -1)
}

// cammina needs the bound in the walk's direction: without it there is no year to search.
func (c *Calendario) cammina(d time.Time, passo int) (time.Time, bool) {
	if (passo > 0 && c.Fine.IsZero()) || (passo < 0 && c.Inizio.IsZero()) {
		return time.Time{}, false
	}
	g := dbtime.TruncDay(d)
	for {
		g = g.AddDate(0, 0, passo)
		if !c.NelPeriodo(g) {
			return time.Time{}, false
		}
		if c.valido(g) {
			return g, true
		}
	}
}
