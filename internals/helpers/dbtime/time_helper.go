package dbtime

import (
	"log"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"

	"giuaschool_backend/internals/configs"
)

const (
	LayoutData     = "02/01/2006"
	LayoutOra      = "15:04"
	LayoutDataOra  = "02/01/2006 15:04"
	LayoutISOData  = "2006-01-02"
	defaultSchoolZ = "Europe/Rome"
)

var (
	locOnce sync.Once
	loc     *time.Location

	// nowFunc is swapped by tests that need a fixed clock.
	nowFunc = time.Now
)

// SchoolLocation returns the school's timezone, falling back to UTC when the
// zone database is missing.
func SchoolLocation() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(configs.SchoolTimezone)
		if name == "" {
			name = configs.GetEnv("SCHOOL_TIMEZONE", defaultSchoolZ)
		}
		l, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("⚠️ timezone %q not available, using UTC: %v", name, err)
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// Now is the wall clock used by every timestamp hook.
func Now() time.Time {
	return nowFunc().In(SchoolLocation())
}

// Today is the current date at midnight in the school's timezone.
func Today() time.Time {
	return TruncDay(Now())
}

func TruncDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func ToSchoolTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(SchoolLocation())
}

func ToSchoolTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToSchoolTime(*t)
	return &v
}

// Data builds a date-only column value.
func Data(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, SchoolLocation()))
}

func DataDa(t time.Time) datatypes.Date {
	return datatypes.Date(TruncDay(t))
}

func FormatData(d datatypes.Date) string {
	return time.Time(d).Format(LayoutData)
}

func FormatDataPtr(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return FormatData(*d)
}

// ParseData reads "dd/mm/yyyy" or "yyyy-mm-dd".
func ParseData(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	layout := LayoutData
	if strings.Contains(s, "-") {
		layout = LayoutISOData
	}
	t, err := time.ParseInLocation(layout, s, SchoolLocation())
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
