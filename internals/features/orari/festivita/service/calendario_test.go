package service

import (
	"testing"
	"time"
)

func giorno(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func calendario() *Calendario {
	return &Calendario{
		Inizio:  giorno(time.September, 12),
		Fine:    giorno(time.December, 20),
		Festivi: map[string]bool{"2024-11-01": true},
		Riposo:  map[int]bool{0: true},
	}
}

func TestGiornoFestivo(t *testing.T) {
	c := calendario()
	cases := []struct {
		d    time.Time
		want bool
	}{
		{giorno(time.October, 31), false},
		{giorno(time.November, 1), true},  // holiday
		{giorno(time.November, 3), true},  // Sunday
		{giorno(time.November, 2), false}, // Saturday is a school day
		{giorno(time.September, 11), true},
		{giorno(time.December, 21), true},
	}
	for _, tc := range cases {
		if got := c.GiornoFestivo(tc.d); got != tc.want {
			t.Errorf("GiornoFestivo(%s) = %v, want %v", tc.d.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestGiornoSuccessivoSaltaFestivi(t *testing.T) {
	c := calendario()
	// Thursday 31/10 -> Friday 01/11 is a holiday -> Saturday 02/11.
	got, ok := c.GiornoSuccessivo(giorno(time.October, 31))
	if !ok || !got.Equal(giorno(time.November, 2)) {
		t.Fatalf("GiornoSuccessivo = %v %v", got, ok)
	}
	// Saturday 02/11 -> Sunday -> Monday 04/11.
	got, ok = c.GiornoSuccessivo(giorno(time.November, 2))
	if !ok || !got.Equal(giorno(time.November, 4)) {
		t.Fatalf("GiornoSuccessivo = %v %v", got, ok)
	}
	if _, ok := c.GiornoSuccessivo(giorno(time.December, 20)); ok {
		t.Fatalf("walked past the end of the year")
	}
}

func TestGiornoPrecedente(t *testing.T) {
	c := calendario()
	got, ok := c.GiornoPrecedente(giorno(time.November, 4))
	if !ok || !got.Equal(giorno(time.November, 2)) {
		t.Fatalf("GiornoPrecedente = %v %v", got, ok)
	}
	if _, ok := c.GiornoPrecedente(giorno(time.September, 12)); ok {
		t.Fatalf("walked before the start of the year")
	}
}

func TestAttivitaRestringeIlCammino(t *testing.T) {
	c := calendario()
	c.Attivita = map[string]bool{"2024-11-06": true}
	got, ok := c.GiornoSuccessivo(giorno(time.November, 2))
	if !ok || !got.Equal(giorno(time.November, 6)) {
		t.Fatalf("GiornoSuccessivo with activity = %v %v", got, ok)
	}
	c.Attivita = map[string]bool{}
	if _, ok := c.GiornoSuccessivo(giorno(time.November, 2)); ok {
		t.Fatalf("empty activity set should find no day")
	}
}

func TestCamminoSenzaLimiti(t *testing.T) {
	c := &Calendario{Riposo: map[int]bool{0: true}, Attivita: map[string]bool{}}
	if _, ok := c.GiornoSuccessivo(giorno(time.October, 1)); ok {
		t.Fatalf("GiornoSuccessivo without an end date found a day")
	}
	if _, ok := c.GiornoPrecedente(giorno(time.October, 1)); ok {
		t.Fatalf("GiornoPrecedente without a start date found a day")
	}

	// only the bound in the walk's direction matters
	c = &Calendario{Fine: giorno(time.December, 20)}
	got, ok := c.GiornoSuccessivo(giorno(time.October, 1))
	if !ok || !got.Equal(giorno(time.October, 2)) {
		t.Fatalf("GiornoSuccessivo = %v %v", got, ok)
	}
	if _, ok := c.GiornoPrecedente(giorno(time.October, 1)); ok {
		t.Fatalf("GiornoPrecedente walked without a start date")
	}
}
