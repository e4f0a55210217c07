package helper

import "testing"

func TestNewParamsClamps(t *testing.T) {
	p := NewParams(0, 1000, " creato ", "ASC", DefaultOpts)
	if p.Page != 1 || p.PerPage != 200 || p.SortBy != "creato" || p.SortOrder != "asc" {
		t.Fatalf("params = %+v", p)
	}
	p = NewParams(3, 0, "", "sideways", AdminOpts)
	if p.PerPage != 50 || p.SortOrder != "desc" || p.Offset() != 100 {
		t.Fatalf("params = %+v offset=%d", p, p.Offset())
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{"data": "data", "nome": "cognome, nome"}
	p := NewParams(1, 10, "nome", "asc", DefaultOpts)
	if got, _ := p.SafeOrderClause(allowed, "data"); got != "cognome, nome ASC" {
		t.Fatalf("order = %q", got)
	}
	p.SortBy = "1; DROP TABLE gs_utente"
	if got, _ := p.SafeOrderClause(allowed, "data"); got != "data ASC" {
		t.Fatalf("order = %q", got)
	}
	if _, err := p.SafeOrderClause(allowed, "manca"); err == nil {
		t.Fatalf("missing default accepted")
	}
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(51, NewParams(2, 25, "", "", DefaultOpts))
	if m.TotalPages != 3 || !m.HasNext || !m.HasPrev || *m.NextPage != 3 || *m.PrevPage != 1 {
		t.Fatalf("meta = %+v", m)
	}
	m = BuildMeta(0, NewParams(1, 25, "", "", DefaultOpts))
	if m.TotalPages != 0 || m.HasNext || m.HasPrev || m.NextPage != nil {
		t.Fatalf("empty meta = %+v", m)
	}
}
