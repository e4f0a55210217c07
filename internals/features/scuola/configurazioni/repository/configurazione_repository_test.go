package repository

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/scuola/configurazioni/model"
	"giuaschool_backend/internals/helpers/dbtest"
)

func TestGiorniSettimana(t *testing.T) {
	got := GiorniSettimana(" 0, 6,x,9")
	want := map[int]bool{0: true, 6: true}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GiorniSettimana = %v", got)
	}
	if len(GiorniSettimana("")) != 0 {
		t.Fatalf("empty list should give no days")
	}
}

func TestParametroQuery(t *testing.T) {
	db := dbtest.DryRun(t)
	sql := dbtest.SQL(db, func(tx *gorm.DB) *gorm.DB {
		var v string
		return tx.Model(&model.ConfigurazioneModel{}).Select("valore").Where("parametro = ?", "anno_inizio").Take(&v)
	})
	for _, part := range []string{`SELECT valore FROM "gs_configurazione"`, `parametro = 'anno_inizio'`} {
		if !strings.Contains(sql, part) {
			t.Fatalf("sql %q missing %q", sql, part)
		}
	}
}

func TestImpostaParametroUpsert(t *testing.T) {
	db := dbtest.DryRun(t)
	if err := ImpostaParametro(context.Background(), db, "SCUOLA", "anno_scolastico", "2024/2025"); err != nil {
		t.Fatalf("ImpostaParametro: %v", err)
	}
	sql := dbtest.SQL(db, func(tx *gorm.DB) *gorm.DB {
		row := model.ConfigurazioneModel{Categoria: "SCUOLA", Parametro: "anno_scolastico", Valore: "2024/2025"}
		return tx.Clauses(upsertValore()).Create(&row)
	})
	for _, part := range []string{`INSERT INTO "gs_configurazione"`, `ON CONFLICT ("parametro") DO UPDATE SET "valore"="excluded"."valore"`} {
		if !strings.Contains(sql, part) {
			t.Fatalf("sql %q missing %q", sql, part)
		}
	}
}
