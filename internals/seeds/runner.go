package seeds

import (
	"log"

	"gorm.io/gorm"

	"giuaschool_backend/internals/seeds/scuola/configurazioni"
	"giuaschool_backend/internals/seeds/scuola/sedi"
)

func RunAllSeeds(db *gorm.DB) {

	//* Scuola
	if _, err := configurazioni.SeedConfigurazioniFromJSON(db, "internals/seeds/scuola/configurazioni/data_configurazioni.json"); err != nil {
		log.Fatalf("[SEED] ❌ Configurazioni: %v", err)
	}
	if _, err := sedi.SeedSediFromJSON(db, "internals/seeds/scuola/sedi/data_sedi.json"); err != nil {
		log.Fatalf("[SEED] ❌ Sedi: %v", err)
	}
}
