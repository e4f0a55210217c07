package sedi

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"giuaschool_backend/internals/features/scuola/sedi/model"
)

// SeedSediFromJSON inserts the sites of filePath whose nome is not stored yet.
func SeedSediFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("[SEED] 📥 Lettura file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("lettura %s: %w", filePath, err)
	}
	var seeds []model.SedeModel
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decodifica %s: %w", filePath, err)
	}

	var esistenti []string
	if err := db.Model(&model.SedeModel{}).Pluck("nome", &esistenti).Error; err != nil {
		return 0, err
	}
	presenti := make(map[string]bool, len(esistenti))
	for _, n := range esistenti {
		presenti[n] = true
	}

	var nuove []model.SedeModel
	for _, s := range seeds {
		if presenti[s.Nome] {
			log.Printf("[SEED] ℹ️ Sede '%s' già presente, saltata.", s.Nome)
			continue
		}
		if err := s.Validate(); err != nil {
			return 0, fmt.Errorf("sede %q: %w", s.Nome, err)
		}
		presenti[s.Nome] = true
		nuove = append(nuove, s)
	}

	if len(nuove) == 0 {
		log.Println("[SEED] ℹ️ Nessuna sede nuova.")
		return 0, nil
	}
	if err := db.Create(&nuove).Error; err != nil {
		return 0, err
	}
	log.Printf("[SEED] ✅ Inserite %d sedi", len(nuove))
	return len(nuove), nil
}
