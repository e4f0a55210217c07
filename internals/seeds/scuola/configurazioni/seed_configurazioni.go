package configurazioni

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"giuaschool_backend/internals/features/scuola/configurazioni/model"
)

type ConfigurazioneSeed struct {
	Categoria   string `json:"categoria"`
	Parametro   string `json:"parametro"`
	Descrizione string `json:"descrizione"`
	Valore      string `json:"valore"`
	Gestito     bool   `json:"gestito"`
}

// SeedConfigurazioniFromJSON inserts the parameters of filePath that are not
// stored yet. Existing values are never overwritten.
func SeedConfigurazioniFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("[SEED] 📥 Lettura file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("lettura %s: %w", filePath, err)
	}
	var seeds []ConfigurazioneSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decodifica %s: %w", filePath, err)
	}

	var esistenti []string
	if err := db.Model(&model.ConfigurazioneModel{}).Pluck("parametro", &esistenti).Error; err != nil {
		return 0, err
	}
	presenti := make(map[string]bool, len(esistenti))
	for _, p := range esistenti {
		presenti[p] = true
	}

	var nuovi []model.ConfigurazioneModel
	for _, s := range seeds {
		if presenti[s.Parametro] {
			log.Printf("[SEED] ℹ️ Parametro '%s' già presente, saltato.", s.Parametro)
			continue
		}
		c := model.ConfigurazioneModel{
			Categoria:   s.Categoria,
			Parametro:   s.Parametro,
			Descrizione: s.Descrizione,
			Valore:      s.Valore,
			Gestito:     s.Gestito,
		}
		if err := c.Validate(); err != nil {
			return 0, fmt.Errorf("parametro %q: %w", s.Parametro, err)
		}
		presenti[s.Parametro] = true
		nuovi = append(nuovi, c)
	}

	if len(nuovi) == 0 {
		log.Println("[SEED] ℹ️ Nessun parametro nuovo.")
		return 0, nil
	}
	if err := db.Create(&nuovi).Error; err != nil {
		return 0, err
	}
	log.Printf("[SEED] ✅ Inseriti %d parametri", len(nuovi))
	return len(nuovi), nil
}
