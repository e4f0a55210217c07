package repository

import (
	"context"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/utenti/utenti/model"
	helper "giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

/* ====================== SCOPES ====================== */

// ConRuolo restricts gs_utente rows to r and the roles that specialise it.
func ConRuolo(r model.Ruolo) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		fam := r.Famiglia()
		if len(fam) == 1 {
			return db.Where("ruolo = ?", fam[0])
		}
		return db.Where("ruolo IN ?", fam)
	}
}

func Abilitati(db *gorm.DB) *gorm.DB {
	return db.Where("abilitato = ?", true)
}

func OrdineAlfabetico(db *gorm.DB) *gorm.DB {
	return db.Order("cognome ASC").Order("nome ASC").Order("username ASC")
}

/* ====================== UTENTE ====================== */

func FindUtenteByUsername(db *gorm.DB, username string) (*model.UtenteModel, error) {
	var u model.UtenteModel
	if err := db.Where("username = ?", username).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUtenteByEmail(db *gorm.DB, email string) (*model.UtenteModel, error) {
	var u model.UtenteModel
	if err := db.Where("email = ?", email).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CaricaProfilo reads the discriminator first, then loads the row into the
// concrete role type.
func CaricaProfilo(ctx context.Context, db *gorm.DB, id uint) (model.Profilo, error) {
	var ruolo model.Ruolo
	if err := db.WithContext(ctx).
		Model(&model.UtenteModel{}).
		Select("ruolo").
		Where("id = ?", id).
		Take(&ruolo).Error; err != nil {
		return nil, err
	}
	p, err := model.NuovoProfilo(ruolo)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Where("id = ?", id).Take(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func FindDocente(db *gorm.DB, id uint) (*model.DocenteModel, error) {
	var d model.DocenteModel
	if err := db.Scopes(ConRuolo(model.RuoloDocente)).Where("id = ?", id).Take(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func FindAlunno(db *gorm.DB, id uint) (*model.AlunnoModel, error) {
	var a model.AlunnoModel
	if err := db.Scopes(ConRuolo(model.RuoloAlunno)).
		Preload("Classe").
		Where("id = ?", id).
		Take(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

/* ====================== LISTE ====================== */

// AlunniClasse lists the enabled students currently in a class.
func AlunniClasse(db *gorm.DB, classeID uint) ([]model.AlunnoModel, error) {
	var out []model.AlunnoModel
	err := db.Scopes(ConRuolo(model.RuoloAlunno), Abilitati, OrdineAlfabetico).
		Where("classe_id = ?", classeID).
		Find(&out).Error
	return out, err
}

func GenitoriAlunno(db *gorm.DB, alunnoID uint) ([]model.GenitoreModel, error) {
	var out []model.GenitoreModel
	err := db.Scopes(ConRuolo(model.RuoloGenitore), OrdineAlfabetico).
		Where("alunno_id = ?", alunnoID).
		Find(&out).Error
	return out, err
}

var ordinamentiUtenti = map[string]string{
	"cognome":        "cognome",
	"username":       "username",
	"ultimo_accesso": "ultimo_accesso",
	"creato":         "creato",
}

// ListUtenti pages over one role family. The total ignores pagination.
func ListUtenti(db *gorm.DB, ruolo model.Ruolo, p helper.Params) ([]model.UtenteModel, int64, error) {
	order, err := p.SafeOrderClause(ordinamentiUtenti, "cognome")
	if err != nil {
		return nil, 0, err
	}
	base := func() *gorm.DB {
		return db.Model(&model.UtenteModel{}).Scopes(ConRuolo(ruolo))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []model.UtenteModel
	if err := base().Order(order).Scopes(helper.Paginate(p)).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func CreateUtente(db *gorm.DB, p model.Profilo) error {
	return db.Create(p).Error
}

// RegistraAccesso stamps the last login and clears any pending reset token.
func RegistraAccesso(db *gorm.DB, u *model.UtenteModel) error {
	now := dbtime.Now()
	u.UltimoAccesso = &now
	u.CancellaToken()
	return db.Model(u).Updates(map[string]interface{}{
		"ultimo_accesso": now,
		"token":          nil,
		"token_creato":   nil,
	}).Error
}
