package model

import (
	"gorm.io/gorm"

	sedeModel "giuaschool_backend/internals/features/scuola/sedi/model"
	"giuaschool_backend/internals/constants"
	"giuaschool_backend/internals/helpers"
)

// DocenteModel is a teacher.
type DocenteModel struct {
	UtenteModel

	ResponsabileBes       bool                 `gorm:"not null;default:false;column:responsabile_bes" json:"responsabile_bes"`
	ResponsabileBesSedeID *uint                `gorm:"index;column:responsabile_bes_sede_id" json:"responsabile_bes_sede_id,omitempty"`
	ResponsabileBesSede   *sedeModel.SedeModel `gorm:"foreignKey:ResponsabileBesSedeID;references:ID" json:"responsabile_bes_sede,omitempty" validate:"-"`
	Rspp                  bool                 `gorm:"not null;default:false;column:rspp" json:"rspp"`
}

func (d *DocenteModel) BeforeCreate(tx *gorm.DB) error {
	if d.Ruolo == "" {
		d.Ruolo = RuoloDocente
	}
	return d.UtenteModel.BeforeCreate(tx)
}

func (d *DocenteModel) Ruoli() []string {
	return []string{constants.RoleDocente, constants.RoleUtente}
}

func (d *DocenteModel) CodiceRuolo() string { return constants.CodiceDocente }

func (d *DocenteModel) CodiceFunzioni() []string {
	lista := funzioniBase(d.Rappresentante)
	if d.ResponsabileBes {
		lista = append(lista, constants.FunzioneResponsabileBes)
	}
	if d.Rspp {
		lista = append(lista, constants.FunzioneRspp)
	}
	return conNessuna(lista)
}

func (d *DocenteModel) String() string {
	titolo := "Prof. "
	if d.Sesso == SessoFemminile {
		titolo = "Prof.ssa "
	}
	return titolo + d.Cognome + " " + d.Nome
}

func (d *DocenteModel) Validate() error {
	if d.Ruolo == "" {
		d.Ruolo = RuoloDocente
	}
	d.SetDefaultValues()
	return helper.Validate(d)
}

// StaffModel is a teacher on the headmaster's staff, optionally bound to a site.
type StaffModel struct {
	DocenteModel

	SedeID *uint                `gorm:"index;column:sede_id" json:"sede_id,omitempty"`
	Sede   *sedeModel.SedeModel `gorm:"foreignKey:SedeID;references:ID" json:"sede,omitempty" validate:"-"`
}

func (s *StaffModel) BeforeCreate(tx *gorm.DB) error {
	if s.Ruolo == "" {
		s.Ruolo = RuoloStaff
	}
	return s.DocenteModel.BeforeCreate(tx)
}

func (s *StaffModel) Ruoli() []string {
	return []string{constants.RoleStaff, constants.RoleDocente, constants.RoleUtente}
}

func (s *StaffModel) CodiceRuolo() string { return constants.CodiceStaff }

func (s *StaffModel) Validate() error {
	if s.Ruolo == "" {
		s.Ruolo = RuoloStaff
	}
	s.SetDefaultValues()
	return helper.Validate(s)
}

// PresideModel is the headmaster.
type PresideModel struct {
	StaffModel
}

func (p *PresideModel) BeforeCreate(tx *gorm.DB) error {
	if p.Ruolo == "" {
		p.Ruolo = RuoloPreside
	}
	return p.StaffModel.BeforeCreate(tx)
}

func (p *PresideModel) Ruoli() []string {
	return []string{constants.RolePreside, constants.RoleStaff, constants.RoleDocente, constants.RoleUtente}
}

func (p *PresideModel) CodiceRuolo() string { return constants.CodicePreside }

func (p *PresideModel) Validate() error {
	if p.Ruolo == "" {
		p.Ruolo = RuoloPreside
	}
	p.SetDefaultValues()
	return helper.Validate(p)
}
