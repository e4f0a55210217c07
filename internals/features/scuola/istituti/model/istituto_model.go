package model

import (
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// IstitutoModel holds the school's identity. A single row is expected.
type IstitutoModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Tipo                string `gorm:"type:varchar(128);not null;column:tipo" json:"tipo" validate:"notblank,max=128"`
	TipoSigla           string `gorm:"type:varchar(16);not null;column:tipo_sigla" json:"tipo_sigla" validate:"notblank,max=16"`
	Nome                string `gorm:"type:varchar(128);not null;column:nome" json:"nome" validate:"notblank,max=128"`
	NomeBreve           string `gorm:"type:varchar(32);not null;column:nome_breve" json:"nome_breve" validate:"notblank,max=32"`
	Email               string `gorm:"type:varchar(255);not null;column:email" json:"email" validate:"notblank,max=255,email"`
	Pec                 string `gorm:"type:varchar(255);not null;column:pec" json:"pec" validate:"notblank,max=255,email"`
	UrlSito             string `gorm:"type:varchar(255);not null;column:url_sito" json:"url_sito" validate:"notblank,max=255,url"`
	UrlRegistro         string `gorm:"type:varchar(255);not null;column:url_registro" json:"url_registro" validate:"notblank,max=255,url"`
	FirmaPreside        string `gorm:"type:varchar(255);not null;column:firma_preside" json:"firma_preside" validate:"notblank,max=255"`
	EmailAmministratore string `gorm:"type:varchar(255);not null;column:email_amministratore" json:"email_amministratore" validate:"notblank,max=255,email"`
	EmailNotifiche      string `gorm:"type:varchar(255);not null;column:email_notifiche" json:"email_notifiche" validate:"notblank,max=255,email"`
}

func (IstitutoModel) TableName() string { return "gs_istituto" }

func (i IstitutoModel) String() string { return i.NomeBreve }

// Intestazione is the full heading used on printed documents.
func (i IstitutoModel) Intestazione() string { return i.Tipo + " " + i.Nome }

func (i *IstitutoModel) Validate() error { return helper.Validate(i) }
