package model

import (
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type StatoSpid string

const (
	SpidAutenticato StatoSpid = "A"
	SpidLoggato     StatoSpid = "L"
	SpidErrore      StatoSpid = "E"
)

// SpidModel stores the attributes returned by a SPID identity provider.
type SpidModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Idp              string    `gorm:"type:varchar(255);not null;column:idp" json:"idp" validate:"notblank,max=255"`
	ResponseID       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_spid_response_id;column:response_id" json:"response_id" validate:"notblank,max=255"`
	AttrName         string    `gorm:"type:varchar(255);not null;column:attr_name" json:"attr_name" validate:"notblank,max=255"`
	AttrFamilyName   string    `gorm:"type:varchar(255);not null;column:attr_family_name" json:"attr_family_name" validate:"notblank,max=255"`
	AttrFiscalNumber string    `gorm:"type:varchar(32);not null;column:attr_fiscal_number" json:"attr_fiscal_number" validate:"notblank,max=32"`
	LogoutURL        string    `gorm:"type:varchar(255);not null;column:logout_url" json:"logout_url" validate:"notblank,max=255"`
	Stato            StatoSpid `gorm:"type:varchar(1);not null;column:stato" json:"stato" validate:"oneof=A L E"`
}

func (SpidModel) TableName() string { return "gs_spid" }

func (s SpidModel) String() string {
	return s.Idp + ": " + s.AttrName + " " + s.AttrFamilyName
}

func (s *SpidModel) Validate() error { return helper.Validate(s) }
