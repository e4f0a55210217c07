package model

import (
	"errors"
	"testing"

	helper "giuaschool_backend/internals/helpers"
)

func TestSpidValidate(t *testing.T) {
	s := SpidModel{
		Idp:              "https://id.lepida.it/idp/shibboleth",
		ResponseID:       "_a1b2c3",
		AttrName:         "Maria",
		AttrFamilyName:   "Rossi",
		AttrFiscalNumber: "TINIT-RSSMRA80A41B354X",
		LogoutURL:        "https://id.lepida.it/idp/profile/SAML2/Redirect/SLO",
		Stato:            SpidAutenticato,
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	s.Stato = "X"
	var verrs helper.ValidationErrors
	if err := s.Validate(); !errors.As(err, &verrs) || !verrs.Has("stato", "field.choice") {
		t.Fatalf("stato X: %v", err)
	}
}
