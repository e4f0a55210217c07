package constants

// Security roles granted to each user profile.
const (
	RoleUtente         = "ROLE_UTENTE"
	RoleAlunno         = "ROLE_ALUNNO"
	RoleGenitore       = "ROLE_GENITORE"
	RoleAta            = "ROLE_ATA"
	RoleDocente        = "ROLE_DOCENTE"
	RoleStaff          = "ROLE_STAFF"
	RolePreside        = "ROLE_PRESIDE"
	RoleAmministratore = "ROLE_AMMINISTRATORE"
)

// Single-character codes used by role/function permission lists ("D", "GN,AM", ...).
const (
	CodiceAnonimo        = "N"
	CodiceUtente         = "U"
	CodiceAlunno         = "A"
	CodiceGenitore       = "G"
	CodiceAta            = "T"
	CodiceDocente        = "D"
	CodiceStaff          = "S"
	CodicePreside        = "P"
	CodiceAmministratore = "M"
)

// Function codes appended to the role code.
const (
	FunzioneNessuna            = "N"
	FunzioneResponsabileBes    = "B"
	FunzioneRspp               = "S"
	FunzioneSegreteria         = "E"
	FunzioneMaggiorenne        = "M"
	FunzioneRappresentanteClas = "C"
	FunzioneRappresentanteIst  = "I"
	FunzioneRappresentanteProv = "P"
	FunzioneRappresentanteRSU  = "R"
)
