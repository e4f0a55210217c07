package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"gorm.io/gorm"

	"giuaschool_backend/internals/configs"
	appModel "giuaschool_backend/internals/features/sistema/app/model"
	"giuaschool_backend/internals/features/sistema/notifiche/model"
	"giuaschool_backend/internals/features/sistema/notifiche/repository"
	"giuaschool_backend/internals/helpers/dbtime"
)

var (
	ErrDestinatarioMancante  = errors.New("notifica senza destinatario")
	ErrDestinatarioNonValido = errors.New("destinatario non valido")
)

// Mittente delivers one queued message.
type Mittente interface {
	Invia(ctx context.Context, n model.NotificaInvioModel) error
}

/* =========================================================
   SMTP
========================================================= */

type SMTPMittente struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string

	// sendMail is swapped in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMittente reads MAILER_HOST, MAILER_PORT, MAILER_USER, MAILER_PASSWORD and MAILER_FROM.
func NewSMTPMittente() *SMTPMittente {
	return &SMTPMittente{
		Host:     configs.GetEnv("MAILER_HOST"),
		Port:     configs.GetEnv("MAILER_PORT", "587"),
		User:     configs.GetEnv("MAILER_USER"),
		Password: configs.GetEnv("MAILER_PASSWORD"),
		From:     configs.GetEnv("MAILER_FROM", "noreply@giuaschool.local"),
		sendMail: smtp.SendMail,
	}
}

func (m *SMTPMittente) Invia(ctx context.Context, n model.NotificaInvioModel) error {
	to := strings.TrimSpace(n.Destinatario())
	if to == "" {
		return ErrDestinatarioMancante
	}
	addr, err := mail.ParseAddress(to)
	if err != nil || strings.ContainsAny(to, "\r\n") {
		return fmt.Errorf("%w: %q", ErrDestinatarioNonValido, to)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Password, m.Host)
	}
	return m.sendMail(net.JoinHostPort(m.Host, m.Port), auth, m.From, []string{addr.Address}, messaggio(m.From, addr.Address, n))
}

// intestazione folds a header value onto a single line.
func intestazione(v string) string {
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool { return r == '\r' || r == '\n' }), " ")
}

func messaggio(from, to string, n model.NotificaInvioModel) []byte {
	oggetto := strings.TrimSpace(intestazione(n.Oggetto()))
	if oggetto == "" {
		oggetto = "Notifica dal registro elettronico"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", intestazione(from))
	fmt.Fprintf(&b, "To: %s\r\n", intestazione(to))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", oggetto))
	fmt.Fprintf(&b, "Date: %s\r\n", dbtime.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(n.Messaggio, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

/* =========================================================
   Batch
========================================================= */

type Esito struct {
	Inviate int
	Errate  int
	Saltate int
}

// daInviare is swapped in tests.
var daInviare = repository.DaInviare

// InviaNotifiche sends the next batch through m. Only apps that notify by
// email are handled here; messages for other channels are left queued.
func InviaNotifiche(ctx context.Context, db *gorm.DB, m Mittente) (Esito, error) {
	var esito Esito
	if err := ctx.Err(); err != nil {
		return esito, err
	}
	rows, err := daInviare(ctx, db, appModel.NotificaEmail)
	if err != nil {
		return esito, err
	}
	for _, n := range rows {
		if ctx.Err() != nil {
			return esito, ctx.Err()
		}
		if n.App == nil || n.App.Notifica != appModel.NotificaEmail {
			esito.Saltate++
			continue
		}
		if err := m.Invia(ctx, n); err != nil {
			log.Printf("[NOTIFICHE] ❌ invio %d fallito: %v", n.ID, err)
			if err := repository.Errata(ctx, db, n.ID, err.Error()); err != nil {
				return esito, err
			}
			esito.Errate++
			continue
		}
		if err := repository.Inviata(ctx, db, n.ID); err != nil {
			return esito, err
		}
		esito.Inviate++
	}
	return esito, nil
}
