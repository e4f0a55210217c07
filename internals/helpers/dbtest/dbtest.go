// Package dbtest opens a Postgres-dialect gorm handle that never touches a
// server, so repository tests can assert on the generated SQL.
package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const dsn = "host=127.0.0.1 port=5432 user=giua dbname=giua_test sslmode=disable"

func open(t testing.TB, l gormLogger.Interface) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 l,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func DryRun(t testing.TB) *gorm.DB {
	t.Helper()
	return open(t, gormLogger.Default.LogMode(gormLogger.Silent))
}

// SQL renders the statement built by fn with its arguments inlined.
func SQL(db *gorm.DB, fn func(tx *gorm.DB) *gorm.DB) string {
	return db.ToSQL(fn)
}

// Recorder collects every statement a dry-run handle would have executed.
type Recorder struct {
	mu   sync.Mutex
	stmt []string
}

// Capture returns a dry-run handle that records its statements.
func Capture(t testing.TB) (*gorm.DB, *Recorder) {
	t.Helper()
	r := &Recorder{}
	return open(t, r), r
}

func (r *Recorder) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.stmt...)
}

// Find returns the first statement containing all parts, or "".
func (r *Recorder) Find(parts ...string) string {
	for _, s := range r.Statements() {
		ok := true
		for _, p := range parts {
			if !strings.Contains(s, p) {
				ok = false
				break
			}
		}
		if ok {
			return s
		}
	}
	return ""
}

func (r *Recorder) LogMode(gormLogger.LogLevel) gormLogger.Interface { return r }

func (r *Recorder) Info(context.Context, string, ...interface{})  {}
func (r *Recorder) Warn(context.Context, string, ...interface{})  {}
func (r *Recorder) Error(context.Context, string, ...interface{}) {}

func (r *Recorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.stmt = append(r.stmt, sql)
	r.mu.Unlock()
}
