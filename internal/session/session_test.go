package session

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func TestNew(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	defer db.Close()

	sm := New(db, true)

	if sm.Lifetime != 24*time.Hour {
		t.Errorf("Lifetime = %v; want 24h", sm.Lifetime)
	}
	if !sm.Cookie.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if sm.Cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v; want Lax", sm.Cookie.SameSite)
	}
	if sm.Cookie.Secure {
		t.Error("dev cookies should not require Secure")
	}

	if prod := New(db, false); !prod.Cookie.Secure {
		t.Error("production cookies must be Secure")
	}
}
