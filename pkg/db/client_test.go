package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
)

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}

	client := &Client{conn: conn}

	if err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		return tx.Exec(`INSERT INTO items (name) VALUES ('kept')`).Error
	}); err != nil {
		t.Fatalf("commit tx: %v", err)
	}

	failure := errors.New("boom")
	err = client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Exec(`INSERT INTO items (name) VALUES ('discarded')`).Error; err != nil {
			return err
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected injected failure, got %v", err)
	}

	var count int64
	if err := conn.Raw(`SELECT COUNT(*) FROM items`).Scan(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected only the committed row, got %d", count)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !IsUniqueViolation(err, "") {
		t.Fatal("expected unique violation")
	}
	if !IsUniqueViolation(err, "users_email_key") {
		t.Fatal("expected constraint match")
	}
	if IsUniqueViolation(err, "other_key") {
		t.Fatal("unexpected constraint match")
	}
	if IsUniqueViolation(errors.New("plain"), "") {
		t.Fatal("plain errors are not unique violations")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(gorm.ErrRecordNotFound) {
		t.Fatal("expected not-found match")
	}
	if IsNotFound(errors.New("other")) {
		t.Fatal("unexpected not-found match")
	}
}
