package pendingpet

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSchema = `
CREATE TABLE pending_pets (
    id text PRIMARY KEY,
    breed text NOT NULL,
    age integer NOT NULL DEFAULT 0,
    gender text,
    category text,
    image_path text,
    status text NOT NULL DEFAULT 'pending',
    created_at datetime,
    updated_at datetime
);
CREATE TABLE pets (
    id text PRIMARY KEY,
    name text NOT NULL,
    breed text NOT NULL,
    age integer NOT NULL DEFAULT 0,
    gender text NOT NULL DEFAULT 'U',
    category text,
    image_url text,
    status text NOT NULL DEFAULT 'available',
    shelter_id integer NOT NULL DEFAULT 1,
    version integer NOT NULL DEFAULT 0,
    created_at datetime,
    updated_at datetime
);`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.Exec(testSchema).Error; err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return conn
}

// testTxRunner satisfies the service's transaction dependency with plain GORM
// transactions over the sqlite test database.
type testTxRunner struct {
	db *gorm.DB
}

func (r testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
