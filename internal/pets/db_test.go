package pet

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const petsSchema = `
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
	if err := conn.Exec(petsSchema).Error; err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return conn
}
