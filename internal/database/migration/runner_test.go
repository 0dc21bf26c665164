package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_OrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__add_indexes.sql": {Data: []byte("CREATE INDEX idx ON t (c);")},
		"V1__init.sql":        {Data: []byte("CREATE TABLE t (c INT);")},
		"embed.go":            {Data: []byte("package migrations")},
		"notes.txt":           {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(fsys)
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("got %d migrations, want 2", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("versions = %d, %d", migs[0].Version, migs[1].Version)
	}
	if migs[0].Name != "init" {
		t.Fatalf("name = %q", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatal("checksums should be distinct and non-empty")
	}
}

func TestLoadMigrations_RejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	})
	if err == nil {
		t.Fatal("duplicate versions should fail")
	}

	_, err = loadMigrations(fstest.MapFS{
		"V1__empty.sql": {Data: []byte("   \n")},
	})
	if err == nil {
		t.Fatal("empty migration should fail")
	}
}
