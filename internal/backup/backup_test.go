package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jmallicoat/tally/internal/constants"
)

// seedDatabase creates a small tally database with one habit and one entry.
func seedDatabase(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tally.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE habits (id TEXT PRIMARY KEY, name TEXT NOT NULL);
		CREATE TABLE habit_entries (id TEXT PRIMARY KEY, habit_id TEXT, day TEXT);
		INSERT INTO habits VALUES ('h1', 'Meditate');
		INSERT INTO habit_entries VALUES ('e1', 'h1', '2024-01-07');
	`)
	if err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := seedDatabase(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}

	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to query backup database: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 habit in backup, got %d", count)
	}
}

func TestCreateBackup_MissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected CreateBackup to fail for a missing database")
	}
}

func TestCreateBackup_UniqueFilenames(t *testing.T) {
	dbPath := seedDatabase(t)
	mgr := NewManager(dbPath)

	// Back-to-back backups land in the same minute; names must still be
	// unique.
	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct backup paths, both were %s", first)
	}
}

func TestListBackups(t *testing.T) {
	dbPath := seedDatabase(t)
	mgr := NewManager(dbPath)

	// Empty (and nonexistent) backup dir lists cleanly.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups yet, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	// Unrelated files in the backup dir are ignored.
	if err := os.WriteFile(filepath.Join(mgr.BackupDir(), "notes.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("expected 2 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s reports zero size", b.Path)
		}
	}
}

func TestRestore(t *testing.T) {
	dbPath := seedDatabase(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live database after the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("DELETE FROM habits"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected the deleted habit restored, got %d rows", count)
	}
}

func TestRestore_RejectsCorruptBackup(t *testing.T) {
	dbPath := seedDatabase(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), constants.BackupFilePrefix+"bogus"+constants.BackupFileSuffix)
	if err := os.WriteFile(bogus, []byte("this is not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(bogus); err == nil {
		t.Error("expected Restore to reject a corrupt backup")
	}
}

func TestRestore_MissingBackup(t *testing.T) {
	mgr := NewManager(seedDatabase(t))
	if err := mgr.Restore(filepath.Join(t.TempDir(), "absent.db")); err == nil {
		t.Error("expected Restore to fail for a missing backup")
	}
}
