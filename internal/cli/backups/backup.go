package backups

import (
	"fmt"
	"path/filepath"

	"github.com/jmallicoat/tally/internal/backup"
	"github.com/jmallicoat/tally/internal/cli"
	"github.com/jmallicoat/tally/internal/storage/sqlite"
)

// ensureSQLiteStore rejects backup commands for non-file backends.
func ensureSQLiteStore(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return fmt.Errorf("backups are only supported with SQLite storage")
	}
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Validate(ctx *cli.Context) error {
	return ensureSQLiteStore(ctx)
}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Validate(ctx *cli.Context) error {
	return ensureSQLiteStore(ctx)
}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup filename to restore from."`
}

func (c *BackupRestoreCmd) Validate(ctx *cli.Context) error {
	return ensureSQLiteStore(ctx)
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	// Close the live database before overwriting it.
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path := c.File
	if filepath.Dir(path) == "." {
		path = filepath.Join(mgr.BackupDir(), path)
	}

	if err := mgr.Restore(path); err != nil {
		return err
	}
	fmt.Printf("Restored database from %s\n", path)
	return nil
}
