package system

import (
	"errors"
	"fmt"

	"github.com/jmallicoat/tally/internal/cli"
	"github.com/jmallicoat/tally/internal/keyring"
	"github.com/jmallicoat/tally/internal/storage/postgres"
)

type ConfigCmd struct {
	Set   ConfigSetCmd   `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
	Get   ConfigGetCmd   `cmd:"" help:"Show whether a connection string is stored."`
	Clear ConfigClearCmd `cmd:"" help:"Remove the stored connection string."`
}

type ConfigSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string (credentials allowed here; it is stored in the OS keyring, never on disk)."`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	// The keyring copy may carry a password; only plain-text config paths
	// are forbidden from doing so. Still validate the overall format.
	if err := postgres.ValidateConnString(c.ConnectionString); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return err
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type ConfigGetCmd struct{}

func (c *ConfigGetCmd) Run(ctx *cli.Context) error {
	if _, err := keyring.GetConnectionString(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	// Never echo the stored string; it may contain a password.
	fmt.Println("A connection string is stored in the OS keyring.")
	return nil
}

type ConfigClearCmd struct{}

func (c *ConfigClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
