package migration

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

// DefaultSourceURL points to the migrations directory relative to the working directory
const DefaultSourceURL = "file://migrations"

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the cobra command for running migrations
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migrations",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(DefaultSourceURL, dsn).Up())
			},
		},
		&cobra.Command{
			Use:   "down [n]",
			Short: "apply n down migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid number of steps: %q", args[0])
				}
				return ignoreNoChange(newMigrate(DefaultSourceURL, dsn).Steps(-n))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "set version without running migrations, to recover from a dirty state",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version: %q", args[0])
				}
				return newMigrate(DefaultSourceURL, dsn).Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current migration version",
			RunE: func(cmd *cobra.Command, args []string) error {
				version, dirty, err := newMigrate(DefaultSourceURL, dsn).Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("VERSION: none")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println("VERSION:", version, "DIRTY:", dirty)
				return nil
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting drops everything then applies all migrations in rootDir/migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate("file://"+filepath.Join(rootDir, "migrations"), dsn)
	err := m.Drop()
	if err != nil {
		panic(err)
	}

	m = newMigrate("file://"+filepath.Join(rootDir, "migrations"), dsn)
	err = ignoreNoChange(m.Up())
	if err != nil {
		panic(err)
	}
}
