package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/zakerai/zaker-web/internal/pkg/env"
)

const usage = `usage: migrate <command>

  up          apply pending migrations
  down        roll back one migration
  goto N      migrate to version N
  force N     mark version N as clean after a failed run
  status      print the current version`

func main() {
	env.SetupEnvFile()

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	m, err := migrate.New("file://"+env.GetEnv("MIGRATIONS_PATH", "migrations"), databaseURL())
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	defer m.Close()

	msg, err := run(m, os.Args[1:])
	if err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
	log.Println(msg)
}

func databaseURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		env.GetEnv("DB_USER", "zaker"),
		env.GetEnv("DB_PASSWORD", "zaker"),
		env.GetEnv("DB_HOST", "db"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", "zaker_web"),
	)
}

// migrator is the part of *migrate.Migrate the commands use.
type migrator interface {
	Up() error
	Steps(n int) error
	Migrate(version uint) error
	Force(version int) error
	Version() (uint, bool, error)
}

func run(m migrator, args []string) (string, error) {
	switch args[0] {
	case "up":
		return outcome(m.Up(), "migrations applied")
	case "down":
		return outcome(m.Steps(-1), "rolled back one migration")
	case "goto":
		v, err := versionArg(args)
		if err != nil {
			return "", err
		}
		return outcome(m.Migrate(v), fmt.Sprintf("at version %d", v))
	case "force":
		v, err := versionArg(args)
		if err != nil {
			return "", err
		}
		return outcome(m.Force(int(v)), fmt.Sprintf("forced version %d", v))
	case "status":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return "no migrations applied", nil
		}
		if err != nil {
			return "", err
		}
		if dirty {
			return fmt.Sprintf("version %d (dirty)", v), nil
		}
		return fmt.Sprintf("version %d", v), nil
	}
	return "", fmt.Errorf("unknown command %q\n%s", args[0], usage)
}

func outcome(err error, done string) (string, error) {
	if errors.Is(err, migrate.ErrNoChange) {
		return "no change", nil
	}
	if err != nil {
		return "", err
	}
	return done, nil
}

func versionArg(args []string) (uint, error) {
	if len(args) < 2 {
		return 0, errors.New("missing version")
	}
	v, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q", args[1])
	}
	return uint(v), nil
}
