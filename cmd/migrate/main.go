// Command migrate renders the addresses schema from configuration and
// applies it to PostgreSQL. With -print it only dumps the DDL.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"addrbook/config"
	"addrbook/internal/infra/persistence/schema"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	printOnly := flag.Bool("print", false, "print the DDL without executing it")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("load config failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	statements, err := schema.Statements(cfg.Address)
	if err != nil {
		logger.Error("render schema failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *printOnly {
		for _, statement := range statements {
			fmt.Println(statement + ";")
		}

		return
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("connect PostgreSQL failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := schema.Apply(db, cfg.Address); err != nil {
		logger.Error("apply schema failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("schema applied",
		slog.String("table", cfg.Address.TableName),
		slog.Int("statements", len(statements)),
	)
}
