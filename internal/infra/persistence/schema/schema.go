// Package schema renders the addresses DDL from the address configuration.
// The configuration is the single source of truth: the same flag list drives
// the boolean columns here and the per-flag rules in validation.
package schema

import (
	"fmt"
	"strings"

	"addrbook/config"
	"addrbook/internal/domain/entity"
	"addrbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Statements renders the DDL for the configured addresses table.
func Statements(cfg *config.AddressConfig) ([]string, error) {
	for _, flag := range cfg.Flags {
		if !model.SupportedFlag(flag) {
			return nil, errors.Errorf("configured flag %q has no model column; extend the address model first", flag)
		}
	}

	table := cfg.TableName

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	b.WriteString("    id BIGSERIAL PRIMARY KEY,\n")
	b.WriteString("    external_id UUID,\n")
	b.WriteString("    owner_type VARCHAR(255),\n")
	b.WriteString("    owner_id BIGINT,\n")
	b.WriteString("    label VARCHAR(150),\n")
	b.WriteString("    given_name VARCHAR(150),\n")
	b.WriteString("    family_name VARCHAR(150),\n")
	b.WriteString("    organization VARCHAR(150),\n")
	b.WriteString("    street VARCHAR(255),\n")
	b.WriteString("    street_extra VARCHAR(255),\n")
	b.WriteString("    city VARCHAR(150),\n")
	b.WriteString("    province VARCHAR(150),\n")
	b.WriteString("    post_code VARCHAR(150),\n")
	b.WriteString("    country_code VARCHAR(2),\n")
	b.WriteString("    extra JSONB,\n")
	b.WriteString("    latitude DECIMAL(10,7),\n")
	b.WriteString("    longitude DECIMAL(10,7),\n")
	for _, flag := range cfg.Flags {
		fmt.Fprintf(&b, "    %s BOOLEAN NOT NULL DEFAULT FALSE,\n", entity.FlagColumn(flag))
	}
	b.WriteString("    created_at TIMESTAMPTZ,\n")
	b.WriteString("    updated_at TIMESTAMPTZ,\n")
	b.WriteString("    deleted_at TIMESTAMPTZ\n")
	b.WriteString(")")

	statements := []string{
		b.String(),
		fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_external_id ON %s (external_id)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_on_owner ON %s (owner_type, owner_id)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_deleted_at ON %s (deleted_at)", table, table),
	}

	for _, flag := range cfg.Flags {
		column := entity.FlagColumn(flag)
		statements = append(statements,
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)", table, column, table, column))
	}

	return statements, nil
}

// Apply executes the rendered DDL against the database.
func Apply(db *gorm.DB, cfg *config.AddressConfig) error {
	statements, err := Statements(cfg)
	if err != nil {
		return err
	}

	for _, statement := range statements {
		if err := db.Exec(statement).Error; err != nil {
			return errors.Wrapf(err, "execute migration statement %q", statement)
		}
	}

	return nil
}
