package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/professionals-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Reference catalogs
		&types.CountryCode{},
		&types.Currency{},
		&types.Language{},
		&types.TimeZone{},
		&types.Profession{},
		&types.Service{},

		// Professional aggregate
		&types.Professional{},
		&types.ProfessionalAddress{},
		&types.ProfessionalProfession{},
		&types.ProfessionalService{},
	)
}

// EnsureProfessionalIndexes adds the constraints AutoMigrate cannot express.
func EnsureProfessionalIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_professional_address_default
		ON professional_address(professional_id)
		WHERE is_default;
	`).Error; err != nil {
		return fmt.Errorf("create ux_professional_address_default: %w", err)
	}
	if db.Dialector.Name() != DriverPostgres {
		return nil
	}
	for _, fk := range referenceForeignKeys {
		if err := ensureForeignKey(db, fk); err != nil {
			return err
		}
	}
	return nil
}

type foreignKey struct {
	name     string
	table    string
	column   string
	refTable string
	onDelete string
}

var referenceForeignKeys = []foreignKey{
	{"fk_professional_currency", "professional", "currency_id", "currency", "RESTRICT"},
	{"fk_professional_phone_country_code", "professional", "phone_country_code_id", "country_code", "RESTRICT"},
	{"fk_professional_preferred_language", "professional", "preferred_language_id", "language", "RESTRICT"},
	{"fk_professional_time_zone", "professional", "time_zone_id", "time_zone", "RESTRICT"},
	{"fk_professional_address_country", "professional_address", "country_id", "country_code", "RESTRICT"},
	{"fk_professional_profession_profession", "professional_profession", "profession_id", "profession", "CASCADE"},
	{"fk_professional_service_service", "professional_service", "service_id", "service", "CASCADE"},
}

func ensureForeignKey(db *gorm.DB, fk foreignKey) error {
	stmt := fmt.Sprintf(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
				ALTER TABLE %s ADD CONSTRAINT %s
				FOREIGN KEY (%s) REFERENCES %s(id) ON DELETE %s;
			END IF;
		END $$;
	`, fk.name, fk.table, fk.name, fk.column, fk.refTable, fk.onDelete)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create %s: %w", fk.name, err)
	}
	return nil
}
