package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/config"
	"frontdesk/helper"
)

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "desk"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "frontdesk"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t,
		"postgres://desk:p%40ss%2Fword@db:5432/test_frontdesk?sslmode=disable&x-migrations-table=schema_migrations",
		helper.DatabaseURL(cfg),
	)
}

func TestRun_UnknownAction(t *testing.T) {
	err := helper.Run(&config.Config{}, "sideways")

	assert.ErrorContains(t, err, "unknown migration action")
	assert.Equal(t, []string{"down", "drop", "step-up", "up"}, helper.Actions())
}
