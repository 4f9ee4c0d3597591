package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"

	"frontdesk/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

var errUnknownAction = errors.New("unknown migration action")

var actions = map[string]func(*migrate.Migrate) error{
	"up":      (*migrate.Migrate).Up,
	"down":    func(mig *migrate.Migrate) error { return mig.Steps(-1) },
	"step-up": func(mig *migrate.Migrate) error { return mig.Steps(1) },
	"drop":    (*migrate.Migrate).Down,
}

// Actions lists the names Run accepts.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// DatabaseURL builds the write-side DSN golang-migrate connects with.
func DatabaseURL(cfg *config.Config) string {
	pg := cfg.DB.Postgres
	query := url.Values{}

	if pg.Write.SSLMode != "" {
		query.Set("sslmode", pg.Write.SSLMode)
	}

	if pg.MigrationTable != "" {
		query.Set("x-migrations-table", pg.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Write.Username, pg.Write.Password),
		Host:     net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		Path:     pg.Prefix + pg.Write.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Run applies action against the schema. Having nothing to migrate is not an error.
func Run(cfg *config.Config, action string) error {
	apply, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w %q, use one of %s", errUnknownAction, action, strings.Join(Actions(), ", "))
	}

	mig, err := migrate.New(migrationsSource, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}
	defer mig.Close()

	if err := apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, "up")
}
