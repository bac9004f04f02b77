// Package sql contains helper functions for working with postgres.
package sql

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/hushsocial/hush/pkg/conf"
)

// Open returns a postgres database handle created using the config.
func Open(config conf.PostgresConf) (*sql.DB, error) {
	return sql.Open(
		"postgres",
		fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			config.Host, config.Port, config.User, config.Password, config.Database, config.SSL,
		),
	)
}
