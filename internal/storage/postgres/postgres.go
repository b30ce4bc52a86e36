package postgres

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"stuffSharing/internal/config"
)

const dialectPostgres = "postgres"

type Storage struct {
	db *sqlx.DB
	qb goqu.DialectWrapper
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Connect(dialectPostgres, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{
		db: db,
		qb: goqu.Dialect(dialectPostgres),
	}

	if err = s.applySchema(); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) applySchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id    BIGSERIAL PRIMARY KEY,
			name  TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS items (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			available   BOOLEAN NOT NULL DEFAULT false,
			owner_id    BIGINT NOT NULL REFERENCES users (id),
			request_id  BIGINT
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id         BIGSERIAL PRIMARY KEY,
			start_date TIMESTAMPTZ NOT NULL,
			end_date   TIMESTAMPTZ NOT NULL,
			item_id    BIGINT NOT NULL REFERENCES items (id),
			booker_id  BIGINT NOT NULL REFERENCES users (id),
			status     TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS bookings_booker_idx ON bookings (booker_id, start_date);
		CREATE INDEX IF NOT EXISTS bookings_item_idx ON bookings (item_id, start_date);

		CREATE TABLE IF NOT EXISTS comments (
			id        BIGSERIAL PRIMARY KEY,
			text      TEXT NOT NULL,
			item_id   BIGINT NOT NULL REFERENCES items (id),
			author_id BIGINT NOT NULL REFERENCES users (id),
			created   TIMESTAMPTZ NOT NULL
		);`

	_, err := s.db.Exec(schema)

	return err
}
