package catalog

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

const carColumns = `id, name, type, price, description, image_url, horsepower, acceleration, mpg, featured`

// PostgresStore serves the catalog from Postgres. The schema and seed rows
// are provisioned at startup; the table is read-only afterwards, matching
// the memory backend.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS cars (
				id           INTEGER PRIMARY KEY,
				name         TEXT NOT NULL,
				type         TEXT NOT NULL,
				price        INTEGER NOT NULL,
				description  TEXT NOT NULL,
				image_url    TEXT NOT NULL,
				horsepower   INTEGER NOT NULL,
				acceleration TEXT NOT NULL,
				mpg          INTEGER NOT NULL,
				featured     BOOLEAN NOT NULL DEFAULT FALSE
			)
		`)
		return err
	})
}

// Seed inserts the fixed inventory, skipping ids that already exist so a
// restart does not duplicate or overwrite rows.
func (s *PostgresStore) Seed(ctx context.Context, cars []Car) error {
	for _, c := range cars {
		err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
			_, err := s.db.ExecContext(ctx, `
				INSERT INTO cars (`+carColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT (id) DO NOTHING
			`, c.ID, c.Name, c.Type, c.Price, c.Description, c.ImageURL,
				c.Horsepower, c.Acceleration, c.MPG, c.Featured)
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Car, error) {
	return s.query(ctx, `
		SELECT `+carColumns+`
		FROM cars
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) Get(ctx context.Context, id int) (Car, bool, error) {
	var c Car

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT `+carColumns+`
			FROM cars
			WHERE id = $1
		`, id).Scan(&c.ID, &c.Name, &c.Type, &c.Price, &c.Description,
			&c.ImageURL, &c.Horsepower, &c.Acceleration, &c.MPG, &c.Featured)
	})

	if err == sql.ErrNoRows {
		return Car{}, false, nil
	}
	if err != nil {
		return Car{}, false, err
	}
	return c, true, nil
}

func (s *PostgresStore) Featured(ctx context.Context) ([]Car, error) {
	return s.query(ctx, `
		SELECT `+carColumns+`
		FROM cars
		WHERE featured
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) Filter(ctx context.Context, q FilterQuery) ([]Car, error) {
	return s.query(ctx, `
		SELECT `+carColumns+`
		FROM cars
		WHERE ($1 = 'all' OR type = $1)
		  AND ($2::int IS NULL OR price >= $2)
		  AND ($3::int IS NULL OR price <= $3)
		ORDER BY id ASC
	`, string(q.Type), q.MinPrice, q.MaxPrice)
}

func (s *PostgresStore) query(ctx context.Context, sqlText string, args ...any) ([]Car, error) {
	var out []Car

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, sqlText, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Car, 0, 8)
		for rows.Next() {
			var c Car
			if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Price, &c.Description,
				&c.ImageURL, &c.Horsepower, &c.Acceleration, &c.MPG, &c.Featured); err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
