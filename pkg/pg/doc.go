// Package pg bootstraps the PostgreSQL layer: a pgx connection pool with
// startup retries, goose migrations, a readiness probe and helpers that
// classify *pgconn.PgError values by SQLSTATE.
//
// Configuration is read from PG_* environment variables through Config.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
//	db := pg.OpenDB(pool) // database/sql handle for query builders
//
// Error helpers such as IsDuplicateKeyError, IsForeignKeyViolationError and
// IsInvalidInputError let the datastore layer turn driver errors into
// stable codes without string matching.
package pg
