// Package bunstore implements job.Store using the Bun ORM with
// PostgreSQL dialect.
//
// Pass an existing *bun.DB through New (the caller owns its lifecycle),
// or let NewPostgres build one from a DSN:
//
//	import (
//	    "database/sql"
//
//	    "github.com/uptrace/bun"
//	    "github.com/uptrace/bun/dialect/pgdialect"
//	    "github.com/uptrace/bun/driver/pgdriver"
//	    bunstore "github.com/xraph/stride/store/bun"
//	)
//
//	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
//	db := bun.NewDB(sqldb, pgdialect.New())
//	store := bunstore.New(db)
//	store.Migrate(ctx)
package bunstore
