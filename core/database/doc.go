// Package database handles connections to the desired-state database.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration. The desired-state
// database is the declarative configuration source: integration packages define
// models (usergroups, artifacts) and load their declared state from here.
//
// # Connect
//
// The Connect function establishes a connection with sane pool settings and
// DSN-level timeouts, and verifies it with a ping before returning.
//
// # Migrate
//
// Migrate applies the schema for the desired-state models via AutoMigrate.
// Each feature passes its own models at startup.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.Migrate(db, &models.Usergroup{}, &models.Artifact{})
package database
