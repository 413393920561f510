// Package models defines the persisted records of the trusted write path.
//
// Nested structures (alliances, score breakdowns, rankings tables, alliance
// selections, recipient lists) are stored as JSON columns through gorm.io/datatypes
// so the same schema works on MySQL, Postgres and SQLite.
package models
