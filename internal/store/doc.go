// Package store persists occupancy grid snapshots in SQLite.
//
// The schema is owned by the embedded migrations in migrations/ and applied
// with golang-migrate on Open. All SQL lives in this package; the grid
// package stays free of storage concerns.
package store
