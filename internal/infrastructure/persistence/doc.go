// Package persistence provides the gorm-backed key pair repository and
// the database connection used by the key store.
package persistence
