// Package models contains GORM database models for the infrastructure layer.
// They are kept apart from the domain entities they map to.
package models
