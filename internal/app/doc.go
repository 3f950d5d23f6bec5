// Package app implements the key store services: generating and storing
// key pairs, listing and deleting them, and transforming text with them.
package app
