// Package keys defines stored key pairs, the queries over them, and the
// repository and service contracts of the key store.
package keys
