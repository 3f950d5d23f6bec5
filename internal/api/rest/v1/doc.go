// Package v1 exposes the key store over HTTP with gin.
package v1
