// Package storage provides persistent storage functionality for pantrychef.
// It uses BadgerDB as the embedded key-value database. Every entry is a single
// JSON document that is replaced as a whole on each write.
package storage
