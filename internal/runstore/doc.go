// Package runstore persists a record of every pipeline invocation in a
// local SQLite database so past runs can be listed and audited.
package runstore
