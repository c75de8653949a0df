// Package runner drives one complete cleaning run: it locks out
// concurrent invocations, loads raw data, executes the pipeline, writes
// the export, and records the outcome in the run database.
package runner
