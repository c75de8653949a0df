// Package ingest reads raw app-usage export files from the collection
// directory into typed rows. It handles header mapping and file discovery
// only; all semantic cleaning belongs to the pipeline stages.
package ingest
