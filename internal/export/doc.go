// Package export writes the cleaned session table to its CSV destination.
package export
