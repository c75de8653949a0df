// Command chronicle cleans raw smartphone app-usage exports into an
// analysis-ready session table.
package main
