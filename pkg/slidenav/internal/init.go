// Package internal contains shared infrastructure for slidenav: the package
// logger and the localized message catalogs.
// Types and functions in this package are not part of the public API.
package internal
