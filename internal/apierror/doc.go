// Package apierror provides error inspection for failures talking to the
// Context7 API. It centralizes the mapping from HTTP statuses and transport
// errors to the categories the CLI reports, plus a one-line hint per category.
package apierror
