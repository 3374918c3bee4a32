// Package cli implements the orderq command-line interface.
//
// # Overview
//
// orderq is a thin front-end over pkg/orders. It turns flags into QueryBuilder
// calls, reports the first rejected value, and prints the resulting request
// parameters. It performs no network calls.
//
// # Commands
//
// filter - Build a search filter:
//
//	orderq filter --fulfillment-status "awaiting_processing processing" --created-from 2015-04-22 --limit 100
//
// Status flags may be repeated; repeated values accumulate. Every other flag
// overwrites. --param key=value adds arbitrary parameters.
//
// guard - Check a bulk status update:
//
//	orderq guard --legacy --payment-status paid --new-status SHIPPED
//
// Runs the same filter flags, then rejects the update if the filter contains
// nothing but limit/offset or if no new status is given.
//
// batch - Build every filter in a definitions file:
//
//	orderq batch -f filters.yaml --fail-fast -t json
//
// Definitions are built concurrently; the report lists each filter's
// parameters or rejection in file order.
//
// statuses - List accepted statuses:
//
//	orderq statuses [--legacy]
//
// # Output Formats
//
//	--format, -t   yaml (default), json, table, query
//	--output, -o   Output file path (default: stdout)
//
// # Environment Variables
//
//	LOG_LEVEL      Set logging verbosity (debug, info, warn, error)
//	ORDERQ_FORMAT  Default output format
//	ORDERQ_OUTPUT  Default output path
//
// # Exit Codes
//
//	0  Success
//	1  Invalid filter value or execution failure
package cli
