// Package orders builds validated parameter sets for order search requests.
//
// A QueryBuilder owns an ordered Params bag. Each setter validates its input
// with pkg/status or pkg/normalize and then merges the result:
//
//   - Status setters accumulate: the new tokens are unioned with any already
//     stored under the same key and re-joined with commas.
//   - Every other setter overwrites the previous value.
//   - Range helpers (WithTotals, WithCreated, WithUpdated) validate both
//     endpoints before writing either one.
//
// Usage:
//
//	params, err := orders.NewQueryBuilder().
//	    WithFulfillmentStatus("awaiting_processing").
//	    WithFulfillmentStatus("processing").
//	    WithCreated("2015-04-22", "2015-04-30 23:59:59").
//	    WithLimit(100).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	// params.String() == "createdFrom=...&fulfillmentStatus=AWAITING_PROCESSING%2CPROCESSING&..."
//
// Each setter is evaluated independently. A rejected value never reaches the
// parameters; its error is recorded and Build returns the first one until
// ClearErr is called. Params are handed to a transport as a detached
// snapshot, so the builder stays usable afterwards.
//
// Rejections are counted in the orderquery_validation_failures_total
// Prometheus counter, labeled by error category.
package orders
