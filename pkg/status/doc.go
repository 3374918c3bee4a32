// Package status validates and normalizes order status lists.
//
// Status filters arrive as free-form text such as "paid, awaiting_payment" or
// "SHIPPED DELIVERED". Validate upper-cases the input, splits it on any run of
// whitespace and commas, and checks every token against one of the fixed
// whitelists declared here:
//
//	set, err := status.Validate("awaiting_processing processing", status.Fulfillment)
//	// set.String() == "AWAITING_PROCESSING,PROCESSING"
//
// Whitelists are built once at package initialization and expose no mutators.
package status
