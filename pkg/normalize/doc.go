// Package normalize implements the per-field rules applied to order filter
// values before they are stored: dates, non-negative numbers, non-blank text
// and custom key/value parameters.
//
// Every function is pure. On failure it returns an INVALID_ARGUMENT
// StructuredError from pkg/errors naming the field and the rule that failed.
package normalize
