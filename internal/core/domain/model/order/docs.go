// Package order provides the Order aggregate: a delivery address, a contact
// number, a non-empty list of dish lines and a lifecycle status.
//
// Status values:
//
//	pending ──> preparing ──> out-for-delivery ──> delivered
//
// Any non-delivered value may be written over any other through an update;
// delivered is terminal and cannot be requested through an update either.
// Only pending orders can be deleted.
//
// Rule functions (RequireField, ParseLines, CheckIDMatchesRoute,
// CheckRequestedStatus, NotFoundError) return kernel.RuleViolation values
// used directly as pipeline stage results.
package order
