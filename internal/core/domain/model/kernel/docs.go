// Package kernel provides the primitives shared by the dish and order models:
// the RuleViolation error that every pipeline stage reports, and the field
// presence and numeric rules applied to client-supplied values.
package kernel
