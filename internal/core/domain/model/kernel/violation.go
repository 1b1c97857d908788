package kernel

import (
	"errors"
	"fmt"
)

// Rule identifies which business rule a request broke.
type Rule int

const (
	UnknownRule Rule = iota
	MissingField
	InvalidPrice
	InvalidQuantity
	IDMismatch
	InvalidStatusValue
	ImmutableDeliveredOrder
	NotPendingOnDelete
	NotFound
)

func getRuleStrings() map[Rule]string {
	return map[Rule]string{
		UnknownRule:             "UnknownRule",
		MissingField:            "MissingField",
		InvalidPrice:            "InvalidPrice",
		InvalidQuantity:         "InvalidQuantity",
		IDMismatch:              "IdMismatch",
		InvalidStatusValue:      "InvalidStatusValue",
		ImmutableDeliveredOrder: "ImmutableDeliveredOrder",
		NotPendingOnDelete:      "NotPendingOnDelete",
		NotFound:                "NotFound",
	}
}

func (r Rule) String() string {
	if str, ok := getRuleStrings()[r]; ok {
		return str
	}
	return "UnknownRule"
}

// RuleViolation is the terminal error of a pipeline stage. Message is meant for
// the client as is; Cause carries the errs value used for classification.
type RuleViolation struct {
	Rule    Rule
	Message string
	Cause   error
}

// NewRuleViolation builds a violation whose message is produced by format and args.
func NewRuleViolation(rule Rule, cause error, format string, args ...any) *RuleViolation {
	return &RuleViolation{
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

func (v *RuleViolation) Error() string {
	return v.Message
}

func (v *RuleViolation) Unwrap() error {
	return v.Cause
}

// RuleOf extracts the violated rule from err.
func RuleOf(err error) (Rule, bool) {
	var violation *RuleViolation
	if errors.As(err, &violation) {
		return violation.Rule, true
	}
	return UnknownRule, false
}
