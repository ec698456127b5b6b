/**
 * @description
 * Shared validation rules for the record drafts. Each rule is a pure check
 * over draft text fields; the per-kind validators chain them in a fixed
 * priority order and stop at the first violation.
 */

package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
)

// Error is a validation failure. It is local to the client: a draft that
// fails validation never reaches the network.
type Error struct {
	Key     i18n.Key
	Message string
}

func (e *Error) Error() string { return e.Message }

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// rule is one ordered check over a draft of type D.
type rule[D any] func(D) *Error

// chain evaluates rules in order and returns the first violation.
func chain[D any](d D, rules ...rule[D]) error {
	for _, r := range rules {
		if violation := r(d); violation != nil {
			return violation
		}
	}
	return nil
}

func fail(tr i18n.Translator, key i18n.Key) *Error {
	return &Error{Key: key, Message: tr(key)}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// positiveNumber reports whether s parses as a strictly positive number.
// Monetary amounts and counts use this constraint.
func positiveNumber(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && v > 0
}

// nonNegativeNumber reports whether s parses as a number >= 0. Rates and
// percentages use this constraint.
func nonNegativeNumber(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && v >= 0
}

// positiveCount reports whether s parses as a strictly positive integer.
func positiveCount(s string) bool {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil && v > 0
}

// validDate reports whether s matches the fixed YYYY-MM-DD pattern.
func validDate(s string) bool {
	return datePattern.MatchString(strings.TrimSpace(s))
}

// selectedID reports whether s holds a record id selection.
func selectedID(s string) bool {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil && v > 0
}
