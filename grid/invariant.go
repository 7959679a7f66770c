// +build !rectpackdebug

package grid

import "github.com/pkg/errors"

// invariant reports a broken internal invariant as an error in release
// builds. Under the rectpackdebug build tag (invariant_debug.go) the
// same check aborts the process instead, per spec.md §7's "abort in
// debug" requirement for the jump-matrix preconditions checked in
// Split.
func invariant(ok bool, format string, args ...interface{}) error {
	if ok {
		return nil
	}
	return errors.Errorf("grid: invariant violated: "+format, args...)
}
