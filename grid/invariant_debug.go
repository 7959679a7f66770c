// +build rectpackdebug

package grid

import "fmt"

// invariant panics immediately when built with -tags rectpackdebug,
// instead of returning an error for the caller to wrap as
// AlgorithmFailure. See invariant.go for the release-build behavior.
func invariant(ok bool, format string, args ...interface{}) error {
	if !ok {
		panic(fmt.Sprintf("grid: invariant violated: "+format, args...))
	}
	return nil
}
