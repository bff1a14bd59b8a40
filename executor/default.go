//go:build !robotgo

package executor

func NewDefaultExecutor() *LocalExecutor {
	return NewDryRunExecutor()
}
