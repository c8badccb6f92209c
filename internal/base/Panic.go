package base

import (
	"fmt"
)

var LogPanicCategory = NewLogCategory("Panic")

// UnexpectedValue is reserved for switch arms that are unreachable unless an
// enum gained a value without its switches being updated.
func UnexpectedValue(x interface{}) {
	LogPanic(LogPanicCategory, "unexpected value: %v (%T)", x, x)
}

func MakeUnexpectedValueError(dst interface{}, in interface{}) error {
	return fmt.Errorf("unexpected %T value: %q", dst, in)
}

func AssertMessage(pred func() bool, msg string, args ...interface{}) {
	if !pred() {
		LogPanic(LogPanicCategory, msg, args...)
	}
}
