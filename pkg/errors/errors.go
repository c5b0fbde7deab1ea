package errorsUtils

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
)

// WrapPathErr prefixes err with the calling function and line.
func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}

func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
