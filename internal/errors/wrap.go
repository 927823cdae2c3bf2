package errors

import (
	"errors"
	"log/slog"
	"runtime"
)

// Wrap annotates err with a message and optional slog attributes for logging.
//
// The returned error matches err with errors.Is and errors.As.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	var pcs [1]uintptr
	// Skip runtime.Callers and this function.
	runtime.Callers(2, pcs[:])
	wrapper := AnnotatedError{
		msg:   msg,
		pc:    pcs[0],
		attrs: attrs,
	}
	return wrapper.Wrap(err)
}

// SlogError formats the error as a [slog.Attr] for structured logging.
//
// The full message chain is always included. If the chain contains an
// AnnotatedError, its source location and attributes are included as well.
func SlogError(err error) slog.Attr {
	var annotated AnnotatedError
	if As(err, &annotated) {
		return slog.Attr{Key: "error", Value: slog.GroupValue(
			slog.String("msg", err.Error()),
			slog.Attr{Key: "annotations", Value: annotated.LogValue()},
		)}
	}
	return slog.String("error", err.Error())
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
