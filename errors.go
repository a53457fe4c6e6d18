package lobster

import (
	"errors"
	"fmt"
)

//Errors

// FormatError is returned whenever a LOBSTER file doesn't follow the expected layout:
// missing lines, wrong number of columns, unparsable numbers or bond headers.
// It fullfills Error and FileError.
type FormatError struct {
	message  string
	filename string //the input file that has problems, or empty string if unknown.
	line     int    //1-based, 0 if the problem isn't tied to a line.
	deco     []string
}

func (err *FormatError) Error() string {
	name := err.filename
	if name == "" {
		name = "(no name)"
	}
	if err.line > 0 {
		return fmt.Sprintf("lobster file %s error: %s (line %d)", name, err.message, err.line)
	}
	return fmt.Sprintf("lobster file %s error: %s", name, err.message)
}

// Decorate Adds new information to the error
func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the error is associated, if known.
func (err *FormatError) FileName() string { return err.filename }

// Line returns the 1-based line of the file where the problem was found, or 0.
func (err *FormatError) Line() int { return err.line }

// Message returns the error message, without file and line information.
func (err *FormatError) Message() string { return err.message }

// Format returns the format of the file associated to the error.
func (err *FormatError) Format() string { return "lobster" }

const (
	NotEnoughLines  = "Not enough lines in the file"
	BadParameters   = "Can't read the parameters line"
	BadBondHeader   = "Ill-formed bond header"
	NotEnoughCols   = "Not enough columns"
	BadNumber       = "Unparsable number"
	NoData          = "No data in the file"
	DuplicatedLabel = "Bond label appears more than once"
)

func formatErr(line int, format string, a ...interface{}) *FormatError {
	return &FormatError{message: fmt.Sprintf(format, a...), line: line}
}

// errDecorate decorates err with the caller name if it is a lobster Error,
// and, if it is a FormatError without file name, sets filename as its file.
// Other errors are returned as they are.
func errDecorate(err error, caller, filename string) error {
	var ferr *FormatError
	if errors.As(err, &ferr) && ferr.filename == "" {
		ferr.filename = filename
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
