package scoredb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidKey               = errors.New("invalid key")
	ErrInvalidValue             = errors.New("invalid value")
	ErrInvalidIndex             = errors.New("invalid index")
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrInvalidContainerAccess   = errors.New("invalid container access")
	ErrUnsupportedContainerType = errors.New("unsupported container type")

	// ErrTxNotWritable is returned when writing through a read-only transaction.
	ErrTxNotWritable = errors.New("tx not writable")
	ErrStorageClosed = errors.New("storage closed")
)

type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x", e.Msg, e.Err, n, e.Data)
		} else {
			return fmt.Sprintf("%s: (%d) %x", e.Msg, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x...%x", e.Msg, e.Err, n, p, s)
		} else {
			return fmt.Sprintf("%s: (%d) %x...%x", e.Msg, n, p, s)
		}
	}
}

// ContainerError describes a failed container operation. Err is one of the
// Err* sentinels or a storage error.
type ContainerError struct {
	Container containerTag
	Key       []byte
	Msg       string
	Err       error
}

func containerErrf(tag containerTag, key []byte, err error, format string, args ...any) error {
	return &ContainerError{tag, key, fmt.Sprintf(format, args...), err}
}

func (e *ContainerError) Unwrap() error {
	return e.Err
}

func (e *ContainerError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Container.String())
	if e.Key != nil {
		buf.WriteByte('/')
		fmt.Fprintf(&buf, "%q", e.Key)
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
		if e.Err != nil {
			buf.WriteString(": ")
			buf.WriteString(e.Err.Error())
		}
	} else if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}
