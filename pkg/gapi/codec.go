package gapi

import (
	"bytes"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// JSON cannot carry 64-bit integers without precision loss, so Google
// APIs quote them as decimal strings (`"format": "int64"` in
// Discovery). Int64/UInt64 bridge that wire form to native integers.
// Some services emit bare numbers for small values; unmarshalling
// accepts both.

type Int64 int64

func (i Int64) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatInt(int64(i), 10)), nil
}

func (i *Int64) UnmarshalJSON(data []byte) error {
	s, err := unquoteNumber(data)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "parse int64 %q", s)
	}
	*i = Int64(v)
	return nil
}

type UInt64 uint64

func (u UInt64) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatUint(uint64(u), 10)), nil
}

func (u *UInt64) UnmarshalJSON(data []byte) error {
	s, err := unquoteNumber(data)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "parse uint64 %q", s)
	}
	*u = UInt64(v)
	return nil
}

func unquoteNumber(data []byte) (string, error) {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		return "", nil
	}
	if len(s) >= 2 && s[0] == '"' {
		return strconv.Unquote(s)
	}
	return s, nil
}

// Time is a time.Time that marshals to the RFC 3339 UTC form Google
// APIs use for `google-datetime` fields.
type Time time.Time

func NewTime(t time.Time) Time { return Time(t) }

func (t Time) Time() time.Time { return time.Time(t) }

func (t Time) IsZero() bool { return time.Time(t).IsZero() }

func (t Time) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, time.Time(t).UTC().Format(time.RFC3339Nano)), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		return nil
	}
	raw, err := strconv.Unquote(s)
	if err != nil {
		return errors.Wrapf(err, "timestamp %s is not a JSON string", s)
	}
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return errors.Wrapf(err, "parse timestamp %q", raw)
	}
	*t = Time(parsed)
	return nil
}

func (t Time) String() string {
	return time.Time(t).UTC().Format(time.RFC3339Nano)
}
