package content

import (
	"strconv"
	"strings"
	"time"
)

// Layouts of rendered time values.
const (
	UTCLayout   = "2006-01-02 15:04:05 UTC"
	LocalLayout = "2006-01-02 15:04:05"
)

// UTCTime renders content of the form YYMMDDhhmmss as a UTC timestamp in
// [UTCLayout]. Years below 70 are in the 21st century, all others in the 20th
// century. Anything following the seconds is ignored.
func UTCTime(content []byte) (string, error) {
	t, err := ParseUTCTime(content)
	if err != nil {
		return "", err
	}
	return t.Format(UTCLayout), nil
}

// GeneralizedTime renders content of the form YYYYMMDDhhmmss[.fff][Z]. If the
// content contains a 'Z' after the seconds, the time is rendered in
// [UTCLayout]. Otherwise the time is a local time and rendered in
// [LocalLayout]. Fractional seconds are ignored.
func GeneralizedTime(content []byte) (string, error) {
	t, err := ParseGeneralizedTime(content)
	if err != nil {
		return "", err
	}
	if t.Location() == time.UTC {
		return t.Format(UTCLayout), nil
	}
	return t.Format(LocalLayout), nil
}

// ParseUTCTime parses the content octets of a UTCTime value as described for
// [UTCTime].
func ParseUTCTime(content []byte) (time.Time, error) {
	if len(content) < 12 {
		return time.Time{}, &Error{Type: "UTCTime", Msg: "too short"}
	}
	yy, err := digits(content[:2], "UTCTime")
	if err != nil {
		return time.Time{}, err
	}
	year := 1900 + yy
	if yy < 70 {
		year = 2000 + yy
	}
	return clock(year, content[2:12], time.UTC, "UTCTime")
}

// ParseGeneralizedTime parses the content octets of a GeneralizedTime value as
// described for [GeneralizedTime]. Times without a 'Z' use [time.Local].
func ParseGeneralizedTime(content []byte) (time.Time, error) {
	if len(content) < 14 {
		return time.Time{}, &Error{Type: "GeneralizedTime", Msg: "too short"}
	}
	year, err := digits(content[:4], "GeneralizedTime")
	if err != nil {
		return time.Time{}, err
	}
	loc := time.Local
	if strings.ContainsRune(string(content[14:]), 'Z') {
		loc = time.UTC
	}
	return clock(year, content[4:14], loc, "GeneralizedTime")
}

// clock parses MMDDhhmmss and combines it with year.
func clock(year int, b []byte, loc *time.Location, typ string) (time.Time, error) {
	var f [5]int
	for i := range f {
		v, err := digits(b[2*i:2*i+2], typ)
		if err != nil {
			return time.Time{}, err
		}
		f[i] = v
	}
	month, day, hour, minute, sec := f[0], f[1], f[2], f[3], f[4]
	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc)
	if month < 1 || month > 12 || day < 1 || t.Day() != day || hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, &Error{Type: typ, Msg: "field out of range"}
	}
	return t, nil
}

func digits(b []byte, typ string) (int, error) {
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, &Error{Type: typ, Msg: "invalid digit " + strconv.QuoteRune(rune(c))}
		}
	}
	v, _ := strconv.Atoi(string(b))
	return v, nil
}
