package util

import (
	"time"

	null "gopkg.in/guregu/null.v3"
)

// TimeToString - Formats an optional time with layout, nil if absent
func TimeToString(t null.Time, layout string) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(layout)
	return &s
}

func FloatToPtr(f null.Float) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}

func IntToPtr(i null.Int) *int64 {
	if !i.Valid {
		return nil
	}
	return &i.Int64
}

func DurationPtrToSeconds(ptr *time.Duration) *float64 {
	if ptr == nil {
		return nil
	}
	seconds := ptr.Seconds()
	return &seconds
}
