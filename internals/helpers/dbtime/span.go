package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Span is a duration column (Postgres INTERVAL), wire format "HH:MM:SS".
type Span struct{ time.Duration }

// SpanOf wraps a time.Duration.
func SpanOf(d time.Duration) Span { return Span{Duration: d} }

// ParseSpan builds a Span from "[H]H:MM[:SS]".
func ParseSpan(s string) (Span, error) {
	var sp Span
	return sp, sp.parse(s)
}

// Scan accepts the interval text Postgres emits ("HH:MM:SS", optionally
// prefixed with "N day[s]") or a raw duration in nanoseconds.
func (s *Span) Scan(v any) error {
	switch x := v.(type) {
	case []byte:
		return s.parse(string(x))
	case string:
		return s.parse(x)
	case int64:
		s.Duration = time.Duration(x)
		return nil
	case nil:
		s.Duration = 0
		return nil
	default:
		return fmt.Errorf("span: unsupported Scan type %T", v)
	}
}

func (s *Span) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.Duration = 0
		return nil
	}

	var days int64
	if i := strings.Index(raw, "day"); i >= 0 {
		n, err := strconv.ParseInt(strings.TrimSpace(raw[:i]), 10, 64)
		if err != nil {
			return fmt.Errorf("span: bad day part in %q", raw)
		}
		days = n
		raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw[i:]), "days"))
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "day"))
		if raw == "" {
			s.Duration = time.Duration(days) * 24 * time.Hour
			return nil
		}
	}

	// strip fractional seconds
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("span: cannot parse %q", raw)
	}
	nums := make([]int64, 3)
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return fmt.Errorf("span: cannot parse %q", raw)
		}
		nums[i] = n
	}

	s.Duration = time.Duration(days)*24*time.Hour +
		time.Duration(nums[0])*time.Hour +
		time.Duration(nums[1])*time.Minute +
		time.Duration(nums[2])*time.Second
	return nil
}

// Value sends "HH:MM:SS" so Postgres INTERVAL understands it.
func (s Span) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s Span) String() string {
	d := s.Duration
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// Minutes reports the span in whole-and-fraction minutes, the unit the
// reports use.
func (s Span) Minutes() float64 { return s.Duration.Minutes() }

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Span) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	return s.parse(str)
}
