package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexString accepts both JSON strings and JSON numbers, as the admin
// panel sends bill numbers either way.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*s = FlexString(num.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// Date is a timestamp that also accepts plain "2006-01-02" values from date inputs.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Date{Time: t}, nil
		}
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Date{Time: time.UnixMilli(ms).UTC()}, nil
	}
	return Date{}, fmt.Errorf("unsupported date %q", value)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.UTC().Format(time.RFC3339Nano))
}

func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if d.IsZero() {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(d.Time)
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*d = Date{}
		return nil
	}
	if t == bsontype.String {
		var raw string
		if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&raw); err != nil {
			return err
		}
		parsed, err := ParseDate(raw)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	var tm time.Time
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&tm); err != nil {
		return err
	}
	*d = Date{Time: tm}
	return nil
}

// Amount is a user-entered money or count field. Strings are parsed and
// anything unparsable or not finite becomes zero.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*a = ParseAmount(raw)
		return nil
	}
	*a = ParseAmount(string(data))
	return nil
}

func (a Amount) Float() float64 {
	return float64(a)
}

func ParseAmount(raw string) Amount {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Amount(v)
}
