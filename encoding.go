// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import (
	"bytes"
	"database/sql/driver"
	"encoding/gob"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Layouts accepted for Gregorian dates, the last three are those used by
// sqlite for timestamps.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.DateTime,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
}

// ParseDate returns the WeekDate for a Gregorian date in the form
// 2006-01-02, optionally followed by a time of day, as per RFC3339 or as
// written by common SQL drivers. The calendar date is taken as written,
// ie. in the time's own offset. Text that is not a date results in an
// error matched by ErrInvalidDate, dates outside of the supported range
// in an *UnrepresentableError.
func ParseDate(text string) (WeekDate, error) {
	text = strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return FromTime(t)
		}
	}
	return MinValue, fmt.Errorf("%w: %q", ErrInvalidDate, text)
}

// parseDocumentText accepts either a week date or a Gregorian date and
// otherwise returns a *ParseError.
func parseDocumentText(text string) (WeekDate, error) {
	if wd, ok := parse(text); ok {
		return wd, nil
	}
	if wd, err := ParseDate(text); err == nil {
		return wd, nil
	}
	return MinValue, &ParseError{
		Text:    text,
		Message: localize(language.Und, msgInvalidWeekDate),
	}
}

// MarshalText implements encoding.TextMarshaler.
func (wd WeekDate) MarshalText() ([]byte, error) {
	return []byte(wd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// forms as Parse.
func (wd *WeekDate) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*wd = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, a WeekDate is always encoded
// in its canonical form.
func (wd WeekDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(wd.String())
}

// UnmarshalJSON implements json.Unmarshaler. Strings containing a week
// date or a Gregorian date are accepted; null, numbers and all other JSON
// kinds result in an *UnsupportedInputKindError.
func (wd *WeekDate) UnmarshalJSON(data []byte) error {
	switch kind := jsontext.Value(data).Kind(); kind {
	case '"':
	case 'n':
		return &UnsupportedInputKindError{Format: "json", Kind: "null"}
	case '0':
		return &UnsupportedInputKindError{Format: "json", Kind: jsonNumberKind(data)}
	case 't', 'f':
		return &UnsupportedInputKindError{Format: "json", Kind: "boolean"}
	case '{':
		return &UnsupportedInputKindError{Format: "json", Kind: "object"}
	case '[':
		return &UnsupportedInputKindError{Format: "json", Kind: "array"}
	default:
		return fmt.Errorf("invalid json value: %q", data)
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := parseDocumentText(text)
	if err != nil {
		return err
	}
	*wd = parsed
	return nil
}

func jsonNumberKind(data []byte) string {
	if bytes.ContainsAny(data, ".eE") {
		return "number"
	}
	return "integer"
}

// MarshalYAML implements yaml.Marshaler.
func (wd WeekDate) MarshalYAML() (any, error) {
	return wd.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using the same rules as
// UnmarshalJSON, in addition YAML timestamps are accepted. Note that
// yaml.v3 does not call UnmarshalYAML for null values.
func (wd *WeekDate) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
	case yaml.MappingNode:
		return &UnsupportedInputKindError{Format: "yaml", Kind: "mapping"}
	case yaml.SequenceNode:
		return &UnsupportedInputKindError{Format: "yaml", Kind: "sequence"}
	default:
		return fmt.Errorf("line %d: unsupported yaml node", node.Line)
	}
	var (
		parsed WeekDate
		err    error
	)
	switch node.ShortTag() {
	case "!!null":
		return &UnsupportedInputKindError{Format: "yaml", Kind: "null"}
	case "!!int":
		return &UnsupportedInputKindError{Format: "yaml", Kind: "integer"}
	case "!!float":
		return &UnsupportedInputKindError{Format: "yaml", Kind: "number"}
	case "!!bool":
		return &UnsupportedInputKindError{Format: "yaml", Kind: "boolean"}
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return err
		}
		parsed, err = FromTime(t)
	default:
		parsed, err = parseDocumentText(node.Value)
	}
	if err != nil {
		return err
	}
	*wd = parsed
	return nil
}

// MarshalXML implements xml.Marshaler. The element contains the
// Gregorian date, eg. 1997-04-05, rather than the week date.
func (wd WeekDate) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(wd.Date().Format(time.DateOnly), start)
}

// UnmarshalXML implements xml.Unmarshaler. The element must contain a
// Gregorian date as accepted by ParseDate.
func (wd *WeekDate) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var text string
	if err := d.DecodeElement(&text, &start); err != nil {
		return err
	}
	parsed, err := ParseDate(text)
	if err != nil {
		return err
	}
	*wd = parsed
	return nil
}

// MarshalXMLAttr implements xml.MarshalerAttr.
func (wd WeekDate) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: wd.Date().Format(time.DateOnly)}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (wd *WeekDate) UnmarshalXMLAttr(attr xml.Attr) error {
	parsed, err := ParseDate(attr.Value)
	if err != nil {
		return err
	}
	*wd = parsed
	return nil
}

// persisted is the binary representation of a WeekDate, the equivalent
// Gregorian date stored in a field called Value.
type persisted struct {
	Value civil.Date
}

// MarshalBinary implements encoding.BinaryMarshaler, it is also used
// by encoding/gob.
func (wd WeekDate) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(persisted{Value: wd.Civil()}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A missing,
// invalid or wrongly typed Value field is an error.
func (wd *WeekDate) UnmarshalBinary(data []byte) error {
	var p persisted
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return fmt.Errorf("failed to decode Value: %w", err)
	}
	if p.Value == (civil.Date{}) {
		return fmt.Errorf("missing Value")
	}
	parsed, err := FromCivil(p.Value)
	if err != nil {
		return fmt.Errorf("invalid Value: %w", err)
	}
	*wd = parsed
	return nil
}

// Value implements driver.Valuer, the equivalent Gregorian date is
// stored as a time.Time at midnight UTC.
func (wd WeekDate) Value() (driver.Value, error) {
	return wd.Date(), nil
}

// Scan implements sql.Scanner. It accepts time.Time values and text as
// accepted by ParseDate. NULL is an error, use a *WeekDate or
// sql.Null[WeekDate] for nullable columns.
func (wd *WeekDate) Scan(src any) error {
	var (
		parsed WeekDate
		err    error
	)
	switch v := src.(type) {
	case time.Time:
		parsed, err = FromTime(v)
	case string:
		parsed, err = ParseDate(v)
	case []byte:
		parsed, err = ParseDate(string(v))
	case nil:
		return fmt.Errorf("cannot scan NULL into a WeekDate")
	default:
		return fmt.Errorf("cannot scan %T into a WeekDate", src)
	}
	if err != nil {
		return err
	}
	*wd = parsed
	return nil
}
