// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate_test

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"cloudeng.io/weekdate"
	jsonv2 "github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

type document struct {
	ID    int               `json:"id" yaml:"id"`
	Value weekdate.WeekDate `json:"value" yaml:"value"`
}

func TestText(t *testing.T) {
	wd := weekdate.MustNew(1997, 14, 6)
	buf, err := wd.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "1997-W14-6"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var back weekdate.WeekDate
	if err := back.UnmarshalText([]byte("1997W146")); err != nil {
		t.Fatal(err)
	}
	if got, want := back, wd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := back.UnmarshalText([]byte("1997-04-05")); !errors.Is(err, weekdate.ErrInvalidWeekDate) {
		t.Errorf("expected an invalid week date error, got %v", err)
	}
}

func TestJSON(t *testing.T) {
	for i, tc := range []struct {
		doc  document
		want string
	}{
		{document{}, `{"id":0,"value":"0001-W01-1"}`},
		{document{ID: 1, Value: weekdate.MustNew(1997, 14, 6)}, `{"id":1,"value":"1997-W14-6"}`},
		{document{ID: 2, Value: weekdate.MaxValue}, `{"id":2,"value":"9999-W52-5"}`},
	} {
		buf, err := json.Marshal(tc.doc)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := string(buf), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		var back document
		if err := json.Unmarshal(buf, &back); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := back, tc.doc; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}

		// The same encoding is produced and accepted by the v2 json package.
		buf, err = jsonv2.Marshal(tc.doc)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := string(buf), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		back = document{}
		if err := jsonv2.Unmarshal(buf, &back); err != nil {
			t.Errorf("%v: %v", i, err)
		}
		if got, want := back, tc.doc; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestJSONInputs(t *testing.T) {
	want := weekdate.MustNew(1997, 14, 6)
	for i, input := range []string{
		`"1997-W14-6"`,
		`"1997-14-6"`,
		`" 1997W146 "`,
		`"1997-04-05"`,
		`"1997-04-05T00:00:00"`,
		`"1997-04-05T10:30:00Z"`,
		`"1997-04-05T10:30:00+02:00"`,
	} {
		var wd weekdate.WeekDate
		if err := wd.UnmarshalJSON([]byte(input)); err != nil {
			t.Errorf("%v: %v: %v", i, input, err)
			continue
		}
		if got := wd; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, input, got, want)
		}
	}

	for i, tc := range []struct {
		input string
		kind  string
		msg   string
	}{
		{`null`, "null", "json deserialization from null is not supported"},
		{`123456`, "integer", "json deserialization from an integer is not supported"},
		{`-12`, "integer", "json deserialization from an integer is not supported"},
		{`1234.56`, "number", "json deserialization from a number is not supported"},
		{`1e3`, "number", "json deserialization from a number is not supported"},
		{`true`, "boolean", "json deserialization from a boolean is not supported"},
		{`{"year":1997}`, "object", "json deserialization from an object is not supported"},
		{`[1997,14,6]`, "array", "json deserialization from an array is not supported"},
	} {
		wd := weekdate.MustNew(2000, 1, 1)
		err := wd.UnmarshalJSON([]byte(tc.input))
		if !errors.Is(err, weekdate.ErrUnsupportedInputKind) {
			t.Errorf("%v: %v: expected an unsupported input kind error, got %v", i, tc.input, err)
			continue
		}
		var ue *weekdate.UnsupportedInputKindError
		if !errors.As(err, &ue) || ue.Kind != tc.kind || ue.Format != "json" {
			t.Errorf("%v: %v: unexpected error: %#v", i, tc.input, err)
		}
		if got, want := err.Error(), tc.msg; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := wd, weekdate.MustNew(2000, 1, 1); got != want {
			t.Errorf("%v: value was modified: %v", i, got)
		}
	}

	var wd weekdate.WeekDate
	if err := wd.UnmarshalJSON([]byte(`"9999-W53-1"`)); !errors.Is(err, weekdate.ErrInvalidWeekDate) {
		t.Errorf("expected an invalid week date error, got %v", err)
	}
	// Nulls inside documents are rejected too.
	var doc document
	if err := json.Unmarshal([]byte(`{"id":1,"value":null}`), &doc); !errors.Is(err, weekdate.ErrUnsupportedInputKind) {
		t.Errorf("expected an unsupported input kind error, got %v", err)
	}
}

func TestYAML(t *testing.T) {
	doc := document{ID: 1, Value: weekdate.MustNew(1997, 14, 6)}
	buf, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "id: 1\nvalue: 1997-W14-6\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	var back document
	if err := yaml.Unmarshal(buf, &back); err != nil {
		t.Fatal(err)
	}
	if got, want := back, doc; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for i, input := range []string{
		"value: 1997-W14-6\n",
		"value: '1997-14-6'\n",
		"value: 1997W146\n",
		"value: 1997-04-05\n",
		"value: \"1997-04-05\"\n",
		"value: 1997-04-05T10:30:00Z\n",
	} {
		var doc document
		if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := doc.Value, weekdate.MustNew(1997, 14, 6); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	for i, tc := range []struct {
		input string
		kind  string
	}{
		{"value: 123456\n", "integer"},
		{"value: 12.5\n", "number"},
		{"value: true\n", "boolean"},
		{"value: {year: 1997}\n", "mapping"},
		{"value: [1997, 14, 6]\n", "sequence"},
	} {
		var doc document
		err := yaml.Unmarshal([]byte(tc.input), &doc)
		var ue *weekdate.UnsupportedInputKindError
		if !errors.As(err, &ue) || ue.Kind != tc.kind || ue.Format != "yaml" {
			t.Errorf("%v: %v: unexpected error: %v", i, tc.input, err)
		}
	}

	// yaml.v3 never delivers null values to UnmarshalYAML, so call it
	// directly.
	var wd weekdate.WeekDate
	err = wd.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
	if !errors.Is(err, weekdate.ErrUnsupportedInputKind) {
		t.Errorf("expected an unsupported input kind error, got %v", err)
	}

	if err := yaml.Unmarshal([]byte("value: not-a-date\n"), &doc); !errors.Is(err, weekdate.ErrInvalidWeekDate) {
		t.Errorf("expected an invalid week date error, got %v", err)
	}
}

type xmlDocument struct {
	XMLName xml.Name          `xml:"obj"`
	At      weekdate.WeekDate `xml:"at,attr"`
	ID      int               `xml:"id"`
	Value   weekdate.WeekDate `xml:"value"`
	Date    time.Time         `xml:"date"`
}

func TestXML(t *testing.T) {
	doc := xmlDocument{
		At:    weekdate.MustNew(2020, 1, 1),
		ID:    7,
		Value: weekdate.MustNew(1997, 14, 6),
		Date:  time.Date(1997, 4, 5, 0, 0, 0, 0, time.UTC),
	}
	buf, err := xml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `<obj at="2019-12-30"><id>7</id><value>1997-04-05</value><date>1997-04-05T00:00:00Z</date></obj>`
	if got := string(buf); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var back xmlDocument
	if err := xml.Unmarshal(buf, &back); err != nil {
		t.Fatal(err)
	}
	back.XMLName = xml.Name{}
	if got, want := back, doc; !cmp.Equal(got, want) {
		t.Errorf("diff: %v", cmp.Diff(got, want))
	}

	if err := xml.Unmarshal([]byte(`<obj><value>1997-W14-6</value></obj>`), &back); !errors.Is(err, weekdate.ErrInvalidDate) {
		t.Errorf("expected an invalid date error for a week date in xml, got %v", err)
	}
	if err := xml.Unmarshal([]byte(`<obj at="1997-02-30"></obj>`), &back); !errors.Is(err, weekdate.ErrInvalidDate) {
		t.Errorf("expected an invalid date error, got %v", err)
	}
	if err := xml.Unmarshal([]byte(`<obj><value>0000-12-31</value></obj>`), &back); !errors.Is(err, weekdate.ErrUnrepresentable) {
		t.Errorf("expected an unrepresentable error, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	for i, input := range []string{
		"1997-04-05",
		" 1997-04-05 ",
		"1997-04-05T23:59:59",
		"1997-04-05T23:59:59-08:00",
		"1997-04-05 10:00:00",
		"1997-04-05 00:00:00+00:00",
		"1997-04-05 00:00:00.123456789+02:00",
	} {
		got, err := weekdate.ParseDate(input)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if want := weekdate.MustNew(1997, 14, 6); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	for i, input := range []string{"", "yesterday", "1997-W14-6", "1997-13-01", "1997-02-29", "10000-01-01"} {
		_, err := weekdate.ParseDate(input)
		if !errors.Is(err, weekdate.ErrInvalidDate) {
			t.Errorf("%v: %q: expected an invalid date error, got %v", i, input, err)
		}
		if !strings.Contains(err.Error(), "not a valid date") {
			t.Errorf("%v: unexpected message: %v", i, err)
		}
	}
	if _, err := weekdate.ParseDate("0000-06-01"); !errors.Is(err, weekdate.ErrUnrepresentable) {
		t.Errorf("expected an unrepresentable error, got %v", err)
	}
}

type gobDocument struct {
	ID    int
	Value weekdate.WeekDate
	Date  time.Time
}

func TestBinary(t *testing.T) {
	for i, wd := range []weekdate.WeekDate{
		weekdate.MinValue,
		weekdate.MustNew(1997, 14, 6),
		weekdate.MaxValue,
	} {
		buf, err := wd.MarshalBinary()
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		back := weekdate.MustNew(2000, 1, 1)
		if err := back.UnmarshalBinary(buf); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := back, wd; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}

		doc := gobDocument{ID: i, Value: wd, Date: wd.Date()}
		var out bytes.Buffer
		if err := gob.NewEncoder(&out).Encode(doc); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		var docBack gobDocument
		if err := gob.NewDecoder(&out).Decode(&docBack); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := docBack.Value, doc.Value; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if !docBack.Date.Equal(doc.Date) {
			t.Errorf("%v: got %v, want %v", i, docBack.Date, doc.Date)
		}
	}
}

type missingValue struct {
	Value civil.Date
	Other int
}

type wrongValue struct {
	Value int
}

func TestBinaryErrors(t *testing.T) {
	encode := func(v any) []byte {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(v); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	for i, tc := range []struct {
		data []byte
		msg  string
	}{
		{encode(missingValue{Other: 1}), "missing Value"},
		{encode(wrongValue{Value: 3}), "failed to decode Value"},
		{encode(missingValue{Value: civil.Date{Year: 0, Month: 1, Day: 1}, Other: 1}), "invalid Value"},
		{[]byte("garbage"), "failed to decode Value"},
	} {
		var wd weekdate.WeekDate
		err := wd.UnmarshalBinary(tc.data)
		if err == nil || !strings.HasPrefix(err.Error(), tc.msg) {
			t.Errorf("%v: got %v, want an error starting with %q", i, err, tc.msg)
		}
	}
}
