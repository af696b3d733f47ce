// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekdate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const msgInvalidWeekDate = "Not a valid week date"

// English must be first, it is used for unmatched cultures.
var supportedCultures = []language.Tag{
	language.English,
	language.Dutch,
	language.German,
	language.French,
}

var (
	messages       = newCatalog()
	cultureMatcher = language.NewMatcher(supportedCultures)
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, m := range []struct {
		tag language.Tag
		msg string
	}{
		{language.English, "Not a valid week date"},
		{language.Dutch, "Geen geldige weekdatum"},
		{language.German, "Kein gültiges Wochendatum"},
		{language.French, "Pas une date de semaine valide"},
	} {
		if err := b.SetString(m.tag, msgInvalidWeekDate, m.msg); err != nil {
			panic(err)
		}
	}
	return b
}

// localize returns the message for key in the closest supported culture.
func localize(culture language.Tag, key string) string {
	_, idx, _ := cultureMatcher.Match(culture)
	return message.NewPrinter(supportedCultures[idx], message.Catalog(messages)).Sprintf(key)
}
