package dateformat

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale holds the names and default layout used for one language. Custom
// locales are plain values registered through Locales.With.
type Locale struct {
	Tag           language.Tag
	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string
	WeekdaysShort [7]string
	WeekdaysMin   [7]string
	// Layout is the default date layout, the equivalent of moment's "L".
	Layout string
	// Ordinal renders the suffix used by the Do token.
	Ordinal func(n int) string
	// Labels holds the few UI strings the picker needs ("today", "clear").
	Labels map[string]string
}

// Label returns the UI string for key, falling back to key itself.
func (l Locale) Label(key string) string {
	if v, ok := l.Labels[key]; ok {
		return v
	}
	return key
}

// MonthName returns the full month name.
func (l Locale) MonthName(m time.Month) string { return l.Months[m-1] }

// MonthShort returns the abbreviated month name.
func (l Locale) MonthShort(m time.Month) string { return l.MonthsShort[m-1] }

func (l Locale) ordinal(n int) string {
	if l.Ordinal == nil {
		return "."
	}
	return l.Ordinal(n)
}

func englishOrdinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

var englishNames = Locale{
	Months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	MonthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysMin:   [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	Ordinal:       englishOrdinal,
	Labels:        map[string]string{"today": "Today", "clear": "Clear"},
}

// English is the default locale.
var English = func() Locale {
	l := englishNames
	l.Tag = language.English
	l.Layout = "MM/DD/YYYY"
	return l
}()

// BritishEnglish uses day-first layouts.
var BritishEnglish = func() Locale {
	l := englishNames
	l.Tag = language.BritishEnglish
	l.Layout = "DD/MM/YYYY"
	return l
}()

// German locale.
var German = Locale{
	Tag: language.German,
	Months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	MonthsShort: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
		"Juli", "Aug.", "Sep.", "Okt.", "Nov.", "Dez."},
	Weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	WeekdaysShort: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	WeekdaysMin:   [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	Layout:        "DD.MM.YYYY",
	Ordinal:       func(int) string { return "." },
	Labels:        map[string]string{"today": "Heute", "clear": "Löschen"},
}

// Locales is a lookup of known locales. The first entry is the fallback.
type Locales struct {
	list []Locale
}

// DefaultLocales returns English, British English and German.
func DefaultLocales() Locales {
	return Locales{list: []Locale{English, BritishEnglish, German}}
}

// Len returns the number of known locales.
func (l Locales) Len() int { return len(l.list) }

// With returns a copy that also knows loc, replacing a locale with the same tag.
func (l Locales) With(loc Locale) Locales {
	out := make([]Locale, 0, len(l.list)+1)
	replaced := false
	for _, existing := range l.list {
		if existing.Tag == loc.Tag {
			out = append(out, loc)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, loc)
	}
	return Locales{list: out}
}

// Lookup resolves a BCP 47 tag such as "de-AT" to the closest known locale.
// Unknown languages fall back to the first locale.
func (l Locales) Lookup(lang string) (Locale, error) {
	if len(l.list) == 0 {
		return English, nil
	}
	if strings.TrimSpace(lang) == "" {
		return l.list[0], nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Locale{}, fmt.Errorf("dateformat: locale %q: %w", lang, err)
	}
	tags := make([]language.Tag, len(l.list))
	for i, loc := range l.list {
		tags[i] = loc.Tag
	}
	_, idx, conf := language.NewMatcher(tags).Match(tag)
	if conf == language.No {
		return l.list[0], nil
	}
	return l.list[idx], nil
}
