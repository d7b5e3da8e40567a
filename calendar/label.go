// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/danielhkuo/planner/models"
)

// maxDestinationLen is the display cutoff for the trip header destination.
const maxDestinationLen = 14

var supported = []language.Tag{
	language.BrazilianPortuguese, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

// Locale resolves a BCP 47 locale string ("pt-BR", "en-US", ...) to the
// closest supported tag. Unknown locales fall back to pt-BR.
func Locale(s string) language.Tag {
	_, i := language.MatchStrings(matcher, s)
	return supported[i]
}

// Weekday names with the Portuguese "-feira" suffix stripped, matching the
// mobile client's display.
var weekdaysPT = [...]string{"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado"}

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var monthsShortPT = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// WeekdayName returns the localized name of d's day of the week.
func WeekdayName(d models.Date, tag language.Tag) string {
	if tag == language.English {
		return d.Weekday().String()
	}
	return weekdaysPT[d.Weekday()]
}

// MonthName returns the localized full month name.
func MonthName(m time.Month, tag language.Tag) string {
	if tag == language.English {
		return m.String()
	}
	return monthsPT[m-1]
}

// MonthShort returns the localized abbreviated month name.
func MonthShort(m time.Month, tag language.Tag) string {
	if tag == language.English {
		return m.String()[:3]
	}
	return monthsShortPT[m-1]
}

// RangeLabel renders the start-to-end text shown in the date input. It is
// empty unless both bounds are set.
func RangeLabel(r models.DateRange, tag language.Tag) string {
	if !r.Complete() {
		return ""
	}

	start, end := *r.Start, *r.End
	if tag == language.English {
		if start.Month == end.Month && start.Year == end.Year {
			return fmt.Sprintf("%s %d to %d", MonthName(start.Month, tag), start.Day, end.Day)
		}
		return fmt.Sprintf("%s %d to %s %d", MonthName(start.Month, tag), start.Day, MonthName(end.Month, tag), end.Day)
	}

	if start.Month == end.Month && start.Year == end.Year {
		return fmt.Sprintf("%d a %d de %s", start.Day, end.Day, MonthName(start.Month, tag))
	}
	return fmt.Sprintf("%d de %s a %d de %s", start.Day, MonthName(start.Month, tag), end.Day, MonthName(end.Month, tag))
}

// WhenLabel renders the trip header line: the destination truncated to
// fourteen characters plus the day span and abbreviated starting month.
func WhenLabel(destination string, start, end models.Date, tag language.Tag) string {
	dest := []rune(destination)
	if len(dest) > maxDestinationLen {
		destination = string(dest[:maxDestinationLen]) + "..."
	}

	if tag == language.English {
		return fmt.Sprintf("%s, %s %02d to %02d.", destination, MonthShort(start.Month, tag), start.Day, end.Day)
	}
	return fmt.Sprintf("%s de %02d a %02d de %s.", destination, start.Day, end.Day, MonthShort(start.Month, tag))
}
