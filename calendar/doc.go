// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package calendar implements the date-range selection used by every
calendar-driven screen, plus the localized labels derived from it.

# Selection

ApplySelection folds user picks into an ordered range:

	r := models.DateRange{}
	r = calendar.ApplySelection(r, day1) // start set
	r = calendar.ApplySelection(r, day2) // range closed, ordered
	r = calendar.ApplySelection(r, day3) // fresh range started

Ranges are always ordered: a pick earlier than the open start swaps roles
instead of producing an inverted range. Picking while a complete range
exists discards it and starts over.

# Markers

MarkedDates derives the per-day display markers (start, end, withinRange,
single) for a range. The map is recomputed from the range on every call and
never stored.

# Labels

RangeLabel, WhenLabel, WeekdayName and the month name helpers render
localized display text. Supported locales are pt-BR (default) and en,
resolved with golang.org/x/text/language matching.

Everything in this package is pure: no clock, network, or storage access.
Minimum and maximum date constraints (for example bounding activity dates to
the trip window) belong to the calendar presentation layer, which rejects
out-of-bound picks before they reach ApplySelection.
*/
package calendar
