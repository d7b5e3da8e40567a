// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"github.com/danielhkuo/planner/models"
)

// ApplySelection folds one calendar pick into the current date range.
//
// A pick starts a fresh range when no start is set, or when a complete
// range already exists. Otherwise the pick closes the open range, swapping
// roles when it falls before the current start so that Start <= End always
// holds. Picking the start day again yields a single-day range.
func ApplySelection(current models.DateRange, picked models.Date) models.DateRange {
	if current.Start == nil || current.Complete() {
		return models.DateRange{Start: &picked}
	}

	if picked.Before(*current.Start) {
		return models.DateRange{Start: &picked, End: current.Start}
	}
	return models.DateRange{Start: current.Start, End: &picked}
}

// Days enumerates every calendar day of r inclusive. It returns nil unless
// both bounds are set.
func Days(r models.DateRange) []models.Date {
	if !r.Complete() {
		return nil
	}

	var days []models.Date
	for d := *r.Start; !d.After(*r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// MarkedDates derives the display markers for r. A single-day range is
// tagged MarkSingle; a lone start (selection in progress) is shown the same
// way. The result is recomputed from scratch on every call.
func MarkedDates(r models.DateRange) map[models.Date]models.MarkKind {
	marks := make(map[models.Date]models.MarkKind)

	if r.Start != nil && r.End == nil {
		marks[*r.Start] = models.MarkSingle
		return marks
	}

	days := Days(r)
	for i, d := range days {
		switch {
		case len(days) == 1:
			marks[d] = models.MarkSingle
		case i == 0:
			marks[d] = models.MarkStart
		case i == len(days)-1:
			marks[d] = models.MarkEnd
		default:
			marks[d] = models.MarkWithinRange
		}
	}
	return marks
}
