// Package calendar turns raw economic calendar events into the grouped,
// labeled schedule shown to users.
package calendar

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"marome-markets/internal/domain"
)

const dateLayout = "2006-01-02"

// EventView is one event prepared for display. Missing actual, forecast
// and previous readings render as "-".
type EventView struct {
	Time            string `json:"time"`
	Country         string `json:"country"`
	Event           string `json:"event"`
	Importance      string `json:"importance"`
	ImportanceClass string `json:"importance_class"`
	Actual          string `json:"actual"`
	Forecast        string `json:"forecast"`
	Previous        string `json:"previous"`
}

// DayGroup is all events sharing one calendar date.
type DayGroup struct {
	Date   string      `json:"date"`
	Label  string      `json:"label"`
	Events []EventView `json:"events"`
}

// Schedule is the full calendar page model. Notice is set when the next
// event is still days away, so a near-empty page explains itself.
type Schedule struct {
	Notice string     `json:"notice,omitempty"`
	Days   []DayGroup `json:"days"`
}

// BuildSchedule groups events by date in first-appearance order and
// sorts each day by importance, then time. now anchors the Today,
// Tomorrow and This Week labels.
func BuildSchedule(events []domain.CalendarEvent, now time.Time) Schedule {
	var schedule Schedule
	if len(events) == 0 {
		return schedule
	}

	today := midnight(now)
	if first, err := time.ParseInLocation(dateLayout, events[0].Date, now.Location()); err == nil {
		daysDiff := int(first.Sub(today).Hours() / 24)
		if daysDiff > 3 {
			schedule.Notice = fmt.Sprintf("No major economic events scheduled for the next %d days. Next event: %s", daysDiff, formatDate(events[0].Date, now.Location()))
		}
	}

	byDate := make(map[string][]domain.CalendarEvent)
	var order []string
	for _, ev := range events {
		if _, seen := byDate[ev.Date]; !seen {
			order = append(order, ev.Date)
		}
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	for _, date := range order {
		day := byDate[date]
		sort.SliceStable(day, func(i, j int) bool {
			ri, rj := importanceRank(day[i].Importance), importanceRank(day[j].Importance)
			if ri != rj {
				return ri < rj
			}
			return day[i].Time < day[j].Time
		})

		group := DayGroup{
			Date:   date,
			Label:  DateLabel(date, now),
			Events: make([]EventView, 0, len(day)),
		}
		for _, ev := range day {
			group.Events = append(group.Events, EventView{
				Time:            FormatEventTime(ev.Time),
				Country:         ev.Country,
				Event:           ev.Event,
				Importance:      ImportanceLabel(ev.Importance),
				ImportanceClass: "importance-" + strings.ToLower(ev.Importance),
				Actual:          reading(ev.Actual),
				Forecast:        reading(ev.Forecast),
				Previous:        reading(ev.Previous),
			})
		}
		schedule.Days = append(schedule.Days, group)
	}

	return schedule
}

func reading(v domain.RawValue) string {
	if text, ok := v.Value(); ok {
		return text
	}
	return "-"
}

func importanceRank(importance string) int {
	switch importance {
	case "High":
		return 0
	case "Medium":
		return 1
	case "Low":
		return 2
	default:
		return 3
	}
}

// ImportanceLabel normalizes an importance marker for display.
func ImportanceLabel(importance string) string {
	switch strings.ToLower(importance) {
	case "high":
		return "High"
	case "medium":
		return "Medium"
	case "low":
		return "Low"
	}
	if importance == "" {
		return "Unknown"
	}
	return importance
}

var clockTime = regexp.MustCompile(`^\d{2}:\d{2}$`)

// FormatEventTime passes HH:MM times through, collapses any "all day"
// variant to "All Day", and leaves everything else untouched.
func FormatEventTime(t string) string {
	if clockTime.MatchString(t) {
		return t
	}
	if strings.Contains(strings.ToLower(t), "all") {
		return "All Day"
	}
	return t
}

// DateLabel renders a date header, prefixed with Today, Tomorrow or
// This Week when the date is close enough to now. Unparsable dates come
// back verbatim.
func DateLabel(date string, now time.Time) string {
	parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return date
	}

	long := parsed.Format("Monday, January 2, 2006")
	today := midnight(now)
	eventDay := midnight(parsed)

	switch {
	case eventDay.Equal(today):
		return "Today - " + long
	case eventDay.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow - " + long
	case !eventDay.Before(today) && !eventDay.After(today.AddDate(0, 0, 7)):
		return "This Week - " + long
	default:
		return long
	}
}

func formatDate(date string, loc *time.Location) string {
	parsed, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return date
	}
	return parsed.Format("Monday, January 2, 2006")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
