// Package ical turns iCalendar files into import candidates.
package ical

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

const defaultEventLength = time.Hour

var (
	highPriorityKeywords = []string{"urgent", "important", "asap", "critical", "deadline"}
	lowPriorityKeywords  = []string{"optional", "nice to have", "later", "someday", "low priority"}
)

type Parser struct{}

var _ ports.CalendarParser = Parser{}

// Parse returns the VEVENTs that start after now, earliest first.
func (Parser) Parse(r io.Reader, now time.Time) ([]domain.CalendarEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	seen := make(map[string]struct{})
	events := make([]domain.CalendarEvent, 0)
	for i, vevent := range cal.Events() {
		start, err := vevent.GetStartAt()
		if err != nil {
			continue
		}
		if !start.After(now) {
			continue
		}
		end, err := vevent.GetEndAt()
		if err != nil || end.IsZero() {
			end = start.Add(defaultEventLength)
		}

		summary := propertyValue(vevent, ics.ComponentPropertySummary)
		description := propertyValue(vevent, ics.ComponentPropertyDescription)

		events = append(events, domain.CalendarEvent{
			ID:          uniqueEventID(seen, vevent.Id(), i),
			Summary:     summary,
			Description: description,
			Location:    propertyValue(vevent, ics.ComponentPropertyLocation),
			StartDate:   start,
			EndDate:     end,
			Priority:    eventPriority(propertyValue(vevent, ics.ComponentPropertyPriority), summary+" "+description),
		})
	}

	slices.SortStableFunc(events, func(a, b domain.CalendarEvent) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return events, nil
}

func propertyValue(event *ics.VEvent, property ics.ComponentProperty) string {
	prop := event.GetProperty(property)
	if prop == nil {
		return ""
	}
	return unescapeText(prop.Value)
}

func unescapeText(value string) string {
	return strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`).Replace(value)
}

func uniqueEventID(seen map[string]struct{}, uid string, index int) string {
	id := uid
	for n := index + 1; ; n++ {
		if _, dup := seen[id]; id != "" && !dup {
			break
		}
		id = "event-" + strconv.Itoa(n)
	}
	seen[id] = struct{}{}
	return id
}

// eventPriority maps the RFC 5545 PRIORITY value (1 highest, 9 lowest, 0 undefined),
// falling back to keywords in the event text.
func eventPriority(raw, text string) domain.Priority {
	if value, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && value > 0 {
		switch {
		case value <= 4:
			return domain.PriorityHigh
		case value == 5:
			return domain.PriorityMedium
		default:
			return domain.PriorityLow
		}
	}

	text = strings.ToLower(text)
	for _, keyword := range highPriorityKeywords {
		if strings.Contains(text, keyword) {
			return domain.PriorityHigh
		}
	}
	for _, keyword := range lowPriorityKeywords {
		if strings.Contains(text, keyword) {
			return domain.PriorityLow
		}
	}
	return domain.PriorityMedium
}
