package entity

import (
	"StudentPlanner/internal/api/planner"
	"strings"
	"time"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

// Weekdays is the display order of the schedule grid, Monday first.
var Weekdays = [7]Weekday{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

// weekdayAliases maps the Indonesian day keys used by older planner data onto
// the canonical values.
var weekdayAliases = map[string]Weekday{
	"senin":  WeekdayMonday,
	"selasa": WeekdayTuesday,
	"rabu":   WeekdayWednesday,
	"kamis":  WeekdayThursday,
	"jumat":  WeekdayFriday,
	"sabtu":  WeekdaySaturday,
	"minggu": WeekdaySunday,
}

var weekdayDisplayNames = map[Weekday]string{
	WeekdayMonday:    "Senin",
	WeekdayTuesday:   "Selasa",
	WeekdayWednesday: "Rabu",
	WeekdayThursday:  "Kamis",
	WeekdayFriday:    "Jumat",
	WeekdaySaturday:  "Sabtu",
	WeekdaySunday:    "Minggu",
}

func IsValidWeekday(day string) bool {
	switch Weekday(day) {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}

// ParseWeekday normalizes user input (canonical or Indonesian alias) into a
// Weekday. An empty string is valid and means the course is unscheduled.
func ParseWeekday(day string) (Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(day))
	if normalized == "" {
		return "", nil
	}

	if IsValidWeekday(normalized) {
		return Weekday(normalized), nil
	}

	if canonical, ok := weekdayAliases[normalized]; ok {
		return canonical, nil
	}

	return "", planner.ErrInvalidDay
}

func (d Weekday) DisplayName() string {
	if name, ok := weekdayDisplayNames[d]; ok {
		return name
	}
	return string(d)
}

type Course struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Day       Weekday `json:"day,omitempty"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Room      string  `json:"room,omitempty"`
	Note      string  `json:"note"`
	Tasks     []Task  `json:"tasks"`
}

func (c *Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return planner.ErrCourseNameRequired
	}

	if c.Day != "" && !IsValidWeekday(string(c.Day)) {
		return planner.ErrInvalidDay
	}

	return nil
}

// Progress counts completed tasks; percent is 0 when the course has no tasks.
func (c *Course) Progress() (completed int, total int, percent float64) {
	total = len(c.Tasks)
	for _, task := range c.Tasks {
		if task.Done {
			completed++
		}
	}

	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}

	return completed, total, percent
}

func (c *Course) AllTasksDone() bool {
	if len(c.Tasks) == 0 {
		return false
	}

	for _, task := range c.Tasks {
		if !task.Done {
			return false
		}
	}

	return true
}

func (c *Course) TaskByID(id string) (*Task, bool) {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i], true
		}
	}

	return nil, false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func IsValidPriority(priority string) bool {
	switch Priority(priority) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority falls back to medium, matching the planner's default.
func ParsePriority(priority string) Priority {
	normalized := strings.ToLower(strings.TrimSpace(priority))
	if IsValidPriority(normalized) {
		return Priority(normalized)
	}
	return PriorityMedium
}

// deadlineLayouts are the accepted shapes of a stored deadline, the primary
// one being what an HTML datetime-local input emits.
var deadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func ParseDeadline(deadline string) (time.Time, error) {
	trimmed := strings.TrimSpace(deadline)
	if trimmed == "" {
		return time.Time{}, planner.ErrDeadlineRequired
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, planner.ErrInvalidDeadline
}

type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Deadline  string   `json:"deadline"`
	Priority  Priority `json:"priority"`
	Note      string   `json:"note"`
	Done      bool     `json:"done"`
	CreatedAt string   `json:"createdAt"`
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return planner.ErrTaskTextRequired
	}

	if _, err := ParseDeadline(t.Deadline); err != nil {
		return err
	}

	if !IsValidPriority(string(t.Priority)) {
		return planner.ErrInvalidPriority
	}

	return nil
}

// DeadlineTime returns the parsed deadline, zero time if it does not parse.
func (t *Task) DeadlineTime() time.Time {
	parsed, err := ParseDeadline(t.Deadline)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
