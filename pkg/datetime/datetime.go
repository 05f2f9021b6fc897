package datetime

import (
	"fmt"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// days is indexed by time.Weekday, Sunday first.
var days = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var dayNames = map[string]string{
	"monday":    "Senin",
	"tuesday":   "Selasa",
	"wednesday": "Rabu",
	"thursday":  "Kamis",
	"friday":    "Jumat",
	"saturday":  "Sabtu",
	"sunday":    "Minggu",
}

var monthNamesShort = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

var monthNamesLong = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// DayOfWeek returns the canonical lowercase weekday name of t.
func DayOfWeek(t time.Time) string {
	return days[int(t.Weekday())]
}

// DaysUntil is ceil((deadline - now) / 1 day) on millisecond precision: 0 for
// a deadline that already passed earlier today, 1 for anything later today or
// tomorrow, negative for older deadlines. The day boundary follows the raw
// millisecond difference, not midnight.
func DaysUntil(deadline, now time.Time) int {
	diffMillis := deadline.Sub(now).Milliseconds()

	daysLeft := int(diffMillis / millisPerDay)
	if diffMillis > 0 && diffMillis%millisPerDay != 0 {
		daysLeft++
	}

	return daysLeft
}

// IsUrgent reports whether the deadline falls within the next 0-2 days.
func IsUrgent(deadline, now time.Time) bool {
	daysLeft := DaysUntil(deadline, now)
	return daysLeft >= 0 && daysLeft <= 2
}

// FormatRelativeDeadline renders a deadline relative to now, in the planner's
// display language.
func FormatRelativeDeadline(deadline, now time.Time) string {
	daysLeft := DaysUntil(deadline, now)

	switch {
	case daysLeft == 0:
		return fmt.Sprintf("Hari ini, %s", deadline.Format("15:04"))
	case daysLeft == 1:
		return fmt.Sprintf("Besok, %s", deadline.Format("15:04"))
	case daysLeft < 0:
		return fmt.Sprintf("%d hari yang lalu", -daysLeft)
	default:
		return fmt.Sprintf("%d hari lagi", daysLeft)
	}
}

// WeekStart returns the Monday 00:00 of the week containing now, shifted by
// offset whole weeks. Offset 0 always means the current week, Sundays included.
func WeekStart(now time.Time, offset int) time.Time {
	daysFromMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysFromMonday+offset*7)

	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatTime normalizes an HH:MM string, leaving anything unparseable as-is.
func FormatTime(hhmm string) string {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return parsed.Format("15:04")
}

// FormatDate renders "Sen, 5 Jan", the short list format.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s", dayNames[DayOfWeek(t)][:3], t.Day(), monthNamesShort[int(t.Month())-1])
}

// FormatDateShort renders "5 Jan", used for week range labels.
func FormatDateShort(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthNamesShort[int(t.Month())-1])
}

// FormatDateTime renders the long form, "Senin, 5 Januari 2026 08:00".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d %s",
		dayNames[DayOfWeek(t)], t.Day(), monthNamesLong[int(t.Month())-1], t.Year(), t.Format("15:04"))
}
