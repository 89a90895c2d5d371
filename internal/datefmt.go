package internal

import (
	"fmt"
	"time"
)

// Month names indexed by time.Month; index 0 is unused.
var (
	monthsEN = [13]string{"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	monthsFR = [13]string{"", "Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"}
)

const unknownMonth = "ERROR"

// FormatDate formats a millisecond timestamp in the process's local timezone:
//
//	EN: On January 01 2019 at 00:42:00
//	FR: Le 01 Janvier 2019 à 00:42:00
func FormatDate(timestampMs int64, locale Locale) (string, error) {
	return FormatDateIn(timestampMs, locale, time.Local)
}

// FormatDateIn is FormatDate with an explicit location
func FormatDateIn(timestampMs int64, locale Locale, loc *time.Location) (string, error) {
	t := time.UnixMilli(timestampMs).In(loc)
	clock := t.Format("15:04:05")

	switch locale {
	case LocaleEN:
		return fmt.Sprintf("On %s %02d %d at %s", monthName(monthsEN, t.Month()), t.Day(), t.Year(), clock), nil
	case LocaleFR:
		return fmt.Sprintf("Le %02d %s %d à %s", t.Day(), monthName(monthsFR, t.Month()), t.Year(), clock), nil
	default:
		return "", &UnsupportedLocaleError{Locale: string(locale)}
	}
}

func monthName(table [13]string, m time.Month) string {
	if m < time.January || m > time.December {
		return unknownMonth
	}
	return table[m]
}
