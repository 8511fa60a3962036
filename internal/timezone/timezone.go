package timezone

import "time"

// Le salon vit dans un seul fuseau : toutes les dates/heures saisies sont
// des heures murales locales, jamais converties en UTC à la saisie.
const DefaultTimezone = "Africa/Algiers"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseLocalDateTime lit "2006-01-02" + "15:04" comme heure murale locale.
func ParseLocalDateTime(tz, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, Location(tz))
}

// ParseLocalDate lit "2006-01-02" à minuit local.
func ParseLocalDate(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}
