package service

import "time"

// Member categories (saf tiers) derived from age.
const (
	CategorySafAwwal = "Saf-e-Awwal" // over 55
	CategorySafDom   = "Saf-e-Dom"   // 40 to 55
	CategoryGeneral  = "General"
)

// Age is the calendar-year difference, minus one when the birthday has not
// yet occurred in the asOf year.
func Age(birthDate, asOf time.Time) int {
	age := asOf.Year() - birthDate.Year()
	if asOf.Month() < birthDate.Month() ||
		(asOf.Month() == birthDate.Month() && asOf.Day() < birthDate.Day()) {
		age--
	}
	return age
}

func CategoryForAge(age int) string {
	switch {
	case age > 55:
		return CategorySafAwwal
	case age >= 40:
		return CategorySafDom
	default:
		return CategoryGeneral
	}
}

// DeriveCategory recomputes the category from the birth date as of the given
// time. The stored label is only used when no birth date is on record, so
// members move tiers as they age without any write to their row.
func DeriveCategory(birthDate *time.Time, stored string, asOf time.Time) string {
	if birthDate == nil {
		return stored
	}
	return CategoryForAge(Age(*birthDate, asOf))
}
