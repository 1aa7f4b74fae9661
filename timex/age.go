package timex

import "time"

// Age returns the number of whole years elapsed between birthDate and today,
// where today is read from the wall clock in birthDate's location.
func Age(birthDate time.Time) int {
	return AgeAt(birthDate, time.Now().In(birthDate.Location()))
}

// AgeAt returns the number of whole years elapsed between birthDate and the
// calendar date of today. Only dates are compared, times of day are ignored.
//
// A 29 February birthday is reached on 1 March in non-leap years.
func AgeAt(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()

	if birthDate.Month() > today.Month() ||
		(birthDate.Month() == today.Month() && birthDate.Day() > today.Day()) {
		age--
	}

	return age
}
