package utils

import "strconv"

// Pluralize returns "{count} {noun}" for a count of one and "{count} {noun}s" otherwise
func Pluralize(noun string, count int) string {
	s := strconv.Itoa(count) + " " + noun
	if count == 1 {
		return s
	}
	return s + "s"
}
