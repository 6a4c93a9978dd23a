package scenario

import (
	"fmt"
	"greenmind/internal/model"
)

// Matches reports whether a user satisfies a demographic rule.
// Age bounds are inclusive, location and gender are exact case-sensitive
// matches unless the rule uses the wildcard value.
func Matches(user *model.User, d model.Demographic) bool {
	if user == nil {
		return false
	}
	if user.Age < d.MinAge() || user.Age > d.MaxAge() {
		return false
	}
	if d.Location != model.AllLocations && user.Location != d.Location {
		return false
	}
	if d.Gender != "" && d.Gender != model.AllGenders && user.Gender != d.Gender {
		return false
	}
	return true
}

// Filter returns the users matching the demographic, preserving order
func Filter(users []*model.User, d model.Demographic) []*model.User {
	out := make([]*model.User, 0, len(users))
	for _, u := range users {
		if Matches(u, d) {
			out = append(out, u)
		}
	}
	return out
}

// ValidateDemographic rejects malformed targeting rules
func ValidateDemographic(d model.Demographic) error {
	if d.MinAge() < 0 {
		return fmt.Errorf("%w: age range must not be negative", ErrInvalidArgument)
	}
	if d.MinAge() > d.MaxAge() {
		return fmt.Errorf("%w: age range min %d is greater than max %d", ErrInvalidArgument, d.MinAge(), d.MaxAge())
	}
	if d.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidArgument)
	}
	return nil
}
