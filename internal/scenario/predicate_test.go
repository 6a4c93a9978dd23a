package scenario

import (
	"greenmind/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	hanoi := model.Demographic{AgeRange: [2]int{18, 25}, Location: "Hanoi"}

	tests := []struct {
		name string
		user model.User
		d    model.Demographic
		want bool
	}{
		{"lower bound inclusive", model.User{ID: "u", Age: 18, Location: "Hanoi"}, hanoi, true},
		{"upper bound inclusive", model.User{ID: "u", Age: 25, Location: "Hanoi"}, hanoi, true},
		{"below range", model.User{ID: "u", Age: 17, Location: "Hanoi"}, hanoi, false},
		{"above range", model.User{ID: "u", Age: 26, Location: "Hanoi"}, hanoi, false},
		{"other location", model.User{ID: "u", Age: 20, Location: "Da Nang"}, hanoi, false},
		{"location is case sensitive", model.User{ID: "u", Age: 20, Location: "hanoi"}, hanoi, false},
		{"wildcard location", model.User{ID: "u", Age: 20, Location: "Hue"},
			model.Demographic{AgeRange: [2]int{0, 120}, Location: model.AllLocations}, true},
		{"gender filter", model.User{ID: "u", Age: 20, Location: "Hanoi", Gender: "male"},
			model.Demographic{AgeRange: [2]int{18, 25}, Location: "Hanoi", Gender: "female"}, false},
		{"gender wildcard", model.User{ID: "u", Age: 20, Location: "Hanoi", Gender: "male"},
			model.Demographic{AgeRange: [2]int{18, 25}, Location: "Hanoi", Gender: model.AllGenders}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			assert.Equal(t, tt.want, Matches(&u, tt.d))
		})
	}
}

func TestMatchesProperty(t *testing.T) {
	locations := []string{"Hanoi", "Hue", model.AllLocations}
	for age := -1; age <= 40; age++ {
		for _, uloc := range locations[:2] {
			for _, dloc := range locations {
				u := &model.User{ID: "u", Age: age, Location: uloc}
				d := model.Demographic{AgeRange: [2]int{10, 30}, Location: dloc}
				want := (dloc == model.AllLocations || uloc == dloc) && age >= 10 && age <= 30
				assert.Equal(t, want, Matches(u, d), "age=%d user=%s rule=%s", age, uloc, dloc)
			}
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := Filter(nil, model.Demographic{AgeRange: [2]int{0, 99}, Location: model.AllLocations})
	assert.Empty(t, got)
}

func TestValidateDemographic(t *testing.T) {
	assert.NoError(t, ValidateDemographic(model.Demographic{AgeRange: [2]int{18, 18}, Location: "Hanoi"}))
	assert.ErrorIs(t, ValidateDemographic(model.Demographic{AgeRange: [2]int{30, 18}, Location: "Hanoi"}), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateDemographic(model.Demographic{AgeRange: [2]int{-1, 18}, Location: "Hanoi"}), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateDemographic(model.Demographic{AgeRange: [2]int{1, 18}}), ErrInvalidArgument)
}
