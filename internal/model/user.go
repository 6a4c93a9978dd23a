package model

// User is a member of the survey population. The authoritative copy lives in
// the users collection; the scenario store only keeps assignment back-references.
type User struct {
	ID                string   `json:"id" bson:"_id" yaml:"id" validate:"required"`
	Name              string   `json:"name,omitempty" bson:"name,omitempty" yaml:"name,omitempty"`
	Age               int      `json:"age" bson:"age" yaml:"age" validate:"gte=0,lte=150"`
	Location          string   `json:"location" bson:"location" yaml:"location"`
	Gender            string   `json:"gender,omitempty" bson:"gender,omitempty" yaml:"gender,omitempty"`
	AssignedScenarios []string `json:"assignedScenarios" bson:"-" yaml:"-"`
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	c := *u
	c.AssignedScenarios = append([]string{}, u.AssignedScenarios...)
	return &c
}
