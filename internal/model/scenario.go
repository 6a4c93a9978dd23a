package model

import "time"

// ScenarioStatus is the lifecycle state of a scenario
type ScenarioStatus string

const (
	ScenarioDraft ScenarioStatus = "draft"
	ScenarioSent  ScenarioStatus = "sent"
)

// AllLocations is the location wildcard that matches every user
const AllLocations = "All Locations"

// AllGenders matches users of any gender; an empty gender does the same
const AllGenders = "All"

// Demographic is the targeting rule of a scenario
type Demographic struct {
	AgeRange [2]int `json:"ageRange" bson:"ageRange"` // [min, max], inclusive
	Location string `json:"location" bson:"location"`
	Gender   string `json:"gender,omitempty" bson:"gender,omitempty"`
}

// MinAge returns the lower age bound
func (d Demographic) MinAge() int { return d.AgeRange[0] }

// MaxAge returns the upper age bound
func (d Demographic) MaxAge() int { return d.AgeRange[1] }

// Scenario is a demographic targeting rule used to distribute a survey
type Scenario struct {
	ID            string         `json:"id" bson:"_id"`
	Name          string         `json:"name,omitempty" bson:"name,omitempty"`
	Demographic   Demographic    `json:"demographic" bson:"demographic"`
	Percentage    float64        `json:"percentage" bson:"percentage"` // (0, 1]
	Questions     []string       `json:"questions" bson:"questions"`   // ordered question ids
	UsersAssigned []string       `json:"usersAssigned" bson:"usersAssigned"`
	Status        ScenarioStatus `json:"status" bson:"status"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Clone returns a deep copy of the scenario
func (s *Scenario) Clone() *Scenario {
	c := *s
	c.Questions = append([]string{}, s.Questions...)
	c.UsersAssigned = append([]string{}, s.UsersAssigned...)
	return &c
}

// GenerateScenarioRequest is the request body for creating a scenario
type GenerateScenarioRequest struct {
	Name        string      `json:"name"`
	Demographic Demographic `json:"demographic"`
	Percentage  float64     `json:"percentage" validate:"gt=0,lte=1"`
	Questions   []string    `json:"questions,omitempty"`
}

// AttachQuestionsRequest is the request body for selecting scenario questions
type AttachQuestionsRequest struct {
	QuestionIDs []string `json:"questionIds"`
}

// AttachQuestionSetRequest is the request body for attaching a whole question set
type AttachQuestionSetRequest struct {
	QuestionSetID string `json:"questionSetId" validate:"required"`
}
