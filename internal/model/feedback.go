package model

import "time"

// TraitScore is a single Likert answer scored against a trait
type TraitScore struct {
	QuestionID string `json:"questionId" bson:"questionId" validate:"required"`
	Trait      Trait  `json:"trait" bson:"trait" validate:"required,oneof=O C E A N"`
	Score      int    `json:"score" bson:"score" validate:"gte=1,lte=5"`
}

// Feedback is one user's behavior feedback for a scenario
type Feedback struct {
	ID          string       `json:"id" bson:"_id"`
	ScenarioID  string       `json:"scenarioId" bson:"scenarioId"`
	UserID      string       `json:"userId" bson:"userId" validate:"required"`
	Scores      []TraitScore `json:"scores" bson:"scores" validate:"required,min=1,dive"`
	Comment     string       `json:"comment,omitempty" bson:"comment,omitempty"`
	SubmittedAt time.Time    `json:"submittedAt" bson:"submittedAt"`
}

// TraitSummary aggregates the scores collected for one trait
type TraitSummary struct {
	Trait  Trait   `json:"trait"`
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// OceanAnalytics is the per-trait score report of a scenario
type OceanAnalytics struct {
	ScenarioID        string         `json:"scenarioId"`
	Respondents       int            `json:"respondents"` // current assignees with feedback
	AssignedUsers     int            `json:"assignedUsers"`
	ResponseRate      float64        `json:"responseRate"`      // respondents / assigned
	FormerRespondents int            `json:"formerRespondents"` // dropped by a later re-simulation
	Traits            []TraitSummary `json:"traits"`
	GeneratedAt       time.Time      `json:"generatedAt"`
}
