package model

import "time"

// Trait is one of the Big Five (OCEAN) personality dimensions
type Trait string

const (
	TraitOpenness          Trait = "O"
	TraitConscientiousness Trait = "C"
	TraitExtraversion      Trait = "E"
	TraitAgreeableness     Trait = "A"
	TraitNeuroticism       Trait = "N"
)

// Traits lists the OCEAN dimensions in canonical order
var Traits = []Trait{TraitOpenness, TraitConscientiousness, TraitExtraversion, TraitAgreeableness, TraitNeuroticism}

// Name returns the long name of the trait
func (t Trait) Name() string {
	switch t {
	case TraitOpenness:
		return "Openness"
	case TraitConscientiousness:
		return "Conscientiousness"
	case TraitExtraversion:
		return "Extraversion"
	case TraitAgreeableness:
		return "Agreeableness"
	case TraitNeuroticism:
		return "Neuroticism"
	}
	return string(t)
}

// BehaviorModel tags a behavior with the OCEAN trait it measures
type BehaviorModel struct {
	ID          string    `json:"id" bson:"_id" yaml:"id"`
	Name        string    `json:"name" bson:"name" yaml:"name" validate:"required,max=120"`
	Description string    `json:"description" bson:"description" yaml:"description"`
	Trait       Trait     `json:"trait" bson:"trait" yaml:"trait" validate:"required,oneof=O C E A N"`
	Keywords    []string  `json:"keywords" bson:"keywords" yaml:"keywords"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" yaml:"-"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt" yaml:"-"`
}

// QuestionTemplate is an AI-generated question bound to a behavior model
type QuestionTemplate struct {
	ID              string    `json:"id" bson:"_id"`
	BehaviorModelID string    `json:"behaviorModelId" bson:"behaviorModelId"`
	Trait           Trait     `json:"trait" bson:"trait"`
	Prompt          string    `json:"prompt" bson:"prompt"`
	Options         []string  `json:"options" bson:"options"` // Likert labels, lowest first
	Reversed        bool      `json:"reversed" bson:"reversed"`
	Source          string    `json:"source" bson:"source"` // "gemini" or "mock"
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// GenerateTemplatesRequest is the request body for AI template generation
type GenerateTemplatesRequest struct {
	Count int `json:"count" validate:"gte=1,lte=20"`
}

// QuestionSet is an ordered, named list of question template ids
type QuestionSet struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name" validate:"required,max=120"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	QuestionIDs []string  `json:"questionIds" bson:"questionIds" validate:"required,min=1,dive,required"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
