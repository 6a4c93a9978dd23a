package scenario

import (
	"encoding/json"
	"fmt"
	"greenmind/internal/model"
)

// ExportJSON serializes all scenarios in creation order
func (s *Store) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.Scenarios(), "", "  ")
}

// ImportJSON replaces the scenario registry with the records in data.
// The whole document is validated first; on error nothing is replaced.
func (s *Store) ImportJSON(data []byte) error {
	var records []*model.Scenario
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: decode scenarios: %v", ErrInvalidArgument, err)
	}
	if records == nil {
		return fmt.Errorf("%w: document must be a JSON array of scenarios", ErrInvalidArgument)
	}

	next := make(map[string]*model.Scenario, len(records))
	order := make([]string, 0, len(records))
	for i, sc := range records {
		if sc == nil {
			return fmt.Errorf("%w: record %d is null", ErrInvalidArgument, i)
		}
		if err := validateRecord(sc); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := next[sc.ID]; dup {
			return fmt.Errorf("%w: duplicate scenario id %q", ErrInvalidArgument, sc.ID)
		}
		next[sc.ID] = sc.Clone()
		order = append(order, sc.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = next
	s.scenarioOrder = order
	return nil
}

func validateRecord(sc *model.Scenario) error {
	if sc.ID == "" {
		return fmt.Errorf("%w: scenario id is required", ErrInvalidArgument)
	}
	if err := ValidateDemographic(sc.Demographic); err != nil {
		return err
	}
	if err := ValidatePercentage(sc.Percentage); err != nil {
		return err
	}
	if _, err := normalizeQuestions(sc.Questions); err != nil {
		return err
	}
	switch sc.Status {
	case model.ScenarioDraft:
		if len(sc.UsersAssigned) > 0 {
			return fmt.Errorf("%w: draft scenario %s has assigned users", ErrInvalidArgument, sc.ID)
		}
	case model.ScenarioSent:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, sc.Status)
	}
	return nil
}
