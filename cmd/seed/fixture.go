package main

import (
	"fmt"
	"greenmind/internal/model"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// populationFile is the YAML layout of a user fixture
type populationFile struct {
	Users []model.User `yaml:"users"`
}

// modelsFile is the YAML layout of a behavior model fixture
type modelsFile struct {
	Models []model.BehaviorModel `yaml:"models"`
}

var validate = validator.New()

func loadPopulation(path string) ([]model.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parsePopulation(data)
}

func parsePopulation(data []byte) ([]model.User, error) {
	var f populationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse population: %w", err)
	}

	seen := make(map[string]bool, len(f.Users))
	for i := range f.Users {
		u := &f.Users[i]
		if err := validate.Struct(u); err != nil {
			return nil, fmt.Errorf("user %d: %w", i, err)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("user %d: duplicate id %q", i, u.ID)
		}
		seen[u.ID] = true
	}
	return f.Users, nil
}

func loadModels(path string) ([]model.BehaviorModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseModels(data)
}

func parseModels(data []byte) ([]model.BehaviorModel, error) {
	var f modelsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse models: %w", err)
	}
	for i := range f.Models {
		if err := validate.Struct(&f.Models[i]); err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
	}
	return f.Models, nil
}
