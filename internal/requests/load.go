package requests

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a schedule request from a YAML file. JSON files work too.
// The request is validated before it is returned.
func LoadFile(filename string) (*ScheduleRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read process file: %w", err)
	}

	var request ScheduleRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse process file: %w", err)
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}
	return &request, nil
}
