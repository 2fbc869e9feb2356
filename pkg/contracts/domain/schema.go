package domain

import (
	"fmt"
	"strings"
)

// Default column names follow the Water Quality Portal result download
// format, the layout the cleaning pipeline was built around.
const (
	DefaultCharacteristicNameColumn = "CharacteristicName"
	DefaultResultValueColumn        = "ResultMeasureValue"
	DefaultDetectionLimitColumn     = "DetectionQuantitationLimitMeasure.MeasureValue"
	DefaultDetectionConditionColumn = "ResultDetectionConditionText"
	DefaultCommentColumn            = "ResultCommentText"
	DefaultParameterColumn          = "Parameter"
	DefaultMissingResultColumn      = "MissingResult"
	DefaultGroupSizeColumn          = "GroupSize"
	DefaultIsDuplicateColumn        = "IsDuplicate"
)

// Schema names the dataset columns the cleaning pipeline reads and
// writes. The first five identify input columns expected in a portal
// download; the rest name the columns the pipeline derives.
type Schema struct {
	CharacteristicName string `json:"characteristic_name"`
	ResultValue        string `json:"result_value"`
	DetectionLimit     string `json:"detection_limit"`
	DetectionCondition string `json:"detection_condition"`
	Comment            string `json:"comment"`
	Parameter          string `json:"parameter"`
	MissingResult      string `json:"missing_result"`
	GroupSize          string `json:"group_size"`
	IsDuplicate        string `json:"is_duplicate"`
}

// DefaultSchema returns the column names of a standard Water Quality
// Portal result download.
func DefaultSchema() Schema {
	return Schema{
		CharacteristicName: DefaultCharacteristicNameColumn,
		ResultValue:        DefaultResultValueColumn,
		DetectionLimit:     DefaultDetectionLimitColumn,
		DetectionCondition: DefaultDetectionConditionColumn,
		Comment:            DefaultCommentColumn,
		Parameter:          DefaultParameterColumn,
		MissingResult:      DefaultMissingResultColumn,
		GroupSize:          DefaultGroupSizeColumn,
		IsDuplicate:        DefaultIsDuplicateColumn,
	}
}

// Required returns the input columns a dataset must carry before the
// full pipeline can run against it.
func (s Schema) Required() []string {
	return []string{
		s.CharacteristicName,
		s.ResultValue,
		s.DetectionLimit,
		s.DetectionCondition,
		s.Comment,
	}
}

// Derived returns the columns the pipeline adds to a dataset.
func (s Schema) Derived() []string {
	return []string{
		s.Parameter,
		s.MissingResult,
		s.GroupSize,
		s.IsDuplicate,
	}
}

// Validate checks that every column is named and that no two roles
// share a name. Colliding names would make a derived column silently
// overwrite an input column.
func (s Schema) Validate() error {
	roles := []struct {
		role string
		name string
	}{
		{"characteristic_name", s.CharacteristicName},
		{"result_value", s.ResultValue},
		{"detection_limit", s.DetectionLimit},
		{"detection_condition", s.DetectionCondition},
		{"comment", s.Comment},
		{"parameter", s.Parameter},
		{"missing_result", s.MissingResult},
		{"group_size", s.GroupSize},
		{"is_duplicate", s.IsDuplicate},
	}
	seen := make(map[string]string, len(roles))
	for _, r := range roles {
		if strings.TrimSpace(r.name) == "" {
			return fmt.Errorf("schema: column for %s is blank", r.role)
		}
		if prev, ok := seen[r.name]; ok {
			return fmt.Errorf("schema: columns %s and %s collide on %q", prev, r.role, r.name)
		}
		seen[r.name] = r.role
	}
	return nil
}
