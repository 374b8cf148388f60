package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.AnalysisSession) *entity.AnalysisSession {
	if s == nil {
		return nil
	}
	return &entity.AnalysisSession{
		Id:                 s.Id,
		Email:              s.Email,
		MobileNumber:       s.MobileNumber,
		TargetRole:         s.TargetRole,
		FullName:           s.FullName,
		CurrentRole:        s.CurrentRole,
		ResumeText:         s.ResumeText,
		LinkedinText:       s.LinkedinText,
		Status:             s.Status,
		Tier:               s.Tier,
		PendingUpgradeTier: s.PendingUpgradeTier,
		CurrentStep:        s.CurrentStep,
		AssemblyState:      s.AssemblyState,
		FailureReason:      s.FailureReason,
		Extraction:         jsonToMap(s.Extraction),
		Report:             jsonToMap(s.Report),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.AnalysisSession) *model.AnalysisSession {
	if s == nil {
		return nil
	}
	return &model.AnalysisSession{
		Id:                 s.Id,
		Email:              s.Email,
		MobileNumber:       s.MobileNumber,
		TargetRole:         s.TargetRole,
		FullName:           s.FullName,
		CurrentRole:        s.CurrentRole,
		ResumeText:         s.ResumeText,
		LinkedinText:       s.LinkedinText,
		Status:             s.Status,
		Tier:               s.Tier,
		PendingUpgradeTier: s.PendingUpgradeTier,
		CurrentStep:        s.CurrentStep,
		AssemblyState:      s.AssemblyState,
		FailureReason:      s.FailureReason,
		Extraction:         mapToJSON(s.Extraction),
		Report:             mapToJSON(s.Report),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func jsonToMap(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func mapToJSON(in map[string]interface{}) datatypes.JSON {
	if in == nil {
		return nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
