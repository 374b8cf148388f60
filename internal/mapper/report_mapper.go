package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"careeriq-be/internal/entity"
	"careeriq-be/internal/model"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(r *model.Report) *entity.Report {
	if r == nil {
		return nil
	}
	return &entity.Report{
		Id:             r.Id,
		SessionId:      r.SessionId,
		Tier:           r.Tier,
		Sections:       jsonToMap(r.Sections),
		PromptVersions: jsonToStringMap(r.PromptVersions),
		SchemaVersions: jsonToStringMap(r.SchemaVersions),
		CreatedAt:      r.CreatedAt,
	}
}

func (m *ReportMapper) ToModel(r *entity.Report) *model.Report {
	if r == nil {
		return nil
	}
	return &model.Report{
		Id:             r.Id,
		SessionId:      r.SessionId,
		Tier:           r.Tier,
		Sections:       mapToJSON(r.Sections),
		PromptVersions: stringMapToJSON(r.PromptVersions),
		SchemaVersions: stringMapToJSON(r.SchemaVersions),
		CreatedAt:      r.CreatedAt,
	}
}

func jsonToStringMap(raw datatypes.JSON) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func stringMapToJSON(in map[string]string) datatypes.JSON {
	if in == nil {
		return nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
