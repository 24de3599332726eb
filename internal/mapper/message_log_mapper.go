package mapper

import (
	"ducochat-be/internal/entity"
	"ducochat-be/internal/model"

	"gorm.io/datatypes"
)

type MessageLogMapper struct{}

func NewMessageLogMapper() *MessageLogMapper {
	return &MessageLogMapper{}
}

func (m *MessageLogMapper) ToEntity(l *model.MessageLog) *entity.MessageLog {
	if l == nil {
		return nil
	}
	return &entity.MessageLog{
		Id:         l.Id,
		From:       l.From,
		Text:       l.Text,
		RawPayload: []byte(l.RawPayload),
		ReceivedAt: l.ReceivedAt,
	}
}

func (m *MessageLogMapper) ToModel(l *entity.MessageLog) *model.MessageLog {
	if l == nil {
		return nil
	}
	return &model.MessageLog{
		Id:         l.Id,
		From:       l.From,
		Text:       l.Text,
		RawPayload: datatypes.JSON(l.RawPayload),
		ReceivedAt: l.ReceivedAt,
	}
}

func (m *MessageLogMapper) ToEntities(logs []*model.MessageLog) []*entity.MessageLog {
	entities := make([]*entity.MessageLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
