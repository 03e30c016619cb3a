package grpc

import (
	"fmt"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"

	"world-chat/domain"
)

// ParticipantToStruct builds the login message sent when opening a Listen stream.
func ParticipantToStruct(info domain.ParticipantInfo) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"guid":            float64(info.ID),
		"name":            info.Name,
		"team":            float64(info.Team),
		"level":           float64(info.Level),
		"security":        float64(info.Security),
		"guild":           float64(info.GuildID),
		"skills":          lo.Map(info.Skills, func(s uint32, _ int) any { return float64(s) }),
		"accept_whispers": info.AcceptWhispers,
	})
}

// ParticipantFromStruct reads the login message. Only guid and name are required.
func ParticipantFromStruct(s *structpb.Struct) (domain.ParticipantInfo, error) {
	fields := s.GetFields()
	info := domain.ParticipantInfo{
		ID:             domain.GUID(fields["guid"].GetNumberValue()),
		Name:           fields["name"].GetStringValue(),
		Team:           domain.Team(fields["team"].GetNumberValue()),
		Level:          uint8(fields["level"].GetNumberValue()),
		Security:       domain.SecurityTier(fields["security"].GetNumberValue()),
		GuildID:        uint32(fields["guild"].GetNumberValue()),
		AcceptWhispers: fields["accept_whispers"].GetBoolValue(),
	}
	for _, v := range fields["skills"].GetListValue().GetValues() {
		info.Skills = append(info.Skills, uint32(v.GetNumberValue()))
	}
	if info.ID == 0 || info.Name == "" {
		return domain.ParticipantInfo{}, fmt.Errorf("login requires a guid and a name")
	}
	return info, nil
}
