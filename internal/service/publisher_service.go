package service

import (
	"context"
	"encoding/json"
	"fmt"

	"careeriq-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishAnalysisJob(ctx context.Context, job *dto.AnalysisJobMessage) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) PublishAnalysisJob(ctx context.Context, job *dto.AnalysisJobMessage) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal analysis job: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	return s.pubSub.Publish(s.topicName, msg)
}
