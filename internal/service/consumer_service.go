package service

import (
	"context"
	"encoding/json"

	"careeriq-be/internal/dto"
	"careeriq-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the analysis job topic and drives the pipeline.
// One message equals one pipeline run; duplicate deliveries are absorbed
// by the per-session claim inside the analysis service.
type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	analysisService IAnalysisService
	logger          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	analysisService IAnalysisService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		analysisService: analysisService,
		logger:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.AnalysisJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal analysis job", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("consumer", "processing analysis job", map[string]interface{}{
		"session_id": job.SessionId.String(),
		"kind":       job.Kind,
	})

	var err error
	switch job.Kind {
	case dto.JobKindUpgrade:
		err = cs.analysisService.RunUpgrade(ctx, job.SessionId)
	default:
		err = cs.analysisService.RunPipeline(ctx, job.SessionId)
	}

	if err != nil {
		cs.logger.Error("consumer", "analysis job failed", map[string]interface{}{
			"session_id": job.SessionId.String(),
			"kind":       job.Kind,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
