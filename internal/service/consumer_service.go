package service

import (
	"context"
	"encoding/json"

	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the completion-recompute topic. Each message names
// a user whose answer set changed; the worker refreshes the stored
// completion percentage and photo count on their profile.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	profileService IProfileService
	log            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	profileService IProfileService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		profileService: profileService,
		log:            log,
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
	var payload RecomputeCompletionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	if err := cs.profileService.RecomputeCompletion(ctx, payload.UserId); err != nil {
		cs.log.Error("ConsumerService", "Completion recompute failed", map[string]interface{}{
			"user_id": payload.UserId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
