package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/unitofwork"
	"ducochat-be/pkg/bot"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the inbound message queue: it logs each message
// to the database and hands it to the conversation engine. Because the
// queue delivers one message at a time per subscription, webhook handlers
// stay fast no matter how slow the Graph API is.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	engine     *bot.Engine
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	engine *bot.Engine,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		engine:     engine,
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
	var job dto.InboundMessageJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Printf("[ERROR] Failed to unmarshal inbound message: %v", err)
		msg.Ack() // malformed, retrying will not help
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	logEntry := entity.MessageLog{
		Id:         uuid.New(),
		From:       job.From,
		Text:       job.Text,
		RawPayload: job.RawPayload,
		ReceivedAt: time.Now(),
	}
	if err := uow.MessageLogRepository().Create(ctx, &logEntry); err != nil {
		// The reply matters more than the audit trail.
		log.Printf("[WARN] Failed to persist message log for %s: %v", job.From, err)
	}

	if bot.IsGreeting(job.Text) {
		if err := cs.engine.OnGreeting(ctx, job.From); err != nil {
			log.Printf("[ERROR] Bot failed to greet %s: %v", job.From, err)
		}
	} else if err := cs.engine.OnMessage(ctx, job.From, job.Text); err != nil {
		log.Printf("[ERROR] Bot failed to handle message from %s: %v", job.From, err)
	}

	msg.Ack()
}
