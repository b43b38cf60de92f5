//go:build unit

package publisher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/infra/publisher"
	publishermock "hotel-booking/internal/mock/publisher"
	"hotel-booking/internal/pkg/logger"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	aggregateID = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	createdAt   = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
)

func outboxMessage() shared.OutboxMessage {
	return shared.OutboxMessage{
		ID:          7,
		AggregateID: aggregateID,
		EventType:   shared.EventBookingReady,
		Payload:     []byte(`{"hold_id":"22222222-2222-4222-8222-222222222222"}`),
		CreatedAt:   createdAt,
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockWriter := publishermock.NewMockMessageWriter(ctrl)
	p := publisher.NewKafkaPublisher(mockWriter, logger.Discard())

	mockWriter.EXPECT().WriteMessages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			m := msgs[0]
			assert.Equal(t, aggregateID.String(), string(m.Key))
			assert.JSONEq(t, `{"hold_id":"22222222-2222-4222-8222-222222222222"}`, string(m.Value))
			assert.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte("booking.ready")}}, m.Headers)
			assert.True(t, m.Time.Equal(createdAt))
			return nil
		})

	require.NoError(t, p.Publish(ctx, outboxMessage()))
}

func TestKafkaPublisher_Publish_WriterError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockWriter := publishermock.NewMockMessageWriter(ctrl)
	p := publisher.NewKafkaPublisher(mockWriter, logger.Discard())

	brokerDown := errors.New("dial tcp: connection refused")
	mockWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(brokerDown)

	err := p.Publish(ctx, outboxMessage())

	require.Error(t, err)
	assert.ErrorIs(t, err, brokerDown)
	assert.Contains(t, err.Error(), "booking.ready")
}

func TestKafkaPublisher_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockWriter := publishermock.NewMockMessageWriter(ctrl)
	p := publisher.NewKafkaPublisher(mockWriter, logger.Discard())

	brokerDown := errors.New("dial tcp: connection refused")
	// the sixth publish never reaches the writer
	mockWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(brokerDown).Times(5)

	for range 5 {
		require.ErrorIs(t, p.Publish(ctx, outboxMessage()), brokerDown)
	}

	err := p.Publish(ctx, outboxMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestKafkaPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWriter := publishermock.NewMockMessageWriter(ctrl)
	p := publisher.NewKafkaPublisher(mockWriter, logger.Discard())

	mockWriter.EXPECT().Close().Return(nil)

	require.NoError(t, p.Close())
}
