package rabbitmq_test

import (
	"io"
	"log"
	"os"
	"testing"

	"recipebox/pkg/rabbitmq"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLogRecipeEvent(t *testing.T) {
	err := rabbitmq.LogRecipeEvent(amqp.Delivery{
		DeliveryTag: 1,
		Body:        []byte(`{"event":"recipe.created","recipe_id":"rec-1","author_id":"user-1"}`),
	})
	assert.NoError(t, err)
}

func TestLogRecipeEventMalformedBody(t *testing.T) {
	// A body that does not decode must error so the delivery is nacked.
	err := rabbitmq.LogRecipeEvent(amqp.Delivery{
		DeliveryTag: 2,
		Body:        []byte("not json"),
	})
	assert.Error(t, err)
}
