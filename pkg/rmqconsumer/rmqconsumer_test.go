package rmqconsumer

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-manager-api/config"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()
	return buf.String()
}

func Test_delivery_Table(t *testing.T) {
	type tc struct {
		name       string
		routingKey string
		body       string
		wantOut    string
	}
	cases := []tc{
		{
			"created -> AnnouncementCreated",
			"created",
			`{"resource_kind":"announcement","resource_id":"a1"}`,
			"Event=AnnouncementCreated EventBody={\"resource_kind\":\"announcement\",\"resource_id\":\"a1\"}\n",
		},
		{
			"updated -> BlogUpdated",
			"updated",
			`{"resource_kind":"blog"}`,
			"Event=BlogUpdated EventBody={\"resource_kind\":\"blog\"}\n",
		},
		{
			"deleted -> EventDeleted",
			"deleted",
			`{"resource_kind":"event"}`,
			"Event=EventDeleted EventBody={\"resource_kind\":\"event\"}\n",
		},
		{
			"unknown action keeps kind only",
			"archived",
			`{"resource_kind":"blog"}`,
			"Event=Blog EventBody={\"resource_kind\":\"blog\"}\n",
		},
		{
			"body without kind",
			"created",
			`{}`,
			"Event=Created EventBody={}\n",
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := &Consumer{}
			out := captureStdout(t, func() {
				msg := amqp091.Delivery{RoutingKey: tt.routingKey, Body: []byte(tt.body)}
				err := c.delivery(msg)
				require.NoError(t, err)
			})
			require.Equal(t, tt.wantOut, out)
		})
	}
}

func TestConnect_InvalidDSN(t *testing.T) {
	l := zap.NewNop()
	c := New(config.MQ{}, l, nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
