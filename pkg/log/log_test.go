package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T) (Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(logrus.DebugLevel)

	return &logger{entry: logrus.NewEntry(base)}, buf
}

func TestWithCorrelationID(t *testing.T) {
	t.Run("gera um ID quando não informado", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		require.NotEmpty(t, id)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("reaproveita o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), " abc-123 ")

		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestLogger_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	l, buf := newBufferedLogger(t)

	l.WithFields(Fields{
		"campaign_id": "z1",
		"user_agent":  "curl",
		"method":      "GET",
	}).Info("teste")

	out := buf.String()
	assert.Contains(t, out, `"campaign_id":"z1"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.NotContains(t, out, "user_agent")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	l, buf := newBufferedLogger(t)

	ctx, _ := WithCorrelationID(context.Background(), "corr-1")
	l.WithContext(ctx).WithField("user_agent", "curl").Info("teste")

	out := buf.String()
	assert.Contains(t, out, `"correlation_id":"corr-1"`)
	assert.Contains(t, out, `"user_agent":"curl"`)
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	l, buf := newBufferedLogger(t)
	previous := L
	L = l
	t.Cleanup(func() { L = previous })

	ctx, _ := WithCorrelationID(context.Background(), "corr-7")
	ForContext(ctx).WithField("creator_id", "c1").Error("falhou")

	out := buf.String()
	assert.Contains(t, out, `"correlation_id":"corr-7"`)
	assert.Contains(t, out, `"creator_id":"c1"`)
}
