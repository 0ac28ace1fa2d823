package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	_, err := uuid.Parse(correlationID)
	require.NoError(t, err, "o id de correlação deve ser um UUID válido")
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestGetCorrelationIDWithoutValue(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

// O logger obtido via ForContext carrega o id de correlação do contexto e os
// campos de domínio sobrevivem ao filtro de desenvolvimento.
func TestForContextCarriesCorrelationID(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, correlationID := WithCorrelationID(context.Background())
	ForContext(ctx).WithFields(Fields{
		"batch_id": "IMP-abc123",
		"mode":     "WEEKLY_UPDATE",
	}).Info("lote iniciado")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, correlationID, entry.Data[correlationIDField])
	assert.Equal(t, "IMP-abc123", entry.Data["batch_id"])
	assert.Equal(t, "WEEKLY_UPDATE", entry.Data["mode"])
}

func TestForContextWithoutCorrelationID(t *testing.T) {
	assert.Equal(t, L, ForContext(context.Background()))
}
