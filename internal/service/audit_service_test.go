package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"taxengine/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAuditLogs(t *testing.T) {
	repo := new(MockAuditRepository)
	svc := NewAuditService(repo)
	userID := uuid.New()
	at := time.Date(2024, 5, 2, 8, 15, 0, 0, time.UTC)

	repo.On("List", mock.Anything, "r-1", 1, 20).Return([]model.AuditLog{
		{ID: uuid.New(), UserID: &userID, Action: model.ActionCreateTaxRule, EntityID: "r-1", CreatedAt: at},
		{ID: uuid.New(), Action: model.ActionDeleteTaxRule, EntityID: "r-1", CreatedAt: at},
	}, int64(2), nil)

	logs, total, err := svc.GetAuditLogs(context.Background(), "r-1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 2)
	assert.Equal(t, userID.String(), logs[0].UserID)
	assert.Empty(t, logs[1].UserID)
	assert.Equal(t, "2024-05-02 08:15:00", logs[0].CreatedAt)
}

func TestGetAuditLogs_Error(t *testing.T) {
	repo := new(MockAuditRepository)
	repo.On("List", mock.Anything, "", 1, 20).Return(nil, int64(0), errors.New("timeout"))

	_, _, err := NewAuditService(repo).GetAuditLogs(context.Background(), "", 1, 20)
	assert.ErrorContains(t, err, "timeout")
}

func TestAuditWriter_SerializesDetails(t *testing.T) {
	repo := new(MockAuditRepository)
	var logged *model.AuditLog
	repo.On("Log", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		logged = args.Get(1).(*model.AuditLog)
	}).Return(nil)

	auditWriter{repo: repo}.write(context.Background(), "not-a-uuid", model.ActionUpdateTaxGroup, "g-1", "Retail",
		map[string]string{"name": "Retail"})

	require.NotNil(t, logged)
	assert.Nil(t, logged.UserID, "unparsable subject is dropped")
	var details map[string]string
	require.NoError(t, json.Unmarshal([]byte(logged.Details), &details))
	assert.Equal(t, "Retail", details["name"])

	// a nil repository is a no-op
	auditWriter{}.write(context.Background(), "", model.ActionUpdateTaxGroup, "g-1", "Retail", nil)
}
