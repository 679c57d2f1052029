package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/server/models"
)

func notificationFixture(t *testing.T) (*NotificationService, *fakeNotifsRepo) {
	t.Helper()
	db, _ := newSQLMockDB(t)

	notifs := &fakeNotifsRepo{byID: map[string]*models.Notification{
		"n1": {ID: "n1", RecipientID: "cust-1", Title: "Step approved", Status: models.NotificationUnread},
		"n2": {ID: "n2", RecipientID: "agent-1", Title: "New note", Status: models.NotificationUnread},
	}}
	rm := &fakeRepoManager{notifs: notifs}
	return NewNotificationService(db, rm), notifs
}

func TestNotificationList_SelfOnly(t *testing.T) {
	svc, _ := notificationFixture(t)

	list, err := svc.List(context.Background(), customerActor(), "cust-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n1", list[0].ID)

	_, err = svc.List(context.Background(), customerActor(), "agent-1")
	assert.True(t, errors.Is(err, common.ErrorForbidden))
}

func TestNotificationMarkRead_PersistsStatus(t *testing.T) {
	svc, notifs := notificationFixture(t)

	require.NoError(t, svc.MarkRead(context.Background(), customerActor(), "n1"))
	assert.Equal(t, models.NotificationRead, notifs.statusOf["n1"])
}

func TestNotificationMarkUnread_RoundTrip(t *testing.T) {
	svc, notifs := notificationFixture(t)

	require.NoError(t, svc.MarkRead(context.Background(), customerActor(), "n1"))
	require.NoError(t, svc.MarkUnread(context.Background(), customerActor(), "n1"))
	assert.Equal(t, models.NotificationUnread, notifs.statusOf["n1"])
}

func TestNotificationArchive_OwnershipEnforced(t *testing.T) {
	svc, notifs := notificationFixture(t)

	err := svc.Archive(context.Background(), customerActor(), "n2")
	assert.True(t, errors.Is(err, common.ErrorForbidden))
	assert.Empty(t, notifs.statusOf)

	require.NoError(t, svc.Archive(context.Background(), customerActor(), "n1"))
	assert.Equal(t, models.NotificationArchived, notifs.statusOf["n1"])
}

func TestNotificationDelete(t *testing.T) {
	svc, notifs := notificationFixture(t)

	require.NoError(t, svc.Delete(context.Background(), agentActor(), "n2"))
	assert.Equal(t, []string{"n2"}, notifs.deleted)

	err := svc.Delete(context.Background(), agentActor(), "missing")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestNotificationClearAll_ReturnsFlippedCount(t *testing.T) {
	svc, notifs := notificationFixture(t)
	notifs.clearedRows = 3

	n, err := svc.ClearAll(context.Background(), customerActor())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
