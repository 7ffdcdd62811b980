package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/application/usecase"
	"github.com/tu-usuario/crm-closers/internal/domain"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

func seedNotification(t *testing.T, repo *fakeNotificationRepo, id, userID string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Notification{
		ID:        id,
		UserID:    userID,
		Message:   "mensaje " + id,
		CreatedAt: time.Now(),
	}))
}

func TestNotificationSend(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := usecase.NewNotificationUseCase(repo)

	out, err := uc.Send(dto.SendNotificationRequest{UserID: "closer-1", Message: "hola"})
	require.NoError(t, err)

	saved, _ := repo.GetByID(out.NotificationID)
	require.NotNil(t, saved)
	assert.Equal(t, "closer-1", saved.UserID)
	assert.False(t, saved.IsRead, "toda notificación nace sin leer")

	_, err = uc.Send(dto.SendNotificationRequest{UserID: "", Message: "hola"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Send(dto.SendNotificationRequest{UserID: "closer-1", Message: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNotificationMarkRead_Idempotente(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := usecase.NewNotificationUseCase(repo)
	seedNotification(t, repo, "n1", "closer-1")

	require.NoError(t, uc.MarkRead(ownerIdentity, "n1"))
	require.NoError(t, uc.MarkRead(ownerIdentity, "n1"), "repetir la marca no es error")

	saved, _ := repo.GetByID("n1")
	assert.True(t, saved.IsRead)
}

func TestNotificationMarkRead_SoloDestinatarioOAdmin(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := usecase.NewNotificationUseCase(repo)
	seedNotification(t, repo, "n1", "closer-1")

	assert.ErrorIs(t, uc.MarkRead(otherIdentity, "n1"), domain.ErrForbidden)
	assert.NoError(t, uc.MarkRead(adminIdentity, "n1"))
	assert.ErrorIs(t, uc.MarkRead(ownerIdentity, "no-existe"), domain.ErrNotFound)
}

func TestNotificationDelete(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := usecase.NewNotificationUseCase(repo)
	seedNotification(t, repo, "n1", "closer-1")

	assert.ErrorIs(t, uc.Delete(otherIdentity, "n1"), domain.ErrForbidden)
	require.NoError(t, uc.Delete(ownerIdentity, "n1"))

	saved, _ := repo.GetByID("n1")
	assert.Nil(t, saved)
}

func TestNotificationListForUser_SoloLasPropias(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := usecase.NewNotificationUseCase(repo)
	seedNotification(t, repo, "n1", "closer-1")
	seedNotification(t, repo, "n2", "closer-2")

	out, err := uc.ListForUser("closer-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "n1", out[0].NotificationID)
}
