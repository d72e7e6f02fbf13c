package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReduceAbandonedCartStats(t *testing.T) {
	t.Run("empty input is all zeros", func(t *testing.T) {
		stats := ReduceAbandonedCartStats(nil)
		if stats != (entities.AbandonedCartStats{}) {
			t.Fatalf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("reminded carts still count as active", func(t *testing.T) {
		carts := []entities.AbandonedCart{
			{ID: "c-1", Status: entities.AbandonedCartStatusActive, Total: 100},
			{ID: "c-2", Status: entities.AbandonedCartStatusReminded, Total: 50},
			{ID: "c-3", Status: entities.AbandonedCartStatusRecovered, Total: 30},
			{ID: "c-4", Status: entities.AbandonedCartStatusExpired, Total: 20},
		}

		stats := ReduceAbandonedCartStats(carts)
		if stats.TotalCarts != 4 || stats.ActiveCarts != 3 || stats.RecoveredCarts != 1 {
			t.Fatalf("unexpected counters: %+v", stats)
		}
		if stats.TotalValue != 200 || stats.RecoveredValue != 30 {
			t.Fatalf("unexpected values: %+v", stats)
		}
		if stats.RecoveryRate != 25.0 {
			t.Fatalf("expected recovery rate 25.0, got %v", stats.RecoveryRate)
		}
	})
}

func TestAbandonedCartUseCase_AddOrUpdateCart(t *testing.T) {
	t.Run("phone without digits is rejected", func(t *testing.T) {
		uc := NewAbandonedCartUseCase(nil, nil, nil)
		_, err := uc.AddOrUpdateCart(context.Background(), entities.AbandonedCart{Phone: "n/a"})
		if !errors.Is(err, ErrInvalidCartPhone) {
			t.Fatalf("expected ErrInvalidCartPhone, got %v", err)
		}
	})

	t.Run("negative total is rejected", func(t *testing.T) {
		uc := NewAbandonedCartUseCase(nil, nil, nil)
		_, err := uc.AddOrUpdateCart(context.Background(), entities.AbandonedCart{Phone: "11 1234", Total: -1})
		if !errors.Is(err, ErrInvalidCartTotal) {
			t.Fatalf("expected ErrInvalidCartTotal, got %v", err)
		}
	})

	t.Run("total recomputed from items and defaults applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cartRepo := mock_interfaces.NewMockIAbandonedCartRepository(ctrl)
		uc := NewAbandonedCartUseCase(cartRepo, nil, nil)

		cartRepo.EXPECT().UpsertByPhone(gomock.Any(), gomock.AssignableToTypeOf(entities.AbandonedCart{})).DoAndReturn(
			func(_ context.Context, c entities.AbandonedCart) (entities.AbandonedCart, error) {
				if c.Phone != "11987654321" {
					t.Fatalf("expected normalized phone, got %q", c.Phone)
				}
				if c.Total != 250 {
					t.Fatalf("expected recomputed total 250, got %v", c.Total)
				}
				if c.ID == "" || c.Status != entities.AbandonedCartStatusActive {
					t.Fatalf("expected generated id and active status, got %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		_, err := uc.AddOrUpdateCart(context.Background(), entities.AbandonedCart{
			Phone: "(11) 98765-4321",
			Items: []entities.AbandonedCartItem{
				{ProductID: "p-1", Price: 100, Quantity: 2},
				{ProductID: "p-2", Price: 50, Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAbandonedCartUseCase_SendWhatsAppReminder(t *testing.T) {
	gw := func(ctrl *gomock.Controller) *mock_interfaces.MockIMessageGateway {
		return mock_interfaces.NewMockIMessageGateway(ctrl)
	}

	t.Run("blank cart id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAbandonedCartUseCase(nil, nil, gw(ctrl))
		_, err := uc.SendWhatsAppReminder(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewAbandonedCartUseCase(nil, nil, nil)
		_, err := uc.SendWhatsAppReminder(context.Background(), "c-1")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("cart not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cartRepo := mock_interfaces.NewMockIAbandonedCartRepository(ctrl)
		uc := NewAbandonedCartUseCase(cartRepo, nil, gw(ctrl))

		cartRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.AbandonedCart{}, nil)

		_, err := uc.SendWhatsAppReminder(context.Background(), "c-1")
		if !errors.Is(err, ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})

	t.Run("no contact info rejected before any send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cartRepo := mock_interfaces.NewMockIAbandonedCartRepository(ctrl)
		gateway := gw(ctrl)
		uc := NewAbandonedCartUseCase(cartRepo, nil, gateway)

		cartRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.AbandonedCart{ID: "c-1"}, nil)
		// No SendMessage expectation: reaching the gateway fails the test.

		_, err := uc.SendWhatsAppReminder(context.Background(), "c-1")
		if !errors.Is(err, ErrNoContactInfo) {
			t.Fatalf("expected ErrNoContactInfo, got %v", err)
		}
	})

	t.Run("send failure recorded as failed and surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cartRepo := mock_interfaces.NewMockIAbandonedCartRepository(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		gateway := gw(ctrl)
		uc := NewAbandonedCartUseCase(cartRepo, notifRepo, gateway)

		cart := entities.AbandonedCart{ID: "c-1", Phone: "5511987654321", Status: entities.AbandonedCartStatusActive, Total: 99.9}
		cartRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(cart, nil)
		gateway.EXPECT().SendMessage(gomock.Any(), "5511987654321", gomock.Any()).Return("", errors.New("provider down"))
		notifRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Status != entities.NotificationStatusFailed {
					t.Fatalf("expected failed status, got %q", n.Status)
				}
				if n.Error == "" || n.CartID != "c-1" {
					t.Fatalf("unexpected failed record: %+v", n)
				}
				return n, nil
			},
		)

		n, err := uc.SendWhatsAppReminder(context.Background(), "c-1")
		if !errors.Is(err, ErrReminderSendFailed) {
			t.Fatalf("expected ErrReminderSendFailed, got %v", err)
		}
		if n.Status != entities.NotificationStatusFailed {
			t.Fatalf("expected failed notification returned, got %+v", n)
		}
	})

	t.Run("send success persists record and marks cart reminded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cartRepo := mock_interfaces.NewMockIAbandonedCartRepository(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		gateway := gw(ctrl)
		uc := NewAbandonedCartUseCase(cartRepo, notifRepo, gateway)

		cart := entities.AbandonedCart{ID: "c-1", CustomerName: "Maria", Phone: "5511987654321", Status: entities.AbandonedCartStatusActive, Total: 150}
		cartRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(cart, nil)
		gateway.EXPECT().SendMessage(gomock.Any(), "5511987654321", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, message string) (string, error) {
				if !strings.Contains(message, "Maria") || !strings.Contains(message, "150.00") {
					t.Fatalf("unexpected message: %q", message)
				}
				return "wamid-1", nil
			},
		)
		notifRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Status != entities.NotificationStatusSent || n.ProviderMessageID != "wamid-1" {
					t.Fatalf("unexpected sent record: %+v", n)
				}
				return n, nil
			},
		)
		cartRepo.EXPECT().UpdateStatusByID(gomock.Any(), "c-1", entities.AbandonedCartStatusReminded).Return(cart, nil)

		n, err := uc.SendWhatsAppReminder(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Recipient != "5511987654321" {
			t.Fatalf("expected phone recipient, got %q", n.Recipient)
		}
	})

	t.Run("email used when phone absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cartRepo := mock_interfaces.NewMockIAbandonedCartRepository(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		gateway := gw(ctrl)
		uc := NewAbandonedCartUseCase(cartRepo, notifRepo, gateway)

		cart := entities.AbandonedCart{ID: "c-1", Email: "maria@x.com", Status: entities.AbandonedCartStatusActive, Total: 10}
		cartRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(cart, nil)
		gateway.EXPECT().SendMessage(gomock.Any(), "maria@x.com", gomock.Any()).Return("wamid-2", nil)
		notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil },
		)
		cartRepo.EXPECT().UpdateStatusByID(gomock.Any(), "c-1", entities.AbandonedCartStatusReminded).Return(cart, nil)

		n, err := uc.SendWhatsAppReminder(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Recipient != "maria@x.com" {
			t.Fatalf("expected email recipient, got %q", n.Recipient)
		}
	})
}

func TestAbandonedCartUseCase_HasRecentNotification(t *testing.T) {
	t.Run("blank cart id", func(t *testing.T) {
		uc := NewAbandonedCartUseCase(nil, nil, nil)
		_, err := uc.HasRecentNotification(context.Background(), "", time.Hour)
		if !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("recent sent notification inside window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewAbandonedCartUseCase(nil, notifRepo, nil)

		notifRepo.EXPECT().ListByCartID(gomock.Any(), "c-1").Return([]entities.Notification{
			{ID: "n-1", Status: entities.NotificationStatusSent, CreatedAt: time.Now().UTC().Add(-2 * time.Hour)},
		}, nil)

		got, err := uc.HasRecentNotification(context.Background(), "c-1", 24*time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Fatalf("expected recent notification inside window")
		}
	})

	t.Run("old notification outside window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewAbandonedCartUseCase(nil, notifRepo, nil)

		notifRepo.EXPECT().ListByCartID(gomock.Any(), "c-1").Return([]entities.Notification{
			{ID: "n-1", Status: entities.NotificationStatusSent, CreatedAt: time.Now().UTC().Add(-48 * time.Hour)},
		}, nil)

		got, err := uc.HasRecentNotification(context.Background(), "c-1", 24*time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Fatalf("expected no recent notification")
		}
	})

	t.Run("failed attempts do not count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewAbandonedCartUseCase(nil, notifRepo, nil)

		notifRepo.EXPECT().ListByCartID(gomock.Any(), "c-1").Return([]entities.Notification{
			{ID: "n-1", Status: entities.NotificationStatusFailed, CreatedAt: time.Now().UTC().Add(-time.Hour)},
		}, nil)

		got, err := uc.HasRecentNotification(context.Background(), "c-1", 24*time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Fatalf("failed attempt should not count as outreach")
		}
	})
}

func TestAbandonedCartUseCase_GetNotificationHistory(t *testing.T) {
	t.Run("blank cart id", func(t *testing.T) {
		uc := NewAbandonedCartUseCase(nil, nil, nil)
		_, err := uc.GetNotificationHistory(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewAbandonedCartUseCase(nil, notifRepo, nil)

		want := []entities.Notification{{ID: "n-1"}, {ID: "n-2"}}
		notifRepo.EXPECT().ListByCartID(gomock.Any(), "c-1").Return(want, nil)

		got, err := uc.GetNotificationHistory(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(got))
		}
	})
}
