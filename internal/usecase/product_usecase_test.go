package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	t.Run("blank name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		_, err := uc.CreateProduct(context.Background(), entities.Product{Name: "   ", Price: 10})
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		_, err := uc.CreateProduct(context.Background(), entities.Product{Name: "caneca", Price: 0})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("defaults applied before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" {
					t.Errorf("expected generated id")
				}
				if p.Stock != 0 {
					t.Errorf("expected negative stock clamped to 0, got %d", p.Stock)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Errorf("expected timestamps to be set")
				}
				return p, nil
			})

		got, err := uc.CreateProduct(context.Background(), entities.Product{Name: "caneca", Price: 25, Stock: -3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "caneca" {
			t.Fatalf("unexpected product: %+v", got)
		}
	})
}

func TestProductUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("empty entity means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Product{}, nil)

		_, err := uc.GetByID(context.Background(), "p-404")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found with trimmed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "caneca"}, nil)

		got, err := uc.GetByID(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "p-1" {
			t.Fatalf("unexpected product: %+v", got)
		}
	})
}

func TestProductUseCase_ListProducts(t *testing.T) {
	t.Run("repo error propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListProducts(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
