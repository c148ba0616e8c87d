package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("nil from storage becomes empty slice", func(t *testing.T) {
		mockRepo.EXPECT().List(ctx).Return(nil, nil)

		books, err := service.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("error is passed through", func(t *testing.T) {
		storageErr := errors.New("connection reset")
		mockRepo.EXPECT().List(ctx).Return(nil, storageErr)

		books, err := service.List(ctx)
		assert.ErrorIs(t, err, storageErr)
		assert.Nil(t, books)
	})
}

func TestService_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()
	b := seedTestBook()

	mockRepo.EXPECT().GetByISBN(ctx, b.ISBN).Return(b, nil)
	got, err := service.GetByISBN(ctx, b.ISBN)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	mockRepo.EXPECT().Create(ctx, b).Return(Book{}, ErrDuplicateISBN)
	_, err = service.Create(ctx, b)
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	mockRepo.EXPECT().Update(ctx, b.ISBN, b.Details).Return(b, nil)
	got, err = service.Update(ctx, b.ISBN, b.Details)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	mockRepo.EXPECT().Delete(ctx, "999").Return(ErrNotFound)
	assert.ErrorIs(t, service.Delete(ctx, "999"), ErrNotFound)
}
