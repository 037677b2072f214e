package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

func TestCreateAndListCategories(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)
	db := newTestDB(t)

	created, err := service.CreateCategory(context.Background(), db, &dto.CreateCategoryRequest{
		Name:        "Engineering",
		Description: "Software roles",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list, err := service.ListCategories(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Engineering", list[0].Name)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)
	db := newTestDB(t)

	_, err := service.CreateCategory(context.Background(), db, &dto.CreateCategoryRequest{Name: "Engineering"})
	require.NoError(t, err)

	_, err = service.CreateCategory(context.Background(), db, &dto.CreateCategoryRequest{Name: "Engineering"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestDeleteCategoryUnknownID(t *testing.T) {
	repo := newFakeCategoryRepo()
	service := NewCategoryService(repo)
	db := newTestDB(t)

	err := service.DeleteCategory(context.Background(), db, newID())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
