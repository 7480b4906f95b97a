package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_CreateAndGetRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockPlanReader(ctrl)
	writer := services.NewMockPlanWriter(ctrl)
	svc := services.NewPlanService(reader, writer)
	ctx := context.Background()

	data := json.RawMessage(`{"summary":"cut","meals":[{"name":"Breakfast","items":[]}],"tips":["sleep"]}`)
	id := uuid.NewString()

	writer.EXPECT().Create(gomock.Any(), "u-1", "Week 1", []byte(data), false).
		DoAndReturn(func(_ context.Context, userID, name string, d []byte, fav bool) (*models.SavedPlan, error) {
			return &models.SavedPlan{ID: id, UserID: userID, Name: name, PlanData: types.JSONText(d)}, nil
		})

	created, err := svc.Create(ctx, "u-1", "  Week 1 ", data, false)
	require.NoError(t, err)

	reader.EXPECT().GetByID(gomock.Any(), "u-1", id).Return(created, nil)
	got, err := svc.Get(ctx, "u-1", id)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(got.PlanData))
}

func TestPlanService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewPlanService(services.NewMockPlanReader(ctrl), services.NewMockPlanWriter(ctrl))

	_, err := svc.Create(context.Background(), "u-1", "", json.RawMessage(`{}`), false)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Create(context.Background(), "u-1", "x", json.RawMessage(`[1,2]`), false)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Create(context.Background(), "u-1", "x", json.RawMessage(`null`), false)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestPlanService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockPlanWriter(ctrl)
	svc := services.NewPlanService(services.NewMockPlanReader(ctrl), writer)
	ctx := context.Background()
	id := uuid.NewString()
	fav := true

	writer.EXPECT().Update(gomock.Any(), "u-1", id, models.SavedPlanPatch{IsFavorite: &fav}).
		Return(&models.SavedPlan{ID: id, IsFavorite: true}, nil)
	plan, err := svc.Update(ctx, "u-1", id, models.SavedPlanPatch{IsFavorite: &fav})
	require.NoError(t, err)
	assert.True(t, plan.IsFavorite)

	writer.EXPECT().Update(gomock.Any(), "u-2", id, gomock.Any()).Return(nil, nil)
	_, err = svc.Update(ctx, "u-2", id, models.SavedPlanPatch{IsFavorite: &fav})
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Update(ctx, "u-1", id, models.SavedPlanPatch{})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Update(ctx, "u-1", "not-a-uuid", models.SavedPlanPatch{IsFavorite: &fav})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPlanService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockPlanWriter(ctrl)
	svc := services.NewPlanService(services.NewMockPlanReader(ctrl), writer)
	id := uuid.NewString()

	writer.EXPECT().Delete(gomock.Any(), "u-1", id).Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), "u-1", id))

	writer.EXPECT().Delete(gomock.Any(), "u-1", id).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "u-1", id), services.ErrNotFound)
}
