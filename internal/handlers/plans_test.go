package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx/types"
	"github.com/sbilibin2017/gw-diet-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testPlanID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
)

const testPlanData = `{"summary":"High protein","dailyTargets":{"protein":180,"carbs":200,"fats":60,"calories":2140},"meals":[{"name":"Breakfast","items":[{"name":"Oats","amount":"80 g"}]}],"tips":["Drink water"]}`

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(middlewares.WithUserID(req.Context(), testUserID))
}

func TestGetPlansHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlanLister(ctrl)
	plan := models.SavedPlan{ID: testPlanID, UserID: testUserID, Name: "Week 1", PlanData: types.JSONText(testPlanData)}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "list",
			target: "/api/plans",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testUserID).Return([]models.SavedPlan{plan}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "empty list is an array",
			target: "/api/plans",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testUserID).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"plans":[]}`,
		},
		{
			name:   "get by id",
			target: "/api/plans?id=" + testPlanID,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), testUserID, testPlanID).Return(&plan, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "get foreign plan",
			target: "/api/plans?id=" + testPlanID,
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), testUserID, testPlanID).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
		{
			name:   "database error",
			target: "/api/plans",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testUserID).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewGetPlansHandler(mockSvc).ServeHTTP(w, authedRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetPlansHandler_PlanDataRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlanLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), testUserID).Return([]models.SavedPlan{
		{ID: testPlanID, UserID: testUserID, Name: "Week 1", PlanData: types.JSONText(testPlanData)},
	}, nil)

	w := httptest.NewRecorder()
	NewGetPlansHandler(mockSvc).ServeHTTP(w, authedRequest(http.MethodGet, "/api/plans", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Plans []struct {
			PlanData json.RawMessage `json:"plan_data"`
		} `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 1)
	assert.JSONEq(t, testPlanData, string(resp.Plans[0].PlanData))
}

func TestCreatePlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlanCreator(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"name":"Week 1","plan_data":` + testPlanData + `,"is_favorite":true}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), testUserID, "Week 1", json.RawMessage(testPlanData), true).
					Return(&models.SavedPlan{ID: testPlanID, Name: "Week 1", PlanData: types.JSONText(testPlanData), IsFavorite: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing name",
			body: `{"plan_data":{}}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), testUserID, "", json.RawMessage(`{}`), false).Return(nil, services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid input"}`,
		},
		{
			name:         "invalid JSON",
			body:         `{invalid json}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewCreatePlanHandler(mockSvc).ServeHTTP(w, authedRequest(http.MethodPost, "/api/plans", []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestUpdatePlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlanUpdater(ctrl)
	fav := true

	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "id in body",
			target: "/api/plans",
			body:   `{"id":"` + testPlanID + `","is_favorite":true}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testUserID, testPlanID, models.SavedPlanPatch{IsFavorite: &fav}).
					Return(&models.SavedPlan{ID: testPlanID, IsFavorite: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "id in query",
			target: "/api/plans?id=" + testPlanID,
			body:   `{"name":"Renamed"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testUserID, testPlanID, gomock.Any()).
					Return(&models.SavedPlan{ID: testPlanID, Name: "Renamed"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing id",
			target:       "/api/plans",
			body:         `{"name":"Renamed"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "not owned",
			target: "/api/plans?id=" + testPlanID,
			body:   `{"name":"Renamed"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), testUserID, testPlanID, gomock.Any()).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewUpdatePlanHandler(mockSvc).ServeHTTP(w, authedRequest(http.MethodPatch, tt.target, []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeletePlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlanDeleter(ctrl)

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "deleted",
			target: "/api/plans?id=" + testPlanID,
			mockSetup: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), testUserID, testPlanID).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true}`,
		},
		{
			name:         "missing id",
			target:       "/api/plans",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Plan id is required"}`,
		},
		{
			name:   "not found",
			target: "/api/plans?id=" + testPlanID,
			mockSetup: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), testUserID, testPlanID).Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewDeletePlanHandler(mockSvc).ServeHTTP(w, authedRequest(http.MethodDelete, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
