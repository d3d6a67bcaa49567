package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
	"github.com/evgsol/matchpay/internal/services"
)

func TestProposeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMatchProposer(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()
	orderID := uuid.New()
	matchedID := uuid.New()

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "matched",
			inputBody: ProposeRequest{OrderID: orderID},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockSvc.EXPECT().
					ProposeMatch(gomock.Any(), orderID).
					Return(&models.MatchDB{OrderID: orderID, MatchedOrderID: matchedID}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ProposeResponse{
				Matched:        true,
				MatchedOrderID: matchedID.String(),
			},
		},
		{
			name:      "no candidate found",
			inputBody: ProposeRequest{OrderID: orderID},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockSvc.EXPECT().
					ProposeMatch(gomock.Any(), orderID).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ProposeResponse{Matched: false},
		},
		{
			name:      "invalid JSON",
			inputBody: "{invalid json}",
			mockSetup: func() {
				expectAuth(mockTokener, userID)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid request body"},
		},
		{
			name:      "missing order id",
			inputBody: ProposeRequest{},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid request body"},
		},
		{
			name:      "order not found",
			inputBody: ProposeRequest{OrderID: orderID},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockSvc.EXPECT().
					ProposeMatch(gomock.Any(), orderID).
					Return(nil, services.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Not found"},
		},
		{
			name:      "unauthorized",
			inputBody: ProposeRequest{OrderID: orderID},
			mockSetup: func() {
				expectAuthFailure(mockTokener)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Unauthorized"},
		},
		{
			name:      "internal error",
			inputBody: ProposeRequest{OrderID: orderID},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockSvc.EXPECT().
					ProposeMatch(gomock.Any(), orderID).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error, try again"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/matching/propose", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewProposeHandler(mockSvc, mockTokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &ProposeResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
