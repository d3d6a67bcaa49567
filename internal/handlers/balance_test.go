package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
)

func TestBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBalanceGetter(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockSvc.EXPECT().
					GetBalance(gomock.Any(), userID).
					Return(int64(400000), int64(100000), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &BalanceResponse{
				Balance:       400000,
				FrozenBalance: 100000,
				Currency:      models.DefaultCurrency,
			},
		},
		{
			name: "no wallet yet reads as zero",
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockSvc.EXPECT().
					GetBalance(gomock.Any(), userID).
					Return(int64(0), int64(0), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &BalanceResponse{
				Balance:       0,
				FrozenBalance: 0,
				Currency:      models.DefaultCurrency,
			},
		},
		{
			name: "unauthorized",
			mockSetup: func() {
				expectAuthFailure(mockTokener)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Unauthorized"},
		},
		{
			name: "internal error",
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockSvc.EXPECT().
					GetBalance(gomock.Any(), userID).
					Return(int64(0), int64(0), errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error, try again"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/balance", nil)
			w := httptest.NewRecorder()

			handler := NewBalanceHandler(mockSvc, mockTokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &BalanceResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
