package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
	"github.com/evgsol/matchpay/internal/services"
)

func TestSettleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEscrowSettler(ctrl)
	mockOrders := NewMockOrderReader(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()
	orderID := uuid.New()
	order := &models.OrderDB{
		OrderID:      orderID,
		UserID:       userID,
		Status:       models.OrderStatusMatched,
		EscrowAmount: 100000,
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "release",
			inputBody: SettleRequest{OrderID: orderID, Outcome: services.OutcomeRelease},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockOrders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
				mockSvc.EXPECT().Settle(gomock.Any(), order, services.OutcomeRelease).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &SettleResponse{
				Message: "Escrow settled",
				Outcome: services.OutcomeRelease,
			},
		},
		{
			name:      "refund",
			inputBody: SettleRequest{OrderID: orderID, Outcome: services.OutcomeRefund},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockOrders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
				mockSvc.EXPECT().Settle(gomock.Any(), order, services.OutcomeRefund).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &SettleResponse{
				Message: "Escrow settled",
				Outcome: services.OutcomeRefund,
			},
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
			name:      "unknown outcome",
			inputBody: SettleRequest{OrderID: orderID, Outcome: "split"},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockOrders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
				mockSvc.EXPECT().Settle(gomock.Any(), order, "split").Return(services.ErrUnknownOutcome)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid request"},
		},
		{
			name:      "order not found",
			inputBody: SettleRequest{OrderID: orderID, Outcome: services.OutcomeRelease},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockOrders.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, sql.ErrNoRows)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Not found"},
		},
		{
			name:      "already settled",
			inputBody: SettleRequest{OrderID: orderID, Outcome: services.OutcomeRelease},
			mockSetup: func() {
				expectAuth(mockTokener, userID)
				mockOrders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
				mockSvc.EXPECT().Settle(gomock.Any(), order, services.OutcomeRelease).Return(services.ErrAlreadySettled)
			},
			expectedCode: http.StatusConflict,
			expectedBody: &ErrorResponse{Error: "Already settled"},
		},
		{
			name:      "unauthorized",
			inputBody: SettleRequest{OrderID: orderID, Outcome: services.OutcomeRelease},
			mockSetup: func() {
				expectAuthFailure(mockTokener)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Unauthorized"},
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

			req := httptest.NewRequest(http.MethodPost, "/escrow/settle", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewSettleHandler(mockSvc, mockOrders, mockTokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &SettleResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
