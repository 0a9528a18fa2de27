package validate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		target         string
		method         string
		expectedAmount string
		expectedStatus int
		wantErr        assert.ErrorAssertionFunc
	}{
		{
			name:           "valid request",
			target:         "/quote?amount=10",
			method:         http.MethodGet,
			expectedAmount: "10",
			wantErr:        assert.NoError,
		},
		{
			name:           "fractional amount",
			target:         "/quote?amount=0.25",
			method:         http.MethodGet,
			expectedAmount: "0.25",
			wantErr:        assert.NoError,
		},
		{
			name:           "amount is trimmed",
			target:         "/quote?amount=%2010%20",
			method:         http.MethodGet,
			expectedAmount: "10",
			wantErr:        assert.NoError,
		},
		{
			name:           "missing amount",
			target:         "/quote",
			method:         http.MethodGet,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name:           "blank amount",
			target:         "/quote?amount=%20",
			method:         http.MethodGet,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name:           "wrong http method",
			target:         "/quote?amount=10",
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
			wantErr:        assert.Error,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			result, status, err := QuoteRequestValidate(req)

			tt.wantErr(t, err)
			require.Equal(t, tt.expectedStatus, status)
			require.Equal(t, tt.expectedAmount, result.Amount)
		})
	}
}

func TestQuoteRequestValidate_Methods(t *testing.T) {
	t.Parallel()

	methods := []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch}
	for _, method := range methods {
		method := method
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(method, "/quote?amount=1", nil)
			_, status, err := QuoteRequestValidate(req)

			require.Error(t, err)
			require.Equal(t, http.StatusMethodNotAllowed, status)
		})
	}
}
