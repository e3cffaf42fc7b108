package bill

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/billsplit/internal/bill/split"
)

func newTestRouter() http.Handler {
	h := NewHandler(split.NewDealValidator(0), split.NewSplitStrategyFactory(), 8, nil)
	return h.Routes()
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_ValidateDeal(t *testing.T) {
	w := post(t, newTestRouter(), "/deals/validate", `{"roommates": 3, "deal": [0.5, 0.25]}`)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var resp AllocationResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3, resp.Roommates)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, resp.Allocation)
}

func TestHandler_ValidateDealErrors(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		contains string
	}{
		{"sum", `{"roommates": 2, "deal": [0.5, 0.7]}`, "add up to"},
		{"overflow", `{"roommates": 3, "deal": [0.5, 0.5]}`, "too high"},
		{"length", `{"roommates": 4, "deal": [0.5]}`, "do not match"},
		{"malformed", `{"roommates": "two"}`, "Invalid request body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, newTestRouter(), "/deals/validate", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			env := decodeEnvelope(t, w)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, "BAD_REQUEST", env.Error.Code)
			assert.Contains(t, env.Error.Message, tc.contains)
		})
	}
}

func TestHandler_CreateReport(t *testing.T) {
	body := `{
		"roommates": 2,
		"deal": [0.6],
		"bills": [
			{"name": "January", "equal_values": [40], "deal_values": [20]},
			{"equal_values": [10], "deal_values": []}
		]
	}`
	w := post(t, newTestRouter(), "/reports", body)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 2, resp.Roommates)
	require.Len(t, resp.Bills, 2)
	assert.Equal(t, "PAYMENT REPORT: January", resp.Bills[0].Title)
	assert.Equal(t, "PAYMENT REPORT: Bill 2", resp.Bills[1].Title)
	assert.Equal(t, "32", resp.Bills[0].Shares[0].Total.String())
	assert.Equal(t, "28", resp.Bills[0].Shares[1].Total.String())

	require.NotNil(t, resp.Summary)
	assert.Equal(t, "70", resp.Summary.Total.String())
	assert.Equal(t, "37", resp.Summary.Shares[0].Total.String())
	assert.Equal(t, "33", resp.Summary.Shares[1].Total.String())
}

func TestHandler_CreateReportRequiresBills(t *testing.T) {
	w := post(t, newTestRouter(), "/reports", `{"roommates": 2, "deal": [0.5, 0.5], "bills": []}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrNoBillsInRequest.Error())
}

func TestHandler_CreateReceipt(t *testing.T) {
	body := `{"roommates": 2, "deal": [0.5, 0.5], "bills": [{"name": "Power", "equal_values": [100, 50], "deal_values": [30]}]}`
	w := post(t, newTestRouter(), "/receipts", body)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "|   150.00 |    30.00 |")
	assert.Contains(t, w.Body.String(), "========== SUMMARY ==========")
}

func TestHandler_RequiresJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	newTestRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
