package paymentControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func intentRouter(g *Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payment/intent", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, CreateIntentHandler(g))
	return r
}

func postEnvelope(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment/intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validEnvelope = `{
  "data": {
    "totalPrice": 15.0,
    "successUrl": "https://shop.example/payment/success?orderId=7",
    "failureUrl": "https://shop.example/payment/failure?orderId=7",
    "customer": {
      "first_name": "Sara",
      "last_name": "Ahmed",
      "email": "sara@example.com",
      "phone_number": "+971500000000"
    },
    "metadata": {"orderId": "7"}
  }
}`

func TestCreateIntentRelaysRedirectURL(t *testing.T) {
	var captured map[string]interface{}
	g := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]string{"redirect_url": "https://pay.ziina.com/intent/abc"})
	})

	w := postEnvelope(intentRouter(g), validEnvelope)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			Data struct {
				RedirectURL string `json:"redirectUrl"`
			} `json:"data"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "https://pay.ziina.com/intent/abc", resp.Result.Data.RedirectURL)

	// The authenticated caller's identity rides along in the metadata.
	meta := captured["metadata"].(map[string]interface{})
	require.Equal(t, "user-1", meta["user_id"])
	require.Equal(t, "7", meta["order_id"])
}

func TestCreateIntentRejectsMissingData(t *testing.T) {
	g := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway must not be called for invalid input")
	})

	for _, body := range []string{
		`{}`,
		`{"data": {"totalPrice": 0, "successUrl": "x", "customer": {"email": "a@b.c"}}}`,
		`{"data": {"totalPrice": 10, "customer": {"email": "a@b.c"}}}`,
		`{"data": {"totalPrice": 10, "successUrl": "x", "customer": {}}}`,
		`not json`,
	} {
		w := postEnvelope(intentRouter(g), body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		require.Contains(t, w.Body.String(), "INVALID_ARGUMENT")
	}
}

func TestCreateIntentGatewayFailureIsOpaque(t *testing.T) {
	g := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"secret internal detail"}`, http.StatusBadGateway)
	})

	w := postEnvelope(intentRouter(g), validEnvelope)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "INTERNAL")
	require.NotContains(t, w.Body.String(), "secret internal detail")
}
