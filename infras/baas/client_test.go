package baas_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/config"
	"salonbooking/infras/baas"
	"salonbooking/infras/metrics"
	"salonbooking/infras/otel/mocks"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) baas.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{}
	cfg.Backend.URL = ts.URL + "/"
	cfg.Backend.AnonKey = "anon-key"
	cfg.Backend.TimeoutSeconds = 5

	return baas.New(cfg, mocks.NewOtel(), metrics.NewBookingMetrics(prometheus.NewRegistry()))
}

func TestClient_Invoke(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/dynamic-slots", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "b-1", body["business_id"])

		_, _ = w.Write([]byte(`{"perfect":[{"label":"10:00","value":"10:00"}],"other":[]}`))
	})

	var out struct {
		Perfect []struct{ Value string } `json:"perfect"`
	}

	err := client.Invoke(context.Background(), "dynamic-slots", "user-token", map[string]any{"business_id": "b-1"}, &out)
	require.NoError(t, err)
	require.Len(t, out.Perfect, 1)
	assert.Equal(t, "10:00", out.Perfect[0].Value)
}

func TestClient_AnonymousUsesAnonKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, client.Invoke(context.Background(), "dynamic-slots", "", map[string]any{}, &map[string]any{}))
}

func TestClient_RPCRequestsSingleObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/rpc/create_appointment", r.URL.Path)
		assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"appointment_id":"apt-1"}`))
	})

	var out struct {
		AppointmentID string `json:"appointment_id"`
	}

	require.NoError(t, client.RPC(context.Background(), "create_appointment", "tok", map[string]any{"p_business_id": "b-1"}, &out))
	assert.Equal(t, "apt-1", out.AppointmentID)
}

func TestClient_SelectAndUpdate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/rest/v1/services", r.URL.Path)
			assert.Equal(t, "eq.true", r.URL.Query().Get("active"))
			_, _ = w.Write([]byte(`[{"id":"haircut"}]`))
		case http.MethodPatch:
			assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
			assert.Equal(t, "eq.p-1", r.URL.Query().Get("id"))
			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"birthdate":"1990-04-12"}`, string(raw))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})

	var rows []map[string]string
	require.NoError(t, client.Select(context.Background(), "services", "", url.Values{"active": []string{"eq.true"}}, &rows))
	assert.Equal(t, []map[string]string{{"id": "haircut"}}, rows)

	require.NoError(t, client.Update(context.Background(), "profiles", "tok", url.Values{"id": []string{"eq.p-1"}}, map[string]string{"birthdate": "1990-04-12"}))
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantStatus   int
		wantCode     string
		wantMessage  string
		unauthorized bool
	}{
		{name: "postgrest", status: http.StatusConflict, body: `{"code":"23505","message":"duplicate key"}`, wantStatus: 409, wantCode: "23505", wantMessage: "duplicate key"},
		{name: "function", status: http.StatusBadRequest, body: `{"error":"missing barber_id"}`, wantStatus: 400, wantMessage: "missing barber_id"},
		{name: "auth", status: http.StatusUnauthorized, body: `{"msg":"JWT expired"}`, wantStatus: 401, wantMessage: "JWT expired", unauthorized: true},
		{name: "plain text", status: http.StatusBadGateway, body: "upstream failed", wantStatus: 502, wantMessage: "upstream failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.Invoke(context.Background(), "contact-check", "tok", map[string]any{}, &map[string]any{})

			var be *baas.Error
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tt.wantStatus, be.Status)
			assert.Equal(t, tt.wantCode, be.Code)
			assert.Equal(t, tt.wantMessage, be.Message)
			assert.Equal(t, tt.unauthorized, baas.IsUnauthorized(err))
		})
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	err := client.RPC(context.Background(), "create_appointment", "tok", map[string]any{}, &map[string]any{})
	require.ErrorIs(t, err, baas.ErrMalformedResponse)

	empty := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err = empty.RPC(context.Background(), "create_appointment", "tok", map[string]any{}, &map[string]any{})
	require.ErrorIs(t, err, baas.ErrMalformedResponse)
}

func TestClient_RefreshSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["refresh_token"] != "good" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid Refresh Token"}`))

			return
		}

		_, _ = w.Write([]byte(`{"access_token":"new-access","refresh_token":"new-refresh","expires_in":3600}`))
	})

	tokens, err := client.RefreshSession(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)

	_, err = client.RefreshSession(context.Background(), "bad")
	var be *baas.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Invalid Refresh Token", be.Message)
}

func TestClient_TransportError(t *testing.T) {
	cfg := &config.Config{}
	cfg.Backend.URL = "http://127.0.0.1:1"
	cfg.Backend.TimeoutSeconds = 1

	client := baas.New(cfg, mocks.NewOtel(), nil)

	err := client.Invoke(context.Background(), "dynamic-slots", "", map[string]any{}, &map[string]any{})
	require.Error(t, err)
	assert.False(t, baas.IsUnauthorized(err))
}
