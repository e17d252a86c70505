package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(Config{Mode: gin.TestMode})
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func create(t *testing.T, s *Server, req CreateRequest) string {
	t.Helper()
	rec, body := do(t, s, http.MethodPost, "/networks", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return body["id"].(string)
}

func TestCreateNetwork(t *testing.T) {
	s := newTestServer()
	seed := uint64(1)

	rec, body := do(t, s, http.MethodPost, "/networks", CreateRequest{
		Shape:            []int{2, 3, 1},
		Activation:       "sigmoid",
		OutputActivation: "sigmoid",
		Regularization:   "l2",
		Seed:             &seed,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 6.0, body["nodes"])
	assert.Equal(t, 9.0, body["links"])

	_, err := uuid.Parse(body["id"].(string))
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Registry().Len())
}

func TestCreateNetworkRejectsBadConfig(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		body any
	}{
		{"missing shape", map[string]any{"activation": "relu"}},
		{"two outputs", CreateRequest{Shape: []int{2, 2}}},
		{"unknown activation", CreateRequest{Shape: []int{2, 1}, Activation: "gelu"}},
		{"unknown regularization", CreateRequest{Shape: []int{2, 1}, Regularization: "l3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, s, http.MethodPost, "/networks", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
	assert.Zero(t, s.Registry().Len())
}

func TestForwardBackwardStep(t *testing.T) {
	s := newTestServer()
	seed := uint64(1)
	id := create(t, s, CreateRequest{
		Shape:            []int{2, 3, 1},
		Activation:       "sigmoid",
		OutputActivation: "sigmoid",
		Seed:             &seed,
	})

	// The same seed through the library gives the same network.
	cfg := nn.DefaultConfig(2, 3, 1)
	cfg.Activation, cfg.OutputActivation = nn.Sigmoid, nn.Sigmoid
	cfg.Init = nn.NewUniformInit(seed)
	local := nn.MustNew(cfg)
	want := local.ForwardPropagation([]float64{1, 0})

	rec, body := do(t, s, http.MethodPost, "/networks/"+id+"/forward", ForwardRequest{Inputs: []float64{1, 0}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, want, body["output"], 1e-12)

	rec, body = do(t, s, http.MethodPost, "/networks/"+id+"/backward", BackwardRequest{Target: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, want-1, body["outputDerivative"], 1e-12)
	assert.Greater(t, body["gradientNorm"], 0.0)

	rec, body = do(t, s, http.MethodPost, "/networks/"+id+"/step", StepRequest{LearningRate: 0.5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, body["pruned"])
	assert.Equal(t, 0.5, body["learningRate"])

	rec, body = do(t, s, http.MethodGet, "/networks/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	links := body["links"].([]any)
	require.Len(t, links, 9)
	first := links[0].(map[string]any)
	assert.Equal(t, "0-0-1-0", first["id"])
	assert.Equal(t, 0.0, first["numAccumulatedDerivatives"], "step resets accumulators")
}

func TestForwardInputMismatch(t *testing.T) {
	s := newTestServer()
	id := create(t, s, CreateRequest{Shape: []int{2, 1}})

	rec, body := do(t, s, http.MethodPost, "/networks/"+id+"/forward", ForwardRequest{Inputs: []float64{1}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "input length")
}

func TestBackwardUnknownErrorFunction(t *testing.T) {
	s := newTestServer()
	id := create(t, s, CreateRequest{Shape: []int{1, 1}})

	rec, _ := do(t, s, http.MethodPost, "/networks/"+id+"/backward", BackwardRequest{ErrorFunction: "hinge"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownAndDeletedNetworks(t *testing.T) {
	s := newTestServer()

	rec, _ := do(t, s, http.MethodGet, "/networks/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, s, http.MethodGet, "/networks/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	id := create(t, s, CreateRequest{Shape: []int{1, 1}})
	rec, _ = do(t, s, http.MethodDelete, "/networks/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, s, http.MethodPost, "/networks/"+id+"/step", StepRequest{})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, s, http.MethodDelete, "/networks/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRequestConfig(t *testing.T) {
	zero := 0.0
	cfg, err := CreateRequest{Shape: []int{3, 1}, Bias: &zero, LegacyDerivative: true}.Config()
	require.NoError(t, err)
	assert.True(t, cfg.ZeroBias)
	assert.True(t, cfg.LegacyDerivative)
	assert.Equal(t, nn.Tanh, cfg.Activation)
	assert.Equal(t, nn.RegNone, cfg.Regularization)

	net := nn.MustNew(cfg)
	assert.Zero(t, net.OutputNode().Bias)
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	create(t, s, CreateRequest{Shape: []int{1, 1}})

	rec, body := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 1.0, body["networks"])
}

func TestNonFiniteResultsEncode(t *testing.T) {
	s := newTestServer()
	cfg := nn.DefaultConfig(1, 1)
	cfg.OutputActivation = nn.ReLU
	cfg.Init = nn.ConstantInit(10)
	id := s.Registry().Add(nn.MustNew(cfg)).String()

	rec, body := do(t, s, http.MethodPost, "/networks/"+id+"/forward", ForwardRequest{Inputs: []float64{1e308}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, body, "output")
	assert.Nil(t, body["output"])

	rec, body = do(t, s, http.MethodPost, "/networks/"+id+"/backward", BackwardRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, body["loss"])
	assert.Nil(t, body["outputDerivative"])

	rec, body = do(t, s, http.MethodGet, "/networks/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	layers := body["layers"].([]any)
	out := layers[1].([]any)[0].(map[string]any)
	assert.Nil(t, out["output"])
	assert.Equal(t, 1e308, layers[0].([]any)[0].(map[string]any)["output"])
}

func TestCreateNetworkSizeLimits(t *testing.T) {
	s := New(Config{Mode: gin.TestMode, MaxNodes: 100, MaxLinks: 500})

	tests := []struct {
		name  string
		shape []int
	}{
		{"huge layer", []int{200000, 200000, 1}},
		{"too many nodes", []int{60, 60, 1}},
		{"too many links", []int{30, 30, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, s, http.MethodPost, "/networks", CreateRequest{Shape: tt.shape})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, body["error"], ErrTooLarge.Error())
		})
	}
	assert.Zero(t, s.Registry().Len())

	create(t, s, CreateRequest{Shape: []int{20, 20, 1}})
	assert.Equal(t, 1, s.Registry().Len())

	def := newTestServer()
	rec, _ := do(t, def, http.MethodPost, "/networks", CreateRequest{Shape: []int{200000, 200000, 1}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
