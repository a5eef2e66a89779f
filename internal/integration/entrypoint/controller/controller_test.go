package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/strength-check/backend/internal/application/usecase/strength"
	"github.com/strength-check/backend/internal/application/usecase/tweet"
	"github.com/strength-check/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine() *gin.Engine {
	evaluateUseCase := strength.NewEvaluatePasswordUseCase(nil, nil)
	strengthController := NewStrengthController(
		evaluateUseCase,
		strength.NewEvaluateBatchUseCase(evaluateUseCase, 3),
		strength.NewGetStatsUseCase(nil),
	)
	tweetController := NewTweetController(
		tweet.NewParseCoordinatesUseCase(),
		tweet.NewValidateSchemaUseCase(),
	)
	healthController := NewHealthController(func() bool { return true }, nil)

	engine := gin.New()
	engine.GET("/health", healthController.Check)
	engine.POST("/evaluate", strengthController.Evaluate)
	engine.POST("/evaluate/batch", strengthController.EvaluateBatch)
	engine.GET("/stats", strengthController.Stats)
	engine.POST("/coordinates", tweetController.ParseCoordinates)
	engine.POST("/schema", tweetController.ValidateSchema)
	return engine
}

func perform(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestStrengthController_Evaluate(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedScore  int
		expectedLabel  string
		expectedCode   string
	}{
		{
			name:           "strong password",
			body:           `{"password":"Abcdef1!"}`,
			expectedStatus: http.StatusOK,
			expectedScore:  4,
			expectedLabel:  "Strong",
		},
		{
			name:           "empty password is evaluated",
			body:           `{"password":""}`,
			expectedStatus: http.StatusOK,
			expectedScore:  0,
			expectedLabel:  "Very Weak",
		},
		{
			name:           "missing field",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PWD-010004",
		},
		{
			name:           "malformed json",
			body:           `{"password":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PWD-010004",
		},
		{
			name:           "password too long",
			body:           `{"password":"` + strings.Repeat("a", strength.MaxPasswordBytes+1) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PWD-010001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, engine, http.MethodPost, "/evaluate", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				resp := decode[dto.ErrorResponse](t, w)
				if resp.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, resp.Code)
				}
				return
			}

			resp := decode[dto.EvaluationResponse](t, w)
			if resp.Score != tt.expectedScore {
				t.Errorf("expected score %d, got %d", tt.expectedScore, resp.Score)
			}
			if resp.Label != tt.expectedLabel {
				t.Errorf("expected label %s, got %s", tt.expectedLabel, resp.Label)
			}
			if resp.Deficiencies == nil || resp.FailedCriteria == nil {
				t.Error("expected deficiencies and failed criteria to be arrays")
			}
			if len(resp.Deficiencies) != 4-tt.expectedScore {
				t.Errorf("expected %d deficiencies, got %v", 4-tt.expectedScore, resp.Deficiencies)
			}
		})
	}
}

func TestStrengthController_EvaluateEmptyArraysInJSON(t *testing.T) {
	engine := newTestEngine()

	w := perform(t, engine, http.MethodPost, "/evaluate", `{"password":"Abcdef1!"}`)
	if !strings.Contains(w.Body.String(), `"deficiencies":[]`) {
		t.Errorf("expected empty deficiencies array, got %s", w.Body.String())
	}
}

func TestStrengthController_EvaluateBatch(t *testing.T) {
	engine := newTestEngine()

	t.Run("results in input order", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/evaluate/batch", `{"passwords":["abc","Abcdef1!","abcdefgh"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		resp := decode[dto.EvaluateBatchResponse](t, w)
		expected := []int{0, 4, 1}
		if len(resp.Results) != len(expected) {
			t.Fatalf("expected %d results, got %d", len(expected), len(resp.Results))
		}
		for i, score := range expected {
			if resp.Results[i].Score != score {
				t.Errorf("result %d: expected score %d, got %d", i, score, resp.Results[i].Score)
			}
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/evaluate/batch", `{"passwords":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if resp := decode[dto.ErrorResponse](t, w); resp.Code != "PWD-010003" {
			t.Errorf("expected PWD-010003, got %s", resp.Code)
		}
	})

	t.Run("batch too large", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/evaluate/batch", `{"passwords":["a","b","c","d"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if resp := decode[dto.ErrorResponse](t, w); resp.Code != "PWD-010002" {
			t.Errorf("expected PWD-010002, got %s", resp.Code)
		}
	})
}

func TestStrengthController_StatsWithoutDatabase(t *testing.T) {
	engine := newTestEngine()

	w := perform(t, engine, http.MethodGet, "/stats", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	if resp := decode[dto.ErrorResponse](t, w); resp.Code != "PWD-020001" {
		t.Errorf("expected PWD-020001, got %s", resp.Code)
	}
}

func TestTweetController_ParseCoordinates(t *testing.T) {
	engine := newTestEngine()

	t.Run("mixed results", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/coordinates", `{"coordinates":["[-74.0, 40.7]","","[0, 91]","junk"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		resp := decode[dto.ParseCoordinatesResponse](t, w)
		if resp.ParsedCount != 1 || resp.FailedCount != 3 {
			t.Fatalf("expected 1 parsed and 3 failed, got %d and %d", resp.ParsedCount, resp.FailedCount)
		}
		if c := resp.Results[0].Coordinate; c == nil || c.Latitude != 40.7 || c.Longitude != -74.0 {
			t.Errorf("unexpected first coordinate %+v", c)
		}
		expectedCodes := []string{"", "TWT-010001", "TWT-010003", "TWT-010002"}
		for i, code := range expectedCodes {
			if resp.Results[i].ErrorCode != code {
				t.Errorf("result %d: expected code %q, got %q", i, code, resp.Results[i].ErrorCode)
			}
		}
	})

	t.Run("lat_lon order", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/coordinates", `{"coordinates":["[40.7, -74.0]"],"order":"lat_lon"}`)
		resp := decode[dto.ParseCoordinatesResponse](t, w)
		if c := resp.Results[0].Coordinate; c == nil || c.Latitude != 40.7 || c.Longitude != -74.0 {
			t.Errorf("unexpected coordinate %+v", c)
		}
	})

	t.Run("invalid order", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/coordinates", `{"coordinates":["[0, 0]"],"order":"xy"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if resp := decode[dto.ErrorResponse](t, w); resp.Code != "TWT-010006" {
			t.Errorf("expected TWT-010006, got %s", resp.Code)
		}
	})
}

func TestTweetController_ValidateSchema(t *testing.T) {
	engine := newTestEngine()

	w := perform(t, engine, http.MethodPost, "/schema", `{"columns":["text","airline","tweet_created"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decode[dto.TweetSchemaResponse](t, w)
	if resp.Status != "columns_missing" {
		t.Errorf("expected columns_missing, got %s", resp.Status)
	}
	if len(resp.Missing) != 1 || resp.Missing[0] != "airline_sentiment" {
		t.Errorf("expected airline_sentiment missing, got %v", resp.Missing)
	}
	if !resp.HasAirline || !resp.HasTimestamps || resp.HasCoordinates {
		t.Errorf("unexpected optional column flags %+v", resp)
	}

	w = perform(t, engine, http.MethodPost, "/schema", `{"columns":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if resp := decode[dto.ErrorResponse](t, w); resp.Code != "TWT-010004" {
		t.Errorf("expected TWT-010004, got %s", resp.Code)
	}
}

func TestHealthController_Check(t *testing.T) {
	engine := newTestEngine()

	w := perform(t, engine, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decode[HealthResponse](t, w)
	if resp.Status != "ok" || resp.Database != "connected" || resp.Redis != "disabled" {
		t.Errorf("unexpected health response %+v", resp)
	}
}
