//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("E2E_BASE_URL")), "/")
	if baseURL == "" {
		t.Skip("E2E_BASE_URL not set")
	}
	client := &http.Client{Timeout: 20 * time.Second}

	t.Run("health", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/health", nil)
		if status != http.StatusOK {
			t.Fatalf("health status=%d body=%s", status, string(body))
		}
	})

	// Unique names so reruns against a shared database do not collide.
	suffix := time.Now().UTC().Format("20060102150405")
	nameA := "E2E Ramen " + suffix
	nameB := "E2E Tacos " + suffix

	t.Run("meal lifecycle and battle", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/create-meal", map[string]any{
			"meal": nameA, "cuisine": "Japanese", "price": 12.50, "difficulty": "MED",
		})
		if status != http.StatusCreated {
			t.Fatalf("create meal A status=%d body=%s", status, string(body))
		}
		mealA := asMap(unmarshalMap(t, body)["meal"])
		idA := int64(mealA["id"].(float64))

		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/create-meal", map[string]any{
			"meal": nameB, "cuisine": "Mexican", "price": 9.75, "difficulty": "LOW",
		})
		if status != http.StatusCreated {
			t.Fatalf("create meal B status=%d body=%s", status, string(body))
		}

		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/create-meal", map[string]any{
			"meal": nameA, "cuisine": "Japanese", "price": 12.50, "difficulty": "MED",
		})
		if status != http.StatusConflict {
			t.Fatalf("duplicate create status=%d body=%s", status, string(body))
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+fmt.Sprintf("/api/get-meal-by-id/%d", idA), nil)
		if status != http.StatusOK {
			t.Fatalf("get by id status=%d body=%s", status, string(body))
		}

		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/clear-combatants", map[string]any{})
		if status != http.StatusOK {
			t.Fatalf("clear combatants status=%d body=%s", status, string(body))
		}

		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/prep-combatant", map[string]any{"meal": nameA})
		if status != http.StatusOK {
			t.Fatalf("prep A status=%d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/prep-combatant", map[string]any{"meal": nameB})
		if status != http.StatusOK {
			t.Fatalf("prep B status=%d body=%s", status, string(body))
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/battle", nil)
		if status != http.StatusOK {
			t.Fatalf("battle status=%d body=%s", status, string(body))
		}
		winner, _ := unmarshalMap(t, body)["winner"].(string)
		if winner != nameA && winner != nameB {
			t.Fatalf("winner=%q, want %q or %q", winner, nameA, nameB)
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/leaderboard?sort=wins", nil)
		if status != http.StatusOK {
			t.Fatalf("leaderboard status=%d body=%s", status, string(body))
		}
		if len(asSlice(unmarshalMap(t, body)["leaderboard"])) == 0 {
			t.Fatalf("expected leaderboard entries, body=%s", string(body))
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/battle-history?limit=5", nil)
		if status != http.StatusOK {
			t.Fatalf("battle history status=%d body=%s", status, string(body))
		}
		if len(asSlice(unmarshalMap(t, body)["battles"])) == 0 {
			t.Fatalf("expected battle history entries, body=%s", string(body))
		}

		status, body = mustJSON(t, client, http.MethodDelete, baseURL+fmt.Sprintf("/api/delete-meal/%d", idA), nil)
		if status != http.StatusOK {
			t.Fatalf("delete meal status=%d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodGet, baseURL+fmt.Sprintf("/api/get-meal-by-id/%d", idA), nil)
		if status != http.StatusNotFound {
			t.Fatalf("get deleted meal status=%d body=%s", status, string(body))
		}
	})

	t.Run("ops kpi", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/ops/kpi", nil)
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
		if _, ok := unmarshalMap(t, body)["battles_total"]; !ok {
			t.Fatalf("expected battles_total in kpi response, body=%s", string(body))
		}
	})
}

func mustJSON(t *testing.T, client *http.Client, method, url string, body map[string]any) (int, []byte) {
	t.Helper()
	status, respBody, err := doRequest(client, method, url, body)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, url, err)
	}
	return status, respBody
}

func doRequest(client *http.Client, method, url string, body map[string]any) (int, []byte, error) {
	var payloadBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		payloadBytes = b
	}

	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var payload io.Reader
		if len(payloadBytes) > 0 {
			payload = bytes.NewReader(payloadBytes)
		}
		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return 0, nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func unmarshalMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal response: %v body=%s", err, string(body))
	}
	return out
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
