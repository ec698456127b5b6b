package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/CodeLearner2024/ziganya-client/internal/feedback"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
)

// newAPIServer spins up a fake Ziganya backend for controller tests.
func newAPIServer(t *testing.T, configure func(r chi.Router)) *apiclient.Client {
	t.Helper()
	router := chi.NewRouter()
	configure(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return apiclient.NewClient(server.URL, "", 5*time.Second)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func decodeBody(t *testing.T, r *http.Request, into any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		t.Errorf("failed to decode request body: %v", err)
	}
}

func newTestFeedback() (*feedback.Channel, i18n.Translator) {
	return feedback.NewChannel(time.Minute, time.Minute), i18n.NewBundle(i18n.LangEnglish).Translator()
}
