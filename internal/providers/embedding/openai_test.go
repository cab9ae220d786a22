package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/quillhq/quill/internal/config"
)

func TestOpenAI_Embed(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"embedding":[0.25,-0.5,1]}]}`))
	}))
	defer server.Close()

	e := NewOpenAI(&config.OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL}, "text-embedding-ada-002")

	vec, err := e.Embed(context.Background(), "what is a monad?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["model"] != "text-embedding-ada-002" || gotBody["input"] != "what is a monad?" {
		t.Errorf("request body = %v", gotBody)
	}
	if want := []float32{0.25, -0.5, 1}; !reflect.DeepEqual(vec, want) {
		t.Errorf("embedding = %v, want %v", vec, want)
	}
}

func TestOpenAI_Embed_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	e := NewOpenAI(&config.OpenAIConfig{APIKey: "bad", BaseURL: server.URL}, "text-embedding-ada-002")

	if _, err := e.Embed(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for a non-200 response")
	}
}

func TestOpenAI_Embed_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	e := NewOpenAI(&config.OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL}, "text-embedding-ada-002")

	if _, err := e.Embed(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for an empty data array")
	}
}
