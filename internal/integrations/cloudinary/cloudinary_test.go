package cloudinary

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SulimanFURC/BE-HMS/internal/config"
	"github.com/sirupsen/logrus"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(&config.Config{
		CloudinaryURL:       server.URL,
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
	}, log)
}

func TestUpload(t *testing.T) {
	var gotForm map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo/image/upload" {
			t.Errorf("path = %q, want /demo/image/upload", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/demo/image/upload/students/picture-1.jpg",
		})
	})

	url, err := client.Upload(context.Background(), "data:image/jpeg;base64,aGVsbG8=", "students", "picture-1.jpg")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://res.cloudinary.com/demo/image/upload/students/picture-1.jpg" {
		t.Errorf("url = %q", url)
	}
	if gotForm["folder"] != "students" || gotForm["public_id"] != "picture-1" {
		t.Errorf("form = %v, want folder=students public_id=picture-1", gotForm)
	}
	if gotForm["signature"] == "" || gotForm["api_key"] != "key" {
		t.Error("request is missing credentials or signature")
	}
}

func TestUpload_RejectsBadDataURI(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called for an invalid data URI")
	})

	if _, err := client.Upload(context.Background(), "not-a-data-uri", "students", "x.jpg"); err == nil {
		t.Fatal("expected error for invalid data URI")
	}
}

func TestUpload_ServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Invalid signature"},
		})
	})

	_, err := client.Upload(context.Background(), "data:image/jpeg;base64,aGVsbG8=", "students", "x.jpg")
	if err == nil {
		t.Fatal("expected error from rejected upload")
	}
}

func TestSign_Deterministic(t *testing.T) {
	client := testClient(t, nil)
	params := map[string]string{"timestamp": "100", "folder": "students", "public_id": "p"}
	if client.sign(params) != client.sign(params) {
		t.Error("signature is not deterministic")
	}
}
