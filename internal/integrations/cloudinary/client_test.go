package cloudinary

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		CloudName: "test-cloud",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "venuebook",
		BaseURL:   baseURL,
	}, noopLogger{})
}

func TestClient_Upload(t *testing.T) {
	t.Run("successful upload is signed and lands in the folder", func(t *testing.T) {
		var gotForm map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1_1/test-cloud/image/upload", r.URL.Path)
			require.NoError(t, r.ParseForm())

			gotForm = map[string]string{
				"public_id": r.PostFormValue("public_id"),
				"api_key":   r.PostFormValue("api_key"),
				"timestamp": r.PostFormValue("timestamp"),
				"signature": r.PostFormValue("signature"),
				"file":      r.PostFormValue("file"),
			}

			fmt.Fprintf(w, `{"secure_url":"https://cdn.example/%s.jpg","public_id":"%s"}`,
				gotForm["public_id"], gotForm["public_id"])
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		result, err := client.Upload(context.Background(), []byte("image-bytes"), "receipts")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.PublicID, "venuebook/receipts/"))
		assert.Equal(t, "https://cdn.example/"+result.PublicID+".jpg", result.URL)

		assert.Equal(t, "key", gotForm["api_key"])
		assert.True(t, strings.HasPrefix(gotForm["file"], "data:image/jpeg;base64,"))

		payload := fmt.Sprintf("public_id=%s&timestamp=%ssecret", gotForm["public_id"], gotForm["timestamp"])
		wantSignature := fmt.Sprintf("%x", sha1.Sum([]byte(payload)))
		assert.Equal(t, wantSignature, gotForm["signature"])
	})

	t.Run("empty file is rejected locally", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:0")
		_, err := client.Upload(context.Background(), nil, "receipts")

		assert.ErrorIs(t, err, ErrUploadFailed)
	})

	t.Run("api error message surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error":{"message":"Invalid signature"}}`)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Upload(context.Background(), []byte("image-bytes"), "receipts")

		assert.ErrorIs(t, err, ErrUploadFailed)
		assert.Contains(t, err.Error(), "Invalid signature")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Upload(context.Background(), []byte("image-bytes"), "receipts")

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClient_Destroy(t *testing.T) {
	t.Run("ok result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1_1/test-cloud/image/destroy", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "venuebook/receipts/abc", r.PostFormValue("public_id"))
			fmt.Fprint(w, `{"result":"ok"}`)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		err := client.Destroy(context.Background(), "venuebook/receipts/abc")

		assert.NoError(t, err)
	})

	t.Run("already deleted file is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"result":"not found"}`)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		err := client.Destroy(context.Background(), "venuebook/receipts/gone")

		assert.NoError(t, err)
	})

	t.Run("unexpected result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"result":"pending"}`)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		err := client.Destroy(context.Background(), "venuebook/receipts/abc")

		assert.ErrorIs(t, err, ErrDeleteFailed)
	})

	t.Run("empty public id is rejected locally", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:0")
		err := client.Destroy(context.Background(), "")

		assert.ErrorIs(t, err, ErrDeleteFailed)
	})
}
