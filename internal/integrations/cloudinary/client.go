package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// defaultBaseURL адрес Cloudinary API; переопределяется в тестах
const defaultBaseURL = "https://api.cloudinary.com"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config конфигурация клиента Cloudinary
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	// Folder корневая папка проекта в хранилище, например "venue-booking"
	Folder  string
	BaseURL string
	Timeout time.Duration
}

// Client клиент внешнего хранилища файлов (Cloudinary).
// Выполняет подписанные запросы upload/destroy.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Cloudinary
func NewClient(cfg Config, log Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Upload загружает файл в подпапку subfolder и возвращает URL с идентификатором удаления.
// PublicID генерируется на стороне клиента.
func (c *Client) Upload(ctx context.Context, data []byte, subfolder string) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUploadFailed)
	}

	publicID := uuid.NewString()
	if c.cfg.Folder != "" {
		publicID = c.cfg.Folder + "/" + subfolder + "/" + publicID
	} else if subfolder != "" {
		publicID = subfolder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Подписанная загрузка: SHA1 от параметров запроса + секрет
	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", c.cfg.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign(publicID, timestamp))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.cfg.BaseURL, c.cfg.CloudName)

	body, err := c.post(ctx, endpoint, form)
	if err != nil {
		return nil, err
	}

	var uploadRes uploadResponse
	if err := json.Unmarshal(body, &uploadRes); err != nil {
		return nil, fmt.Errorf("%w: failed to decode upload response: %v", ErrInvalidResponse, err)
	}
	if uploadRes.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, uploadRes.Error.Message)
	}

	resultURL := uploadRes.SecureURL
	if resultURL == "" {
		resultURL = uploadRes.URL
	}
	if resultURL == "" {
		return nil, fmt.Errorf("%w: no url in upload response", ErrInvalidResponse)
	}

	resultPublicID := uploadRes.PublicID
	if resultPublicID == "" {
		resultPublicID = publicID
	}

	c.log.Info("Cloudinary: uploaded %s", resultPublicID)
	return &UploadResult{URL: resultURL, PublicID: resultPublicID}, nil
}

// Destroy удаляет файл по его public_id
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return fmt.Errorf("%w: empty public_id", ErrDeleteFailed)
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("public_id", publicID)
	form.Add("api_key", c.cfg.APIKey)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign(publicID, timestamp))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", c.cfg.BaseURL, c.cfg.CloudName)

	body, err := c.post(ctx, endpoint, form)
	if err != nil {
		return err
	}

	var destroyRes destroyResponse
	if err := json.Unmarshal(body, &destroyRes); err != nil {
		return fmt.Errorf("%w: failed to decode destroy response: %v", ErrInvalidResponse, err)
	}
	if destroyRes.Error.Message != "" {
		return fmt.Errorf("%w: %s", ErrDeleteFailed, destroyRes.Error.Message)
	}
	if destroyRes.Result != "ok" && destroyRes.Result != "not found" {
		return fmt.Errorf("%w: unexpected result %q", ErrDeleteFailed, destroyRes.Result)
	}

	c.log.Info("Cloudinary: destroyed %s", publicID)
	return nil
}

// sign строит SHA1-подпись запроса в формате Cloudinary
func (c *Client) sign(publicID, timestamp string) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, c.cfg.APISecret)
	return fmt.Sprintf("%x", sha1.Sum([]byte(payload)))
}

func (c *Client) post(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return body, nil
}
