package aiextract

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config holds backend connection settings.
type Config struct {
	BaseURL string        // extraction endpoint, e.g. https://host/extract
	Timeout time.Duration // per-request timeout, default 45s
}

// Client is a stateless handle to the extraction backend. Construct one
// and reuse it.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// ExtractFields uploads a document to the backend and returns the
// structured fields plus the sanitized raw JSON. The response is checked
// against the fields schema; responses that fail strictly get one lenient
// normalization pass before being rejected.
func (c *Client) ExtractFields(ctx context.Context, filename string, document []byte) (Fields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("aiextract.start",
		"req_id", rid,
		"url", c.cfg.BaseURL,
		"filename", filename,
		"bytes", len(document),
	)

	raw, status, err := c.post(ctx, filename, document)
	if err != nil {
		c.log.Error("aiextract.http_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Fields{}, raw, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		c.log.Error("aiextract.empty_body", "req_id", rid)
		return Fields{}, nil, &ExtractError{Status: status, Message: "backend returned empty response"}
	}

	content := raw
	if err := validateAgainstSchema(BuildFieldsJSONSchema(), content); err != nil {
		cleaned, droppedKeys, sErr := NormalizeFields(content, c.log)
		if sErr != nil {
			c.log.Error("aiextract.sanitize_failed", "req_id", rid, "error", sErr)
			return Fields{}, content, &ExtractError{Status: status, Message: "unusable response: " + sErr.Error()}
		}
		if vErr := validateAgainstSchema(BuildFieldsJSONSchema(), cleaned); vErr != nil {
			c.log.Error("aiextract.schema_validation_failed",
				"req_id", rid, "error", vErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return Fields{}, content, &ExtractError{Status: status, Message: "response failed schema validation: " + vErr.Error()}
		}
		c.log.Warn("aiextract.lenient_sanitize_applied", "req_id", rid, "dropped", droppedKeys)
		content = cleaned
	}

	var out Fields
	if err := json.Unmarshal(content, &out); err != nil {
		c.log.Error("aiextract.unmarshal_failed", "req_id", rid, "error", err)
		return Fields{}, content, &ExtractError{Status: status, Message: "decode fields: " + err.Error()}
	}

	c.log.Info("aiextract.ok",
		"req_id", rid,
		"merchant", out.MerchantName,
		"date", out.Date,
		"total", out.TotalAmount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

// post uploads the document as a multipart form (field name "file") and
// returns the raw body and status code.
func (c *Client) post(ctx context.Context, filename string, document []byte) ([]byte, int, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, 0, &ExtractError{Message: "build form: " + err.Error()}
	}
	if _, err := part.Write(document); err != nil {
		return nil, 0, &ExtractError{Message: "write form: " + err.Error()}
	}
	if err := mw.Close(); err != nil {
		return nil, 0, &ExtractError{Message: "close form: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, &body)
	if err != nil {
		return nil, 0, &ExtractError{Message: "build request: " + err.Error()}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &ExtractError{Message: err.Error()}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("aiextract.body_close_error", "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = resp.Status
		}
		return raw, resp.StatusCode, &ExtractError{Status: resp.StatusCode, Message: msg}
	}
	return raw, resp.StatusCode, nil
}
