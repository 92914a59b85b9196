package aiextract

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(Config{BaseURL: url}, nil)
}

func TestExtractFieldsSuccess(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"merchant_name": "Swiggy",
			"gstin": "29AABCT1332L1ZN",
			"invoice_number": "INV-2024-0042",
			"date": "2024-08-05",
			"total_amount": 1295.00,
			"tax_amount": 45.00
		}`))
	}))
	defer srv.Close()

	fields, raw, err := newTestClient(srv.URL).ExtractFields(context.Background(), "invoice.pdf", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)

	assert.Equal(t, "Swiggy", fields.MerchantName)
	assert.Equal(t, "29AABCT1332L1ZN", fields.GSTIN)
	assert.Equal(t, "INV-2024-0042", fields.InvoiceNumber)
	assert.Equal(t, "2024-08-05", fields.Date)
	assert.Equal(t, 1295.00, fields.TotalAmount)
	assert.Equal(t, 45.00, fields.TaxAmount)
	assert.NotEmpty(t, raw)

	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Contains(t, string(gotBody), `filename="invoice.pdf"`)
	assert.Contains(t, string(gotBody), "%PDF-1.4 fake")
}

func TestExtractFieldsSanitizesMessyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// amounts as strings, lowercase gstin, stray key
		_, _ = w.Write([]byte(`{
			"merchant_name": "  Zomato  ",
			"gstin": "29aabct1332l1zn",
			"total_amount": "1,295.00",
			"tax_amount": null,
			"reasoning": "model chatter"
		}`))
	}))
	defer srv.Close()

	fields, _, err := newTestClient(srv.URL).ExtractFields(context.Background(), "scan.jpg", []byte{0xff, 0xd8})
	require.NoError(t, err)

	assert.Equal(t, "Zomato", fields.MerchantName)
	assert.Equal(t, "29AABCT1332L1ZN", fields.GSTIN)
	assert.Equal(t, 1295.00, fields.TotalAmount)
	assert.Zero(t, fields.TaxAmount)
}

func TestExtractFieldsBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).ExtractFields(context.Background(), "invoice.pdf", []byte("doc"))
	require.Error(t, err)

	var exErr *ExtractError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, http.StatusServiceUnavailable, exErr.Status)
	assert.Contains(t, exErr.Message, "model overloaded")
}

func TestExtractFieldsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).ExtractFields(context.Background(), "invoice.pdf", []byte("doc"))
	require.Error(t, err)

	var exErr *ExtractError
	require.ErrorAs(t, err, &exErr)
	assert.Contains(t, exErr.Message, "empty response")
}

func TestExtractFieldsUnusableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date": "yesterday-ish"}`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).ExtractFields(context.Background(), "invoice.pdf", []byte("doc"))
	require.Error(t, err)

	var exErr *ExtractError
	require.ErrorAs(t, err, &exErr)
	assert.Contains(t, exErr.Message, "schema validation")
}
