package aiextract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var moneyKeys = []string{"total_amount", "tax_amount"}

var textKeys = []string{"merchant_name", "gstin", "invoice_number", "date"}

// NormalizeFields massages a backend response so it can pass the strict
// schema: money values arriving as strings are coerced to numbers, nulls
// and empty strings are dropped, obvious string fields are trimmed, and
// unknown keys are removed. The list of altered keys is reported for
// logging.
func NormalizeFields(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string

	for _, k := range moneyKeys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			// already a number
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				m[k] = f
				dropped = append(dropped, k+"(coerced)")
			} else {
				delete(m, k)
				dropped = append(dropped, k+"(unparseable)")
			}
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	for _, k := range textKeys {
		v, ok := m[k]
		if !ok {
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			delete(m, k)
			dropped = append(dropped, k+"(type)")
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			delete(m, k)
			dropped = append(dropped, k+"(empty)")
			continue
		}
		if k == "gstin" {
			s = strings.ToUpper(s)
		}
		m[k] = s
	}

	allowed := map[string]struct{}{
		"merchant_name": {}, "gstin": {}, "invoice_number": {},
		"date": {}, "total_amount": {}, "tax_amount": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("aiextract.normalize", "dropped", dropped)
	}
	return out, dropped, nil
}
