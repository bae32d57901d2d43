package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/httpclient"
)

// maxAnswerSize bounds a decoded registrar answer.
const maxAnswerSize = 1 << 20

// postJSON sends in to the registrar endpoint and decodes a 2xx answer into
// out. Any other answer is translated to a domain error.
func postJSON(ctx context.Context, client *httpclient.Client, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding registrar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building registrar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) {
			return translateStatus(se)
		}
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return translateStatus(httpclient.NewStatusError(client.Name(), resp))
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAnswerSize)).Decode(out); err != nil {
		return fmt.Errorf("decoding registrar answer: %w", err)
	}
	return nil
}
