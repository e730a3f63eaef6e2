package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/aalvaropc/customs/internal/domain"
)

const contentTypeForm = "application/x-www-form-urlencoded"

// BuildFormRequest builds a POST request carrying form as a url-encoded body.
func BuildFormRequest(ctx context.Context, endpoint string, form url.Values, headers http.Header) (*http.Request, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	if form == nil {
		form = url.Values{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	for k, vv := range headers {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentTypeForm)
	}

	return req, nil
}
