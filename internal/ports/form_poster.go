package ports

import (
	"context"
	"net/url"
)

// FormPoster sends an application/x-www-form-urlencoded POST and returns the response body.
type FormPoster interface {
	PostForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error)
}
