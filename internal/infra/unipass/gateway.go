package unipass

import (
	"context"
	"html"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aalvaropc/customs/internal/domain"
	"github.com/aalvaropc/customs/internal/ports"
)

const (
	progressPath = "/csp/myc/bsopspptinfo/cscllgstinfo/ImpCargPrgsInfoMtCtr"
	SummaryPath  = progressPath + "/retrieveImpCargPrgsInfoLst.do"
	DetailPath   = progressPath + "/retrieveImpCargPrgsInfoDtl.do"
)

// Gateway looks up import cargo progress on UNIPASS.
type Gateway struct {
	poster  ports.FormPoster
	baseURL string
	logger  *slog.Logger
}

type Option func(*Gateway)

// WithBaseURL points the gateway at another host, e.g. an httptest server.
func WithBaseURL(base string) Option {
	return func(g *Gateway) { g.baseURL = strings.TrimRight(strings.TrimSpace(base), "/") }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

func New(poster ports.FormPoster, opts ...Option) *Gateway {
	g := &Gateway{
		poster:  poster,
		baseURL: domain.DefaultBaseURL,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ ports.CargoGateway = (*Gateway)(nil)

// SummaryForm is the list lookup payload: one page of 10 rows, queried by H B/L and year.
func SummaryForm(hbl, year string) url.Values {
	form := pageForm()
	form.Set("qryTp", "2")
	form.Set("cargMtNo", "")
	form.Set("mblNo", "")
	form.Set("hblNo", hbl)
	form.Set("blYy", year)
	return form
}

// DetailForm is the detail lookup payload keyed by cargo management number.
func DetailForm(cargoManagementNo string) url.Values {
	form := pageForm()
	form.Set("cargMtNo", cargoManagementNo)
	return form
}

func pageForm() url.Values {
	return url.Values{
		"firstIndex":         {"0"},
		"page":               {"1"},
		"pageIndex":          {"1"},
		"pageSize":           {"10"},
		"pageUnit":           {"10"},
		"recordCountPerPage": {"10"},
	}
}

// Unescape reverses the HTML entity escaping UNIPASS applies to its JSON bodies.
func Unescape(body []byte) []byte {
	return []byte(html.UnescapeString(string(body)))
}

func (g *Gateway) FetchSummary(ctx context.Context, hbl, year string) (domain.Summary, error) {
	body, err := g.poster.PostForm(ctx, g.baseURL+SummaryPath, SummaryForm(hbl, year))
	if err != nil {
		return domain.Summary{}, wrap("unipass.summary", err)
	}

	s, err := decodeSummary(Unescape(body))
	if err != nil {
		return domain.Summary{}, wrap("unipass.summary", err)
	}

	g.logger.Debug("unipass.summary", "hbl", hbl, "year", year, "results", len(s.Results))
	return s, nil
}

func (g *Gateway) FetchDetail(ctx context.Context, cargoManagementNo string) (domain.CargoDetail, error) {
	body, err := g.poster.PostForm(ctx, g.baseURL+DetailPath, DetailForm(cargoManagementNo))
	if err != nil {
		return domain.CargoDetail{}, wrap("unipass.detail", err)
	}

	d, err := decodeDetail(Unescape(body))
	if err != nil {
		return domain.CargoDetail{}, wrap("unipass.detail", err)
	}

	g.logger.Debug("unipass.detail", "cargo_mt_no", cargoManagementNo, "events", len(d.Events))
	return d, nil
}

// wrap keeps the kind of the underlying failure so callers can classify it.
func wrap(op string, err error) error {
	kind := domain.KindOf(err)
	if kind == "" {
		kind = domain.KindTransport
	}
	return &domain.OpError{Op: op, Kind: kind, Err: err}
}
