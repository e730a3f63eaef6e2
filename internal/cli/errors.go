package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/customs/internal/domain"
)

func printError(w io.Writer, err error) {
	th := NewTheme(w)
	fmt.Fprintf(w, "%s %s\n", th.Error.Render("error:"), userMessage(err))
	if !domain.IsKind(err, domain.KindUsage) {
		fmt.Fprintln(w, th.Hint.Render("  cause: "+err.Error()))
	}
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "Interrupted"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Timed out waiting for UNIPASS"
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Unexpected error"
	}

	switch oe.Kind {
	case domain.KindUsage:
		return usageMessage(err)
	case domain.KindNoResults:
		return "No cargo found for this H B/L and year"
	case domain.KindSchemaMismatch:
		return "Unexpected response from UNIPASS (schema mismatch)"
	case domain.KindMalformedResponse:
		return "UNIPASS returned a response that is not valid JSON"
	case domain.KindHTTPStatus:
		return "UNIPASS returned an error status"
	case domain.KindTransport:
		return "Could not reach UNIPASS"
	case domain.KindNotFound:
		if strings.Contains(oe.Op, "configfile") {
			return "Config file not found" + pathSuffix(oe.Path)
		}
		return "Not found"
	case domain.KindInvalidConfig:
		if strings.Contains(oe.Op, "configfile") {
			return "Invalid config" + pathSuffix(oe.Path)
		}
		return "Invalid config"
	default:
		return "Unexpected error"
	}
}

// usageMessage strips the "cli.args: usage: invalid usage:" prefix chain.
func usageMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrUsage.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrUsage.Error())+2:]
	}
	return msg
}

func pathSuffix(p string) string {
	if strings.TrimSpace(p) == "" {
		return ""
	}
	return " (" + filepath.Base(p) + ")"
}
