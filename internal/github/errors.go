package github

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/triage-warden/internal/core"
)

// classifyError maps go-github and transport errors onto the core taxonomy.
// Errors that fit no category are returned unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", core.ErrNotFound, err)
		case http.StatusUnprocessableEntity:
			// Deleting a ref that is already gone answers 422, not 404.
			if strings.Contains(ghErr.Message, "Reference does not exist") {
				return fmt.Errorf("%w: %w", core.ErrNotFound, err)
			}
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", core.ErrTransient, err)
	}
	return err
}
