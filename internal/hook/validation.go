package hook

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/probelab/webhook-site-mcp-server/internal/errors"
)

var aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9-]{3,32}$`)

// ValidateToken accepts a webhook.site token UUID or a custom alias.
func ValidateToken(token string) error {
	if token == "" {
		return errors.NewValidationError("token_id", token, "must not be empty")
	}
	if _, err := uuid.Parse(token); err == nil {
		return nil
	}
	if aliasPattern.MatchString(token) {
		return nil
	}
	return errors.NewValidationError("token_id", token,
		"must be a UUID or an alias of 3-32 letters, digits, and hyphens")
}

// ValidateConfig checks token settings against the API's accepted ranges.
func ValidateConfig(config TokenConfig) error {
	if config.DefaultStatus != nil {
		if *config.DefaultStatus < 200 || *config.DefaultStatus > 599 {
			return errors.NewValidationError("default_status", strconv.Itoa(*config.DefaultStatus),
				"must be between 200 and 599")
		}
	}
	if config.Timeout != nil {
		if *config.Timeout < 0 || *config.Timeout > 30 {
			return errors.NewValidationError("timeout", strconv.Itoa(*config.Timeout),
				"must be between 0 and 30 seconds")
		}
	}
	if config.Expiry != nil {
		if *config.Expiry < 0 || *config.Expiry > 604800 {
			return errors.NewValidationError("expiry", strconv.Itoa(*config.Expiry),
				"must be between 0 and 604800 seconds (7 days)")
		}
	}
	if config.Alias != nil && !aliasPattern.MatchString(*config.Alias) {
		return errors.NewValidationError("alias", *config.Alias,
			"must be 3-32 letters, digits, and hyphens")
	}
	return nil
}
