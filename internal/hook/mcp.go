package hook

import (
	"context"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// CreateSimpleTokenMCP is the MCP wrapper for Create with default settings
func (c *Client) CreateSimpleTokenMCP(ctx context.Context, _ CreateSimpleArgs) (CreateTokenResult, error) {
	return c.CreateTokenMCP(ctx, CreateTokenArgs{})
}

// CreateTokenMCP is the MCP wrapper for Create/CreateWithConfig
func (c *Client) CreateTokenMCP(ctx context.Context, args CreateTokenArgs) (CreateTokenResult, error) {
	config := TokenConfig{
		DefaultStatus:      args.DefaultStatus,
		DefaultContent:     args.DefaultContent,
		DefaultContentType: args.DefaultContentType,
		Timeout:            args.Timeout,
		CORS:               args.CORS,
		Alias:              args.Alias,
		Expiry:             args.Expiry,
	}

	var (
		token *Token
		err   error
	)
	if config.IsZero() {
		token, err = c.Create(ctx)
	} else {
		token, err = c.CreateWithConfig(ctx, config)
	}
	if err != nil {
		return CreateTokenResult{}, err
	}

	return CreateTokenResult{
		TokenID:   token.UUID,
		Addresses: c.DeriveAddresses(token.UUID, token.Alias),
		ExpiresAt: token.ExpiresAt,
		Message:   "Webhook endpoint created. Traffic to any of the addresses is captured under this token.",
	}, nil
}

// GetTokenMCP is the MCP wrapper for Get
func (c *Client) GetTokenMCP(ctx context.Context, args GetTokenArgs) (GetTokenResult, error) {
	token, err := c.Get(ctx, args.TokenID)
	if err != nil {
		return GetTokenResult{}, err
	}
	return GetTokenResult{
		Token:     token,
		Addresses: c.DeriveAddresses(token.UUID, token.Alias),
	}, nil
}

// UpdateTokenMCP is the MCP wrapper for Update
func (c *Client) UpdateTokenMCP(ctx context.Context, args UpdateTokenArgs) (UpdateTokenResult, error) {
	token, err := c.Update(ctx, args.TokenID, TokenConfig{
		DefaultStatus:      args.DefaultStatus,
		DefaultContent:     args.DefaultContent,
		DefaultContentType: args.DefaultContentType,
		Timeout:            args.Timeout,
		CORS:               args.CORS,
	})
	if err != nil {
		return UpdateTokenResult{}, err
	}
	return UpdateTokenResult{
		Token:   token,
		Message: "Webhook settings updated.",
	}, nil
}

// DeleteTokenMCP is the MCP wrapper for Delete
func (c *Client) DeleteTokenMCP(ctx context.Context, args DeleteTokenArgs) (DeleteTokenResult, error) {
	ok, _, err := c.Delete(ctx, args.TokenID)
	if err != nil {
		return DeleteTokenResult{}, err
	}
	if !ok {
		return DeleteTokenResult{Deleted: false, Message: "Deletion was not confirmed by the API."}, nil
	}
	return DeleteTokenResult{
		Deleted: true,
		Message: "Webhook and all captured data deleted.",
	}, nil
}

// SendMCP is the MCP wrapper for Send
func (c *Client) SendMCP(ctx context.Context, args SendArgs) (SendResult, error) {
	data := args.Data
	if data == nil {
		data = map[string]interface{}{"test": true}
	}
	target, err := c.Send(ctx, args.TokenID, data)
	if err != nil {
		return SendResult{}, err
	}
	return SendResult{
		Sent:    true,
		URL:     target,
		Message: "Test request delivered; it now appears in the endpoint's captured requests.",
	}, nil
}

// GetURLMCP is the MCP wrapper for the URL address helper
func (c *Client) GetURLMCP(ctx context.Context, args AddressArgs) (URLResult, error) {
	addrs, err := c.resolveAddresses(ctx, args)
	if err != nil {
		return URLResult{}, err
	}
	return URLResult{
		URL:          addrs.URL,
		SubdomainURL: addrs.SubdomainURL,
		Message:      "Send HTTP requests to either URL to capture them.",
	}, nil
}

// GetEmailMCP is the MCP wrapper for the email address helper
func (c *Client) GetEmailMCP(ctx context.Context, args AddressArgs) (EmailResult, error) {
	addrs, err := c.resolveAddresses(ctx, args)
	if err != nil {
		return EmailResult{}, err
	}
	return EmailResult{
		Email:   addrs.Email,
		Message: "Mail sent to this address is captured as an email-type request.",
	}, nil
}

// GetDNSMCP is the MCP wrapper for the DNS address helper
func (c *Client) GetDNSMCP(ctx context.Context, args AddressArgs) (DNSResult, error) {
	addrs, err := c.resolveAddresses(ctx, args)
	if err != nil {
		return DNSResult{}, err
	}
	return DNSResult{
		DNS:     addrs.DNS,
		Message: "Lookups of this name or any subdomain are captured as dns-type requests.",
	}, nil
}

func (c *Client) resolveAddresses(ctx context.Context, args AddressArgs) (Addresses, error) {
	if err := ValidateToken(args.TokenID); err != nil {
		return Addresses{}, err
	}
	alias := ""
	if args.Validate {
		token, err := c.Get(ctx, args.TokenID)
		if err != nil {
			return Addresses{}, err
		}
		alias = token.Alias
	}
	return c.DeriveAddresses(args.TokenID, alias), nil
}
