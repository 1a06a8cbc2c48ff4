package supabase

import (
	"context"
	"fmt"
	"net/url"
)

// Table names used by the portal.
const (
	TableProfiles  = "profiles"
	TableProducts  = "products"
	TableShipments = "shipments"
)

// Select reads every row of a table into dest (a pointer to a slice).
// No pagination or filtering is applied.
func (c *Client) Select(ctx context.Context, table string, dest any) error {
	path := fmt.Sprintf("/rest/v1/%s?select=*", table)
	if err := c.do(ctx, "GET", path, nil, dest, nil); err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	return nil
}

// SelectOne reads the single row where column equals value into dest.
func (c *Client) SelectOne(ctx context.Context, table, column, value string, dest any) error {
	path := fmt.Sprintf("/rest/v1/%s?select=*&%s=eq.%s", table, column, url.QueryEscape(value))
	headers := map[string]string{
		// PostgREST returns a bare object instead of a one-element array.
		"Accept": "application/vnd.pgrst.object+json",
	}
	if err := c.do(ctx, "GET", path, nil, dest, headers); err != nil {
		return fmt.Errorf("select one %s: %w", table, err)
	}
	return nil
}

// Insert writes one record to a table. The inserted row is not returned;
// callers re-fetch the snapshot after every successful write.
func (c *Client) Insert(ctx context.Context, table string, record any) error {
	headers := map[string]string{"Prefer": "return=minimal"}
	if err := c.do(ctx, "POST", "/rest/v1/"+table, record, nil, headers); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// Delete removes the row with the given id from a table.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	path := fmt.Sprintf("/rest/v1/%s?id=eq.%s", table, url.QueryEscape(id))
	if err := c.do(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}
