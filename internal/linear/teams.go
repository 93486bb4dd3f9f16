/*-------------------------------------------------------------------------
 *
 * Linear MCP - Linear API Client
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package linear

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"linear-mcp/internal/pagination"
)

// pageVariables builds the cursor variables shared by every connection
// query. A non-positive First falls back to the client's configured
// page size, then to the package default.
func (c *Client) pageVariables(req pagination.PageRequest) map[string]interface{} {
	first := req.First
	if first <= 0 {
		first = c.pageSize
	}
	if first <= 0 {
		first = pagination.DefaultPageSize
	}
	vars := map[string]interface{}{"first": first}
	if req.After != "" {
		vars["after"] = req.After
	}
	return vars
}

// notFoundErr maps the API's "Entity not found" failure onto ErrNotFound
// so call sites can branch with errors.Is instead of string matching.
// Any other error passes through unmodified.
func notFoundErr(err error, kind, id string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, msg := range apiErr.Messages {
			if strings.Contains(msg, "Entity not found") {
				return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
			}
		}
	}
	return err
}

// Viewer fetches the user the API key authenticates as.
func (c *Client) Viewer(ctx context.Context) (*User, error) {
	var result struct {
		Viewer *User `json:"viewer"`
	}
	if err := c.execute(ctx, queryViewer, nil, &result); err != nil {
		return nil, err
	}
	if result.Viewer == nil {
		return nil, fmt.Errorf("%w: viewer", ErrNotFound)
	}
	return result.Viewer, nil
}

// Teams fetches one page of the workspace's teams.
func (c *Client) Teams(ctx context.Context, req pagination.PageRequest) (pagination.Page[Team], error) {
	var result struct {
		Teams pagination.Page[Team] `json:"teams"`
	}
	if err := c.execute(ctx, queryTeams, c.pageVariables(req), &result); err != nil {
		return pagination.Page[Team]{}, err
	}
	return result.Teams, nil
}

// Team fetches a single team by ID.
func (c *Client) Team(ctx context.Context, id string) (*Team, error) {
	var result struct {
		Team *Team `json:"team"`
	}
	if err := c.execute(ctx, queryTeam, map[string]interface{}{"id": id}, &result); err != nil {
		return nil, notFoundErr(err, "team", id)
	}
	if result.Team == nil {
		return nil, fmt.Errorf("%w: team %s", ErrNotFound, id)
	}
	return result.Team, nil
}

// TeamCycles fetches one page of a team's cycles.
func (c *Client) TeamCycles(ctx context.Context, teamID string, req pagination.PageRequest) (pagination.Page[Cycle], error) {
	vars := c.pageVariables(req)
	vars["teamId"] = teamID

	var result struct {
		Team *struct {
			Cycles pagination.Page[Cycle] `json:"cycles"`
		} `json:"team"`
	}
	if err := c.execute(ctx, queryTeamCycles, vars, &result); err != nil {
		return pagination.Page[Cycle]{}, notFoundErr(err, "team", teamID)
	}
	if result.Team == nil {
		return pagination.Page[Cycle]{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return result.Team.Cycles, nil
}

// Cycle fetches a single cycle by ID.
func (c *Client) Cycle(ctx context.Context, id string) (*Cycle, error) {
	var result struct {
		Cycle *Cycle `json:"cycle"`
	}
	if err := c.execute(ctx, queryCycle, map[string]interface{}{"id": id}, &result); err != nil {
		return nil, notFoundErr(err, "cycle", id)
	}
	if result.Cycle == nil {
		return nil, fmt.Errorf("%w: cycle %s", ErrNotFound, id)
	}
	return result.Cycle, nil
}

// Users fetches one page of workspace members.
func (c *Client) Users(ctx context.Context, req pagination.PageRequest) (pagination.Page[User], error) {
	var result struct {
		Users pagination.Page[User] `json:"users"`
	}
	if err := c.execute(ctx, queryUsers, c.pageVariables(req), &result); err != nil {
		return pagination.Page[User]{}, err
	}
	return result.Users, nil
}

// User fetches a single workspace member by ID.
func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var result struct {
		User *User `json:"user"`
	}
	if err := c.execute(ctx, queryUser, map[string]interface{}{"id": id}, &result); err != nil {
		return nil, notFoundErr(err, "user", id)
	}
	if result.User == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return result.User, nil
}
