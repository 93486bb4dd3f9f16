/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package resources

import (
	"context"

	"linear-mcp/internal/linear"
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// RegisterTeamResources registers the team address space:
//
//	resource://teams                  directory of teams
//	resource://teams/{teamId}         one team
//	resource://teams/{teamId}/cycles  a team's cycles
func RegisterTeamResources(router *Router, backend Backend, enabled func(string) bool) error {
	teamTemplate := MustParseURITemplate(URITeam)
	cycleTemplate := MustParseURITemplate(URICycle)

	if enabled(URITeams) {
		err := router.Register("teams", URITeams, RegistrationOptions{
			Description: "All teams in the workspace with their keys and descriptions",
			List: func(ctx context.Context, _ map[string]string) ([]Descriptor, error) {
				teams, err := pagination.NewPaginator(backend.Teams).FetchAll(ctx)
				if err != nil {
					return nil, err
				}

				descriptors := make([]Descriptor, 0, len(teams))
				for _, team := range teams {
					uri, err := teamTemplate.Expand(map[string]string{"teamId": team.ID})
					if err != nil {
						return nil, err
					}
					descriptors = append(descriptors, Descriptor{
						URI:         uri,
						Name:        team.Name,
						Description: deref(team.Description),
					})
				}
				return descriptors, nil
			},
		}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
			paginator := pagination.NewPaginator(backend.Teams)
			teams, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
			if err != nil {
				return backendErrorContent(uri, err)
			}
			return renderCollection(uri, teams, truncated)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URITeam) {
		err := router.Register("team", URITeam, RegistrationOptions{
			Description: "A single team by identifier",
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			team, err := backend.Team(ctx, vars["teamId"])
			if err != nil {
				return entityError(uri, err)
			}
			return renderJSON(uri, team)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URITeamCycles) {
		err := router.Register("team_cycles", URITeamCycles, RegistrationOptions{
			Description: "The cycles of a single team",
			List: func(ctx context.Context, vars map[string]string) ([]Descriptor, error) {
				cycles, err := pagination.NewPaginator(teamCyclesFetch(backend, vars["teamId"])).FetchAll(ctx)
				if err != nil {
					return nil, err
				}

				descriptors := make([]Descriptor, 0, len(cycles))
				for _, cycle := range cycles {
					uri, err := cycleTemplate.Expand(map[string]string{"cycleId": cycle.ID})
					if err != nil {
						return nil, err
					}
					descriptors = append(descriptors, Descriptor{
						URI:  uri,
						Name: cycleDisplayName(cycle),
					})
				}
				return descriptors, nil
			},
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			paginator := pagination.NewPaginator(teamCyclesFetch(backend, vars["teamId"]))
			cycles, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
			if err != nil {
				return entityError(uri, err)
			}
			return renderCollection(uri, cycles, truncated)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// teamCyclesFetch binds a team identifier into a page fetch function.
func teamCyclesFetch(backend Backend, teamID string) pagination.PageFetchFunc[linear.Cycle] {
	return func(ctx context.Context, req pagination.PageRequest) (pagination.Page[linear.Cycle], error) {
		return backend.TeamCycles(ctx, teamID, req)
	}
}
