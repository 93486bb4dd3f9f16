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
	"fmt"
	"sync"

	"linear-mcp/internal/linear"
	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// RegisterCycleResources registers the workspace-wide cycle views:
//
//	resource://cycles            all cycles, aggregated across teams
//	resource://cycles/{cycleId}  one cycle
func RegisterCycleResources(router *Router, backend Backend, enabled func(string) bool) error {
	cycleTemplate := MustParseURITemplate(URICycle)

	if enabled(URICycles) {
		err := router.Register("cycles", URICycles, RegistrationOptions{
			Description: "All cycles in the workspace, grouped by team",
			List: func(ctx context.Context, _ map[string]string) ([]Descriptor, error) {
				groups, err := fanOutCycles(ctx, backend)
				if err != nil {
					return nil, err
				}

				var descriptors []Descriptor
				for _, group := range groups {
					for _, cycle := range group.Cycles {
						uri, err := cycleTemplate.Expand(map[string]string{"cycleId": cycle.ID})
						if err != nil {
							return nil, err
						}
						descriptors = append(descriptors, Descriptor{
							URI:         uri,
							Name:        cycleDisplayName(cycle),
							Description: fmt.Sprintf("Cycle of team %s", group.Team.Name),
						})
					}
				}
				return descriptors, nil
			},
		}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
			groups, err := fanOutCycles(ctx, backend)
			if err != nil {
				return backendErrorContent(uri, err)
			}
			return renderCollection(uri, groups, false)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URICycle) {
		err := router.Register("cycle", URICycle, RegistrationOptions{
			Description: "A single cycle by identifier",
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			cycle, err := backend.Cycle(ctx, vars["cycleId"])
			if err != nil {
				return entityError(uri, err)
			}
			return renderJSON(uri, cycle)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// TeamCycles groups one team's cycles for the aggregated view.
type TeamCycles struct {
	Team   linear.Team    `json:"team"`
	Cycles []linear.Cycle `json:"cycles"`
}

// fanOutCycles fetches every team's cycles. The per-team fetches run
// concurrently, but the result is flattened in team-iteration order so
// callers see a stable sequence no matter which fetch finishes first.
// The first per-team failure, again in team order, aborts the whole
// aggregation.
func fanOutCycles(ctx context.Context, backend Backend) ([]TeamCycles, error) {
	teams, err := pagination.NewPaginator(backend.Teams).FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]TeamCycles, len(teams))
	errs := make([]error, len(teams))

	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(1)
		go func(i int, team linear.Team) {
			defer wg.Done()
			cycles, err := pagination.NewPaginator(teamCyclesFetch(backend, team.ID)).FetchAll(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			if cycles == nil {
				cycles = []linear.Cycle{}
			}
			groups[i] = TeamCycles{Team: team, Cycles: cycles}
		}(i, team)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return groups, nil
}

func cycleDisplayName(cycle linear.Cycle) string {
	if cycle.Name != nil && *cycle.Name != "" {
		return *cycle.Name
	}
	return fmt.Sprintf("Cycle %d", cycle.Number)
}
