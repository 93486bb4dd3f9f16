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

// RegisterAll registers every built-in resource against the router. The
// enabled callback gates individual addresses; nil enables everything.
// Saved views are user-defined and registered separately through
// RegisterViewResources.
func RegisterAll(router *Router, backend Backend, enabled func(string) bool) error {
	if enabled == nil {
		enabled = func(string) bool { return true }
	}

	registrars := []func(*Router, Backend, func(string) bool) error{
		RegisterTeamResources,
		RegisterCycleResources,
		RegisterIssueResources,
		RegisterProjectResources,
		RegisterUserResources,
		RegisterLabelResources,
		RegisterDocumentResources,
	}

	for _, register := range registrars {
		if err := register(router, backend, enabled); err != nil {
			return err
		}
	}
	return nil
}
