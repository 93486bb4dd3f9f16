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

// Resource URI templates
// These constants define the address space served by the router.
// Entries containing {braced} segments are templates; the rest are
// static URIs.
const (
	URITeams      = "resource://teams"
	URITeam       = "resource://teams/{teamId}"
	URITeamCycles = "resource://teams/{teamId}/cycles"

	URICycles = "resource://cycles"
	URICycle  = "resource://cycles/{cycleId}"

	URIIssues        = "resource://issues"
	URIIssue         = "resource://issues/{issueId}"
	URIIssueComments = "resource://issues/{issueId}/comments"

	URIProjects = "resource://projects"
	URIProject  = "resource://projects/{projectId}"

	URIUsers  = "resource://users"
	URIUser   = "resource://users/{userId}"
	URIViewer = "resource://viewer"

	URILabels = "resource://labels"

	URIDocuments = "resource://documents"
	URIDocument  = "resource://documents/{documentId}"

	URIViews = "resource://views"
	URIView  = "resource://views/{name}"
)
