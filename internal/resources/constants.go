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

// Collection size constants for resource rendering
const (
	// DefaultCollectionLimit is the maximum number of records a
	// collection resource renders, to prevent overwhelming MCP clients
	// with large result sets. Paging continues server-side until the
	// limit is reached or the backend runs out of records.
	DefaultCollectionLimit = 100
)
