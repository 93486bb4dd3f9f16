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

	"linear-mcp/internal/mcp"
	"linear-mcp/internal/pagination"
)

// RegisterDocumentResources registers the document address space:
//
//	resource://documents               directory of documents
//	resource://documents/{documentId}  one document with its content
func RegisterDocumentResources(router *Router, backend Backend, enabled func(string) bool) error {
	documentTemplate := MustParseURITemplate(URIDocument)

	if enabled(URIDocuments) {
		err := router.Register("documents", URIDocuments, RegistrationOptions{
			Description: "All documents in the workspace",
			List: func(ctx context.Context, _ map[string]string) ([]Descriptor, error) {
				documents, err := pagination.NewPaginator(backend.Documents).FetchAll(ctx)
				if err != nil {
					return nil, err
				}

				descriptors := make([]Descriptor, 0, len(documents))
				for _, document := range documents {
					uri, err := documentTemplate.Expand(map[string]string{"documentId": document.ID})
					if err != nil {
						return nil, err
					}
					descriptors = append(descriptors, Descriptor{
						URI:  uri,
						Name: document.Title,
					})
				}
				return descriptors, nil
			},
		}, func(ctx context.Context, uri string, _ map[string]string) (mcp.ResourceContent, error) {
			paginator := pagination.NewPaginator(backend.Documents)
			documents, truncated, err := collectLimited(ctx, paginator, DefaultCollectionLimit)
			if err != nil {
				return backendErrorContent(uri, err)
			}
			return renderCollection(uri, documents, truncated)
		})
		if err != nil {
			return err
		}
	}

	if enabled(URIDocument) {
		err := router.Register("document", URIDocument, RegistrationOptions{
			Description: "A single document by identifier, including its body",
		}, func(ctx context.Context, uri string, vars map[string]string) (mcp.ResourceContent, error) {
			document, err := backend.Document(ctx, vars["documentId"])
			if err != nil {
				return entityError(uri, err)
			}
			return renderJSON(uri, document)
		})
		if err != nil {
			return err
		}
	}

	return nil
}
