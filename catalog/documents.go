package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/anythingllm-mcp/tools"
)

// uploadDocument reads a file from the server's local filesystem and sends
// it as a multipart upload.
var uploadDocument = tools.Define("upload_document",
	"Upload a local file as a document into a workspace",
	tools.Object(map[string]any{
		"slug":     slugProp(),
		"filePath": tools.String("Path of the file to upload, on the machine running this server"),
		"filename": tools.String("Name to give the uploaded document (default: base name of filePath)"),
	}, "slug", "filePath"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		path := a.String("filePath")
		if path == "" {
			return nil, fmt.Errorf("%w: filePath is required", tools.ErrArgument)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		defer f.Close()
		return c.UploadDocument(ctx, a.String("slug"), a.StringOr("filename", filepath.Base(path)), f)
	}, "documents")

var listDocuments = tools.Define("list_documents",
	"List all documents in a workspace",
	tools.Object(map[string]any{"slug": slugProp()}, "slug"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.ListDocuments(ctx, a.String("slug"))
	}, "documents")

var deleteDocument = tools.Define("delete_document",
	"Delete a document from a workspace",
	tools.Object(map[string]any{
		"slug":       slugProp(),
		"documentId": tools.String("The document ID to delete"),
	}, "slug", "documentId"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.DeleteDocument(ctx, a.String("slug"), a.String("documentId"))
	}, "documents")

var embedText = tools.Define("embed_text",
	"Embed text directly into a workspace",
	tools.Object(map[string]any{
		"slug":  slugProp(),
		"texts": tools.StringArray("Array of text strings to embed"),
	}, "slug", "texts"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.EmbedText(ctx, a.String("slug"), a.Strings("texts"))
	}, "documents", "embeddings")

var embedWebpage = tools.Define("embed_webpage",
	"Embed a webpage into a workspace",
	tools.Object(map[string]any{
		"slug": slugProp(),
		"url":  tools.String("URL of the webpage to embed"),
	}, "slug", "url"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.EmbedWebpage(ctx, a.String("slug"), a.String("url"))
	}, "documents", "embeddings")

var processDocumentURL = tools.Define("process_document_url",
	"Process a document from a URL",
	tools.Object(map[string]any{
		"slug": slugProp(),
		"url":  tools.String("URL of the document to process"),
	}, "slug", "url"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.ProcessDocument(ctx, a.String("slug"), a.String("url"))
	}, "documents")

var getDocumentVectors = tools.Define("get_document_vectors",
	"Get vector embeddings for a document",
	tools.Object(map[string]any{
		"slug":       slugProp(),
		"documentId": tools.String("ID of the document"),
	}, "slug", "documentId"),
	func(ctx context.Context, c *anythingllm.Client, a tools.Args) (any, error) {
		return c.GetDocumentVectors(ctx, a.String("slug"), a.String("documentId"))
	}, "documents", "embeddings")
