package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	dirResourceURI     = "dir://test"
	echoTemplateURI    = "echo://{message}"
	echoScheme         = "echo://"
	hotdealResourceURI = "hotdeal://latest"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(
		mcp.NewResource(dirResourceURI, "test",
			mcp.WithResourceDescription("test 폴더에 있는 파일 리스트"),
			mcp.WithMIMEType("application/json"),
		),
		s.handleDirResource,
	)

	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(echoTemplateURI, "echo_template",
			mcp.WithTemplateDescription("Echo the input text"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		s.handleEchoResource,
	)

	s.mcp.AddResource(
		mcp.NewResource(hotdealResourceURI, "hotdeal_digest",
			mcp.WithResourceDescription("현재 판매 중인 루리웹 핫딜 요약 (markdown)"),
			mcp.WithMIMEType("text/markdown"),
		),
		s.handleHotdealResource,
	)
}

func (s *Server) resourceDir() (string, error) {
	if s.config.Resource.Dir != "" {
		return s.config.Resource.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "test"), nil
}

func (s *Server) handleDirResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	dir, err := s.resourceDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		files = append(files, filepath.Join(dir, e.Name()))
	}

	b, err := json.Marshal(files)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(b),
		},
	}, nil
}

func (s *Server) handleEchoResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	raw := strings.TrimPrefix(req.Params.URI, echoScheme)
	message, err := url.PathUnescape(raw)
	if err != nil {
		message = raw
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     "동적으로 변하는 리소스 : " + message,
		},
	}, nil
}

func (s *Server) handleHotdealResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	deals, err := s.hotdeal.GetHotDeals(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load hot deals: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     renderDigest(deals, s.config.Hotdeal.DigestLimit),
		},
	}, nil
}
