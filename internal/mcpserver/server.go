package mcpserver

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wapj/mcp-test/internal/hotdeal"
	"github.com/wapj/mcp-test/internal/kbo"
	"github.com/wapj/mcp-test/internal/lunch"
	"github.com/wapj/mcp-test/internal/news"
	"github.com/wapj/mcp-test/pkg/config"
	"github.com/wapj/mcp-test/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Hotdeal hotdeal.Client
	Kbo     kbo.Client
	News    news.Client
	Lunch   lunch.Client
}

// Server exposes the tools, resources and prompts over MCP.
type Server struct {
	mcp     *server.MCPServer
	config  *config.Config
	logger  logger.Logger
	hotdeal hotdeal.Client
	kbo     kbo.Client
	news    news.Client
	lunch   lunch.Client
}

func New(opts Opts) *Server {
	s := &Server{
		config:  opts.Config,
		logger:  opts.Logger.WithComponent("MCPServer"),
		hotdeal: opts.Hotdeal,
		kbo:     opts.Kbo,
		news:    opts.News,
		lunch:   opts.Lunch,
	}

	s.mcp = server.NewMCPServer(
		opts.Config.MCP.Name,
		opts.Config.MCP.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// jsonResult renders v as indented JSON text, the way tool payloads are returned.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to encode result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
