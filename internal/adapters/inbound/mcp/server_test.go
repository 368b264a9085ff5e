package mcp_test

import (
	"testing"

	mcpadapter "github.com/abdidvp/sellone/internal/adapters/inbound/mcp"
	"github.com/abdidvp/sellone/internal/adapters/outbound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelloneMCPServer(t *testing.T) {
	s := mcpadapter.NewSelloneMCPServer(config.New(), ".sellone.yaml")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewSelloneMCPServer(config.New(), ".sellone.yaml")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"sellone_scan",
		"sellone_find_price",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
