package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// petstore is a small OpenAPI 3.0 document used across integration tests.
const petstore = `{
  "openapi": "3.0.3",
  "info": {"title": "Test API", "version": "1.0.0"},
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "summary": "List all pets",
        "tags": ["pets"],
        "parameters": [{"name": "limit", "in": "query", "schema": {"type": "integer"}}],
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Pet"}}}}}}
      },
      "post": {
        "operationId": "createPet",
        "summary": "Create a pet",
        "tags": ["pets"],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {"schema": {"$ref": "#/components/schemas/Pet"}},
            "application/xml": {"schema": {"$ref": "#/components/schemas/Pet"}}
          }
        },
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/pets/{petId}": {
      "get": {
        "operationId": "getPet",
        "summary": "Get a pet by ID",
        "tags": ["pets", "detail"],
        "deprecated": true,
        "parameters": [{"name": "petId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}}}
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"}
        }
      }
    }
  }
}`

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "orval-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background — it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{"operations", "verb_options"}, names)
}

func TestIntegration_CallTool_VerbOptions(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "verb_options",
		Arguments: map[string]any{
			"spec": map[string]any{"content": petstore},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "Test API", structured["title"])
	assert.Equal(t, float64(4), structured["matched"])

	records, ok := structured["records"].([]any)
	require.True(t, ok, "records should be an array")
	var names []string
	for _, r := range records {
		rec, ok := r.(map[string]any)
		require.True(t, ok)
		names = append(names, rec["operation_name"].(string))
	}
	assert.Equal(t, []string{"listPets", "createPetWithApplicationJson", "createPetWithApplicationXml", "getPet"}, names)
}

func TestIntegration_CallTool_VerbOptions_Detail(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "verb_options",
		Arguments: map[string]any{
			"spec":      map[string]any{"content": petstore},
			"operation": "getPet",
			"detail":    true,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(1), structured["returned"])
	detail, ok := structured["detail"].(string)
	require.True(t, ok, "detail should be a JSON string")

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(detail), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "getPet", records[0]["operationName"])
	assert.Equal(t, "/pets/%s", records[0]["route"])
	assert.Equal(t, true, records[0]["deprecated"])
}

func TestIntegration_CallTool_VerbOptions_TagFilter(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "verb_options",
		Arguments: map[string]any{
			"spec":   map[string]any{"content": petstore},
			"config": map[string]any{"content": "input:\n  filters:\n    tags: [detail]\n"},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(1), structured["matched"])
	stats, ok := structured["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), stats["filtered"])
	issues, ok := structured["issues"].([]any)
	require.True(t, ok)
	assert.Len(t, issues, 2)
}

func TestIntegration_CallTool_Operations(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "operations",
		Arguments: map[string]any{
			"spec": map[string]any{"content": petstore},
			"verb": "get",
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(3), structured["total"])
	assert.Equal(t, float64(2), structured["matched"])

	ops, ok := structured["operations"].([]any)
	require.True(t, ok, "operations should be an array")
	var operationIDs []string
	for _, o := range ops {
		op, ok := o.(map[string]any)
		require.True(t, ok)
		operationIDs = append(operationIDs, op["operation_id"].(string))
	}
	assert.Equal(t, []string{"listPets", "getPet"}, operationIDs)
}

func TestIntegration_CallTool_Error_InvalidSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "verb_options",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": "this is not valid JSON or YAML for an OpenAPI document",
			},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "verb_options should return IsError for unparseable input")

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.NotEmpty(t, text.Text)
}

func TestIntegration_CallTool_Error_MissingSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "operations",
		Arguments: map[string]any{
			"spec": map[string]any{},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "operations should return IsError when no spec source is provided")
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
