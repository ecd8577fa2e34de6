package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

const petstorePath = "../../../document/testdata/petstore.yaml"

// runCommand executes the root command with args and returns stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type verbsOutput struct {
	Verbs []struct {
		OperationName string `json:"operationName" yaml:"operationName"`
	} `json:"verbs" yaml:"verbs"`
	Stats struct {
		Records  int `json:"records" yaml:"records"`
		Filtered int `json:"filtered" yaml:"filtered"`
	} `json:"stats" yaml:"stats"`
}

func operationNames(out verbsOutput) []string {
	names := make([]string, 0, len(out.Verbs))
	for _, v := range out.Verbs {
		names = append(names, v.OperationName)
	}
	return names
}

func TestVerbsCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "verbs", "--input", petstorePath)
	require.NoError(t, err)

	var out verbsOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, []string{
		"createPetWithApplicationJson",
		"createPetWithApplicationXml",
		"listPets",
		"getPetsPetId",
		"deletePet",
	}, operationNames(out))
	assert.Equal(t, 5, out.Stats.Records)
}

func TestVerbsCommand_YAML(t *testing.T) {
	stdout, _, err := runCommand(t, "verbs", "--input", petstorePath, "--format", "yaml", "--client", "fetch")
	require.NoError(t, err)

	var out verbsOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	// fetch bodies are not split per content type
	assert.Equal(t, []string{"createPet", "listPets", "getPetsPetId", "deletePet"}, operationNames(out))
}

func TestVerbsCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	spec, err := os.ReadFile(petstorePath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api.yaml"), spec, 0o644))

	cfgPath := filepath.Join(dir, "orval.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`input:
  target: api.yaml
  filters:
    tags: [admin]
`), 0o644))

	stdout, stderr, err := runCommand(t, "verbs", "--config", cfgPath, "--verbose")
	require.NoError(t, err)

	var out verbsOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, []string{"deletePet"}, operationNames(out))
	assert.Equal(t, 3, out.Stats.Filtered)
	assert.Contains(t, stderr, "run_id=")
}

func TestVerbsCommand_MetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "orval.prom")

	_, _, err := runCommand(t, "verbs", "--input", petstorePath, "--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `orval_operations_synthesized_total{verb="post"} 2`)
	assert.Contains(t, string(data), "orval_synthesis_duration_seconds_count 1")
}

func TestVerbsCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "no input",
			args:    []string{"verbs"},
			wantErr: "no API description",
		},
		{
			name:    "invalid format",
			args:    []string{"verbs", "--input", petstorePath, "--format", "xml"},
			wantErr: "invalid format 'xml'",
		},
		{
			name:    "invalid client",
			args:    []string{"verbs", "--input", petstorePath, "--client", "curl"},
			wantErr: "output.client",
		},
		{
			name:    "missing config",
			args:    []string{"verbs", "--config", "does-not-exist.yaml"},
			wantErr: "failed to read configuration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "orval Version: dev")
	assert.Contains(t, stdout, "Go Version:")
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))
	assert.Error(t, ValidateOutputFormat("text"))
}
