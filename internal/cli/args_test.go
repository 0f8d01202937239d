package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

const (
	testVersion     = "1.0.0"
	testProgramName = "graphrag-mcp"
	testHelpText    = "graphrag-mcp - GraphRAG Model Context Protocol Server"
	testVersionText = "graphrag-mcp version: 1.0.0"
)

// captureOutput temporarily redirects stdout and stderr to capture output.
func captureOutput(fn func()) (stdout, stderr string) {
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	oldStdout := os.Stdout
	oldStderr := os.Stderr
	os.Stdout = wOut
	os.Stderr = wErr

	fn()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)

	return string(outBytes), string(errBytes)
}

// exitMock captures os.Exit calls for testing.
type exitMock struct {
	called bool
	code   int
}

// Exit records the exit call and panics to stop execution.
func (m *exitMock) Exit(code int) {
	m.called = true
	m.code = code
	panic(m)
}

func TestHandleArgs(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		version          string
		expectedExitCode int    // -1 means no exit, 0 or 1 for exit codes
		expectedOutput   string // substring to find in stdout
		expectedStderr   string // substring to find in stderr
	}{
		{
			name:             "no flags",
			args:             []string{testProgramName},
			version:          testVersion,
			expectedExitCode: -1,
		},
		{
			name:             "version flag short form",
			args:             []string{testProgramName, "-v"},
			version:          testVersion,
			expectedExitCode: 0,
			expectedOutput:   testVersionText,
		},
		{
			name:             "version flag long form",
			args:             []string{testProgramName, "--version"},
			version:          testVersion,
			expectedExitCode: 0,
			expectedOutput:   testVersionText,
		},
		{
			name:             "help flag short form",
			args:             []string{testProgramName, "-h"},
			version:          testVersion,
			expectedExitCode: 0,
			expectedOutput:   testHelpText,
		},
		{
			name:             "help flag long form",
			args:             []string{testProgramName, "--help"},
			version:          testVersion,
			expectedExitCode: 0,
			expectedOutput:   testHelpText,
		},
		{
			name:             "unknown flag",
			args:             []string{testProgramName, "-x"},
			version:          testVersion,
			expectedExitCode: 1,
			expectedStderr:   "unknown flag or argument: -x",
		},
		{
			name:             "version flag with extra arguments",
			args:             []string{testProgramName, "-v", "extra"},
			version:          testVersion,
			expectedExitCode: 1,
			expectedStderr:   "unknown flag or argument: extra",
		},
		{
			name:             "help and version flags together - help takes precedence",
			args:             []string{testProgramName, "-v", "-h"},
			version:          testVersion,
			expectedExitCode: 0,
			expectedOutput:   testHelpText,
		},
		{
			name:             "neo4j-uri configuration flag",
			args:             []string{testProgramName, "--neo4j-uri", "bolt://localhost:7687"},
			version:          testVersion,
			expectedExitCode: -1,
		},
		{
			name:             "multiple configuration flags",
			args:             []string{testProgramName, "--neo4j-uri", "bolt://localhost:7687", "--neo4j-username", "user"},
			version:          testVersion,
			expectedExitCode: -1,
		},
		{
			name:             "vector index configuration flag",
			args:             []string{testProgramName, "--vector-index", "docs_index"},
			version:          testVersion,
			expectedExitCode: -1,
		},
		{
			name:             "telemetry configuration flag",
			args:             []string{testProgramName, "--telemetry", "false"},
			version:          testVersion,
			expectedExitCode: -1,
		},
		{
			name:             "telemetry flag missing value",
			args:             []string{testProgramName, "--telemetry"},
			version:          testVersion,
			expectedExitCode: 1,
			expectedStderr:   "--telemetry requires a value",
		},
		{
			name:             "transport configuration flag",
			args:             []string{testProgramName, "--transport", "http", "--http-port", "9000"},
			version:          testVersion,
			expectedExitCode: -1,
		},
		{
			name:             "configuration flag missing value - at end",
			args:             []string{testProgramName, "--neo4j-uri"},
			version:          testVersion,
			expectedExitCode: 1,
			expectedStderr:   "--neo4j-uri requires a value",
		},
		{
			name:             "configuration flag missing value - followed by another flag",
			args:             []string{testProgramName, "--neo4j-uri", "--neo4j-username", "user"},
			version:          testVersion,
			expectedExitCode: 1,
			expectedStderr:   "--neo4j-uri requires a value (got flag --neo4j-username instead)",
		},
		{
			name:             "vector index flag missing value",
			args:             []string{testProgramName, "--vector-index"},
			version:          testVersion,
			expectedExitCode: 1,
			expectedStderr:   "--vector-index requires a value",
		},
		{
			name:             "double dash separator stops flag processing",
			args:             []string{testProgramName, "--", "--unknown-flag"},
			version:          testVersion,
			expectedExitCode: -1,
		},
		{
			name:             "double dash separator with config flags before it",
			args:             []string{testProgramName, "--neo4j-uri", "bolt://localhost:7687", "--", "--unknown-flag"},
			version:          testVersion,
			expectedExitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			originalOsExit := osExit
			t.Cleanup(func() {
				os.Args = originalArgs
				osExit = originalOsExit
			})

			os.Args = tt.args
			mock := &exitMock{}
			osExit = mock.Exit

			stdout, stderr := captureOutput(func() {
				defer func() {
					if r := recover(); r != mock {
						if r != nil {
							panic(r)
						}
					}
				}()
				HandleArgs(tt.version)
			})

			shouldExit := tt.expectedExitCode != -1
			if shouldExit != mock.called {
				t.Errorf("exit called: got %v, want %v", mock.called, shouldExit)
			}

			if mock.called && mock.code != tt.expectedExitCode {
				t.Errorf("exit code: got %d, want %d", mock.code, tt.expectedExitCode)
			}

			if tt.expectedStderr != "" {
				if !strings.Contains(stderr, tt.expectedStderr) {
					t.Errorf("stderr: got %q, want to contain %q", stderr, tt.expectedStderr)
				}
			}

			if tt.expectedOutput != "" {
				if !strings.Contains(stdout, tt.expectedOutput) {
					t.Errorf("stdout: got %q, want to contain %q", stdout, tt.expectedOutput)
				}
			}
		})
	}
}
