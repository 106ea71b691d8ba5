package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/context7-cli/internal/config"
	"github.com/sirseerhq/context7-cli/internal/context7"
	"github.com/sirseerhq/context7-cli/internal/context7/context7test"
	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
)

const testToken = "ctx7sk-test-key"

func newTestEnvironment(vars map[string]string) config.Environment {
	return config.Environment{
		Getenv:     func(key string) string { return vars[key] },
		Fs:         afero.NewMemMapFs(),
		ProgramDir: "/opt/context7",
		HomeDir:    "/home/dev",
	}
}

func withKey() config.Environment {
	return newTestEnvironment(map[string]string{"CONTEXT7_API_KEY": testToken})
}

func execute(env config.Environment, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	err = run(context.Background(), args, env, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestHelpNeedsNoCredential(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "long flag", args: []string{"--help"}},
		{name: "short flag", args: []string{"-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(newTestEnvironment(nil), tt.args...)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Context7 Query CLI")
			assert.Contains(t, stdout, "search")
			assert.Contains(t, stdout, "context")
			assert.Equal(t, 0, mapErrorToExitCode(err))
		})
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(newTestEnvironment(nil), "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version)
}

func TestMissingArguments(t *testing.T) {
	server := context7test.NewServer(t)

	tests := [][]string{
		{"search"},
		{"search", "vercel/next.js"},
		{"context", "facebook/react"},
		{"s", "", "query"},
		{"c", "facebook/react", "  "},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			// No key either: the argument check must come first.
			full := append([]string{"--api-url", server.URL}, args...)
			_, _, err := execute(newTestEnvironment(nil), full...)

			require.Error(t, err)
			assert.True(t, errors.Is(err, c7errors.ErrMissingArguments), "got %v", err)
			assert.Equal(t, 1, mapErrorToExitCode(err))
		})
	}

	assert.Empty(t, server.Requests())
}

func TestUnknownCommand(t *testing.T) {
	server := context7test.NewServer(t)

	_, _, err := execute(withKey(), "--api-url", server.URL, "find", "vercel/next.js", "routing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, c7errors.ErrUnknownCommand))
	assert.Contains(t, err.Error(), `"find"`)
	assert.Empty(t, server.Requests())
}

func TestMissingCredential(t *testing.T) {
	server := context7test.NewServer(t)

	_, _, err := execute(newTestEnvironment(nil), "--api-url", server.URL, "search", "vercel/next.js", "routing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, c7errors.ErrMissingCredential))
	assert.Equal(t, "CONTEXT7_API_KEY not found", err.Error())
	assert.Empty(t, server.Requests())
}

func TestCredentialFromEnvFile(t *testing.T) {
	server := context7test.NewServer(t)
	env := newTestEnvironment(nil)
	require.NoError(t, afero.WriteFile(env.Fs, "/opt/context7/.env", []byte("CONTEXT7_API_KEY=file-key\n"), 0o600))

	_, _, err := execute(env, "--api-url", server.URL, "search", "nextjs", "setup ssr")
	require.NoError(t, err)
	assert.Equal(t, "Bearer file-key", server.LastRequest(t).Authorization)
}

func TestSearch(t *testing.T) {
	server := context7test.NewServer(t)
	server.RespondJSON(`[
		{"id": "/vercel/next.js", "name": "Next.js", "trustScore": 10, "benchmarkScore": 91.5,
		 "versions": ["v15.4.0", "v15.3.0", "v15.2.0", "v15.1.0", "v15.0.0", "v14.2.0"]},
		{"id": "/vercel/next-learn"}
	]`)

	stdout, _, err := execute(withKey(), "--api-url", server.URL, "search", "vercel/next.js", "app router")
	require.NoError(t, err)

	want := `Searching Context7 for libraries matching "app router"...

=== Search Results ===

1. Next.js
   Trust Score: 10
   Benchmark: 91.5
   Versions: v15.4.0, v15.3.0, v15.2.0, v15.1.0, v15.0.0...

2. /vercel/next-learn
   Trust Score: N/A
   Benchmark: N/A

`
	assert.Equal(t, want, stdout)

	req := server.LastRequest(t)
	assert.Equal(t, context7test.SearchPath, req.Path)
	assert.Equal(t, "next.js", req.Query.Get("libraryName"))
	assert.Equal(t, "app router", req.Query.Get("query"))
	assert.Equal(t, "Bearer "+testToken, req.Authorization)
	assert.Equal(t, "context7-cli/"+version, req.UserAgent)
}

func TestSearchNoResults(t *testing.T) {
	for _, body := range []string{`[]`, `{"error": "nothing"}`} {
		t.Run(body, func(t *testing.T) {
			server := context7test.NewServer(t)
			server.RespondJSON(body)

			stdout, _, err := execute(withKey(), "--api-url", server.URL, "s", "nextjs", "ssr")
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(stdout, "=== Search Results ===\n\nNo results found.\n"), "got %q", stdout)
		})
	}
}

func TestQueryWordsAreJoined(t *testing.T) {
	server := context7test.NewServer(t)

	_, _, err := execute(withKey(), "--api-url", server.URL, "search", "nextjs", "setup", "ssr")
	require.NoError(t, err)
	assert.Equal(t, "setup ssr", server.LastRequest(t).Query.Get("query"))
}

func TestContext(t *testing.T) {
	server := context7test.NewServer(t)
	server.RespondText("### useState\nDeclare a state variable.")

	stdout, _, err := execute(withKey(), "--api-url", server.URL, "context", "facebook/react", "useState hook")
	require.NoError(t, err)

	want := `Getting context for: "useState hook" in /facebook/react...

=== Context Results ===

### useState
Declare a state variable.
`
	assert.Equal(t, want, stdout)

	req := server.LastRequest(t)
	assert.Equal(t, context7test.ContextPath, req.Path)
	assert.Equal(t, "/facebook/react", req.Query.Get("libraryId"))
	assert.Equal(t, "useState hook", req.Query.Get("query"))
	assert.Equal(t, "txt", req.Query.Get("type"))
}

func TestContextAliasKeepsLeadingSlash(t *testing.T) {
	server := context7test.NewServer(t)

	stdout, _, err := execute(withKey(), "--api-url", server.URL, "c", "/better-auth/better-auth", "signIn")
	require.NoError(t, err)
	assert.Contains(t, stdout, "in /better-auth/better-auth...")
	assert.Equal(t, "/better-auth/better-auth", server.LastRequest(t).Query.Get("libraryId"))
}

func TestContextNotFound(t *testing.T) {
	server := context7test.NewErrorServer(t, http.StatusNotFound, "Library not found")

	stdout, _, err := execute(withKey(), "--api-url", server.URL, "context", "nobody/nothing", "anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, c7errors.ErrAPIStatus))
	assert.Equal(t, "Context7 API error (404): Library not found", err.Error())
	assert.NotContains(t, stdout, "=== Context Results ===")
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	stdout, _, err := execute(withKey(), "--api-url", url, "search", "nextjs", "ssr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, c7errors.ErrNetworkFailure))
	assert.True(t, strings.HasPrefix(err.Error(), "searching Context7: "), "got %q", err.Error())
	assert.NotContains(t, stdout, "=== Search Results ===")
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := execute(withKey(), "--api-url", "ftp://example.com", "search", "nextjs", "ssr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestDebugLogOmitsToken(t *testing.T) {
	server := context7test.NewServer(t)

	_, stderr, err := execute(withKey(), "--api-url", server.URL, "--log-level", "debug", "search", "nextjs", "ssr")
	require.NoError(t, err)
	assert.Contains(t, stderr, "response received")
	assert.Contains(t, stderr, server.LastRequest(t).RequestID)
	assert.NotContains(t, stderr, testToken)
}

func TestWithMockClient(t *testing.T) {
	mock := context7.NewMockClient()
	var out, errOut bytes.Buffer
	a := &app{
		env:    withKey(),
		stdout: &out,
		stderr: &errOut,
		newClient: func(cred config.Credential, _ *config.Config, _ *slog.Logger) (context7.Client, error) {
			assert.Equal(t, testToken, cred.Token)
			return mock, nil
		},
	}

	err := a.execute(context.Background(), []string{"s", "facebook/react", "hooks"})
	require.NoError(t, err)
	assert.Equal(t, 1, mock.CallCount)
	assert.Equal(t, "search", mock.LastMethod)
	assert.Equal(t, "/facebook/react", mock.LastLibraryID)
	assert.Contains(t, out.String(), "1. React")
	assert.Contains(t, out.String(), "   Versions: v19.1.0, v19.0.0, v18.3.1, v18.2.0, v17.0.2...")
	assert.Contains(t, out.String(), "2. /reactjs/react.dev")

	mock.ShouldFailNetwork = true
	out.Reset()
	err = a.execute(context.Background(), []string{"c", "facebook/react", "hooks"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, c7errors.ErrNetworkFailure))
	assert.True(t, strings.HasPrefix(err.Error(), "querying Context7: "))
	assert.NotContains(t, out.String(), "=== Context Results ===")
}
