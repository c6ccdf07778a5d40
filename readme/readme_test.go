package readme

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/modfile"
)

func readReadme(t *testing.T) string {
	t.Helper()
	readmeBytes, err := os.ReadFile("../README.md")
	require.NoError(t, err)
	return string(readmeBytes)
}

var regexShoutrrrURL = regexp.MustCompile(`https://containrrr.dev/shoutrrr/v[0-9.]+/services/overview/`)

func Test_Readme_Shoutrrr_Version(t *testing.T) {
	t.Parallel()

	goModBytes, err := os.ReadFile("../go.mod")
	require.NoError(t, err)

	goMod, err := modfile.Parse("../go.mod", goModBytes, nil)
	require.NoError(t, err)

	shoutrrrVersion := ""
	for _, require := range goMod.Require {
		if require.Mod.Path == "github.com/containrrr/shoutrrr" {
			shoutrrrVersion = require.Mod.Version
			break
		}
	}
	require.NotEmpty(t, shoutrrrVersion)

	// Remove patch from version
	lastDot := strings.LastIndex(shoutrrrVersion, ".")
	require.GreaterOrEqual(t, lastDot, 0)
	expectedShoutrrrURL := "https://containrrr.dev/shoutrrr/" +
		shoutrrrVersion[:lastDot] + "/services/overview/"

	readmeShoutrrrURLs := regexShoutrrrURL.FindAllString(readReadme(t), -1)
	require.NotEmpty(t, readmeShoutrrrURLs)

	for _, readmeShoutrrrURL := range readmeShoutrrrURLs {
		assert.Equal(t, expectedShoutrrrURL, readmeShoutrrrURL,
			"README.md contains outdated shoutrrr URL")
	}
}

var regexGetenvKey = regexp.MustCompile(`r(?:eader)?\.(?:Get|String|CSV|Duration|BoolPtr)\("([A-Z_]+)"`)

func Test_Readme_Environment_Variables(t *testing.T) {
	t.Parallel()

	const configDir = "../internal/config"
	entries, err := os.ReadDir(configDir)
	require.NoError(t, err)

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") {
			continue
		}
		content, err := os.ReadFile(configDir + "/" + name)
		require.NoError(t, err)
		for _, match := range regexGetenvKey.FindAllStringSubmatch(string(content), -1) {
			keys = append(keys, match[1])
		}
	}
	require.NotEmpty(t, keys)

	readme := readReadme(t)
	for _, key := range keys {
		assert.Contains(t, readme, "`"+key+"`",
			"environment variable %s is not documented in README.md", key)
	}
}

func Test_Readme_Flags(t *testing.T) {
	t.Parallel()

	content, err := os.ReadFile("../cmd/dynhost-updater/flags.go")
	require.NoError(t, err)

	regexFlag := regexp.MustCompile(`(?:BoolVar|BoolVarP|String)\((?:&f\.[a-zA-Z]+, )?"([a-z-]+)"`)
	matches := regexFlag.FindAllStringSubmatch(string(content), -1)
	require.NotEmpty(t, matches)

	readme := readReadme(t)
	for _, match := range matches {
		flag := match[1]
		if flag == "help" {
			continue
		}
		assert.Contains(t, readme, "`--"+flag,
			"flag --%s is not documented in README.md", flag)
	}
}
