package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-array-drills/internal/cli"
)

type result struct {
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg := cli.Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Stdin:     strings.NewReader(stdin),
		Stdout:    &stdout,
		Stderr:    &stderr,
	}
	cmd := cli.NewRootCmd(cfg)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String()}, err
}

func TestEvens(t *testing.T) {
	res, err := run(t, "", "evens", "--", "-12", "-2", "6", "7", "0")
	require.NoError(t, err)
	assert.Equal(t, "[-12,-2,6,0]\n", res.stdout)
}

func TestEvensRejectsNonIntegers(t *testing.T) {
	_, err := run(t, "", "evens", "1.5")
	require.ErrorIs(t, err, cli.ErrInvalidNumber)
}

func TestEvensEmpty(t *testing.T) {
	res, err := run(t, "", "evens")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", res.stdout)
}

func TestDouble(t *testing.T) {
	res, err := run(t, "", "double", "--", "2", "-4", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "[4,-8,1]\n", res.stdout)
}

func TestBooleans(t *testing.T) {
	res, err := run(t, "", "booleans", "", "true", "NaN", "Hello", "0", "null", "undefined", "7")
	require.NoError(t, err)
	assert.Equal(t, "[false,true,false,true,false,false,false,true]\n", res.stdout)
}

func TestLog(t *testing.T) {
	res, err := run(t, "", "log", "Zo", "Maya", "Carms")
	require.NoError(t, err)
	assert.Equal(t, "Value: Zo, index: 0.\nValue: Maya, index: 1.\nValue: Carms, index: 2.\n", res.stdout)
}

func TestSortWords(t *testing.T) {
	res, err := run(t, "", "sort", "words", "sara", "Sara", "bob")
	require.NoError(t, err)
	assert.Equal(t, `["Sara","bob","sara"]`+"\n", res.stdout)
}

func TestSortNumbers(t *testing.T) {
	res, err := run(t, "", "sort", "numbers", "100", "20", "5", "10", "84")
	require.NoError(t, err)
	assert.Equal(t, "[5,10,20,84,100]\n", res.stdout)

	res, err = run(t, "", "sort", "numbers", "--desc", "100", "20", "5", "10", "84")
	require.NoError(t, err)
	assert.Equal(t, "[100,84,20,10,5]\n", res.stdout)
}

func TestSortNumbersLimit(t *testing.T) {
	res, err := run(t, "", "sort", "numbers", "--desc", "--limit", "2", "100", "20", "5")
	require.NoError(t, err)
	assert.Equal(t, "[100,20]\n", res.stdout)

	res, err = run(t, "", "sort", "words", "--limit", "0", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`+"\n", res.stdout)
}

func TestNonFiniteNumbersRejected(t *testing.T) {
	cases := [][]string{
		{"sort", "numbers", "3", "NaN", "1", "2"},
		{"double", "NaN", "1"},
		{"sort", "numbers", "Inf", "1"},
		{"double", "--", "-Inf"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res, err := run(t, "", args...)
			require.ErrorIs(t, err, cli.ErrInvalidNumber)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRecordsSort(t *testing.T) {
	in := `[{"name":"sara","order":1},{"name":"Sara","order":2}]`

	res, err := run(t, in, "records", "sort", "--by", "name")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Sara","order":2},{"name":"sara","order":1}]`+"\n", res.stdout)

	res, err = run(t, in, "records", "sort", "--by", "order", "--desc")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Sara","order":2},{"name":"sara","order":1}]`+"\n", res.stdout)
}

func TestRecordsSortInvalidInput(t *testing.T) {
	_, err := run(t, `[1, 2]`, "records", "sort")
	require.ErrorIs(t, err, cli.ErrInvalidRecords)

	_, err = run(t, `[null]`, "records", "sort")
	require.ErrorIs(t, err, cli.ErrInvalidRecords)
}

func TestRecordsSet(t *testing.T) {
	in := `[{"name":"Zo","isHappy":false},{"name":"Maya"}]`
	res, err := run(t, in, "records", "set")
	require.NoError(t, err)
	assert.Equal(t, `[{"isHappy":true,"name":"Zo"},{"isHappy":true,"name":"Maya"}]`+"\n", res.stdout)

	res, err = run(t, in, "records", "set", "--field", "profile.mood", "--value", "sunny")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, `"profile":{"mood":"sunny"}`)
}

func TestDebugLogging(t *testing.T) {
	res, err := run(t, "", "--log-level", "debug", "sort", "numbers", "--desc", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "[3,1]\n", res.stdout)
	assert.Contains(t, res.stderr, `msg="sorting numbers"`)
	assert.Contains(t, res.stderr, "desc=true")
}

func TestJSONLogging(t *testing.T) {
	res, err := run(t, "", "--log-level", "debug", "--log-format", "json", "evens", "2")
	require.NoError(t, err)
	assert.Contains(t, res.stderr, `"msg":"starting"`)
}

func TestQuietByDefault(t *testing.T) {
	res, err := run(t, "", "evens", "2")
	require.NoError(t, err)
	assert.Empty(t, res.stderr)
}

func TestUnknownLogFormat(t *testing.T) {
	_, err := run(t, "", "--log-format", "xml", "evens", "2")
	require.ErrorIs(t, err, cli.ErrUnknownLogFormat)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "evens", "2")
	require.Error(t, err)
}

func TestDefaultConfigReadsEnv(t *testing.T) {
	t.Setenv(cli.EnvLogLevel, "debug")
	assert.Equal(t, "debug", cli.DefaultConfig().LogLevel)

	t.Setenv(cli.EnvLogLevel, "")
	assert.Equal(t, "warn", cli.DefaultConfig().LogLevel)
}
