package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rose/pkg/types"
)

// result captures one CLI invocation.
type result struct {
	code   int
	stdout string
	stderr string
}

// run executes the CLI against an isolated config directory.
func run(t *testing.T, configDir string, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	full := append([]string{"--config-dir", configDir}, args...)
	code := Execute(context.Background(), full, &out, &errb)
	return result{code: code, stdout: out.String(), stderr: errb.String()}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ROSE_DAYS", "ROSE_FORMAT", "ROSE_INVENTORY", "ROSE_STRICT", "ROSE_LOG_LEVEL", "ROSE_LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func jsonlLines(t *testing.T, s string) []map[string]any {
	t.Helper()
	var recs []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		recs = append(recs, rec)
	}
	return recs
}

func TestVersion(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "version")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "rose v")
	assert.Contains(t, res.stdout, modulePath)
}

func TestClassify(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "classify", "Aged Brie", "Conjured Mana Cake", "Sulfuras, Hand of Ragnaros")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "CATEGORY")
	assert.Regexp(t, `^Aged Brie\s+aged_brie\s+false$`, lines[1])
	assert.Regexp(t, `^Conjured Mana Cake\s+normal\s+true$`, lines[2])
	assert.Regexp(t, `^Sulfuras, Hand of Ragnaros\s+legendary\s+false$`, lines[3])
}

func TestClassifyRequiresName(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "classify")
	assert.Equal(t, exitUserError, res.code)
}

func TestUnknownFlagIsUserError(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "simulate", "--bogus")
	assert.Equal(t, exitUserError, res.code)
}

func TestSimulateTextSample(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "simulate", "--days", "1")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	want := `-------- day 0 --------
name, sellIn, quality
+5 Dexterity Vest, 10, 20
Aged Brie, 2, 0
Elixir of the Mongoose, 5, 7
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 15, 20
Backstage passes to a TAFKAL80ETC concert, 10, 49
Backstage passes to a TAFKAL80ETC concert, 5, 49
Conjured Mana Cake, 3, 6

-------- day 1 --------
name, sellIn, quality
+5 Dexterity Vest, 9, 19
Aged Brie, 1, 1
Elixir of the Mongoose, 4, 6
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 14, 21
Backstage passes to a TAFKAL80ETC concert, 9, 50
Backstage passes to a TAFKAL80ETC concert, 4, 50
Conjured Mana Cake, 2, 4

`
	assert.Equal(t, want, res.stdout)
}

func TestSimulateDefaultsToThirtyDays(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "simulate")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "-------- day 30 --------")
	assert.NotContains(t, res.stdout, "-------- day 31 --------")
}

func TestSimulateJSONL(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "simulate", "--days", "0", "--format", "jsonl")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	recs := jsonlLines(t, res.stdout)
	require.Len(t, recs, 9)
	runID := recs[0]["run_id"]
	assert.NotEmpty(t, runID)
	for _, rec := range recs {
		assert.Equal(t, runID, rec["run_id"])
		assert.Equal(t, float64(0), rec["day"])
	}
	assert.Equal(t, "Conjured Mana Cake", recs[8]["name"])
	assert.Equal(t, true, recs[8]["conjured"])
}

func TestSimulateTable(t *testing.T) {
	clearEnv(t)
	res := run(t, t.TempDir(), "simulate", "--days", "0", "--format", "table")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "day 0")
	assert.Contains(t, res.stdout, "backstage_pass")
}

func TestSimulateUserErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name      string
		args      []string
		inventory string // file name written to the temp dir and passed via --inventory
		content   string
		wantErr   string
	}{
		{name: "unknown format", args: []string{"simulate", "--format", "csv"}, wantErr: "unknown report format"},
		{name: "negative days", args: []string{"simulate", "--days", "-1"}, wantErr: "days must not be negative"},
		{name: "missing inventory", args: []string{"simulate", "--inventory", "/does/not/exist.yaml"}, wantErr: "read inventory"},
		{name: "unsupported inventory", args: []string{"simulate"}, inventory: "stock.csv", content: "x", wantErr: "unsupported inventory file format"},
		{name: "malformed inventory", args: []string{"simulate"}, inventory: "bad.json", content: `[{"name":`, wantErr: "invalid inventory file"},
		{name: "misspelled items key", args: []string{"simulate", "--days", "0"}, inventory: "stock.yaml", content: "itmes:\n  - name: foo\n    sell_in: 1\n    quality: 2\n", wantErr: "invalid inventory file"},
		{name: "unknown item field", args: []string{"simulate"}, inventory: "stock.yaml", content: "- name: foo\n  sell_in: 1\n  quallity: 2\n", wantErr: "quallity"},
		{name: "bad log level", args: []string{"--log-level", "loud", "version"}, wantErr: "invalid log level"},
		{name: "bad log format", args: []string{"--log-format", "xml", "version"}, wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := tt.args
			if tt.inventory != "" {
				inv := filepath.Join(dir, tt.inventory)
				require.NoError(t, os.WriteFile(inv, []byte(tt.content), 0o644))
				args = append(append([]string{}, args...), "--inventory", inv)
			}
			res := run(t, dir, args...)
			assert.Equal(t, exitUserError, res.code)
			assert.Contains(t, res.stderr, tt.wantErr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestSimulateInventoryFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	inv := filepath.Join(dir, "stock.yaml")
	require.NoError(t, os.WriteFile(inv, []byte("items:\n  - name: Aged Brie\n    sell_in: 0\n    quality: 49\n"), 0o644))

	res := run(t, dir, "simulate", "--inventory", inv, "--days", "1")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Aged Brie, 0, 49")
	assert.Contains(t, res.stdout, "Aged Brie, -1, 50")
}

func TestSimulateStrictRejectsBadInventory(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	inv := filepath.Join(dir, "stock.json")
	require.NoError(t, os.WriteFile(inv, []byte(`[{"name":"foo","sell_in":3,"quality":55}]`), 0o644))

	strict := run(t, dir, "simulate", "--inventory", inv, "--strict", "--days", "0")
	assert.Equal(t, exitUserError, strict.code)
	assert.Contains(t, strict.stderr, "quality out of range")
	assert.Empty(t, strict.stdout)

	permissive := run(t, dir, "simulate", "--inventory", inv, "--days", "1")
	require.Equal(t, exitSuccess, permissive.code, permissive.stderr)
	assert.Contains(t, permissive.stdout, "foo, 2, 54")
	assert.Contains(t, permissive.stderr, "item fails precondition")
}

func TestSimulateJSONLogs(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	inv := filepath.Join(dir, "stock.json")
	require.NoError(t, os.WriteFile(inv, []byte(`[{"name":"foo","sell_in":3,"quality":55}]`), 0o644))

	t.Run("flag", func(t *testing.T) {
		res := run(t, dir, "--log-format", "json", "simulate", "--inventory", inv, "--days", "0")
		require.Equal(t, exitSuccess, res.code, res.stderr)

		entries := jsonlLines(t, res.stderr)
		require.NotEmpty(t, entries)
		assert.Equal(t, "warn", entries[0]["level"])
		assert.Equal(t, "item fails precondition", entries[0]["message"])
		assert.Equal(t, "foo", entries[0]["name"])
	})

	t.Run("config file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_format: json\n"), 0o644))
		res := run(t, dir, "simulate", "--inventory", inv, "--days", "0")
		require.Equal(t, exitSuccess, res.code, res.stderr)
		assert.NotEmpty(t, jsonlLines(t, res.stderr))
	})
}

func TestConfigLayering(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("days: 2\nformat: jsonl\n"), 0o644))

	t.Run("config file", func(t *testing.T) {
		res := run(t, dir, "simulate")
		require.Equal(t, exitSuccess, res.code, res.stderr)
		assert.Len(t, jsonlLines(t, res.stdout), 27)
	})

	t.Run("env overrides config", func(t *testing.T) {
		t.Setenv("ROSE_DAYS", "0")
		res := run(t, dir, "simulate")
		require.Equal(t, exitSuccess, res.code, res.stderr)
		assert.Len(t, jsonlLines(t, res.stdout), 9)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("ROSE_DAYS", "0")
		res := run(t, dir, "simulate", "--days", "1")
		require.Equal(t, exitSuccess, res.code, res.stderr)
		assert.Len(t, jsonlLines(t, res.stdout), 18)
	})
}

func TestInit(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested", "rose")

	first := run(t, dir, "init")
	require.Equal(t, exitSuccess, first.code, first.stderr)
	assert.Contains(t, first.stdout, "Wrote")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	var cfg types.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.DefaultConfig(), cfg)

	second := run(t, dir, "init")
	require.Equal(t, exitSuccess, second.code, second.stderr)
	assert.Contains(t, second.stdout, "already exists")

	res := run(t, dir, "simulate", "--format", "jsonl")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Len(t, jsonlLines(t, res.stdout), 9*(types.DefaultDays+1))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(types.ErrInvalidDays))
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("%w bad.json: unexpected EOF", types.ErrInvalidInventory)))
	assert.Equal(t, exitUserError, exitCode(types.ErrInvalidLogFormat))
	assert.Equal(t, exitSysError, exitCode(os.ErrPermission))
}
