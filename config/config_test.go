package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ataxx/game"
	"ataxx/searcher"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	require.Equal(t, searcher.MaxDepth, cfg.Depth)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Empty(t, cfg.Blocks)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ataxx.yaml")
	content := []byte("depth: 2\nseed: 99\nblocks:\n  - c3\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, 2, cfg.Depth)
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, []string{"c3"}, cfg.Blocks)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ataxx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: -1\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestNewBoardAppliesBlocks(t *testing.T) {
	cfg := &Config{Depth: 2, Blocks: []string{"c3"}}

	board, err := cfg.NewBoard()

	require.NoError(t, err)
	for _, cell := range []string{"c3", "e3", "c5", "e5"} {
		require.Equal(t, game.Blocked, board.Get(game.Index(cell[0], cell[1])))
	}
}

func TestNewBoardRejectsBadBlock(t *testing.T) {
	cfg := &Config{Depth: 2, Blocks: []string{"a1"}}

	_, err := cfg.NewBoard()
	require.Error(t, err, "cannot block a starting corner")
}
