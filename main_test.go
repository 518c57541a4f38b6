package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"parodin/game"
	"parodin/solver"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestForceCommand(t *testing.T) {
	t.Run("printing force", func(t *testing.T) {
		got, err := execute(t, "force", "mage", "soldier", "cursed", "hero", "mage")

		require.NoError(t, err)
		require.Equal(t, "[mage soldier cursed hero mage] force=9\n", got)
	})

	t.Run("unknown die", func(t *testing.T) {
		_, err := execute(t, "force", "hero", "dragon")

		require.ErrorIs(t, err, game.ErrUnknownCategory)
	})
}

func TestSolveCommand(t *testing.T) {
	t.Run("balanced split", func(t *testing.T) {
		got, err := execute(t, "solve", "traitor", "soldier")

		require.NoError(t, err)
		require.Equal(t, "A: [traitor] force=1\nB: [soldier] force=1\n", got)
	})

	t.Run("no balanced split", func(t *testing.T) {
		_, err := execute(t, "solve", "soldier", "hero")

		require.ErrorIs(t, err, solver.ErrNoSolution)
		require.ErrorContains(t, err, "no balanced split exists for [soldier hero]")
	})

	t.Run("too many dice", func(t *testing.T) {
		_, err := execute(t, "solve", "--max-pieces", "2", "hero", "hero", "hero")

		require.ErrorIs(t, err, solver.ErrTooManyPieces)
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		got, err := execute(t, "check", "traitor", "soldier", "--sides", "A,B")

		require.NoError(t, err)
		require.Equal(t, "balanced: A=1, B=1\n", got)
	})

	t.Run("unbalanced", func(t *testing.T) {
		got, err := execute(t, "check", "soldier", "hero", "--sides", "a,b")

		require.NoError(t, err)
		require.Equal(t, "unbalanced: A=1 vs B=3\n", got)
	})

	t.Run("unassigned die", func(t *testing.T) {
		_, err := execute(t, "check", "soldier", "hero", "--sides", "A,-")

		require.ErrorIs(t, err, game.ErrUnassigned)
	})

	t.Run("invalid side", func(t *testing.T) {
		_, err := execute(t, "check", "soldier", "--sides", "C")

		require.ErrorContains(t, err, `invalid side "C"`)
	})
}

func TestChallengesCommand(t *testing.T) {
	t.Run("built-in book", func(t *testing.T) {
		got, err := execute(t, "challenges")

		require.NoError(t, err)
		require.Contains(t, got, "#1 ok: [hero hero soldier] (7) vs [hero captain soldier soldier] (7)")
		require.Contains(t, got, "#8 ok: no solution found")
	})

	t.Run("book with a wrong split", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.yaml")
		book := "- id: 1\n  dice: [traitor, soldier]\n  solution:\n    - [soldier]\n    - [traitor]\n"
		require.NoError(t, os.WriteFile(path, []byte(book), 0o644))

		got, err := execute(t, "challenges", "--file", path)

		require.ErrorContains(t, err, "1 of 1 challenges failed")
		require.Contains(t, got, "#1 FAIL")
	})

	t.Run("missing book", func(t *testing.T) {
		_, err := execute(t, "challenges", "-f", filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorContains(t, err, "failed to open challenges")
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		got, err := execute(t, "version")

		require.NoError(t, err)
		require.Equal(t, "parodin version 0.1.0\n", got)
	})

	t.Run("invalid log level", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"--log-level", "loud", "version"})

		require.ErrorContains(t, cmd.Execute(), "invalid log level")
	})
}
