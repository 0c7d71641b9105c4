/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirExists(t *testing.T) {
	t.Run("non-existent-path", func(t *testing.T) {
		testPath := t.TempDir()

		exists, err := DirExists(filepath.Join(testPath, "non-existent-path"))
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("dir-exists", func(t *testing.T) {
		testPath := t.TempDir()

		exists, err := DirExists(testPath)
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("file-exists", func(t *testing.T) {
		testPath := t.TempDir()

		file := filepath.Join(testPath, "empty-file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		exists, err := DirExists(file)
		require.EqualError(t, err, fmt.Sprintf("the supplied path [%s] exists but is not a dir", file))
		require.False(t, exists)
	})
}

func TestCreateAndSyncFileAtomically(t *testing.T) {
	t.Run("green-path", func(t *testing.T) {
		testPath := t.TempDir()

		content := []byte("17,3233")
		err := CreateAndSyncFileAtomically(testPath, "alice.pub.tmp", "alice.pub", content, 0o600)
		require.NoError(t, err)
		require.NoFileExists(t, filepath.Join(testPath, "alice.pub.tmp"))

		contentRetrieved, err := os.ReadFile(filepath.Join(testPath, "alice.pub"))
		require.NoError(t, err)
		require.Equal(t, content, contentRetrieved)

		fi, err := os.Stat(filepath.Join(testPath, "alice.pub"))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	})

	t.Run("dir-does-not-exist", func(t *testing.T) {
		testPath := t.TempDir()

		dir := filepath.Join(testPath, "non-existent-dir")
		tmpFile := filepath.Join(dir, "tmpFile")
		err := CreateAndSyncFileAtomically(dir, "tmpFile", "finalFile", []byte("x"), 0o644)
		require.EqualError(t, err, fmt.Sprintf("error while creating file:%s: open %s: no such file or directory", tmpFile, tmpFile))
	})

	t.Run("tmp-file-already-exists", func(t *testing.T) {
		testPath := t.TempDir()

		tmpFile := filepath.Join(testPath, "tmpFile")
		require.NoError(t, os.WriteFile(tmpFile, []byte("existing-contents"), 0o644))
		err := CreateAndSyncFileAtomically(testPath, "tmpFile", "finalFile", []byte("x"), 0o644)
		require.EqualError(t, err, fmt.Sprintf("error while creating file:%s: open %s: file exists", tmpFile, tmpFile))
	})

	t.Run("final-file-exists", func(t *testing.T) {
		testPath := t.TempDir()

		finalFile := filepath.Join(testPath, "alice.pub")
		require.NoError(t, os.WriteFile(finalFile, []byte("3,33"), 0o644))
		err := CreateAndSyncFileAtomically(testPath, "alice.pub.tmp", "alice.pub", []byte("17,3233"), 0o644)
		require.Error(t, err)
		require.True(t, errors.Is(err, os.ErrExist), "unexpected error: %s", err)
		require.NoFileExists(t, filepath.Join(testPath, "alice.pub.tmp"))

		contentRetrieved, err := os.ReadFile(finalFile)
		require.NoError(t, err)
		require.Equal(t, []byte("3,33"), contentRetrieved)
	})

	t.Run("final-path-is-a-dir", func(t *testing.T) {
		testPath := t.TempDir()

		tmpFile := filepath.Join(testPath, "tmpFile")
		finalFile := filepath.Join(testPath, "finalFile")
		require.NoError(t, os.MkdirAll(filepath.Join(finalFile, "child"), 0o755))
		err := CreateAndSyncFileAtomically(testPath, "tmpFile", "finalFile", []byte("x"), 0o644)
		require.Error(t, err)
		require.NoFileExists(t, tmpFile)
		require.DirExists(t, filepath.Join(finalFile, "child"))
	})
}

func TestCreateAndSyncFileKeepsForeignFiles(t *testing.T) {
	testPath := t.TempDir()

	file := filepath.Join(testPath, "file")
	require.NoError(t, os.WriteFile(file, []byte("existing-contents"), 0o644))
	require.Error(t, CreateAndSyncFile(file, []byte("x"), 0o644))

	contentRetrieved, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, []byte("existing-contents"), contentRetrieved)
}

func TestSyncDir(t *testing.T) {
	require.NoError(t, SyncDir(t.TempDir()))
	require.EqualError(t, SyncDir("non-existent-dir"), "error while opening dir:non-existent-dir: open non-existent-dir: no such file or directory")
}
