/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fileutil writes files so that a crash never leaves a partially
// written file under its final name.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DirExists reports whether dirPath exists. It is an error for dirPath to
// name anything other than a directory.
func DirExists(dirPath string) (bool, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "error checking if dir [%s] exists", dirPath)
	}
	if !info.IsDir() {
		return false, errors.Errorf("the supplied path [%s] exists but is not a dir", dirPath)
	}
	return true, nil
}

// CreateAndSyncFileAtomically writes content to tmpFile in dir, fsyncs it and
// links it to finalFile, so finalFile is either absent or complete. An
// existing finalFile is never replaced; the returned error then matches
// os.ErrExist. tmpFile is gone when the call returns, whatever the outcome.
func CreateAndSyncFileAtomically(dir, tmpFile, finalFile string, content []byte, perm os.FileMode) error {
	tempFilePath := filepath.Join(dir, tmpFile)
	finalFilePath := filepath.Join(dir, finalFile)
	if err := CreateAndSyncFile(tempFilePath, content, perm); err != nil {
		return err
	}
	if err := os.Link(tempFilePath, finalFilePath); err != nil {
		os.Remove(tempFilePath)
		return errors.Wrapf(err, "error while linking file:%s", finalFilePath)
	}
	if err := os.Remove(tempFilePath); err != nil {
		return errors.Wrapf(err, "error while removing file:%s", tempFilePath)
	}
	return SyncDir(dir)
}

// CreateAndSyncFile creates filePath exclusively, writes content and fsyncs.
// A file it created is removed again when writing fails.
func CreateAndSyncFile(filePath string, content []byte, perm os.FileMode) error {
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return errors.Wrapf(err, "error while creating file:%s", filePath)
	}
	if _, err = file.Write(content); err != nil {
		file.Close()
		os.Remove(filePath)
		return errors.Wrapf(err, "error while writing to file:%s", filePath)
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(filePath)
		return errors.Wrapf(err, "error while synching the file:%s", filePath)
	}
	if err := file.Close(); err != nil {
		os.Remove(filePath)
		return errors.Wrapf(err, "error while closing the file:%s", filePath)
	}
	return nil
}
