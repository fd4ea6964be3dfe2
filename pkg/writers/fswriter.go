// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
}

// Write replaces the file name under path atomically. Readers never see a
// partially written file.
func (f *FSWriter) Write(name, path string, content []byte) error {
	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}
	filePath := filepath.Join(p, name)
	tmp := filepath.Join(p, fmt.Sprintf(".%s.%s", name, uuid.New().String()))
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	return nil
}
