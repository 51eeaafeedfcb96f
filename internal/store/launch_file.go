// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/zephyr-launch/internal/logger"
	"github.com/MKhiriev/zephyr-launch/models"
)

// launchFilePerm is used only when Save has to create the file.
const launchFilePerm = 0o644

// launchFileStorage is the filesystem implementation of [LaunchFileStorage].
//
// Load and Save each open the file, fully read or write it, and close it
// before returning. There is no locking: concurrent writers to the same file
// race.
type launchFileStorage struct {
	logger *logger.Logger
}

// NewLaunchFileStorage constructs a filesystem-backed [LaunchFileStorage].
func NewLaunchFileStorage(logger *logger.Logger) LaunchFileStorage {
	return &launchFileStorage{logger: logger}
}

// Load opens path, decodes exactly one JSON object from it and returns it.
//
// Numbers are kept as [json.Number] so they are written back unchanged.
//
// Error handling:
//   - file does not exist → [ErrLaunchFileNotFound].
//   - any other open/read error → [ErrReadingLaunchFile].
//   - invalid JSON, a non-object top-level value, or trailing data →
//     [ErrDecodingLaunchFile].
func (s *launchFileStorage) Load(ctx context.Context, path string) (models.LaunchDocument, error) {
	log := s.logger.Ctx(ctx)

	file, err := os.Open(path)
	if err != nil {
		log.Err(err).Str("func", "launchFileStorage.Load").Str("path", path).Msg("error opening launch file")
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrLaunchFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingLaunchFile, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "launchFileStorage.Load").Str("path", path).Msg("error reading launch file")
		return nil, fmt.Errorf("%w: %w", ErrReadingLaunchFile, err)
	}

	doc, err := decodeLaunchDocument(bytes.NewReader(data))
	if err != nil {
		log.Err(err).Str("func", "launchFileStorage.Load").Str("path", path).Msg("error decoding launch file")
		return nil, fmt.Errorf("%w %s: %w", ErrDecodingLaunchFile, path, err)
	}

	log.Debug().Str("path", path).Int("keys", len(doc)).Msg("launch file loaded")
	return doc, nil
}

// Save encodes doc first and only then truncates and rewrites path, so an
// encoding failure never destroys the existing file.
//
// HTML characters are not escaped, and the output ends with a newline.
func (s *launchFileStorage) Save(ctx context.Context, path string, doc models.LaunchDocument, indent int) error {
	log := s.logger.Ctx(ctx)

	payload, err := encodeLaunchDocument(doc, indent)
	if err != nil {
		log.Err(err).Str("func", "launchFileStorage.Save").Str("path", path).Msg("error encoding launch file")
		return fmt.Errorf("%w: %w", ErrEncodingLaunchFile, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, launchFilePerm)
	if err != nil {
		log.Err(err).Str("func", "launchFileStorage.Save").Str("path", path).Msg("error opening launch file for writing")
		return fmt.Errorf("%w: %w", ErrWritingLaunchFile, err)
	}

	if _, err = file.Write(payload); err != nil {
		file.Close()
		log.Err(err).Str("func", "launchFileStorage.Save").Str("path", path).Msg("error writing launch file")
		return fmt.Errorf("%w: %w", ErrWritingLaunchFile, err)
	}

	if err = file.Close(); err != nil {
		log.Err(err).Str("func", "launchFileStorage.Save").Str("path", path).Msg("error closing launch file")
		return fmt.Errorf("%w: %w", ErrWritingLaunchFile, err)
	}

	log.Debug().Str("path", path).Int("bytes", len(payload)).Msg("launch file written")
	return nil
}

func decodeLaunchDocument(r io.Reader) (models.LaunchDocument, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var doc models.LaunchDocument
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}

	if doc == nil {
		return nil, errors.New("top-level value is not a JSON object")
	}

	// a second value after the object is not a valid document
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}

	return doc, nil
}

func encodeLaunchDocument(doc models.LaunchDocument, indent int) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", indent))

	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
