// Package metadata signs generated pages with a trailing HTML comment block
// and verifies those signatures.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "<!-- METADATA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "METADATA_END -->"
	// Generator identifies pages written by this tool.
	Generator = "noticias-sitegen"
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata describes the build that produced a page.
type Metadata struct {
	LastModify time.Time
	BuildID    string
	Generator  string
	Hash       string
}

// metadataRegex matches the entire metadata block including tags.
var metadataRegex = regexp.MustCompile(`(?s)<!--\s*METADATA_START\s*\n(.*?)\n\s*METADATA_END\s*-->`)

// Extract removes the metadata block from content and returns both the metadata and the cleaned content.
// The cleaned content is what gets hashed.
func Extract(content string) (*Metadata, string) {
	match := metadataRegex.FindStringSubmatch(content)
	cleanContent := metadataRegex.ReplaceAllString(content, "")
	cleanContent = strings.TrimRight(cleanContent, "\n")

	if len(match) < 2 {
		return nil, cleanContent
	}

	meta := &Metadata{}

	for line := range strings.SplitSeq(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "BUILD_ID":
			meta.BuildID = val
		case "GENERATOR":
			meta.Generator = val
		case "LAST_MODIFY":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.LastModify = t
			}
		case "HASH":
			meta.Hash = val
		}
	}

	return meta, cleanContent
}

// CalculateHash computes the SHA-256 hash of the content (excluding metadata).
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign replaces any existing metadata block with a fresh one describing meta.
// A zero LastModify is stamped with the current UTC time.
func Sign(content string, meta Metadata) string {
	_, clean := Extract(content)

	if meta.LastModify.IsZero() {
		meta.LastModify = time.Now()
	}

	if meta.Generator == "" {
		meta.Generator = Generator
	}

	block := fmt.Sprintf("\n\n%s\nGENERATOR: %s\nBUILD_ID: %s\nLAST_MODIFY: %s\nHASH: %s\n%s\n",
		TagStart, meta.Generator, meta.BuildID, meta.LastModify.UTC().Format(time.RFC3339), CalculateHash(clean), TagEnd)

	return clean + block
}

// Verify checks if the content matches the hash in its metadata.
func Verify(content string) (bool, error) {
	meta, clean := Extract(content)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}

// VerifyFile reads path and verifies its metadata block.
func VerifyFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := string(data)
	if _, err := Verify(content); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	meta, _ := Extract(content)

	return meta, nil
}
