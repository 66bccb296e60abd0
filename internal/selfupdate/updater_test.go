package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr string
	}{
		{name: "darwin amd64", goos: "darwin", goarch: "amd64", want: "socra_Darwin_all.tar.gz"},
		{name: "darwin arm64", goos: "darwin", goarch: "arm64", want: "socra_Darwin_all.tar.gz"},
		{name: "linux amd64", goos: "linux", goarch: "amd64", want: "socra_Linux_x86_64.tar.gz"},
		{name: "linux arm64", goos: "linux", goarch: "arm64", want: "socra_Linux_arm64.tar.gz"},
		{name: "linux 386", goos: "linux", goarch: "386", want: "socra_Linux_i386.tar.gz"},
		{name: "windows amd64", goos: "windows", goarch: "amd64", want: "socra_Windows_x86_64.zip"},
		{name: "windows arm64", goos: "windows", goarch: "arm64", want: "socra_Windows_arm64.zip"},
		{name: "unsupported os", goos: "freebsd", goarch: "amd64", wantErr: "operating system"},
		{name: "unsupported arch", goos: "linux", goarch: "mips", wantErr: "architecture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewerVersion(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{"newer patch", "v1.0.1", "v1.0.0", true},
		{"newer minor", "v1.2.0", "v1.1.9", true},
		{"same", "v1.0.0", "v1.0.0", false},
		{"older", "v1.0.0", "v1.1.0", false},
		{"prerelease older than release", "v2.0.0-rc.1", "v2.0.0", false},
		{"non-semver differs", "nightly-2", "nightly-1", true},
		{"empty latest", "", "v1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newerVersion(tt.latest, tt.current))
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  socra_Darwin_all.tar.gz\n" +
		"not-a-checksum-line\n" +
		"   \n" +
		"one two three\n" +
		"def456  socra_Linux_x86_64.tar.gz\n")

	t.Run("found", func(t *testing.T) {
		got, ok := checksumFor(sums, "socra_Linux_x86_64.tar.gz")
		require.True(t, ok)
		assert.Equal(t, "def456", got)
	})

	t.Run("absent asset", func(t *testing.T) {
		_, ok := checksumFor(sums, "socra_Windows_x86_64.zip")
		assert.False(t, ok)
	})

	t.Run("malformed lines never match", func(t *testing.T) {
		_, ok := checksumFor(sums, "three")
		assert.False(t, ok)
	})
}

func TestMatchChecksum(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, matchChecksum(data, hex.EncodeToString(sum[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := matchChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestUnpackBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho socra")

	t.Run("tar.gz", func(t *testing.T) {
		archive := tarGzArchive(t, "socra", content)
		got, err := unpackBinary(archive, "socra_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := zipArchive(t, "socra.exe", content)
		got, err := unpackBinary(archive, "socra_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := tarGzArchive(t, "README.md", content)
		_, err := unpackBinary(archive, "socra_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestInstallBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "socra")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	next := []byte("new-binary-content")
	require.NoError(t, installBinary(next, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	// The replacement keeps the original executable bit.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	// Update resolves the release asset for the running platform, so
	// the fake server registers paths for that asset.
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil || runtime.GOOS == "windows" {
		t.Skipf("no tar.gz release asset for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	content := []byte("new-socra-binary")
	archive := tarGzArchive(t, "socra", content)
	archiveSum := sha256.Sum256(archive)
	goodSums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset)

	writeOldBinary := func(t *testing.T) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "socra")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0755))
		return path
	}

	t.Run("happy path", func(t *testing.T) {
		execPath := writeOldBinary(t)
		server := releaseServer(t, map[string]string{
			"/repos/socralabs/socra/releases/latest":                  `{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`,
			"/socralabs/socra/releases/download/v2.0.0/" + asset:      string(archive),
			"/socralabs/socra/releases/download/v2.0.0/checksums.txt": goodSums,
		})

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []UpdateStage
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		want := []UpdateStage{StageCheck, StageDownload, StageVerify, StageExtract, StageApply, StageDone}
		assert.Equal(t, want, stages)
	})

	t.Run("pinned version skips the check", func(t *testing.T) {
		execPath := writeOldBinary(t)
		server := releaseServer(t, map[string]string{
			"/socralabs/socra/releases/download/v1.5.0/" + asset:      string(archive),
			"/socralabs/socra/releases/download/v1.5.0/checksums.txt": goodSums,
		})

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []UpdateStage
		err := checker.Update(context.Background(), &UpdateInput{
			CurrentVersion: "v1.0.0",
			TargetVersion:  "v1.5.0",
		}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.NotContains(t, stages, StageCheck)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, map[string]string{
			"/repos/socralabs/socra/releases/latest": `{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`,
		})

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSums := fmt.Sprintf("%064d  %s\n", 0, asset)
		server := releaseServer(t, map[string]string{
			"/repos/socralabs/socra/releases/latest":                  `{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`,
			"/socralabs/socra/releases/download/v2.0.0/" + asset:      string(archive),
			"/socralabs/socra/releases/download/v2.0.0/checksums.txt": badSums,
		})

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := releaseServer(t, map[string]string{
			"/repos/socralabs/socra/releases/latest": `{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`,
		})

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// releaseServer serves fixed bodies for registered paths and 404s
// everything else.
func releaseServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// tarGzArchive builds a tar.gz holding a single file.
func tarGzArchive(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// zipArchive builds a zip holding a single file.
func zipArchive(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
