package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateStage names one phase of the update pipeline. Stages are
// reported in order; a failed stage is the last one reported.
type UpdateStage string

const (
	StageCheck    UpdateStage = "check"
	StageDownload UpdateStage = "download"
	StageVerify   UpdateStage = "verify"
	StageExtract  UpdateStage = "extract"
	StageApply    UpdateStage = "apply"
	StageDone     UpdateStage = "done"
)

// UpdateInput selects the release to install. An empty TargetVersion
// means whatever the release API reports as latest.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is delivered to the progress callback once per stage.
type UpdateProgress struct {
	Stage   UpdateStage
	Message string
}

// Update downloads a release archive, verifies it against the
// published checksums, and swaps the running executable for the new
// binary. The progress callback must be non-nil.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	report := func(stage UpdateStage, format string, args ...any) {
		progress(UpdateProgress{Stage: stage, Message: fmt.Sprintf(format, args...)})
	}

	// Resolve the artifact name first so an unsupported platform fails
	// before any network traffic.
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	tag := input.TargetVersion
	if tag == "" {
		report(StageCheck, "Looking up the latest release...")
		latest, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !latest.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = latest.LatestVersion
	}

	report(StageDownload, "Downloading %s...", tag)
	archive, err := c.fetchReleaseFile(ctx, tag, asset)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verifying download...")
	sums, err := c.fetchReleaseFile(ctx, tag, "checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := checksumFor(sums, asset)
	if !ok {
		return fmt.Errorf("no checksum for %s in checksums.txt", asset)
	}
	if err := matchChecksum(archive, want); err != nil {
		return err
	}

	report(StageExtract, "Unpacking the new binary...")
	binary, err := unpackBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(StageApply, "Installing...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := installBinary(binary, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(StageDone, "Updated to %s", tag)
	return nil
}

// archNames maps GOARCH values to the labels stamped on release
// artifacts.
var archNames = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// releaseAsset returns the archive name published for a platform.
func releaseAsset(goos, goarch string) (string, error) {
	var pattern string
	switch goos {
	case "darwin":
		// Darwin releases ship a single universal binary.
		return "socra_Darwin_all.tar.gz", nil
	case "linux":
		pattern = "socra_Linux_%s.tar.gz"
	case "windows":
		pattern = "socra_Windows_%s.zip"
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
	arch, ok := archNames[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	return fmt.Sprintf(pattern, arch), nil
}

// fetchReleaseFile downloads one file attached to a release tag.
func (c *Checker) fetchReleaseFile(ctx context.Context, tag, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a checksums.txt body for the named asset. Lines
// are "<hex>  <filename>"; anything else is skipped.
func checksumFor(sums []byte, asset string) (string, bool) {
	for _, line := range strings.Split(string(sums), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], true
		}
	}
	return "", false
}

func matchChecksum(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

// unpackBinary pulls the socra executable out of a release archive.
func unpackBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return unzipFile(archive, "socra.exe")
	}
	return untarFile(archive, "socra")
}

func untarFile(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func unzipFile(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// installBinary swaps data into place at target, preserving the file
// mode. The staging file lives next to the target so the final rename
// never crosses a filesystem boundary.
func installBinary(data []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	stagingDir, err := os.MkdirTemp(filepath.Dir(target), ".socra-update-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(stagingDir) }()

	staged := filepath.Join(stagingDir, "socra.next")
	if err := os.WriteFile(staged, data, 0600); err != nil {
		return fmt.Errorf("write staged binary: %w", err)
	}

	// Re-read and hash before the rename; a short or corrupted write
	// must never reach the target path.
	onDisk, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read staged binary: %w", err)
	}
	want := sha256.Sum256(data)
	got := sha256.Sum256(onDisk)
	if !bytes.Equal(got[:], want[:]) {
		return fmt.Errorf("%w: staged binary does not match downloaded data", ErrChecksum)
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
