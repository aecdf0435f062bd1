package cards

import (
	"archive/tar"
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"mixmaster/internal/errors"
	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
)

// DeckRecipesName is the JSON snapshot entry inside a deck archive.
const DeckRecipesName = "recipes.json"

// WriteDeck renders every cocktail and bundles the cards plus a
// recipes.json snapshot into a zstd-compressed tar archive at path.
func (r *Renderer) WriteDeck(cocktails []recipe.Cocktail, path string, totalOz float64) error {
	if len(cocktails) == 0 {
		return bundleErr("deck has no recipes", nil)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return bundleErr(fmt.Sprintf("failed to create deck directory %s", dir), err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return bundleErr(fmt.Sprintf("failed to create deck at %s", path), err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return bundleErr("failed to start compressor", err)
	}
	tw := tar.NewWriter(zw)

	now := time.Now().UTC()
	for i := range cocktails {
		c := &cocktails[i]
		img, err := r.Render(c, totalOz)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return bundleErr(fmt.Sprintf("failed to encode card for %q", c.Name), err)
		}
		if err := addEntry(tw, CardFileName(c.Name), buf.Bytes(), now); err != nil {
			return err
		}
	}

	snapshot, err := output.DeterministicEncodeIndented(cocktails, "  ")
	if err != nil {
		return bundleErr("failed to encode recipe snapshot", err)
	}
	if err := addEntry(tw, DeckRecipesName, snapshot, now); err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return bundleErr("failed to finish archive", err)
	}
	if err := zw.Close(); err != nil {
		return bundleErr("failed to finish compression", err)
	}
	return nil
}

func addEntry(tw *tar.Writer, name string, data []byte, modTime time.Time) error {
	hdr := &tar.Header{
		Name:    name,
		Mode:    0o644,
		Size:    int64(len(data)),
		ModTime: modTime,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return bundleErr(fmt.Sprintf("failed to add %s to deck", name), err)
	}
	if _, err := tw.Write(data); err != nil {
		return bundleErr(fmt.Sprintf("failed to write %s into deck", name), err)
	}
	return nil
}

func bundleErr(message string, cause error) error {
	return errors.NewMixError(errors.BundleFailed, message, cause, nil)
}
