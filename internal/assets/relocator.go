package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pawhaven/petadoption-backend/pkg/config"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
)

// Relocator moves pet images between the pending and approved roots. Image
// names are bare filenames; anything that could escape a root is rejected.
type Relocator struct {
	pendingRoot  string
	approvedRoot string
}

// NewRelocator binds the relocator to the configured image roots.
func NewRelocator(cfg config.ImagesConfig) *Relocator {
	return &Relocator{
		pendingRoot:  cfg.PendingDir,
		approvedRoot: cfg.ApprovedDir,
	}
}

// CopyToApproved copies the named image from the pending root into the
// approved root. A missing source is a silent no-op: some pending pets never
// had an image uploaded. An existing destination is overwritten, which is what
// makes re-running an approval safe. The approved root is created on demand.
func (r *Relocator) CopyToApproved(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	src, err := resolve(r.pendingRoot, name)
	if err != nil {
		return err
	}
	dst, err := resolve(r.approvedRoot, name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeAssetIO, err, "stat pending image")
	}

	if err := os.MkdirAll(r.approvedRoot, 0o755); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeAssetIO, err, "create approved image root")
	}

	if err := copyFile(src, dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeAssetIO, err, "copy image to approved root")
	}
	return nil
}

// DeletePending removes the named image from the pending root. Missing files
// are a no-op so the delete workflow stays safely re-runnable.
func (r *Relocator) DeletePending(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	path, err := resolve(r.pendingRoot, name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeAssetIO, err, "delete pending image")
	}
	return nil
}

// resolve joins name onto root, refusing names that are absolute or contain
// path separators or parent references.
func resolve(root, name string) (string, error) {
	if filepath.IsAbs(name) || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid image name %q", name))
	}
	return filepath.Join(root, name), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
