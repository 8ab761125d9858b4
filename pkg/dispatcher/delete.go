package dispatcher

import (
	stderrors "errors"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/filesystem"
	"github.com/arthur-debert/lazysetup/pkg/logging"
)

// DeleteResult lists what happened to each target directory
type DeleteResult struct {
	Removed []string
	Missing []string
	Failed  map[string]error
}

// Delete removes each directory independently. A missing directory is
// skipped; a failed removal is recorded and the remaining targets are
// still processed.
func Delete(fsys filesystem.FS, targets []string) (*DeleteResult, error) {
	logger := logging.GetLogger("delete")
	res := &DeleteResult{Failed: make(map[string]error)}

	var errs []error
	for _, dir := range targets {
		if !filesystem.Exists(fsys, dir) {
			logger.Warn().Str("dir", dir).Msg("Directory does not exist, skipping")
			res.Missing = append(res.Missing, dir)
			continue
		}

		if err := fsys.RemoveAll(dir); err != nil {
			logger.Error().Err(err).Str("dir", dir).Msg("Failed to remove directory")
			wrapped := errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", dir).
				WithDetail("dir", dir)
			res.Failed[dir] = wrapped
			errs = append(errs, wrapped)
			continue
		}

		logger.Info().Str("dir", dir).Msg("Removed")
		res.Removed = append(res.Removed, dir)
	}

	return res, stderrors.Join(errs...)
}
