// Package runlog sets up the per-run log directory. Every run gets its own
// uuid-named directory so repeated runs never clobber each other's logs, and
// the effective configuration is saved next to the log for troubleshooting.
package runlog

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Setup creates a uuid-named run directory under baseDir and returns a
// logger writing to the seqpipe.log file inside it, along with the run
// directory path. The log file stays open for the lifetime of the process.
func Setup(baseDir string) (*log.Logger, string, error) {
	runDir := filepath.Join(baseDir, uuid.NewString())

	err := os.MkdirAll(runDir, 0o755)
	if err != nil {
		return nil, "", errors.Wrapf(err, "unable to create log directory %s", runDir)
	}

	fid, err := os.Create(filepath.Join(runDir, "seqpipe.log"))
	if err != nil {
		return nil, "", errors.Wrap(err, "unable to create log file")
	}

	return log.New(fid, "", log.Ltime), runDir, nil
}

// SaveConfig writes the effective run configuration into dir as config.toml.
func SaveConfig(dir string, cfg interface{}) error {
	fid, err := os.Create(filepath.Join(dir, "config.toml"))
	if err != nil {
		return errors.Wrap(err, "unable to create config file")
	}
	defer fid.Close()

	err = toml.NewEncoder(fid).Encode(cfg)
	if err != nil {
		return errors.Wrap(err, "unable to encode config")
	}

	return nil
}
