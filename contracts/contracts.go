/*
Package contracts provides access to compiled Trainer contract.

Compiled artifacts are expected in the "trainer" directory of the given file
system: contract.nef and manifest.json, as produced by neo-go compiler from
contracts/trainer.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	trainerDir = "trainer"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// GetTrainer reads compiled Trainer contract from the given file system.
func GetTrainer(_fs fs.FS) (Contract, error) {
	c, err := readContractFromDir(_fs, trainerDir)
	if err != nil {
		return c, fmt.Errorf("read contract %s: %w", trainerDir, err)
	}
	return c, nil
}

// GetTrainerFromDir is the same as GetTrainer but reads artifacts from the
// local directory.
func GetTrainerFromDir(dir string) (Contract, error) {
	return GetTrainer(os.DirFS(dir))
}

func readContractFromDir(_fs fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := _fs.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := _fs.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
