package png2vhdl

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/spf13/afero"
)

// crcFile returns the CRC-32 of the file contents as an upper-case hex
// string, the form stored in the manifest.
func crcFile(fs afero.Fs, file string) (string, error) {
	f, err := fs.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}
