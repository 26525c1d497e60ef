package contenthash

import "errors"

var (
	ErrHashFormat = errors.New("hash text is not five dash separated 8 digit hex words")
	ErrNameFormat = errors.New("geometry name does not carry a hash")
	ErrDigestSize = errors.New("digest is not 20 bytes")
)
