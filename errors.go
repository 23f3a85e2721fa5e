package rubixcube

import "errors"

// Sentinel errors for the rubixcube package.
var (
	// Construction errors
	ErrFaceCount = errors.New("rubixcube: a cube must have 6 faces")
	ErrGridShape = errors.New("rubixcube: a cube must have 3 columns and 3 rows per face")

	// Parsing errors
	ErrInvalidFace = errors.New("rubixcube: invalid face name")
)
