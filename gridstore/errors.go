// Package gridstore persists forward-gridder images and corrected water
// column tensors as dense TileDB arrays.
package gridstore

import (
	"errors"
)

// Sentinel errors for the TileDB array plumbing, kept in the teacher's
// style (a flat var block of sentinel errors composed via errors.Join at
// the call site rather than wrapped every time).
var ErrCreateGridTdb = errors.New("error creating grid TileDB array")
var ErrWriteGridTdb = errors.New("error writing grid TileDB array")
var ErrCreateWciTdb = errors.New("error creating WCI TileDB array")
var ErrWriteWciTdb = errors.New("error writing WCI TileDB array")
var ErrCreateAttributeTdb = errors.New("error creating attribute for TileDB array")
var ErrCreateSchemaTdb = errors.New("error creating TileDB schema")
var ErrCreateDimTdb = errors.New("error creating TileDB dimension")
var ErrDtype = errors.New("error slice datatype is unexpected")
var ErrSetBuff = errors.New("error setting TileDB buffer")
