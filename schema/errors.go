/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for schema operations.
var (
	// ErrUnknownFormat indicates an unrecognized format name.
	ErrUnknownFormat = errors.New("unknown token format")

	// ErrRootNotObject indicates the document root is not a mapping.
	ErrRootNotObject = errors.New("token document root must be an object")
)
