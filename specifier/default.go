/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import tokenfs "bennypowers.dev/tokencss/fs"

// NewDefaultResolver creates a resolver chain that handles npm:, jsr:, and
// local paths. The root must be absolute.
func NewDefaultResolver(fs tokenfs.Reader, root string) (Resolver, error) {
	npm, err := NewNPMResolver(fs, root)
	if err != nil {
		return nil, err
	}
	jsr, err := NewJSRResolver(fs, root)
	if err != nil {
		return nil, err
	}
	return NewChainResolver(npm, jsr, NewLocalResolver(root)), nil
}
